// Package config reads the optional, layered run settings.
//
// Settings come from up to three sources, each represented as an Overrides
// value whose nil fields mean "not set":
//
//   - an HCL file (LoadFile), evaluated with the variable `cpus` and the
//     functions `min` and `max` so that e.g. `workers = max(1, cpus - 1)` works;
//   - PATROLGRID_* environment variables, optionally backed by a .env file
//     (LoadEnv);
//   - command-line flags, collected by the cli package.
//
// Merge layers them so that later sources win. Validation of the final values
// belongs to the app package.
package config
