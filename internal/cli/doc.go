// Package cli is responsible for parsing command-line arguments, layering
// them over the config file and environment, validating user input, and
// handling process-level concerns like exit codes. It translates all of it
// into the application's internal configuration.
package cli
