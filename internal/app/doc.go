// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load the map, answer part
// 1 and part 2, optionally serve health and progress), decoupled from any
// specific entrypoint like a CLI.
package app
