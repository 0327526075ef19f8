// Package app wires application dependencies for the CLI.
//
// It builds the logger, the shared worker pool, the key and certificate
// services and the file stores from Config, exposing them via the Wire struct
// for commands to use.
package app
