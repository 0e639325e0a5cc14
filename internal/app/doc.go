// Package app loads configuration and wires application dependencies for
// the CLI.
//
// It builds the hasher, the file store and the entry service from Config,
// exposing them via the Wire struct for commands to use.
package app
