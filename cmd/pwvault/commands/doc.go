// Package commands defines the pwvault CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)   Run the interactive menu
//   - add      Create an entry from flags
//   - find     Print the first entry matching a field
//   - verify   Check a password against an entry's stored hash
//
// # Implementation
//
// The root command loads configuration (defaults, config file, PWVAULT_*
// environment, flags) and builds the logger, hasher, store and entry service
// before any subcommand runs, so handlers share one app context.
package commands
