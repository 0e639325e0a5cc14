// Package cli implements the interactive text menu.
//
// The menu loops until the user picks Exit or input ends:
//
//	1. Create a new password entry
//	2. Retrieve a password entry
//	3. Exit
//
// Invalid answers are asked again a bounded number of times (see package
// prompt). Errors from a single action are reported and logged, then the
// menu is shown again; they never end the process.
package cli
