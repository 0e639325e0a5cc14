// Package prompt reads values from a line-oriented terminal.
//
// Prompter wraps an input reader and an output writer. Every validated read
// is a bounded retry loop: after MaxAttempts rejected values it gives up with
// ErrTooManyAttempts instead of asking forever. Passwords are read without
// echo when the input is a terminal.
//
// ParseInts and SplitList are the small text parsers the menu needs for
// "1, 2" style selections and comma separated tag lists.
package prompt
