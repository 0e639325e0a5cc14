// Package store provides file-based persistence for credential entries.
//
// EntryFileStore implements domain.EntryStore over a single JSON document: a
// top-level array with one object per entry, pretty-printed, written without
// HTML escaping. Every operation opens, fully reads or writes, and closes the
// file; nothing is cached between calls, so the file is the only state.
//
// Writes go through a temp file in the same directory and a rename, with mode
// 0600. Passwords are replaced by the configured one-way hash before they
// reach the document.
package store
