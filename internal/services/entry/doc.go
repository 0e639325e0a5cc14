// Package entry validates raw field values, builds credential entries and
// hands them to the domain.EntryStore.
//
// Field rules live here rather than in the builder: callers such as the
// interactive menu run the same Validate* functions while prompting so they
// can ask again before anything is built.
package entry
