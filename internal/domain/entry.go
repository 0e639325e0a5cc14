package domain

import (
	"slices"
	"strings"
)

// PasswordEntry is one stored credential record.
//
// Optional string fields are absent when empty. Only tag and note membership
// can change after construction.
type PasswordEntry struct {
	name        string
	website     string
	username    string
	email       string
	password    string
	description string
	tags        []string
	notes       []string
}

func (e PasswordEntry) Name() string { return e.name }
func (e PasswordEntry) Website() string { return e.website }
func (e PasswordEntry) Username() string { return e.username }
func (e PasswordEntry) Email() string { return e.email }
func (e PasswordEntry) Description() string { return e.description }

// Password returns the plaintext for an entry still on its way to a store, or
// the stored hash for an entry read back from one.
func (e PasswordEntry) Password() string { return e.password }

// HasPassword reports whether a password (or its hash) is set.
func (e PasswordEntry) HasPassword() bool { return e.password != "" }

// Tags returns a copy of the entry's tags in insertion order.
func (e PasswordEntry) Tags() []string { return slices.Clone(e.tags) }

// Notes returns a copy of the entry's notes in insertion order.
func (e PasswordEntry) Notes() []string { return slices.Clone(e.notes) }

func (e *PasswordEntry) AddTag(tag string) { e.tags = appendNonBlank(e.tags, tag) }
func (e *PasswordEntry) AddTags(tags ...string) { e.tags = appendNonBlank(e.tags, tags...) }
func (e *PasswordEntry) RemoveTag(tag string) { e.tags = removeFirst(e.tags, tag) }
func (e *PasswordEntry) RemoveTags(tags ...string) { e.tags = removeAll(e.tags, tags) }
func (e *PasswordEntry) ClearTags() { e.tags = nil }

func (e *PasswordEntry) AddNote(note string) { e.notes = appendNonBlank(e.notes, note) }
func (e *PasswordEntry) AddNotes(notes ...string) { e.notes = appendNonBlank(e.notes, notes...) }
func (e *PasswordEntry) RemoveNote(note string) { e.notes = removeFirst(e.notes, note) }
func (e *PasswordEntry) RemoveNotes(notes ...string) { e.notes = removeAll(e.notes, notes) }
func (e *PasswordEntry) ClearNotes() { e.notes = nil }

// WithPassword returns a copy of e carrying password instead of the current
// one. Stores use it to swap the plaintext for its hash before persisting.
func (e PasswordEntry) WithPassword(password string) PasswordEntry {
	out := e
	out.password = password
	out.tags = slices.Clone(e.tags)
	out.notes = slices.Clone(e.notes)
	return out
}

// EntryBuilder assembles a PasswordEntry. It does no validation; callers
// check field values before handing them over.
type EntryBuilder struct {
	entry PasswordEntry
}

// NewEntryBuilder starts an entry with the two always-required fields.
func NewEntryBuilder(name, password string) *EntryBuilder {
	return &EntryBuilder{entry: PasswordEntry{name: name, password: password}}
}

func (b *EntryBuilder) Website(website string) *EntryBuilder {
	b.entry.website = website
	return b
}

func (b *EntryBuilder) Username(username string) *EntryBuilder {
	b.entry.username = username
	return b
}

func (b *EntryBuilder) Email(email string) *EntryBuilder {
	b.entry.email = email
	return b
}

func (b *EntryBuilder) Password(password string) *EntryBuilder {
	b.entry.password = password
	return b
}

func (b *EntryBuilder) Description(description string) *EntryBuilder {
	b.entry.description = description
	return b
}

// Tags appends the non-blank values of tags, keeping their order.
func (b *EntryBuilder) Tags(tags ...string) *EntryBuilder {
	b.entry.tags = appendNonBlank(b.entry.tags, tags...)
	return b
}

// Notes appends the non-blank values of notes, keeping their order.
func (b *EntryBuilder) Notes(notes ...string) *EntryBuilder {
	b.entry.notes = appendNonBlank(b.entry.notes, notes...)
	return b
}

// Build returns the assembled entry. The builder can be reused afterwards
// without affecting entries it already produced.
func (b *EntryBuilder) Build() PasswordEntry {
	return b.entry.WithPassword(b.entry.password)
}

func appendNonBlank(dst []string, values ...string) []string {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}

func removeFirst(values []string, target string) []string {
	i := slices.Index(values, target)
	if i < 0 {
		return values
	}
	return slices.Delete(slices.Clone(values), i, i+1)
}

func removeAll(values []string, targets []string) []string {
	return slices.DeleteFunc(slices.Clone(values), func(v string) bool {
		return slices.Contains(targets, v)
	})
}
