package domain

import (
	"fmt"
	"strings"
)

// Field names an entry attribute that retrieval can match on.
type Field string

const (
	FieldName     Field = "name"
	FieldWebsite  Field = "website"
	FieldUsername Field = "username"
	FieldEmail    Field = "email"
)

// Fields lists the retrieval keys in menu order.
var Fields = []Field{FieldName, FieldWebsite, FieldUsername, FieldEmail}

// String returns the string form of the field.
func (f Field) String() string { return string(f) }

// ParseField maps a key such as "email" to its Field.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// Valid reports whether f is one of the recognised retrieval keys.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldWebsite, FieldUsername, FieldEmail:
		return true
	}
	return false
}

// Lookup returns the value of f on e and whether it is present.
func (f Field) Lookup(e PasswordEntry) (string, bool) {
	var v string
	switch f {
	case FieldName:
		v = e.name
	case FieldWebsite:
		v = e.website
	case FieldUsername:
		v = e.username
	case FieldEmail:
		v = e.email
	}
	return v, v != ""
}

// Matches reports whether e carries f and its value equals value, ignoring case.
// An entry without f never matches.
func (f Field) Matches(e PasswordEntry, value string) bool {
	v, ok := f.Lookup(e)
	return ok && strings.EqualFold(v, value)
}
