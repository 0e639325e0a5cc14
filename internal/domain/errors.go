package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a field value rejected before an entry is built.
	ErrValidation = errors.New("invalid entry field")
	// ErrIO marks a failure creating, reading or writing the entry document.
	ErrIO = errors.New("entry document i/o failed")
	// ErrCorruptData is returned when the entry document cannot be decoded.
	ErrCorruptData = errors.New("entry document is corrupt")
	// ErrUnknownField is returned for a retrieval key other than name,
	// website, username or email.
	ErrUnknownField = errors.New("unknown entry field")
)

// ValidationError describes which field was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
