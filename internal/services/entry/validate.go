package entry

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pwvault/internal/domain"
)

const (
	// MinPasswordLength is the shortest password accepted, in characters.
	MinPasswordLength = 5
	// MaxPasswordBytes is the longest password accepted, in bytes. bcrypt
	// ignores or rejects anything past it, so both hashers share the limit.
	MaxPasswordBytes = 72
)

// ValidateName rejects a blank entry name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "cannot be blank"}
	}
	return nil
}

// ValidateEmail requires an '@' in a non-blank email.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &domain.ValidationError{Field: "email", Reason: "cannot be blank"}
	}
	if !strings.Contains(email, "@") {
		return &domain.ValidationError{Field: "email", Reason: "must contain an '@' symbol"}
	}
	return nil
}

// ValidatePassword enforces MinPasswordLength and MaxPasswordBytes.
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return &domain.ValidationError{Field: "password", Reason: "cannot be blank"}
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &domain.ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at least %d characters long", MinPasswordLength),
		}
	}
	if len(password) > MaxPasswordBytes {
		return &domain.ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at most %d bytes long", MaxPasswordBytes),
		}
	}
	return nil
}

// ValidateWebsite requires an http:// or https:// prefix.
func ValidateWebsite(website string) error {
	if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
		return &domain.ValidationError{Field: "website", Reason: "must start with http:// or https://"}
	}
	return nil
}

// ValidateUsername rejects a blank username when one is supplied.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return &domain.ValidationError{Field: "username", Reason: "cannot be blank"}
	}
	return nil
}
