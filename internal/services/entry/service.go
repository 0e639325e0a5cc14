package entry

import (
	"errors"

	"pwvault/internal/domain"
)

// Fields carries the raw values for a new entry. Empty optional values are
// treated as absent.
type Fields struct {
	Name        string
	Password    string
	Website     string
	Username    string
	Email       string
	Description string
	Tags        []string
	Notes       []string
}

// BuildEntry validates f and assembles the entry. All failing fields are
// reported together, each as a *domain.ValidationError.
func BuildEntry(f Fields) (domain.PasswordEntry, error) {
	errs := []error{ValidateName(f.Name), ValidatePassword(f.Password)}
	if f.Website != "" {
		errs = append(errs, ValidateWebsite(f.Website))
	}
	if f.Username != "" {
		errs = append(errs, ValidateUsername(f.Username))
	}
	if f.Email != "" {
		errs = append(errs, ValidateEmail(f.Email))
	}
	if err := errors.Join(errs...); err != nil {
		return domain.PasswordEntry{}, err
	}

	return domain.NewEntryBuilder(f.Name, f.Password).
		Website(f.Website).
		Username(f.Username).
		Email(f.Email).
		Description(f.Description).
		Tags(f.Tags...).
		Notes(f.Notes...).
		Build(), nil
}

// Service creates and looks up entries through a domain.EntryStore.
type Service struct {
	store domain.EntryStore
}

// New returns an entry service backed by the given store.
func New(s domain.EntryStore) *Service { return &Service{store: s} }

// Create validates f, builds the entry and appends it to the store.
func (s *Service) Create(f Fields) (domain.PasswordEntry, error) {
	e, err := BuildEntry(f)
	if err != nil {
		return domain.PasswordEntry{}, err
	}
	if err := s.store.Append(e); err != nil {
		return domain.PasswordEntry{}, err
	}
	return e, nil
}

// Find returns the first entry whose field equals value, ignoring case.
func (s *Service) Find(field domain.Field, value string) (domain.PasswordEntry, bool, error) {
	return s.store.FindFirst(field, value)
}

// Verify reports whether password matches the entry stored under name.
// The bool is false when no entry has that name.
func (s *Service) Verify(name, password string) (bool, error) {
	e, ok, err := s.store.FindFirst(domain.FieldName, name)
	if err != nil || !ok {
		return false, err
	}
	if err := s.store.Verify(e, password); err != nil {
		return true, err
	}
	return true, nil
}
