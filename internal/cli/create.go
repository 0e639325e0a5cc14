package cli

import (
	"errors"
	"fmt"
	"slices"

	"pwvault/internal/prompt"
	"pwvault/internal/services/entry"
)

const (
	createMenu = `Please select all that apply (e.g. "1, 2"), or press Enter for neither
1. Username
2. Email
0. Cancel`

	optionCancel   = 0
	optionUsername = 1
	optionEmail    = 2
)

func (m *Menu) create() error {
	options, err := m.p.Ints(createMenu, func(v []int) error {
		for _, n := range v {
			if n < optionCancel || n > optionEmail {
				return fmt.Errorf("%d does not correspond to a valid option", n)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if slices.Contains(options, optionCancel) {
		return errCancelled
	}

	var f entry.Fields
	if slices.Contains(options, optionUsername) {
		if f.Username, err = m.p.Required("Please enter your username", entry.ValidateUsername); err != nil {
			return err
		}
	}
	if slices.Contains(options, optionEmail) {
		if f.Email, err = m.p.Required("Please enter your email", entry.ValidateEmail); err != nil {
			return err
		}
	}
	if f.Password, err = m.p.Password("Please enter your password", entry.ValidatePassword); err != nil {
		return err
	}
	if f.Name, err = m.p.Required("Enter a name for this entry", entry.ValidateName); err != nil {
		return err
	}
	if f.Website, err = m.p.Required("Enter a website for this entry (optional)", optional(entry.ValidateWebsite)); err != nil {
		return err
	}
	if f.Description, err = m.p.Line("Enter a description for this entry (optional)"); err != nil {
		return err
	}
	tags, err := m.p.Line("Enter tags for this entry, separated by commas (optional)")
	if err != nil {
		return err
	}
	f.Tags = prompt.SplitList(tags, ",")
	note, err := m.p.Line("Enter a note for this entry (optional)")
	if err != nil {
		return err
	}
	f.Notes = []string{note}

	e, err := m.svc.Create(f)
	if err != nil {
		return err
	}
	m.log.Info("entry created", "name", e.Name())
	m.p.Printf("Your entry %q has been saved!\n", e.Name())
	return nil
}

// optional accepts an empty answer and otherwise defers to validate.
func optional(validate func(string) error) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		return validate(s)
	}
}

func nonBlank(s string) error {
	if s == "" {
		return errors.New("a value is required")
	}
	return nil
}
