package cli

import (
	"fmt"
	"strings"

	"pwvault/internal/domain"
)

func retrieveMenu() string {
	var b strings.Builder
	b.WriteString("Please select a way to retrieve your entry:\n")
	for i, f := range domain.Fields {
		fmt.Fprintf(&b, "%d. %s\n", i+1, capitalize(f.String()))
	}
	b.WriteString("0. Cancel")
	return b.String()
}

func (m *Menu) retrieve() error {
	choice, err := m.p.Choice(retrieveMenu(), func(n int) bool {
		return n >= 0 && n <= len(domain.Fields)
	})
	if err != nil {
		return err
	}
	if choice == 0 {
		return errCancelled
	}
	field := domain.Fields[choice-1]

	value, err := m.p.Required(fmt.Sprintf("Enter the %s of the entry you want to retrieve", field), nonBlank)
	if err != nil {
		return err
	}
	e, ok, err := m.svc.Find(field, value)
	if err != nil {
		return err
	}
	if !ok {
		m.p.Printf("No entry was found with the given information!\n")
		return nil
	}
	m.p.Printf("Your entry has been found!\n")
	PrintEntry(m.p.Out(), e)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
