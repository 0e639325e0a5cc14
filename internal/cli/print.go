package cli

import (
	"fmt"
	"io"
	"strings"

	"pwvault/internal/domain"
)

// PrintEntry writes e as aligned "Label: value" lines, skipping absent
// fields. The stored hash is never printed.
func PrintEntry(w io.Writer, e domain.PasswordEntry) {
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(w, "%-12s %s\n", label+":", value)
		}
	}
	line("Name", e.Name())
	line("Website", e.Website())
	line("Username", e.Username())
	line("Email", e.Email())
	line("Description", e.Description())
	line("Tags", strings.Join(e.Tags(), ", "))
	for i, n := range e.Notes() {
		label := ""
		if i == 0 {
			label = "Notes:"
		}
		fmt.Fprintf(w, "%-12s - %s\n", label, n)
	}
	if e.HasPassword() {
		line("Password", "(stored as a one-way hash)")
	}
}
