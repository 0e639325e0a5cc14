package cli

import (
	"errors"
	"io"
	"log/slog"

	"pwvault/internal/domain"
	"pwvault/internal/prompt"
	"pwvault/internal/services/entry"
)

const (
	mainMenu = `Please select an action to perform:
1. Create a new password entry
2. Retrieve a password entry
3. Exit`

	actionCreate   = 1
	actionRetrieve = 2
	actionExit     = 3
)

// errCancelled is returned by an action the user backed out of.
var errCancelled = errors.New("cancelled")

// EntryService is the part of entry.Service the menu drives.
type EntryService interface {
	Create(f entry.Fields) (domain.PasswordEntry, error)
	Find(field domain.Field, value string) (domain.PasswordEntry, bool, error)
}

// Menu is the interactive front end over an EntryService.
type Menu struct {
	p   *prompt.Prompter
	svc EntryService
	log *slog.Logger
}

// NewMenu returns a Menu reading through p. A nil logger discards output.
func NewMenu(p *prompt.Prompter, svc EntryService, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Menu{p: p, svc: svc, log: logger.With("component", "menu")}
}

// Run shows the main menu until Exit is chosen or input reaches EOF.
func (m *Menu) Run() error {
	for {
		action, err := m.p.Choice(mainMenu, func(n int) bool {
			return n >= actionCreate && n <= actionExit
		})
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, prompt.ErrTooManyAttempts):
			continue
		case err != nil:
			return err
		}

		switch action {
		case actionCreate:
			err = m.create()
		case actionRetrieve:
			err = m.retrieve()
		case actionExit:
			m.p.Printf("Bye!\n")
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		m.report(err)
	}
}

// report tells the user what went wrong with the last action. Storage
// failures are also logged.
func (m *Menu) report(err error) {
	switch {
	case err == nil, errors.Is(err, errCancelled):
	case errors.Is(err, prompt.ErrTooManyAttempts):
		m.p.Printf("Too many invalid answers, returning to the main menu.\n")
	case errors.Is(err, domain.ErrValidation):
		m.p.Printf("Your entry is invalid: %v\n", err)
	case errors.Is(err, domain.ErrCorruptData):
		m.log.Error("entry document is unreadable", "error", err)
		m.p.Printf("The entry file could not be read.\n")
	default:
		m.log.Error("action failed", "error", err)
		m.p.Printf("An error occurred: %v\n", err)
	}
}
