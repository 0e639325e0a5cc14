package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pwvault/internal/crypto"
	"pwvault/internal/domain"
	"pwvault/internal/prompt"
	"pwvault/internal/services/entry"
	"pwvault/internal/store"
)

func newTestMenu(t *testing.T, input string) (*Menu, *store.EntryFileStore, *bytes.Buffer) {
	t.Helper()
	h, err := crypto.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	s := store.NewEntryFileStore(filepath.Join(t.TempDir(), "entries.json"), h, nil)
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(input), &out, 3)
	return NewMenu(p, entry.New(s), nil), s, &out
}

func lines(l ...string) string { return strings.Join(l, "\n") + "\n" }

func TestMenu_CreateThenRetrieve(t *testing.T) {
	input := lines(
		"1",              // create
		"1, 2",           // username and email
		"alice",          // username
		"alice",          // bad email
		"alice@mail.com", // email
		"abcd",           // short password
		"hunter22",       // password
		"Mail",           // name
		"ftp://mail",     // bad website
		"https://mail.example",
		"inbox",
		"work, , personal",
		"keep safe",
		"2", // retrieve
		"4", // by email
		"ALICE@MAIL.COM",
		"3", // exit
	)
	m, s, out := newTestMenu(t, input)

	require.NoError(t, m.Run())

	text := out.String()
	require.Contains(t, text, "must contain an '@' symbol")
	require.Contains(t, text, "at least 5 characters")
	require.Contains(t, text, "must start with http:// or https://")
	require.Contains(t, text, `Your entry "Mail" has been saved!`)
	require.Contains(t, text, "Your entry has been found!")
	require.Contains(t, text, "Tags:        work, personal")
	require.NotContains(t, text, "hunter22\n")
	require.Contains(t, text, "Bye!")

	got, ok, err := s.FindFirst(domain.FieldName, "mail")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"keep safe"}, got.Notes())
	require.NoError(t, s.Verify(got, "hunter22"))
}

func TestMenu_RetrieveMissing(t *testing.T) {
	m, _, out := newTestMenu(t, lines("2", "1", "nothing", "3"))
	require.NoError(t, m.Run())
	require.Contains(t, out.String(), "No entry was found with the given information!")
}

func TestMenu_CancelPaths(t *testing.T) {
	m, s, out := newTestMenu(t, lines("1", "0", "2", "0", "3"))
	require.NoError(t, m.Run())
	entries, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
	require.Equal(t, 3, strings.Count(out.String(), "Please select an action to perform"))
}

func TestMenu_TooManyBadPasswordsReturnsToMenu(t *testing.T) {
	m, s, out := newTestMenu(t, lines("1", "", "a", "b", "c", "3"))
	require.NoError(t, m.Run())
	require.Contains(t, out.String(), "Too many invalid answers")
	entries, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestMenu_InvalidActionIsAskedAgain(t *testing.T) {
	m, _, out := newTestMenu(t, lines("9", "abc", "3"))
	require.NoError(t, m.Run())
	require.Contains(t, out.String(), "9 does not correspond to a valid action")
	require.Contains(t, out.String(), "please enter a valid number")
}

func TestMenu_EOFEndsLoop(t *testing.T) {
	m, _, _ := newTestMenu(t, lines("1", "1"))
	require.NoError(t, m.Run())
}

func TestPrintEntry(t *testing.T) {
	e := domain.NewEntryBuilder("Mail", "$2a$04$hash").
		Email("a@b.c").
		Notes("one", "two").
		Build()
	var buf bytes.Buffer
	PrintEntry(&buf, e)

	want := "Name:        Mail\n" +
		"Email:       a@b.c\n" +
		"Notes:       - one\n" +
		"             - two\n" +
		"Password:    (stored as a one-way hash)\n"
	require.Equal(t, want, buf.String())
	require.NotContains(t, buf.String(), "$2a$")
}
