package entry_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pwvault/internal/crypto"
	"pwvault/internal/domain"
	"pwvault/internal/services/entry"
	"pwvault/internal/store"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		check   func(string) error
		value   string
		wantErr bool
	}{
		{"password of 4 rejected", entry.ValidatePassword, "abcd", true},
		{"password of 5 accepted", entry.ValidatePassword, "abcde", false},
		{"blank password rejected", entry.ValidatePassword, "     ", true},
		{"password of 72 bytes accepted", entry.ValidatePassword, strings.Repeat("a", 72), false},
		{"password of 73 bytes rejected", entry.ValidatePassword, strings.Repeat("a", 73), true},
		{"password padded with spaces accepted", entry.ValidatePassword, "  abcd  ", false},
		{"email without at rejected", entry.ValidateEmail, "abc", true},
		{"email with at accepted", entry.ValidateEmail, "abc@x.com", false},
		{"ftp website rejected", entry.ValidateWebsite, "ftp://x", true},
		{"https website accepted", entry.ValidateWebsite, "https://x", false},
		{"http website accepted", entry.ValidateWebsite, "http://x", false},
		{"blank name rejected", entry.ValidateName, " \t", true},
		{"name accepted", entry.ValidateName, "mail", false},
		{"blank username rejected", entry.ValidateUsername, " ", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.value)
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBuildEntry_ReportsEveryBadField(t *testing.T) {
	_, err := entry.BuildEntry(entry.Fields{
		Name:     "",
		Password: "abcd",
		Email:    "abc",
		Website:  "ftp://x",
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	var fields []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ve *domain.ValidationError
		require.True(t, errors.As(e, &ve))
		fields = append(fields, ve.Field)
	}
	require.ElementsMatch(t, []string{"name", "password", "email", "website"}, fields)
}

func TestBuildEntry_Valid(t *testing.T) {
	e, err := entry.BuildEntry(entry.Fields{
		Name:     "mail",
		Password: "abcde",
		Website:  "https://x",
		Email:    "abc@x.com",
		Tags:     []string{"", "  ", "work"},
		Notes:    []string{"note"},
	})
	require.NoError(t, err)
	require.Equal(t, "mail", e.Name())
	require.Equal(t, []string{"work"}, e.Tags())
	require.Equal(t, []string{"note"}, e.Notes())
	require.Empty(t, e.Username())
}

func newService(t *testing.T) (*entry.Service, string) {
	t.Helper()
	h, err := crypto.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "entries.json")
	return entry.New(store.NewEntryFileStore(path, h, nil)), path
}

func TestService_CreateFindVerify(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(entry.Fields{Name: "Mail", Password: "hunter22", Email: "me@mail.example"})
	require.NoError(t, err)
	_, err = svc.Create(entry.Fields{Name: "Bank", Password: "hunter33", Username: "me"})
	require.NoError(t, err)

	got, ok, err := svc.Find(domain.FieldEmail, "ME@MAIL.EXAMPLE")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Mail", got.Name())

	found, err := svc.Verify("bank", "hunter33")
	require.NoError(t, err)
	require.True(t, found)

	found, err = svc.Verify("bank", "wrong-password")
	require.True(t, found)
	require.ErrorIs(t, err, crypto.ErrMismatch)

	found, err = svc.Verify("missing", "hunter33")
	require.NoError(t, err)
	require.False(t, found)
}

func TestService_CreateInvalidDoesNotWrite(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(entry.Fields{Name: "x", Password: "abcd"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, ok, err := svc.Find(domain.FieldName, "x")
	require.NoError(t, err)
	require.False(t, ok)
}

type failingStore struct {
	domain.EntryStore
	err error
}

func (f failingStore) Append(domain.PasswordEntry) error { return f.err }

func TestService_CreateSurfacesStoreErrors(t *testing.T) {
	svc := entry.New(failingStore{err: domain.ErrIO})

	_, err := svc.Create(entry.Fields{Name: "x", Password: "abcde"})
	require.ErrorIs(t, err, domain.ErrIO)
}

func TestService_CreateRejectsOverlongPassword(t *testing.T) {
	svc, path := newService(t)

	_, err := svc.Create(entry.Fields{Name: "long", Password: strings.Repeat("a", 73)})
	require.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "password", ve.Field)
	require.NoFileExists(t, path)
}
