package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"pwvault/internal/domain"
)

const (
	// DefaultFilename is the document name used under the user's home directory.
	DefaultFilename = "password_entries.json"

	fileMode = 0o600
	dirMode  = 0o700
)

// EntryFileStore keeps every entry in a single JSON array at path.
//
// Each call reads the whole document and, for Append, rewrites it in full.
// Calls within one process are serialized; separate processes writing the
// same file can lose updates.
type EntryFileStore struct {
	path   string
	hasher domain.Hasher
	log    *slog.Logger
	mu     sync.Mutex
}

// NewEntryFileStore returns a store for the document at path. Passwords are
// hashed with hasher before they are written. A nil logger discards output.
func NewEntryFileStore(path string, hasher domain.Hasher, logger *slog.Logger) *EntryFileStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EntryFileStore{
		path:   path,
		hasher: hasher,
		log:    logger.With("component", "store", "path", path),
	}
}

// Path returns the document location.
func (s *EntryFileStore) Path() string { return s.path }

// Load returns every entry in document order. A missing or empty file yields
// no entries and is not created.
func (s *EntryFileStore) Load() ([]domain.PasswordEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.readRecords()
	if err != nil {
		return nil, err
	}
	out := make([]domain.PasswordEntry, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.entry())
	}
	return out, nil
}

// Append hashes entry's password and adds the entry to the end of the
// document, creating the file and its parent directories when missing.
func (s *EntryFileStore) Append(entry domain.PasswordEntry) error {
	if strings.TrimSpace(entry.Name()) == "" {
		return &domain.ValidationError{Field: "name", Reason: "cannot be blank"}
	}
	if !entry.HasPassword() {
		return &domain.ValidationError{Field: "password", Reason: "is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureDocument(); err != nil {
		return err
	}
	recs, err := s.readRecords()
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(entry.Password())
	if err != nil {
		return err
	}
	recs = append(recs, toRecord(entry.WithPassword(hash)))

	if err := writeJSON(s.path, recs, fileMode); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrIO, s.path, err)
	}
	s.log.Debug("entry appended", "name", entry.Name(), "entries", len(recs))
	return nil
}

// FindFirst returns the first entry, in document order, whose field equals
// value ignoring case. Entries that lack field never match.
func (s *EntryFileStore) FindFirst(field domain.Field, value string) (domain.PasswordEntry, bool, error) {
	if !field.Valid() {
		return domain.PasswordEntry{}, false, fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	entries, err := s.Load()
	if err != nil {
		return domain.PasswordEntry{}, false, err
	}
	for _, e := range entries {
		if field.Matches(e, value) {
			return e, true, nil
		}
	}
	s.log.Debug("no entry matched", "field", field, "scanned", len(entries))
	return domain.PasswordEntry{}, false, nil
}

// Verify checks password against the hash stored on entry.
func (s *EntryFileStore) Verify(entry domain.PasswordEntry, password string) error {
	if !entry.HasPassword() {
		return &domain.ValidationError{Field: "password", Reason: "entry has no stored password"}
	}
	return s.hasher.Verify(entry.Password(), password)
}

// ensureDocument creates an empty array document when the file is missing.
func (s *EntryFileStore) ensureDocument() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %w", domain.ErrIO, s.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("%w: create directory for %s: %w", domain.ErrIO, s.path, err)
	}
	if err := writeJSON(s.path, []record{}, fileMode); err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrIO, s.path, err)
	}
	s.log.Info("created entry document")
	return nil
}

func (s *EntryFileStore) readRecords() ([]record, error) {
	b, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrIO, s.path, err)
	}
	return decodeRecords(b)
}

// decodeRecords parses a document. Blank input is an empty document.
func decodeRecords(b []byte) ([]record, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return []record{}, nil
	}
	var raw []*record
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptData, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document is not an array", domain.ErrCorruptData)
	}
	out := make([]record, 0, len(raw))
	for i, r := range raw {
		switch {
		case r == nil:
			return nil, fmt.Errorf("%w: element %d is not an object", domain.ErrCorruptData, i)
		case strings.TrimSpace(r.Name) == "":
			return nil, fmt.Errorf("%w: element %d has no name", domain.ErrCorruptData, i)
		case r.Password == "":
			return nil, fmt.Errorf("%w: element %d has no password", domain.ErrCorruptData, i)
		}
		out = append(out, *r)
	}
	return out, nil
}

// Compile-time assertion that EntryFileStore implements domain.EntryStore.
var _ domain.EntryStore = (*EntryFileStore)(nil)
