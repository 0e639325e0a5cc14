package domain

// Hasher is a salted one-way password hash.
type Hasher interface {
	Hash(password string) (string, error)
	// Verify returns nil when password produces hash.
	Verify(hash, password string) error
}

// EntryStore persists entries as one document and looks them up by field.
type EntryStore interface {
	Load() ([]PasswordEntry, error)
	Append(entry PasswordEntry) error
	FindFirst(field Field, value string) (PasswordEntry, bool, error)
	// Verify checks password against the hash stored on entry.
	Verify(entry PasswordEntry, password string) error
}
