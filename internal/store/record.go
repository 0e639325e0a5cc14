package store

import "pwvault/internal/domain"

// record is the on-disk JSON shape of one entry. Empty optional fields are
// omitted; name is always written.
type record struct {
	Name        string   `json:"name"`
	Website     string   `json:"website,omitempty"`
	Username    string   `json:"username,omitempty"`
	Email       string   `json:"email,omitempty"`
	Password    string   `json:"password,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Notes       []string `json:"notes,omitempty"`
}

func toRecord(e domain.PasswordEntry) record {
	return record{
		Name:        e.Name(),
		Website:     e.Website(),
		Username:    e.Username(),
		Email:       e.Email(),
		Password:    e.Password(),
		Description: e.Description(),
		Tags:        e.Tags(),
		Notes:       e.Notes(),
	}
}

// entry rehydrates r through the same builder callers use.
func (r record) entry() domain.PasswordEntry {
	return domain.NewEntryBuilder(r.Name, r.Password).
		Website(r.Website).
		Username(r.Username).
		Email(r.Email).
		Description(r.Description).
		Tags(r.Tags...).
		Notes(r.Notes...).
		Build()
}
