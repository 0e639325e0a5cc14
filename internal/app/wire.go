package app

import (
	"log/slog"

	"pwvault/internal/crypto"
	"pwvault/internal/domain"
	entrysvc "pwvault/internal/services/entry"
	"pwvault/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Config  Config
	Hasher  domain.Hasher
	Store   *store.EntryFileStore
	Entries *entrysvc.Service
	Log     *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, logger *slog.Logger) (*Wire, error) {
	hasher, err := crypto.NewHasher(cfg.Hash.Algorithm, cfg.Hash.Cost)
	if err != nil {
		return nil, err
	}
	entryStore := store.NewEntryFileStore(cfg.File, hasher, logger)

	return &Wire{
		Config:  cfg,
		Hasher:  hasher,
		Store:   entryStore,
		Entries: entrysvc.New(entryStore),
		Log:     logger,
	}, nil
}
