package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/buckyapp/bucky/internal/config"
	"github.com/tidwall/buntdb"
)

// Open opens the key-value store holding the application state.
// The path ":memory:" opens an ephemeral in-memory store, used by tests.
func Open(cfg config.Database) (*buntdb.DB, error) {
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := buntdb.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every mutation replaces a whole collection, so sync each write.
	if err := db.SetConfig(buntdb.Config{SyncPolicy: buntdb.Always}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	return db, nil
}
