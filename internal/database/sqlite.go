package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// Config holds database configuration
type Config struct {
	Path     string
	ReadOnly bool
}

// dsn builds a modernc sqlite DSN. Read-only connections use mode=ro so a
// missing file is reported instead of silently created.
func (c Config) dsn() string {
	if !c.ReadOnly {
		return c.Path
	}
	return "file:" + c.Path + "?mode=ro"
}

// Open opens and verifies a SQLite connection
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The dataset is read once at startup; a small pool is enough
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database opened: %s (read-only=%v)", cfg.Path, cfg.ReadOnly)
	return db, nil
}
