package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/remind/internal/ports/secondary"
)

var (
	conn        *sql.DB
	initialized bool
)

// Get returns the database connection at path, initializing the schema
// on first open. A filesystem permission failure surfaces as
// secondary.ErrPermissionDenied so commands abort before any engine
// logic runs.
func Get(path string) (*sql.DB, error) {
	if conn != nil {
		return conn, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", secondary.ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", secondary.ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if !initialized {
		initialized = true
		if err := InitSchema(db); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	conn = db
	return conn, nil
}

// DefaultPath returns the database location under the user's home.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".remind", "remind.db"), nil
}

// Close closes the database connection.
func Close() error {
	if conn != nil {
		return conn.Close()
	}
	return nil
}
