// Package scheddb is the SQLite-backed timetable store: stops, stop groups,
// buses, route parts, schedule entries and holiday overrides.
package scheddb

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // CGo-based SQLite driver
)

// Client wraps the database handle and its query layer.
type Client struct {
	DB      *sql.DB
	Queries *Queries
}

// NewClient opens (and bootstraps, if needed) the timetable database at the
// given path. Use ":memory:" for an ephemeral database in tests.
func NewClient(path string) (*Client, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening schedule database %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging schedule database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schedule schema: %w", err)
	}

	return &Client{DB: db, Queries: New(db)}, nil
}

// Close releases the underlying database handle.
func (c *Client) Close() error {
	return c.DB.Close()
}
