package stats

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the session log behind /status and /history. It lives entirely in
// memory: nothing survives a restart.
type DB struct {
	*sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS computations (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	at      TEXT NOT NULL,
	command TEXT NOT NULL,
	input   TEXT NOT NULL,
	summary TEXT NOT NULL
);
`

// Open creates the in-memory store and applies the schema. The pool is
// pinned to one connection: each sqlite :memory: connection is its own
// database, so a second connection would see empty tables.
func Open() (*DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{db}, nil
}
