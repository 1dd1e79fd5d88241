package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"skyward/flightdeck/internal/constants"
)

// OpenInMemory opens a fresh in-memory SQLite database and creates the
// flights table. The pool is pinned to a single connection: an anonymous
// :memory: database lives and dies with its connection, so a second pooled
// connection would see an empty schema.
func OpenInMemory() (*sqlx.DB, error) {
	conn, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open in-memory sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if _, err := conn.Exec(constants.CreateFlightsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create flights table: %w", err)
	}

	return conn, nil
}
