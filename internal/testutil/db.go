// Package testutil provides test utilities for database setup.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"
)

// Schema is a small character roster whose columns hold registry codes as
// TEXT, the way a client application would persist them.
const Schema = `
CREATE TABLE characters (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	world TEXT,
	data_center TEXT,
	clan TEXT,
	job TEXT,
	guardian TEXT
);
`

// NewTestDB creates an in-memory SQLite database with the roster schema.
// The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// Each pooled connection would get its own :memory: database.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}
