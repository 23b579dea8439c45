package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTestDB_CreatesSchema(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = 'characters'`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "expected characters table")
}

func TestNewTestDB_CharacterColumns(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(`INSERT INTO characters (name, world, data_center, clan, job, guardian) VALUES (?, ?, ?, ?, ?, ?)`,
		"Y'shtola Rhul", "Balmung", "Crystal", "KeeperOfTheMoon", "Conjurer", "Menphina")
	require.NoError(t, err)

	var name, world, dc, clan, job, guardian string
	err = db.QueryRow(`SELECT name, world, data_center, clan, job, guardian FROM characters WHERE id = 1`).
		Scan(&name, &world, &dc, &clan, &job, &guardian)
	require.NoError(t, err)
	require.Equal(t, "Y'shtola Rhul", name)
	require.Equal(t, "Balmung", world)
	require.Equal(t, "KeeperOfTheMoon", clan)
}

func TestNewTestDB_Isolated(t *testing.T) {
	db1 := NewTestDB(t)
	db2 := NewTestDB(t)

	_, err := db1.Exec(`INSERT INTO characters (name) VALUES ('a')`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db2.QueryRow(`SELECT COUNT(*) FROM characters`).Scan(&count))
	require.Zero(t, count)
}
