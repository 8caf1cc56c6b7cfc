package database

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "privacy.db")

	db, err := InitializeDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = db.Exec("INSERT INTO kv_store (namespace, key, value) VALUES ('ns', 'k', 'v')")
	assert.NoError(t, err)
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "privacy.db")

	db, err := InitializeDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestLoadMigrationsSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/010_later.sql": {Data: []byte("SELECT 2;")},
		"migrations/002_first.sql": {Data: []byte("SELECT 1;")},
		"migrations/readme.txt":    {Data: []byte("ignored")},
	}

	migrations, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "002_first", migrations[0].Version)
	assert.Equal(t, "010_later.sql", migrations[1].Filename)
}

func TestLoadMigrationsEmpty(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{})
	assert.Error(t, err)
}
