package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SchemaInitialization(t *testing.T) {
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var tableName string
	err = db.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='state'").Scan(&tableName)
	require.NoError(t, err, "state table does not exist")
	assert.Equal(t, "state", tableName)
}

func TestGet_Missing(t *testing.T) {
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Get("tasks")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSetGet_Overwrite(t *testing.T) {
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Set("darkMode", "false"))
	require.NoError(t, db.Set("darkMode", "true"))

	v, err := db.Get("darkMode")
	require.NoError(t, err)
	assert.Equal(t, "true", v)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(path)
	require.NoError(t, err)
	require.NoError(t, db.Set("tasks", `[{"id":"a"}]`))
	require.NoError(t, db.Close())

	db, err = NewDatabase(path)
	require.NoError(t, err)
	defer db.Close()

	v, err := db.Get("tasks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, v)
}
