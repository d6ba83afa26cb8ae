package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_SortedSQLOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_add_index.sql", "001_create_time_ranges.sql", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	files, err := migrationFiles(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_time_ranges.sql", "002_add_index.sql"}, files)
}

func TestMigrationFiles_MissingDir(t *testing.T) {
	files, err := migrationFiles(filepath.Join(t.TempDir(), "does-not-exist"))

	require.Error(t, err)
	assert.Nil(t, files)
}
