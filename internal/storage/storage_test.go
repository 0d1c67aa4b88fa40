package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmalloy/punchlist/internal/domain"
)

// Both backends must satisfy the same contract, so they share one suite.
func backends(t *testing.T) map[string]Storage {
	t.Helper()

	fileStore, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "punchlist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Storage{
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestStorage_GetMissingKey(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(KeyTasks)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrNotFound)

			var storageErr *domain.StorageError
			require.ErrorAs(t, err, &storageErr)
			assert.Equal(t, "read", storageErr.Op)
			assert.Equal(t, KeyTasks, storageErr.Key)
		})
	}
}

func TestStorage_SetThenGet(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(KeyTasks, []byte(`[{"id":"t-1"}]`)))

			got, err := store.Get(KeyTasks)
			require.NoError(t, err)
			assert.Equal(t, []byte(`[{"id":"t-1"}]`), got)
		})
	}
}

func TestStorage_SetOverwrites(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(KeyTheme, []byte(`"dark"`)))
			require.NoError(t, store.Set(KeyTheme, []byte(`"light"`)))

			got, err := store.Get(KeyTheme)
			require.NoError(t, err)
			assert.Equal(t, []byte(`"light"`), got)
		})
	}
}

func TestStorage_KeysAreIndependent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(KeyTasks, []byte(`[]`)))

			_, err := store.Get(KeyTheme)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestNewFileStorage_EmptyDir(t *testing.T) {
	_, err := NewFileStorage("  ")

	require.Error(t, err)
	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "open", storageErr.Op)
}

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStorage(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyTasks, []byte(`[1,2,3]`)))

	reopened, err := NewFileStorage(dir)
	require.NoError(t, err)

	got, err := reopened.Get(KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "punchlist.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyTasks, []byte(`[1,2,3]`)))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")

	require.Error(t, err)
	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "open", storageErr.Op)
}
