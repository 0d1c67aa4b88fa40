// Package storage provides the persistent key-value blob backends.
//
// The application state is two opaque blobs: the serialized task
// sequence and the theme preference. Backends only need Get/Set over
// string keys; everything else (encoding, validation) lives above.
package storage

// Well-known keys
const (
	KeyTasks = "tasks"
	KeyTheme = "theme"
)

// Storage is a persistent key-value blob store.
//
// Get returns domain.ErrNotFound (wrapped in a *domain.StorageError)
// when the key has never been written. Set overwrites any prior value.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}
