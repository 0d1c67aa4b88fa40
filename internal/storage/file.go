package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmalloy/punchlist/internal/domain"
)

// FileStorage stores each key as a file under a data directory.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated blob behind.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the data directory if needed and returns a
// file-backed store.
func NewFileStorage(dir string) (*FileStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, &domain.StorageError{Op: "open", Err: fmt.Errorf("data directory is required")}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &domain.StorageError{Op: "open", Err: err}
	}
	return &FileStorage{dir: dir}, nil
}

// Get reads the blob for key. A missing file maps to domain.ErrNotFound.
func (s *FileStorage) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.StorageError{Op: "read", Key: key, Err: domain.ErrNotFound}
		}
		return nil, &domain.StorageError{Op: "read", Key: key, Err: err}
	}
	return data, nil
}

// Set writes the blob for key atomically, overwriting any prior value.
func (s *FileStorage) Set(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return &domain.StorageError{Op: "write", Key: key, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.StorageError{Op: "write", Key: key, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &domain.StorageError{Op: "write", Key: key, Err: err}
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return &domain.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStorage) Close() error {
	return nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
