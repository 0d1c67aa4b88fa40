package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrEmptyTask is returned when task text normalizes to nothing.
	ErrEmptyTask = errors.New("task text is empty")
	// ErrTaskTooLong is returned when normalized text exceeds MaxTextLength.
	ErrTaskTooLong = fmt.Errorf("task text exceeds %d characters", MaxTextLength)
	// ErrNotFound is returned when no task matches the given id.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguousID is returned when an id prefix matches several tasks.
	ErrAmbiguousID = errors.New("ambiguous task id")
)

// StorageError represents a failure in the persistence layer
type StorageError struct {
	Op  string // Operation: "open", "read", "write", "close"
	Key string // Optional: storage key involved
	Err error  // Underlying error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
