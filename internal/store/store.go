// Package store owns the authoritative task collection and its
// persistence round-trip.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tmalloy/punchlist/internal/domain"
	"github.com/tmalloy/punchlist/internal/storage"
)

// Store maintains the ordered task sequence, newest first. Every
// successful mutation is written through to the backend before the
// method returns; a failed write keeps the in-memory mutation and is
// reported as a *domain.StorageError so the session can continue
// in-memory only.
//
// All access happens on one logical thread (the TEA update loop or a
// single CLI command), so there is no locking.
type Store struct {
	tasks   []domain.Task
	backend storage.Storage
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the creation-timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the task id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore creates a store with dependency injection. IDs default to
// random UUIDs, which stay unique even when two tasks are created
// within the same clock tick.
func NewStore(backend storage.Storage, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		tasks:   []domain.Task{},
		backend: backend,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted task sequence. A missing blob means a fresh
// start; a malformed blob is logged and discarded. Neither is fatal:
// the application always starts, worst case with an empty list.
func (s *Store) Load() {
	data, err := s.backend.Get(storage.KeyTasks)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("could not read saved tasks, starting empty", "error", err)
		}
		s.tasks = []domain.Task{}
		return
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logger.Warn("saved tasks are malformed, starting empty", "error", err)
		s.tasks = []domain.Task{}
		return
	}

	s.tasks = tasks
	s.logger.Debug("tasks loaded", "count", len(tasks))
}

// Add normalizes raw text, validates it, and prepends a new task.
// Validation failures (domain.ErrEmptyTask, domain.ErrTaskTooLong)
// leave the sequence untouched.
func (s *Store) Add(raw string) (domain.Task, error) {
	text := domain.NormalizeText(raw)
	if err := domain.ValidateText(text); err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        s.newID(),
		Text:      text,
		Completed: false,
		CreatedAt: s.now(),
	}
	s.tasks = append([]domain.Task{task}, s.tasks...)

	s.logger.Debug("task added", "id", task.ID)
	return task, s.persist()
}

// Toggle flips the completion flag of the task with the given id.
// Unknown ids return domain.ErrNotFound without a persistence write.
func (s *Store) Toggle(id string) (domain.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.logger.Debug("task toggled", "id", id, "completed", s.tasks[i].Completed)
			return s.tasks[i], s.persist()
		}
	}
	return domain.Task{}, domain.ErrNotFound
}

// Delete removes the task with the given id and returns it for
// confirmation messaging. Unknown ids return domain.ErrNotFound
// without a persistence write.
func (s *Store) Delete(id string) (domain.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			removed := s.tasks[i]
			s.tasks = slices.Delete(s.tasks, i, i+1)
			s.logger.Debug("task deleted", "id", id)
			return removed, s.persist()
		}
	}
	return domain.Task{}, domain.ErrNotFound
}

// CompletedCount reports how many tasks are completed. Callers use it
// to decide whether ClearCompleted needs a confirmation step at all.
func (s *Store) CompletedCount() int {
	count := 0
	for _, t := range s.tasks {
		if t.Completed {
			count++
		}
	}
	return count
}

// ClearCompleted removes every completed task and returns the count
// removed. With nothing to clear it returns 0 and does not touch
// storage. Confirmation is the caller's job: the TUI gates this behind
// a yes/no overlay, the CLI behind a prompt.
func (s *Store) ClearCompleted() (int, error) {
	if s.CompletedCount() == 0 {
		return 0, nil
	}

	kept := domain.FilterActive.Apply(s.tasks)
	removed := len(s.tasks) - len(kept)
	s.tasks = kept

	s.logger.Debug("completed tasks cleared", "count", removed)
	return removed, s.persist()
}

// ResolveID resolves a task id or unique id prefix to the full id.
// Returns domain.ErrNotFound for no match, domain.ErrAmbiguousID when
// the prefix matches several tasks.
func (s *Store) ResolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", domain.ErrNotFound
	}
	match := ""
	for _, t := range s.tasks {
		if strings.HasPrefix(t.ID, prefix) {
			if match != "" {
				return "", domain.ErrAmbiguousID
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", domain.ErrNotFound
	}
	return match, nil
}

// Tasks returns a copy of the full sequence, newest first.
func (s *Store) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

// Filtered returns the tasks passing the filter, order preserved.
func (s *Store) Filtered(f domain.Filter) []domain.Task {
	return f.Apply(s.tasks)
}

// Stats summarizes the current sequence.
func (s *Store) Stats() domain.Stats {
	return domain.ComputeStats(s.tasks)
}

// persist writes the full sequence through to the backend. Errors are
// logged here and returned so callers can surface them; the in-memory
// state is already updated and stays authoritative for the session.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		wrapped := &domain.StorageError{Op: "write", Key: storage.KeyTasks, Err: err}
		s.logger.Error("could not serialize tasks", "error", err)
		return wrapped
	}
	if err := s.backend.Set(storage.KeyTasks, data); err != nil {
		s.logger.Error("could not save tasks, continuing in memory", "error", err)
		return err
	}
	return nil
}
