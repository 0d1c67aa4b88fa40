// Package cli implements the punchlist subcommands. The same store
// drives both the TUI and these commands, so output and persistence
// behave identically in both.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/tmalloy/punchlist/internal/config"
	"github.com/tmalloy/punchlist/internal/domain"
	"github.com/tmalloy/punchlist/internal/storage"
	"github.com/tmalloy/punchlist/internal/store"
	"github.com/tmalloy/punchlist/internal/ui/tasklist"
)

// Dependencies holds everything a CLI command needs
type Dependencies struct {
	Config  *config.Config
	Store   *store.Store
	Backend storage.Storage
	Logger  *slog.Logger
}

// NewDependencies opens the configured backend and loads the task store
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	logger := slog.Default()

	backend, err := OpenBackend(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	taskStore := store.NewStore(backend, logger)
	taskStore.Load()

	return &Dependencies{
		Config:  cfg,
		Store:   taskStore,
		Backend: backend,
		Logger:  logger,
	}, nil
}

// OpenBackend opens the storage backend named by the config
func OpenBackend(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return storage.OpenSQLite(filepath.Join(cfg.DataDir, "punchlist.db"))
	default:
		return storage.NewFileStorage(cfg.DataDir)
	}
}

// Close releases the storage backend
func (d *Dependencies) Close() error {
	return d.Backend.Close()
}

// AddCommand adds a task from the command line
func AddCommand(deps *Dependencies, text string) error {
	task, err := deps.Store.Add(text)
	if err != nil {
		var storageErr *domain.StorageError
		if errors.As(err, &storageErr) {
			return fmt.Errorf("task added but not saved: %w", err)
		}
		return err
	}

	fmt.Printf("✓ Added %s: %s\n", shortID(task.ID), task.Text)
	return nil
}

// ListCommand prints the task list, optionally narrowed by a filter name
func ListCommand(deps *Dependencies, filterArg string) error {
	filter := domain.FilterAll
	if filterArg != "" {
		parsed, ok := domain.ParseFilter(filterArg)
		if !ok {
			return fmt.Errorf("unknown filter: %s (want all, active, or completed)", filterArg)
		}
		filter = parsed
	}

	tasks := deps.Store.Filtered(filter)
	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATE\tAGE\tTEXT")

	for _, task := range tasks {
		state := " "
		if task.Completed {
			state = "x"
		}
		fmt.Fprintf(w, "%s\t[%s]\t%s\t%s\n",
			shortID(task.ID), state, tasklist.FormatAge(task.CreatedAt, now), task.Text)
	}
	w.Flush()

	stats := deps.Store.Stats()
	fmt.Printf("\n%d total, %d active, %d completed\n", stats.Total, stats.Active, stats.Completed)
	return nil
}

// DoneCommand toggles the completion state of a task by ID prefix
func DoneCommand(deps *Dependencies, idPrefix string) error {
	id, err := deps.Store.ResolveID(idPrefix)
	if err != nil {
		return describeIDError(err, idPrefix)
	}

	task, err := deps.Store.Toggle(id)
	if err != nil {
		var storageErr *domain.StorageError
		if errors.As(err, &storageErr) {
			return fmt.Errorf("task updated but not saved: %w", err)
		}
		return err
	}

	if task.Completed {
		fmt.Printf("✓ Done: %s\n", task.Text)
	} else {
		fmt.Printf("○ Reopened: %s\n", task.Text)
	}
	return nil
}

// RemoveCommand deletes a task by ID prefix
func RemoveCommand(deps *Dependencies, idPrefix string) error {
	id, err := deps.Store.ResolveID(idPrefix)
	if err != nil {
		return describeIDError(err, idPrefix)
	}

	task, err := deps.Store.Delete(id)
	if err != nil {
		var storageErr *domain.StorageError
		if errors.As(err, &storageErr) {
			return fmt.Errorf("task removed but not saved: %w", err)
		}
		return err
	}

	fmt.Printf("✓ Removed: %s\n", task.Text)
	return nil
}

// ClearCommand removes all completed tasks after a y/N prompt on input
func ClearCommand(deps *Dependencies, input io.Reader) error {
	count := deps.Store.CompletedCount()
	if count == 0 {
		fmt.Println("No completed tasks to clear")
		return nil
	}

	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	fmt.Printf("Remove %d completed %s? [y/N] ", count, noun)

	answer, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
		fmt.Println("Aborted")
		return nil
	}

	removed, err := deps.Store.ClearCompleted()
	if err != nil {
		var storageErr *domain.StorageError
		if errors.As(err, &storageErr) {
			return fmt.Errorf("tasks cleared but not saved: %w", err)
		}
		return err
	}

	fmt.Printf("✓ Cleared %d completed %s\n", removed, noun)
	return nil
}

// StatsCommand prints task counts
func StatsCommand(deps *Dependencies) error {
	stats := deps.Store.Stats()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total:\t%d\n", stats.Total)
	fmt.Fprintf(w, "Active:\t%d\n", stats.Active)
	fmt.Fprintf(w, "Completed:\t%d\n", stats.Completed)
	return w.Flush()
}

// describeIDError turns store lookup failures into actionable messages
func describeIDError(err error, idPrefix string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("no task matches %q (use 'punchlist list' to see IDs)", idPrefix)
	case errors.Is(err, domain.ErrAmbiguousID):
		return fmt.Errorf("%q matches more than one task, use more characters", idPrefix)
	default:
		return err
	}
}

// shortID trims a UUID down to the prefix shown in listings
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// PrintUsage prints CLI usage information
func PrintUsage() {
	usage := `Usage: punchlist [command] [arguments]

Commands:
  (no command)         Start the punchlist TUI
  add <text>           Add a task
  list [filter]        List tasks (filter: all, active, completed)
  done <id>            Toggle a task's completion state
  rm <id>              Remove a task
  clear                Remove all completed tasks (asks first)
  stats                Show task counts
  help                 Show this help message

Task IDs may be abbreviated to any unique prefix.

Examples:
  punchlist                   # Start TUI
  punchlist add "Buy milk"    # Add a task
  punchlist list active       # Show unfinished tasks
  punchlist done 3f2a         # Mark a task done
  punchlist rm 3f2a           # Remove a task
  punchlist clear             # Clear completed tasks
`
	fmt.Print(usage)
}
