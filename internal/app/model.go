// Package app contains the main application model and TEA implementation.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmalloy/punchlist/internal/domain"
	"github.com/tmalloy/punchlist/internal/store"
	"github.com/tmalloy/punchlist/internal/theme"
	"github.com/tmalloy/punchlist/internal/types"
	"github.com/tmalloy/punchlist/internal/ui/overlay"
	"github.com/tmalloy/punchlist/internal/ui/styles"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeInput  = types.ModeInput
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

const toastTTL = 3 * time.Second

// Model is the main application state
type Model struct {
	// Core data
	store  *store.Store
	filter domain.Filter
	cursor int

	// Input
	mode  Mode
	input textinput.Model

	// UI state
	overlay overlay.Overlay
	toasts  []Toast

	// Theme
	themes *theme.Manager
	styles *styles.Styles

	// Terminal size
	width  int
	height int

	// Logger
	logger *slog.Logger
}

// New creates a new application model. The store must already be
// loaded; the theme manager decides the starting palette.
func New(taskStore *store.Store, themes *theme.Manager, logger *slog.Logger) Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 0 // the store enforces the length rule and reports it
	input.Width = 48

	return Model{
		store:  taskStore,
		filter: domain.FilterAll,
		input:  input,
		themes: themes,
		styles: styles.New(themes.Current()),
		toasts: []Toast{},
		logger: logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickEvery(time.Second))
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.expireToasts(time.Time(msg))
		return m, tickEvery(time.Second)

	case tea.KeyMsg:
		if m.overlay != nil {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseMsg:
		m.overlay = nil
		return m, nil

	case overlay.ConfirmResultMsg:
		m.overlay = nil
		if !msg.Confirmed {
			return m, nil
		}
		return m.clearCompleted()
	}

	return m, nil
}

// handleKey processes keyboard input based on current mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModeInput {
		return m.handleInputMode(msg)
	}
	return m.handleNormalMode(msg)
}

// handleNormalMode processes keyboard input in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Focus the text-entry control
	case "n", "/":
		m.mode = ModeInput
		m.input.Focus()
		return m, textinput.Blink

	// Vertical navigation
	case "j", "down":
		m.cursor = clamp(m.cursor+1, m.visibleCount())
		return m, nil

	case "k", "up":
		m.cursor = clamp(m.cursor-1, m.visibleCount())
		return m, nil

	case "g":
		m.cursor = 0
		return m, nil

	case "G":
		m.cursor = clamp(m.visibleCount()-1, m.visibleCount())
		return m, nil

	// Mutations
	case " ", "x", "enter":
		return m.toggleCurrent()

	case "d":
		return m.deleteCurrent()

	case "C":
		return m.requestClearCompleted()

	// Filters
	case "1":
		return m.setFilter(domain.FilterAll)

	case "2":
		return m.setFilter(domain.FilterActive)

	case "3":
		return m.setFilter(domain.FilterCompleted)

	case "f":
		return m.setFilter(m.filter.Next())

	// Theme
	case "t":
		next := m.themes.Toggle()
		m.styles = styles.New(next)
		m.pushToast(ToastInfo, fmt.Sprintf("Theme: %s", next))
		return m, nil

	case "?":
		m.overlay = overlay.NewHelp(m.styles)
		return m, nil
	}

	return m, nil
}

// handleInputMode processes keyboard input while the entry field has focus
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.input.Blur()
		m.input.SetValue("")
		return m, nil

	case "enter":
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleOverlayKey routes keyboard messages to the active overlay
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	updated, cmd := m.overlay.Update(msg)
	if o, ok := updated.(overlay.Overlay); ok {
		m.overlay = o
	}
	return m, cmd
}

// submitInput adds a task from the entry field. Empty input clears the
// field, over-long input keeps it so the user can shorten the text.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	task, err := m.store.Add(m.input.Value())

	switch {
	case errors.Is(err, domain.ErrEmptyTask):
		m.input.SetValue("")
		m.pushToast(ToastWarning, "Task text is empty")
		return m, nil

	case errors.Is(err, domain.ErrTaskTooLong):
		m.pushToast(ToastError, fmt.Sprintf("Task is longer than %d characters", domain.MaxTextLength))
		return m, nil

	case err != nil:
		// The task was added; only the write failed.
		m.pushToast(ToastWarning, "Added, but saving failed; changes stay in memory")

	default:
		m.pushToast(ToastSuccess, fmt.Sprintf("Added: %s", task.Text))
	}

	m.input.SetValue("")
	m.cursor = 0
	return m, nil
}

func (m Model) toggleCurrent() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}

	updated, err := m.store.Toggle(task.ID)
	if err != nil && !isStorageError(err) {
		return m, nil
	}
	if isStorageError(err) {
		m.pushToast(ToastWarning, "Saving failed; changes stay in memory")
	} else if updated.Completed {
		m.pushToast(ToastSuccess, fmt.Sprintf("Done: %s", updated.Text))
	}
	m.cursor = clamp(m.cursor, m.visibleCount())
	return m, nil
}

func (m Model) deleteCurrent() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}

	removed, err := m.store.Delete(task.ID)
	if err != nil && !isStorageError(err) {
		return m, nil
	}
	if isStorageError(err) {
		m.pushToast(ToastWarning, "Saving failed; changes stay in memory")
	} else {
		m.pushToast(ToastInfo, fmt.Sprintf("Deleted: %s", removed.Text))
	}
	m.cursor = clamp(m.cursor, m.visibleCount())
	return m, nil
}

// requestClearCompleted opens the confirmation dialog, or reports that
// there is nothing to clear. The store is only touched after a Yes.
func (m Model) requestClearCompleted() (tea.Model, tea.Cmd) {
	count := m.store.CompletedCount()
	if count == 0 {
		m.pushToast(ToastInfo, "No completed tasks to clear")
		return m, nil
	}

	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	m.overlay = overlay.NewConfirm(
		"Clear completed",
		fmt.Sprintf("Remove %d completed %s?", count, noun),
		m.styles,
	)
	return m, nil
}

func (m Model) clearCompleted() (tea.Model, tea.Cmd) {
	removed, err := m.store.ClearCompleted()
	if err != nil {
		m.pushToast(ToastWarning, "Cleared, but saving failed; changes stay in memory")
	} else {
		m.pushToast(ToastSuccess, fmt.Sprintf("Cleared %d completed", removed))
	}
	m.cursor = clamp(m.cursor, m.visibleCount())
	return m, nil
}

func (m Model) setFilter(f domain.Filter) (tea.Model, tea.Cmd) {
	m.filter = f
	m.cursor = clamp(m.cursor, m.visibleCount())
	return m, nil
}

// visibleTasks is the filtered projection the cursor moves over.
func (m Model) visibleTasks() []domain.Task {
	return m.store.Filtered(m.filter)
}

func (m Model) visibleCount() int {
	return len(m.visibleTasks())
}

func (m Model) currentTask() (domain.Task, bool) {
	tasks := m.visibleTasks()
	if len(tasks) == 0 || m.cursor < 0 || m.cursor >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *Model) pushToast(level types.ToastLevel, message string) {
	m.toasts = append(m.toasts, types.NewToast(level, message, toastTTL))
}

func (m *Model) expireToasts(now time.Time) {
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

func clamp(i, length int) int {
	if length == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}

func isStorageError(err error) bool {
	var storageErr *domain.StorageError
	return errors.As(err, &storageErr)
}
