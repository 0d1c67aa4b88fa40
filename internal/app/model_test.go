package app

import (
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmalloy/punchlist/internal/domain"
	"github.com/tmalloy/punchlist/internal/store"
	"github.com/tmalloy/punchlist/internal/theme"
	"github.com/tmalloy/punchlist/internal/ui/overlay"
	"github.com/tmalloy/punchlist/internal/ui/styles"
)

type memStorage struct {
	values map[string][]byte
}

func (m *memStorage) Get(key string) ([]byte, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, &domain.StorageError{Op: "read", Key: key, Err: domain.ErrNotFound}
	}
	return value, nil
}

func (m *memStorage) Set(key string, value []byte) error {
	m.values[key] = value
	return nil
}

func (m *memStorage) Close() error { return nil }

// Helper to create a test model backed by an in-memory store
func newTestModel(texts ...string) Model {
	backend := &memStorage{values: map[string][]byte{}}
	logger := slog.Default()

	taskStore := store.NewStore(backend, logger)
	// Add in reverse so texts[0] ends up first (newest-first order).
	for i := len(texts) - 1; i >= 0; i-- {
		if _, err := taskStore.Add(texts[i]); err != nil {
			panic(err)
		}
	}

	themes := theme.NewManager(backend, func() bool { return true }, logger)
	themes.Load("")

	m := New(taskStore, themes, logger)
	m.width = 80
	m.height = 24
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	result, _ := m.Update(msg)
	next, ok := result.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", result)
	}
	return next
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFocusInputShortcut(t *testing.T) {
	for _, key := range []string{"n", "/"} {
		m := newTestModel()

		m = update(t, m, runes(key))

		if m.mode != ModeInput {
			t.Errorf("key %q: expected input mode, got %v", key, m.mode)
		}
	}
}

func TestSubmitInput_AddsTask(t *testing.T) {
	m := newTestModel()
	m = update(t, m, runes("n"))
	m.input.SetValue("  Buy   milk  ")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	tasks := m.store.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Text != "Buy milk" {
		t.Errorf("expected normalized text, got %q", tasks[0].Text)
	}
	if m.input.Value() != "" {
		t.Errorf("expected input cleared after add, got %q", m.input.Value())
	}
	if m.mode != ModeInput {
		t.Error("expected to stay in input mode for consecutive adds")
	}
}

func TestSubmitInput_EmptyClearsField(t *testing.T) {
	m := newTestModel()
	m = update(t, m, runes("n"))
	m.input.SetValue("   ")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.store.Tasks()) != 0 {
		t.Error("empty add must not mutate the store")
	}
	if m.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", m.input.Value())
	}
}

func TestSubmitInput_TooLongPreservesField(t *testing.T) {
	m := newTestModel()
	m = update(t, m, runes("n"))
	long := strings.Repeat("a", domain.MaxTextLength+1)
	m.input.SetValue(long)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.store.Tasks()) != 0 {
		t.Error("over-long add must not mutate the store")
	}
	if m.input.Value() != long {
		t.Error("expected input preserved so the user can shorten it")
	}
}

func TestEscLeavesInputMode(t *testing.T) {
	m := newTestModel()
	m = update(t, m, runes("n"))
	m.input.SetValue("draft")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.mode != ModeNormal {
		t.Errorf("expected normal mode, got %v", m.mode)
	}
	if m.input.Value() != "" {
		t.Error("expected draft discarded on escape")
	}
}

func TestToggleCurrent(t *testing.T) {
	m := newTestModel("walk the dog")

	m = update(t, m, runes("x"))

	if !m.store.Tasks()[0].Completed {
		t.Error("expected task toggled to completed")
	}

	m = update(t, m, runes("x"))
	if m.store.Tasks()[0].Completed {
		t.Error("expected second toggle to restore the task")
	}
}

func TestDeleteCurrent(t *testing.T) {
	m := newTestModel("first", "second")

	m = update(t, m, runes("j"))
	m = update(t, m, runes("d"))

	tasks := m.store.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task after delete, got %d", len(tasks))
	}
	if tasks[0].Text != "first" {
		t.Errorf("expected cursor row deleted, remaining %q", tasks[0].Text)
	}
}

func TestDeleteOnEmptyListIsNoop(t *testing.T) {
	m := newTestModel()

	m = update(t, m, runes("d"))

	if len(m.store.Tasks()) != 0 {
		t.Error("delete on empty list must not create tasks")
	}
}

func TestFilterKeys(t *testing.T) {
	m := newTestModel("one", "two")
	m = update(t, m, runes("x")) // complete "one"

	m = update(t, m, runes("2"))
	if m.filter != domain.FilterActive {
		t.Errorf("expected active filter, got %v", m.filter)
	}
	if count := m.visibleCount(); count != 1 {
		t.Errorf("expected 1 visible task, got %d", count)
	}

	m = update(t, m, runes("3"))
	if m.filter != domain.FilterCompleted {
		t.Errorf("expected completed filter, got %v", m.filter)
	}

	m = update(t, m, runes("1"))
	if m.filter != domain.FilterAll {
		t.Errorf("expected all filter, got %v", m.filter)
	}
}

func TestFilterCycle(t *testing.T) {
	m := newTestModel()

	m = update(t, m, runes("f"))
	if m.filter != domain.FilterActive {
		t.Errorf("expected active after one cycle, got %v", m.filter)
	}

	m = update(t, m, runes("f"))
	m = update(t, m, runes("f"))
	if m.filter != domain.FilterAll {
		t.Errorf("expected cycle back to all, got %v", m.filter)
	}
}

func TestClearCompleted_NothingToClear(t *testing.T) {
	m := newTestModel("still open")

	m = update(t, m, runes("C"))

	if m.overlay != nil {
		t.Error("no confirmation dialog expected when nothing is completed")
	}
	if len(m.toasts) == 0 {
		t.Error("expected an informational toast")
	}
}

func TestClearCompleted_ConfirmFlow(t *testing.T) {
	m := newTestModel("one", "two")
	m = update(t, m, runes("x")) // complete "one"

	m = update(t, m, runes("C"))
	if _, ok := m.overlay.(*overlay.Confirm); !ok {
		t.Fatalf("expected confirm overlay, got %T", m.overlay)
	}
	if len(m.store.Tasks()) != 2 {
		t.Fatal("store must not change before confirmation")
	}

	m = update(t, m, overlay.ConfirmResultMsg{Confirmed: true})

	if m.overlay != nil {
		t.Error("expected overlay closed")
	}
	for _, task := range m.store.Tasks() {
		if task.Completed {
			t.Error("expected no completed tasks after confirmed clear")
		}
	}
}

func TestClearCompleted_Declined(t *testing.T) {
	m := newTestModel("one")
	m = update(t, m, runes("x"))
	m = update(t, m, runes("C"))

	m = update(t, m, overlay.ConfirmResultMsg{Confirmed: false})

	if len(m.store.Tasks()) != 1 {
		t.Error("declined confirmation must not clear tasks")
	}
}

func TestThemeToggleKey(t *testing.T) {
	m := newTestModel()
	if m.styles.Theme != styles.ThemeDark {
		t.Fatalf("expected dark start (ambient dark), got %v", m.styles.Theme)
	}

	m = update(t, m, runes("t"))

	if m.styles.Theme != styles.ThemeLight {
		t.Errorf("expected light theme after toggle, got %v", m.styles.Theme)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel()

	m = update(t, m, runes("?"))
	if _, ok := m.overlay.(*overlay.Help); !ok {
		t.Fatalf("expected help overlay, got %T", m.overlay)
	}

	m = update(t, m, overlay.CloseMsg{})
	if m.overlay != nil {
		t.Error("expected overlay closed")
	}
}

func TestCursorClamping(t *testing.T) {
	m := newTestModel("only")

	m = update(t, m, runes("j"))
	m = update(t, m, runes("j"))
	if m.cursor != 0 {
		t.Errorf("cursor must clamp to the single row, got %d", m.cursor)
	}

	m = update(t, m, runes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor must not go negative, got %d", m.cursor)
	}
}
