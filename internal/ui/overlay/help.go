package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmalloy/punchlist/internal/ui/styles"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// Help displays the keybinding reference
type Help struct {
	styles *styles.Styles
}

// NewHelp creates a new help overlay
func NewHelp(st *styles.Styles) *Help {
	return &Help{styles: st}
}

func (h *Help) bindings() []KeyBinding {
	return []KeyBinding{
		{Key: "n, /", Description: "new task (focus input)"},
		{Key: "j/k, ↓/↑", Description: "move cursor"},
		{Key: "space, x", Description: "toggle completed"},
		{Key: "d", Description: "delete task"},
		{Key: "1/2/3", Description: "filter: all / active / completed"},
		{Key: "f", Description: "cycle filter"},
		{Key: "C", Description: "clear completed (asks first)"},
		{Key: "t", Description: "toggle dark/light theme"},
		{Key: "?", Description: "this help"},
		{Key: "q", Description: "quit"},
	}
}

// Init initializes the overlay
func (h *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "?", "enter":
			return h, func() tea.Msg { return CloseMsg{} }
		}
	}
	return h, nil
}

// View renders the keybindings
func (h *Help) View() string {
	var b strings.Builder
	for _, binding := range h.bindings() {
		key := h.styles.MenuKey.Width(10).Render(binding.Key)
		b.WriteString("  " + key + "  " + h.styles.MenuItem.Render(binding.Description))
		b.WriteString("\n")
	}
	b.WriteString(h.styles.OverlayFooter.Render("Esc: close"))
	return b.String()
}

// Title returns the overlay title
func (h *Help) Title() string {
	return "Keybindings"
}

// Size returns the overlay dimensions
func (h *Help) Size() (width, height int) {
	return 52, len(h.bindings()) + 4
}
