package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmalloy/punchlist/internal/ui/styles"
)

// Confirm is a yes/no dialog. It gates destructive actions: the caller
// only proceeds on ConfirmResultMsg{Confirmed: true}.
type Confirm struct {
	title    string
	message  string
	styles   *styles.Styles
	selected bool // true = Yes, false = No
}

// NewConfirm creates a confirmation dialog. The default selection is
// No, so a stray enter never destroys anything.
func NewConfirm(title, message string, st *styles.Styles) *Confirm {
	return &Confirm{
		title:   title,
		message: message,
		styles:  st,
	}
}

// Init initializes the dialog
func (c *Confirm) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "y", "Y":
		return c, func() tea.Msg { return ConfirmResultMsg{Confirmed: true} }

	case "n", "N", "esc":
		return c, func() tea.Msg { return ConfirmResultMsg{Confirmed: false} }

	case "enter":
		confirmed := c.selected
		return c, func() tea.Msg { return ConfirmResultMsg{Confirmed: confirmed} }

	case "left", "h":
		c.selected = false

	case "right", "l", "tab":
		c.selected = true
	}

	return c, nil
}

// View renders the dialog
func (c *Confirm) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.MenuItem
	noStyle := c.styles.MenuItem
	if c.selected {
		yesStyle = c.styles.MenuItemActive
	} else {
		noStyle = c.styles.MenuItemActive
	}

	b.WriteString(yesStyle.Render("[Y] Yes"))
	b.WriteString("    ")
	b.WriteString(noStyle.Render("[N] No"))
	b.WriteString("\n")
	b.WriteString(c.styles.OverlayFooter.Render("← → / Tab: Switch • Enter: Confirm • Esc: Cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *Confirm) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *Confirm) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 60, messageLines + 6
}
