// Package styles provides lipgloss styles derived from the active theme.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Theme the styles were built from
	Theme Theme

	// Task list
	List         lipgloss.Style
	Item         lipgloss.Style
	ItemActive   lipgloss.Style
	ItemDone     lipgloss.Style
	Checkbox     lipgloss.Style
	CheckboxDone lipgloss.Style
	ItemAge      lipgloss.Style
	Cursor       lipgloss.Style
	EmptyHint    lipgloss.Style

	// Filter tabs
	FilterTab       lipgloss.Style
	FilterTabActive lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Overlays
	Overlay        lipgloss.Style
	OverlayTitle   lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuKey        lipgloss.Style
	OverlayFooter  lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a Styles instance for the given theme
func New(theme Theme) *Styles {
	p := PaletteFor(theme)

	return &Styles{
		Theme: theme,

		List: lipgloss.NewStyle().
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			Foreground(p.Text),

		ItemActive: lipgloss.NewStyle().
			Foreground(p.Lavender).
			Bold(true),

		ItemDone: lipgloss.NewStyle().
			Foreground(p.Overlay0).
			Strikethrough(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(p.Blue),

		CheckboxDone: lipgloss.NewStyle().
			Foreground(p.Green),

		ItemAge: lipgloss.NewStyle().
			Foreground(p.Surface2),

		Cursor: lipgloss.NewStyle().
			Foreground(p.Mauve).
			Bold(true),

		EmptyHint: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			Italic(true).
			Padding(1, 2),

		FilterTab: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			Padding(0, 1),

		FilterTabActive: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		InputPrompt: lipgloss.NewStyle().
			Foreground(p.Mauve).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			Background(p.Surface0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Blue).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(p.Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface2).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(p.Yellow).
			Bold(true),

		OverlayFooter: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			MarginTop(1),

		ToastInfo: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Peach).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Red).
			Padding(0, 1),
	}
}
