package styles

import "github.com/charmbracelet/lipgloss"

// Theme selects a color palette
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// String returns the persisted preference value for the theme.
func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme maps a persisted preference value to a Theme.
func ParseTheme(s string) (Theme, bool) {
	switch s {
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	default:
		return ThemeDark, false
	}
}

// Toggle flips dark ↔ light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Palette holds the colors a theme provides
type Palette struct {
	Base     lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Surface2 lipgloss.Color
	Overlay0 lipgloss.Color
	Subtext0 lipgloss.Color
	Text     lipgloss.Color

	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Blue     lipgloss.Color
	Mauve    lipgloss.Color
	Lavender lipgloss.Color
}

// Catppuccin Macchiato
var darkPalette = Palette{
	Base:     lipgloss.Color("#24273a"),
	Surface0: lipgloss.Color("#363a4f"),
	Surface1: lipgloss.Color("#494d64"),
	Surface2: lipgloss.Color("#5b6078"),
	Overlay0: lipgloss.Color("#6e738d"),
	Subtext0: lipgloss.Color("#a5adcb"),
	Text:     lipgloss.Color("#cad3f5"),

	Red:      lipgloss.Color("#ed8796"),
	Peach:    lipgloss.Color("#f5a97f"),
	Yellow:   lipgloss.Color("#eed49f"),
	Green:    lipgloss.Color("#a6da95"),
	Blue:     lipgloss.Color("#8aadf4"),
	Mauve:    lipgloss.Color("#c6a0f6"),
	Lavender: lipgloss.Color("#b7bdf8"),
}

// Catppuccin Latte
var lightPalette = Palette{
	Base:     lipgloss.Color("#eff1f5"),
	Surface0: lipgloss.Color("#ccd0da"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Surface2: lipgloss.Color("#acb0be"),
	Overlay0: lipgloss.Color("#9ca0b0"),
	Subtext0: lipgloss.Color("#6c6f85"),
	Text:     lipgloss.Color("#4c4f69"),

	Red:      lipgloss.Color("#d20f39"),
	Peach:    lipgloss.Color("#fe640b"),
	Yellow:   lipgloss.Color("#df8e1d"),
	Green:    lipgloss.Color("#40a02b"),
	Blue:     lipgloss.Color("#1e66f5"),
	Mauve:    lipgloss.Color("#8839ef"),
	Lavender: lipgloss.Color("#7287fd"),
}

// PaletteFor returns the palette for a theme.
func PaletteFor(t Theme) Palette {
	if t == ThemeLight {
		return lightPalette
	}
	return darkPalette
}
