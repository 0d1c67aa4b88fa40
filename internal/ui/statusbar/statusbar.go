// Package statusbar renders the bottom status line.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmalloy/punchlist/internal/domain"
	"github.com/tmalloy/punchlist/internal/types"
	"github.com/tmalloy/punchlist/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	filter domain.Filter
	stats  domain.Stats
	width  int
	styles *styles.Styles
}

// New creates a StatusBar for the current mode, filter, and counts
func New(mode types.Mode, filter domain.Filter, stats domain.Stats, width int, st *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		filter: filter,
		stats:  stats,
		width:  width,
		styles: st,
	}
}

// Summary formats the task counts, e.g. "3 tasks · 1 done".
func Summary(stats domain.Stats) string {
	noun := "tasks"
	if stats.Total == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s · %d done", stats.Total, noun, stats.Completed)
}

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeInput:
		return "Enter: add  Esc: cancel"
	default:
		return "n: new  x: toggle  d: delete  f: filter  ?: help  q: quit"
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")
	separator := sb.styles.StatusHint.Render(" │ ")

	summary := sb.styles.StatusHint.Render(
		fmt.Sprintf("%s · %s", Summary(sb.stats), sb.filter))
	hints := sb.styles.StatusHint.Render(GetHints(sb.mode))

	content := lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, summary, separator, hints)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
