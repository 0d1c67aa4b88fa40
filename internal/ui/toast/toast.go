// Package toast renders transient notification messages.
package toast

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tmalloy/punchlist/internal/types"
	"github.com/tmalloy/punchlist/internal/ui/styles"
)

// Renderer handles rendering of toast notifications
type Renderer struct {
	styles *styles.Styles
}

// New creates a Renderer with the given styles
func New(st *styles.Styles) *Renderer {
	return &Renderer{styles: st}
}

// Render stacks toasts vertically, aligned right. Returns an empty
// string when there is nothing to show.
func (r *Renderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	toastWidth := width / 3
	if toastWidth > 40 {
		toastWidth = 40
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(t.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func (r *Renderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
