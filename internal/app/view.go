package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmalloy/punchlist/internal/domain"
	"github.com/tmalloy/punchlist/internal/ui/statusbar"
	"github.com/tmalloy/punchlist/internal/ui/tasklist"
	"github.com/tmalloy/punchlist/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	list := m.renderList()
	sb := statusbar.New(m.mode, m.filter, m.store.Stats(), m.width, m.styles)

	view := lipgloss.JoinVertical(lipgloss.Left, header, list, sb.Render())

	if m.overlay != nil {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.renderOverlay())
	}

	if len(m.toasts) > 0 {
		renderer := toast.New(m.styles)
		if toastView := renderer.Render(m.toasts, m.width); toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

// renderHeader shows the entry field and the filter tabs.
func (m Model) renderHeader() string {
	prompt := m.styles.InputPrompt.Render("> ")
	input := m.input.View()

	tabs := make([]string, 0, 3)
	for _, f := range []domain.Filter{domain.FilterAll, domain.FilterActive, domain.FilterCompleted} {
		style := m.styles.FilterTab
		if f == m.filter {
			style = m.styles.FilterTabActive
		}
		tabs = append(tabs, style.Render(f.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Left, prompt, input),
		lipgloss.JoinHorizontal(lipgloss.Left, tabs...),
	)
}

func (m Model) renderList() string {
	// header (2) + tabs gap + status bar
	listHeight := m.height - 4
	if listHeight < 1 {
		listHeight = 1
	}
	list := tasklist.New(m.visibleTasks(), m.cursor, m.width, listHeight, m.styles)
	return list.Render()
}

func (m Model) renderOverlay() string {
	overlayView := m.overlay.View()

	if title := m.overlay.Title(); title != "" {
		titleView := m.styles.OverlayTitle.Render(title)
		overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
	}

	width, height := m.overlay.Size()
	overlayView = m.styles.Overlay.
		Width(width).
		Height(height).
		Render(overlayView)

	return lipgloss.Place(m.width, strings.Count(overlayView, "\n")+1,
		lipgloss.Center, lipgloss.Top, overlayView)
}
