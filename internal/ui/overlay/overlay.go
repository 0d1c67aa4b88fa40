// Package overlay contains modal dialogs rendered over the task list.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseMsg signals that the overlay should be closed without action
type CloseMsg struct{}

// ConfirmResultMsg carries the outcome of a confirmation dialog
type ConfirmResultMsg struct {
	Confirmed bool
}
