// Package types contains shared types used across the application.
package types

// Mode represents the current input mode
type Mode int

const (
	// ModeNormal is list navigation: move, toggle, delete, filter.
	ModeNormal Mode = iota
	// ModeInput means the text-entry control has focus.
	ModeInput
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "INPUT"
	default:
		return "NORMAL"
	}
}
