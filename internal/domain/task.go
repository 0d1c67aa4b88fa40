// Package domain contains core business types for punchlist.
package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTextLength is the maximum task text length in runes, measured
// after normalization.
const MaxTextLength = 200

// Task represents a single to-do item
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeText collapses internal whitespace runs to single spaces and
// trims leading/trailing whitespace. Validation runs on the result.
func NormalizeText(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// ValidateText checks normalized task text against the store's rules.
func ValidateText(text string) error {
	if text == "" {
		return ErrEmptyTask
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return ErrTaskTooLong
	}
	return nil
}

// Age returns how long ago the task was created, relative to now.
func (t Task) Age(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}
