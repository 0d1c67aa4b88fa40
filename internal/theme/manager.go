// Package theme resolves and persists the color theme preference.
package theme

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/tmalloy/punchlist/internal/domain"
	"github.com/tmalloy/punchlist/internal/storage"
	"github.com/tmalloy/punchlist/internal/ui/styles"
)

// Manager decides the active theme. Priority: explicit config
// override, then the persisted preference, then the ambient terminal
// background. The ambient probe is injected so tests run without a
// terminal (production passes lipgloss.HasDarkBackground).
type Manager struct {
	backend     storage.Storage
	ambientDark func() bool
	logger      *slog.Logger
	current     styles.Theme
}

// NewManager creates a theme manager with dependency injection.
func NewManager(backend storage.Storage, ambientDark func() bool, logger *slog.Logger) *Manager {
	return &Manager{
		backend:     backend,
		ambientDark: ambientDark,
		logger:      logger,
		current:     styles.ThemeDark,
	}
}

// Load resolves the starting theme. override comes from config and
// wins when set; an unreadable or absent preference falls back to the
// ambient background without error.
func (m *Manager) Load(override string) styles.Theme {
	if t, ok := styles.ParseTheme(override); ok {
		m.current = t
		return m.current
	}

	data, err := m.backend.Get(storage.KeyTheme)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			m.logger.Warn("could not read theme preference", "error", err)
		}
		m.current = m.ambient()
		return m.current
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		m.logger.Warn("theme preference is malformed", "error", err)
		m.current = m.ambient()
		return m.current
	}

	t, ok := styles.ParseTheme(name)
	if !ok {
		m.current = m.ambient()
		return m.current
	}
	m.current = t
	return m.current
}

// Current returns the active theme.
func (m *Manager) Current() styles.Theme {
	return m.current
}

// Toggle flips the theme and persists the new preference. A failed
// write is logged; the flip still applies for the session.
func (m *Manager) Toggle() styles.Theme {
	m.current = m.current.Toggle()

	data, err := json.Marshal(m.current.String())
	if err == nil {
		err = m.backend.Set(storage.KeyTheme, data)
	}
	if err != nil {
		m.logger.Error("could not save theme preference", "error", err)
	}
	return m.current
}

func (m *Manager) ambient() styles.Theme {
	if m.ambientDark() {
		return styles.ThemeDark
	}
	return styles.ThemeLight
}
