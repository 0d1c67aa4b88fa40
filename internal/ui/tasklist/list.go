// Package tasklist renders the filtered task list with a cursor.
package tasklist

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tmalloy/punchlist/internal/domain"
	"github.com/tmalloy/punchlist/internal/ui/styles"
)

// List is the scrollable task list view. It is a pure projection of
// store state: nothing here mutates tasks.
type List struct {
	tasks  []domain.Task
	cursor int
	width  int
	height int
	styles *styles.Styles
}

// New creates a List over the given (already filtered) tasks
func New(tasks []domain.Task, cursor, width, height int, st *styles.Styles) List {
	return List{
		tasks:  tasks,
		cursor: cursor,
		width:  width,
		height: height,
		styles: st,
	}
}

// Checkbox returns the completion marker for a task.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// Render renders the visible window of the task list
func (l List) Render() string {
	if len(l.tasks) == 0 {
		return l.styles.EmptyHint.Render("Nothing here. Press n to add a task.")
	}

	top, bottom := l.window()

	var b strings.Builder
	for i := top; i < bottom; i++ {
		b.WriteString(l.renderRow(i))
		if i < bottom-1 {
			b.WriteString("\n")
		}
	}
	return l.styles.List.Render(b.String())
}

func (l List) renderRow(i int) string {
	task := l.tasks[i]

	cursor := "  "
	if i == l.cursor {
		cursor = l.styles.Cursor.Render("> ")
	}

	checkbox := l.styles.Checkbox
	text := l.styles.Item
	if task.Completed {
		checkbox = l.styles.CheckboxDone
		text = l.styles.ItemDone
	} else if i == l.cursor {
		text = l.styles.ItemActive
	}

	age := l.styles.ItemAge.Render(humanize.Time(task.CreatedAt))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cursor,
		checkbox.Render(Checkbox(task.Completed)),
		" ",
		text.Render(truncate(task.Text, l.textWidth())),
		"  ",
		age,
	)
}

// window clamps the visible slice so the cursor stays on screen.
func (l List) window() (top, bottom int) {
	visible := l.height
	if visible <= 0 || visible > len(l.tasks) {
		return 0, len(l.tasks)
	}

	top = l.cursor - visible/2
	if top < 0 {
		top = 0
	}
	bottom = top + visible
	if bottom > len(l.tasks) {
		bottom = len(l.tasks)
		top = bottom - visible
	}
	return top, bottom
}

func (l List) textWidth() int {
	// cursor + checkbox + separators + age column
	reserved := 2 + 3 + 3 + 14
	if l.width <= reserved {
		return 20
	}
	return l.width - reserved
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// FormatAge is a plain-text age label used by the CLI listing.
func FormatAge(createdAt, now time.Time) string {
	return humanize.RelTime(createdAt, now, "ago", "from now")
}
