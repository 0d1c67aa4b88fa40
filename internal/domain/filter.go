package domain

// Filter narrows the displayed tasks to a completion state
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// ParseFilter maps a filter name to its Filter value.
func ParseFilter(s string) (Filter, bool) {
	switch s {
	case "all":
		return FilterAll, true
	case "active":
		return FilterActive, true
	case "completed":
		return FilterCompleted, true
	default:
		return FilterAll, false
	}
}

// String returns the display string
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Next cycles all → active → completed → all
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Matches returns true if the task passes the filter
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply projects a task list through the filter, preserving order.
// The input is never mutated; the result is always a fresh slice.
func (f Filter) Apply(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Stats summarizes a task list. Total is always Active + Completed.
type Stats struct {
	Total     int
	Active    int
	Completed int
}

// ComputeStats counts tasks by completion state.
func ComputeStats(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	return s
}
