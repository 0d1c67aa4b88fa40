package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []Task {
	return []Task{
		{ID: "t-3", Text: "newest", Completed: false},
		{ID: "t-2", Text: "middle", Completed: true},
		{ID: "t-1", Text: "oldest", Completed: false},
	}
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{name: "all keeps order", filter: FilterAll, wantIDs: []string{"t-3", "t-2", "t-1"}},
		{name: "active drops completed", filter: FilterActive, wantIDs: []string{"t-3", "t-1"}},
		{name: "completed keeps only done", filter: FilterCompleted, wantIDs: []string{"t-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sampleTasks())

			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_Apply_Empty(t *testing.T) {
	got := FilterActive.Apply(nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

// Active and completed projections partition the full list.
func TestFilter_Partition(t *testing.T) {
	tasks := sampleTasks()

	active := FilterActive.Apply(tasks)
	completed := FilterCompleted.Apply(tasks)
	all := FilterAll.Apply(tasks)

	assert.Len(t, all, len(active)+len(completed))

	seen := make(map[string]bool)
	for _, task := range active {
		seen[task.ID] = true
	}
	for _, task := range completed {
		assert.False(t, seen[task.ID], "task %s in both projections", task.ID)
	}
}

func TestFilter_Next(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input  string
		want   Filter
		wantOK bool
	}{
		{input: "all", want: FilterAll, wantOK: true},
		{input: "active", want: FilterActive, wantOK: true},
		{input: "completed", want: FilterCompleted, wantOK: true},
		{input: "done", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFilter(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  Stats
	}{
		{name: "empty", tasks: nil, want: Stats{}},
		{name: "mixed", tasks: sampleTasks(), want: Stats{Total: 3, Active: 2, Completed: 1}},
		{
			name:  "all completed",
			tasks: []Task{{Completed: true}, {Completed: true}},
			want:  Stats{Total: 2, Completed: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.tasks)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Active+got.Completed)
		})
	}
}
