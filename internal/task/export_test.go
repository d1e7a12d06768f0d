package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_RoundTrip(t *testing.T) {
	last := "2024-01-02"
	tasks := []Task{
		{ID: "a", Title: "Read", Description: "books", CompletedDates: []string{"2024-01-01", "2024-01-02"}, Streak: 2, LastCompleted: &last},
		{ID: "b", Title: "Run", CompletedDates: []string{}},
	}

	data, err := WriteExport(tasks, true, "2024-01-15")
	require.NoError(t, err)
	assert.Contains(t, string(data), "completedDates:")
	assert.Contains(t, string(data), "lastCompleted: null")

	doc, err := ParseExport(data)
	require.NoError(t, err)
	assert.Equal(t, ExportVersion, doc.Version)
	assert.Equal(t, "2024-01-15", doc.ExportedOn)
	assert.True(t, doc.DarkMode)
	assert.Equal(t, tasks, doc.Tasks)
}

func TestWriteExport_NoTasks(t *testing.T) {
	data, err := WriteExport(nil, false, "2024-01-15")
	require.NoError(t, err)
	assert.Contains(t, string(data), "tasks: []")
}

func TestParseExport_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "tasks: [unclosed"},
		{"future version", "version: 99\ntasks: []\n"},
		{"missing title", "tasks:\n  - id: a\n"},
		{"duplicate id", "tasks:\n  - id: a\n    title: x\n  - id: a\n    title: y\n"},
		{"bad date", "tasks:\n  - id: a\n    title: x\n    completedDates: [2024-02-30]\n"},
		{"bad last completed", "tasks:\n  - id: a\n    title: x\n    lastCompleted: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExport([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseExport_SortsDates(t *testing.T) {
	doc, err := ParseExport([]byte("tasks:\n  - id: a\n    title: x\n    completedDates: [\"2024-01-05\", \"2024-01-01\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-05"}, doc.Tasks[0].CompletedDates)
	assert.Len(t, Pointers(doc.Tasks), 1)
}
