package task

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExportVersion is written into every export document
const ExportVersion = 1

// Export is the YAML document written by `streak export`
type Export struct {
	Version    int    `yaml:"version"`
	ExportedOn string `yaml:"exportedOn"`
	DarkMode   bool   `yaml:"darkMode"`
	Tasks      []Task `yaml:"tasks"`
}

// WriteExport serializes tasks to YAML
func WriteExport(tasks []Task, darkMode bool, today string) ([]byte, error) {
	doc := Export{
		Version:    ExportVersion,
		ExportedOn: today,
		DarkMode:   darkMode,
		Tasks:      tasks,
	}
	if doc.Tasks == nil {
		doc.Tasks = make([]Task, 0)
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// ParseExport reads a YAML export, validating ids, titles and dates
func ParseExport(data []byte) (*Export, error) {
	var doc Export
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}
	if doc.Version > ExportVersion {
		return nil, fmt.Errorf("unsupported export version %d", doc.Version)
	}

	ids := make(map[string]bool, len(doc.Tasks))
	for i := range doc.Tasks {
		t := &doc.Tasks[i]
		if t.ID == "" || t.Title == "" {
			return nil, fmt.Errorf("task %d: id and title are required", i)
		}
		if ids[t.ID] {
			return nil, fmt.Errorf("task %d: duplicate id %s", i, t.ID)
		}
		ids[t.ID] = true

		for _, d := range t.CompletedDates {
			if !IsValidDate(d) {
				return nil, fmt.Errorf("task %s: %w: %q", t.ID, ErrInvalidDate, d)
			}
		}
		if t.LastCompleted != nil && !IsValidDate(*t.LastCompleted) {
			return nil, fmt.Errorf("task %s: %w: %q", t.ID, ErrInvalidDate, *t.LastCompleted)
		}
		normalize(t)
	}
	return &doc, nil
}

// Pointers converts a task slice into the pointer form the store keeps
func Pointers(tasks []Task) []*Task {
	out := make([]*Task, len(tasks))
	for i := range tasks {
		out[i] = &tasks[i]
	}
	return out
}
