package tui

import (
	"testing"
	"time"

	"github.com/MikeBiancalana/streak/internal/config"
	"github.com/MikeBiancalana/streak/internal/storage"
	"github.com/MikeBiancalana/streak/internal/task"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

const testToday = "2024-01-10"

// newTestModel builds a model over an in-memory store whose today is
// testToday
func newTestModel(t *testing.T, titles ...string) *Model {
	t.Helper()

	db, err := storage.NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := func() time.Time {
		d, _ := task.ParseDate(testToday)
		return d.Add(12 * time.Hour)
	}
	store := task.NewStore(task.NewRepository(db, nil), task.WithClock(clock))
	store.Load()

	for _, title := range titles {
		_, err := store.AddTask(title, "")
		require.NoError(t, err)
	}

	m := NewModel(store, config.DefaultSettings())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// runCmd executes cmd synchronously and feeds its message back into the
// model, the way the bubbletea runtime would
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	msg := cmd()
	m.Update(msg)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pressKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}
