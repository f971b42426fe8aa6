package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeiGolos/open-tasks/internal/core/output"
)

func TestModel_TickPicksUpRecordedEvents(t *testing.T) {
	sink := output.NewRecordingSink(output.Verbose)
	done := make(chan error, 1)
	m := newModel("release", sink, done)

	logger := output.NewTaskLogger(sink, "echo")
	logger.FileCreated("/tmp/out/echo-output.txt")

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(model)

	require.NotNil(t, cmd)
	assert.False(t, m.finished)
	assert.Len(t, m.lines, 2)

	view := m.View()
	assert.Contains(t, view, "release")
	assert.Contains(t, view, "RUNNING")
	assert.Contains(t, view, "echo-output.txt")
}

func TestModel_FinishesWhenRunCompletes(t *testing.T) {
	sink := output.NewRecordingSink(output.Verbose)
	done := make(chan error, 1)
	done <- nil
	m := newModel("release", sink, done)

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(model)

	assert.True(t, m.finished)
	require.NoError(t, m.runErr)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "DONE")
}

func TestModel_KeepsRunFailure(t *testing.T) {
	sink := output.NewRecordingSink(output.Verbose)
	done := make(chan error, 1)
	done <- errors.New("step failed")
	m := newModel("release", sink, done)

	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(model)

	assert.True(t, m.finished)
	assert.EqualError(t, m.runErr, "step failed")
	assert.Contains(t, m.View(), "FAILED")
}

func TestModel_QuitKeys(t *testing.T) {
	sink := output.NewRecordingSink(output.Verbose)
	m := newModel("release", sink, make(chan error, 1))

	for _, key := range []string{"q", "ctrl+c"} {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %q should quit", key)
	}
}
