package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/binary-swipes/internal/observability"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(SessionModel)
	require.True(t, ok)
	return out, cmd
}

func TestSessionStartsGameAndReturnsToMenu(t *testing.T) {
	var logs bytes.Buffer
	runs := &memRuns{}
	metrics := observability.NewMetrics()
	deps := SessionDeps{
		Runs:    runs,
		Logger:  observability.NewLoggerTo(&logs, "debug", "test"),
		Metrics: metrics,
	}

	m := NewSessionModel(deps, menuCfg, "alice")
	_, err := uuid.Parse(m.SessionID())
	require.NoError(t, err)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel, "enter on Campaign starts a game")
	assert.NotNil(t, cmd, "the game's tick loop must start")
	assert.Contains(t, logs.String(), "COUNTDOWN")
	assert.Contains(t, logs.String(), m.SessionID())

	// Pause, then go back to the menu.
	m, _ = sessionUpdate(t, m, runeKey('p'))
	m, _ = sessionUpdate(t, m, TickMsg{Loop: m.gameModel.loop})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.gameModel)
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "B I N A R Y")
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(SessionDeps{}, menuCfg, "bob")

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.scoreboard)
	assert.Nil(t, cmd, "opening the scoreboard must not end the session")
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, cmd = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.scoreboard)
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(SessionDeps{}, menuCfg, "carol")
	m, cmd := sessionUpdate(t, m, runeKey('q'))

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionPracticeUsesPickedLevel(t *testing.T) {
	m := NewSessionModel(SessionDeps{}, menuCfg, "dave")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.gameModel)
	assert.Equal(t, "swipes_practice", m.gameModel.game.ID())
	assert.Equal(t, 2, m.gameModel.game.State().Level)
}
