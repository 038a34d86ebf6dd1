package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/binary-swipes/internal/storage"
)

type fakeScores struct {
	runs map[string][]storage.Run
	best map[string]int
	err  error
}

func (f *fakeScores) TopRuns(mode string, _ int) ([]storage.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.runs[mode], nil
}

func (f *fakeScores) HighScore(mode string) (int, error) {
	return f.best[mode], f.err
}

func TestScoreboardLoadsFirstMode(t *testing.T) {
	src := &fakeScores{
		runs: map[string][]storage.Run{
			"swipes": {
				{Mode: "swipes", Level: 5, Score: 1200, Outcome: "timeout", CreatedAt: time.Now().Add(-time.Hour)},
				{Mode: "swipes", Level: 2, Score: 40, Outcome: "quit", CreatedAt: time.Now()},
			},
		},
		best: map[string]int{"swipes": 1200},
	}

	m := NewScoreboardModel(src, 100, 30)
	require.Len(t, m.Runs(), 2)

	rows := m.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "1,200", rows[0][1])
	assert.Equal(t, "5", rows[0][2])
	assert.Equal(t, "too slow", rows[0][3])
	assert.Equal(t, "1 hour ago", rows[0][4])

	assert.Contains(t, m.View(), "best 1,200")
}

func TestScoreboardSwitchesMode(t *testing.T) {
	src := &fakeScores{
		runs: map[string][]storage.Run{
			"swipes_practice": {{Mode: "swipes_practice", Level: 3, Score: 9, Outcome: "wrong_swipe"}},
		},
	}

	m := NewScoreboardModel(src, 60, 30)
	assert.Empty(t, m.Runs())
	assert.Contains(t, m.View(), "No runs recorded yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	require.Len(t, m.Runs(), 1)
	assert.Equal(t, "wrong way", m.table.Rows()[0][3])
}

func TestScoreboardToleratesErrorsAndNilStore(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{err: errors.New("boom")}, 80, 24)
	assert.Empty(t, m.Runs())

	m = NewScoreboardModel(nil, 80, 24)
	assert.Empty(t, m.Runs())
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(ScoreboardModel).IsGoingBack())

	next, _ = m.Update(runeKey('q'))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
}

func TestOutcomeLabel(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"wrong_swipe", "wrong way"},
		{"timeout", "too slow"},
		{OutcomeQuit, "quit"},
		{"other", "other"},
	}
	for _, tt := range tests {
		if got := OutcomeLabel(tt.in); got != tt.expected {
			t.Errorf("OutcomeLabel(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
