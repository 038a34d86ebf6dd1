package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/binary-swipes/internal/config"
	"github.com/vovakirdan/binary-swipes/internal/level"
	"github.com/vovakirdan/binary-swipes/internal/storage"
)

func TestSwipeString(t *testing.T) {
	tests := []struct {
		path     []int
		expected string
	}{
		{[]int{50}, ""},
		{[]int{50, 25}, "◀"},
		{[]int{50, 75, 60}, "▶ ◀"},
	}
	for _, tt := range tests {
		if got := swipeString(tt.path); got != tt.expected {
			t.Errorf("swipeString(%v) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}

func TestWriteLevelMarksPath(t *testing.T) {
	table := config.DefaultLevelTable()
	gen := level.NewGenerator(&table, rand.New(rand.NewSource(7)))
	lvl, err := gen.Create(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	writeLevel(&buf, lvl, 7)
	out := buf.String()

	assert.Contains(t, out, "Level 2  seed 7")
	assert.Contains(t, out, "◎")
	assert.Equal(t, len(lvl.Path)-1, strings.Count(out, " *"), "every path node but the target is starred")
	assert.Contains(t, out, "Path:   "+joinInts(lvl.Path, " → "))
}

func TestWriteLevelsTable(t *testing.T) {
	var buf bytes.Buffer
	writeLevelsTable(&buf, config.DefaultLevelTable(), config.DifficultyFixed)
	out := buf.String()

	assert.Contains(t, out, "Levels (fixed)")
	assert.Contains(t, out, "1-1000")
	assert.Contains(t, out, "11+")
	assert.Contains(t, out, "LEVEL NEVER ADVANCES", "footers are upper-cased")
}

func TestWriteLevelsYAMLRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeLevelsYAML(&buf, config.DefaultLevelTable()))

	parsed, err := config.ParseLevelTable(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLevelTable(), parsed)
}

func TestWriteRuns(t *testing.T) {
	var buf bytes.Buffer
	writeRuns(&buf, "swipes", nil, &storage.Stats{})
	assert.Contains(t, buf.String(), "No runs recorded for swipes")

	buf.Reset()
	runs := []storage.Run{
		{Mode: "swipes", Level: 6, Score: 2500, Outcome: "timeout", CreatedAt: time.Now()},
	}
	stats := &storage.Stats{Mode: "swipes", Runs: 1, HighScore: 2500, AvgScore: 2500, BestLevel: 6, LastPlayed: time.Now()}
	writeRuns(&buf, "swipes", runs, stats)

	out := buf.String()
	assert.Contains(t, out, "2,500")
	assert.Contains(t, out, "too slow")
	assert.Contains(t, out, "BEST 2,500")
	assert.Contains(t, out, "Last played")
}
