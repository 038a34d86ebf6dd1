package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset selects how a level table is tuned before play.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	// DifficultyFixed keeps normal timings and replays the same level
	// instead of advancing.
	DifficultyFixed DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a name to a preset. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// TimingScale returns the factor applied to approach and swipe timings.
func (p DifficultyPreset) TimingScale() float64 {
	switch p {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.8
	default:
		return 1.0
	}
}

// Progresses reports whether completing a level moves on to the next one.
func (p DifficultyPreset) Progresses() bool {
	return p != DifficultyFixed
}

// ApplyPreset returns a copy of table with timings scaled for preset.
// Tree sizes and value ranges are left alone.
func ApplyPreset(table LevelTable, preset DifficultyPreset) LevelTable {
	scale := preset.TimingScale()
	out := LevelTable{
		Levels: make([]LevelConfig, len(table.Levels)),
		Expert: scaleRow(table.Expert, scale),
	}
	for i, row := range table.Levels {
		out.Levels[i] = scaleRow(row, scale)
	}
	return out
}

func scaleRow(row LevelConfig, scale float64) LevelConfig {
	row.ApproachDuration = int(math.Round(float64(row.ApproachDuration) * scale))
	row.SwipeTimeoutMs = int(math.Round(float64(row.SwipeTimeoutMs) * scale))
	return row
}
