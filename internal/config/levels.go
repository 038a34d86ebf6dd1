// Package config provides YAML-based level tables, difficulty presets and
// application settings for binary swipes.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/binary-swipes/internal/bst"
)

// ErrInvalidTable is returned when a level table breaks one of its invariants.
var ErrInvalidTable = errors.New("config: invalid level table")

// LevelConfig contains the tree size and timing parameters for one level.
// Durations are in milliseconds.
type LevelConfig struct {
	Level            int `yaml:"level"`
	TreeDepth        int `yaml:"tree_depth"`
	MinValue         int `yaml:"min_value"`
	MaxValue         int `yaml:"max_value"`
	ApproachDuration int `yaml:"approach_duration"` // horizon to swipe zone
	SwipeTimeoutMs   int `yaml:"swipe_timeout_ms"`  // time to answer once the node arrives
}

// Approach returns the approach duration as a time.Duration.
func (c LevelConfig) Approach() time.Duration {
	return time.Duration(c.ApproachDuration) * time.Millisecond
}

// SwipeTimeout returns the swipe timeout as a time.Duration.
func (c LevelConfig) SwipeTimeout() time.Duration {
	return time.Duration(c.SwipeTimeoutMs) * time.Millisecond
}

// RangeSize returns the number of distinct values in [MinValue, MaxValue].
func (c LevelConfig) RangeSize() int {
	return c.MaxValue - c.MinValue + 1
}

// LevelTable is the ordered list of tuned levels plus the parameters used
// for every level past the end of the list.
type LevelTable struct {
	Levels []LevelConfig `yaml:"levels"`
	Expert LevelConfig   `yaml:"expert"`
}

// Len returns the number of tuned levels.
func (t *LevelTable) Len() int {
	return len(t.Levels)
}

// Get returns the parameters for a level.
// Levels at or below zero use the first row with Level forced to 1.
// Levels past the table use the expert row with Level set to the requested
// value, so level numbers grow without bound while difficulty plateaus.
func (t *LevelTable) Get(level int) LevelConfig {
	if len(t.Levels) == 0 {
		cfg := t.Expert
		cfg.Level = max(level, 1)
		return cfg
	}
	if level <= 0 {
		cfg := t.Levels[0]
		cfg.Level = 1
		return cfg
	}
	if level <= len(t.Levels) {
		return t.Levels[level-1]
	}
	cfg := t.Expert
	cfg.Level = level
	return cfg
}

// Validate checks that every row can hold a complete tree of its depth,
// that approach durations strictly decrease, and that each swipe timeout
// exceeds its approach duration.
func (t *LevelTable) Validate() error {
	if len(t.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidTable)
	}
	for i, row := range t.Levels {
		if row.Level != i+1 {
			return fmt.Errorf("%w: row %d has level %d", ErrInvalidTable, i+1, row.Level)
		}
		if err := validateRow(row); err != nil {
			return fmt.Errorf("%w: level %d: %v", ErrInvalidTable, row.Level, err)
		}
		if i > 0 && row.ApproachDuration >= t.Levels[i-1].ApproachDuration {
			return fmt.Errorf("%w: level %d approach %dms does not decrease from %dms",
				ErrInvalidTable, row.Level, row.ApproachDuration, t.Levels[i-1].ApproachDuration)
		}
	}
	if err := validateRow(t.Expert); err != nil {
		return fmt.Errorf("%w: expert: %v", ErrInvalidTable, err)
	}
	return nil
}

func validateRow(row LevelConfig) error {
	if row.TreeDepth < 2 {
		return fmt.Errorf("tree depth %d leaves nothing to swipe", row.TreeDepth)
	}
	if need := bst.NodeCount(row.TreeDepth); row.RangeSize() < need {
		return fmt.Errorf("range %d..%d holds %d values, depth %d needs %d",
			row.MinValue, row.MaxValue, max(0, row.RangeSize()), row.TreeDepth, need)
	}
	if row.ApproachDuration <= 0 {
		return fmt.Errorf("approach duration %dms must be positive", row.ApproachDuration)
	}
	if row.SwipeTimeoutMs <= row.ApproachDuration {
		return fmt.Errorf("swipe timeout %dms must exceed approach %dms", row.SwipeTimeoutMs, row.ApproachDuration)
	}
	return nil
}

// GetLevelConfig returns the parameters for a level from the default table.
func GetLevelConfig(level int) LevelConfig {
	return defaultTable.Get(level)
}
