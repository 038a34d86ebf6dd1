package config

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

var defaultTable = DefaultLevelTable()

// DefaultLevelTable returns the built-in level table.
func DefaultLevelTable() LevelTable {
	return LevelTable{
		Levels: []LevelConfig{
			{Level: 1, TreeDepth: 3, MinValue: 1, MaxValue: 100, ApproachDuration: 2200, SwipeTimeoutMs: 3000},
			{Level: 2, TreeDepth: 3, MinValue: 1, MaxValue: 100, ApproachDuration: 1900, SwipeTimeoutMs: 2700},
			{Level: 3, TreeDepth: 3, MinValue: 1, MaxValue: 100, ApproachDuration: 1600, SwipeTimeoutMs: 2400},
			{Level: 4, TreeDepth: 4, MinValue: 1, MaxValue: 200, ApproachDuration: 1400, SwipeTimeoutMs: 2200},
			{Level: 5, TreeDepth: 4, MinValue: 1, MaxValue: 200, ApproachDuration: 1200, SwipeTimeoutMs: 2000},
			{Level: 6, TreeDepth: 4, MinValue: 1, MaxValue: 200, ApproachDuration: 1050, SwipeTimeoutMs: 1800},
			{Level: 7, TreeDepth: 5, MinValue: 1, MaxValue: 500, ApproachDuration: 900, SwipeTimeoutMs: 1600},
			{Level: 8, TreeDepth: 5, MinValue: 1, MaxValue: 500, ApproachDuration: 780, SwipeTimeoutMs: 1400},
			{Level: 9, TreeDepth: 5, MinValue: 1, MaxValue: 500, ApproachDuration: 680, SwipeTimeoutMs: 1300},
			{Level: 10, TreeDepth: 6, MinValue: 1, MaxValue: 1000, ApproachDuration: 590, SwipeTimeoutMs: 1200},
		},
		Expert: LevelConfig{
			TreeDepth:        6,
			MinValue:         1,
			MaxValue:         1000,
			ApproachDuration: 550,
			SwipeTimeoutMs:   1100,
		},
	}
}

// DefaultLevelsYAML returns the embedded default level table.
func DefaultLevelsYAML() []byte {
	return defaultLevelsYAML
}
