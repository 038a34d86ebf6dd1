package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLevelTable loads the level table.
// Search order: customPath -> ~/.swipes/configs/levels.yaml -> ./configs/levels.yaml -> embedded default
//
// A table read from disk is validated and rejected with an error if it is
// broken; a bad table is a data bug and must not be silently replaced.
func LoadLevelTable(customPath string) (LevelTable, error) {
	// Try custom path first
	if customPath != "" {
		return readLevelTable(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("levels.yaml"); userCfgPath != "" {
		if _, err := os.Stat(userCfgPath); err == nil {
			return readLevelTable(userCfgPath)
		}
	}

	// Try local configs directory
	if _, err := os.Stat(filepath.Join("configs", "levels.yaml")); err == nil {
		return readLevelTable(filepath.Join("configs", "levels.yaml"))
	}

	// Use embedded default YAML
	var table LevelTable
	if err := yaml.Unmarshal(defaultLevelsYAML, &table); err != nil || len(table.Levels) == 0 {
		return DefaultLevelTable(), nil // Fallback to hardcoded if embed fails
	}
	return table, nil
}

// ParseLevelTable decodes and validates a YAML level table.
func ParseLevelTable(data []byte) (LevelTable, error) {
	var table LevelTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return LevelTable{}, fmt.Errorf("config: cannot parse level table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return LevelTable{}, err
	}
	return table, nil
}

func readLevelTable(path string) (LevelTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LevelTable{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	table, err := ParseLevelTable(data)
	if err != nil {
		return LevelTable{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swipes", "configs", filename)
}
