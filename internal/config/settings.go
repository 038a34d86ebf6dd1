package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// settingsName is the settings file name without extension.
const settingsName = ".swipes"

// envPrefix is the environment variable prefix, e.g. SWIPES_DB_PATH.
const envPrefix = "SWIPES"

// Setting defaults.
const (
	DefaultFPS             = 60
	DefaultCountdownStepMs = 900
	DefaultTransitionMs    = 250
	DefaultResultDelayMs   = 600
	DefaultLogLevel        = "info"
	DefaultSSHAddress      = ":2222"
	DefaultSSHHostKey      = ".ssh/swipes_host_key"
	DefaultSSHIdleTimeout  = 10 * time.Minute
)

// Settings holds application settings.
// Field tags use mapstructure for viper unmarshalling.
type Settings struct {
	DBPath          string          `mapstructure:"db_path"`
	FPS             int             `mapstructure:"fps"`
	Seed            int64           `mapstructure:"seed"`
	Difficulty      string          `mapstructure:"difficulty"`
	LevelsPath      string          `mapstructure:"levels_path"`
	CountdownStepMs int             `mapstructure:"countdown_step_ms"`
	TransitionMs    int             `mapstructure:"transition_ms"`
	ResultDelayMs   int             `mapstructure:"result_delay_ms"`
	LogLevel        string          `mapstructure:"log_level"`
	SSH             SSHSettings     `mapstructure:"ssh"`
	Metrics         MetricsSettings `mapstructure:"metrics"`
}

// SSHSettings configures the SSH server.
type SSHSettings struct {
	Address     string        `mapstructure:"address"`
	HostKey     string        `mapstructure:"host_key"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

// MetricsSettings configures the Prometheus endpoint. An empty address
// disables it.
type MetricsSettings struct {
	Address string `mapstructure:"address"`
}

// FlagKeys maps command-line flag names to setting keys.
var FlagKeys = map[string]string{
	"db":           "db_path",
	"fps":          "fps",
	"seed":         "seed",
	"difficulty":   "difficulty",
	"levels":       "levels_path",
	"log-level":    "log_level",
	"addr":         "ssh.address",
	"host-key":     "ssh.host_key",
	"idle-timeout": "ssh.idle_timeout",
	"metrics":      "metrics.address",
}

// LoadSettings loads settings from defaults, the settings file, SWIPES_*
// environment variables and any flags in flags named in FlagKeys.
// If configPath is empty, .swipes.yaml is searched in CWD and $HOME.
// A missing settings file is not an error.
func LoadSettings(configPath string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	applySettingDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(settingsName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read settings: %w", err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func applySettingDefaults(v *viper.Viper) {
	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("fps", DefaultFPS)
	v.SetDefault("seed", 0)
	v.SetDefault("difficulty", string(DifficultyNormal))
	v.SetDefault("levels_path", "")
	v.SetDefault("countdown_step_ms", DefaultCountdownStepMs)
	v.SetDefault("transition_ms", DefaultTransitionMs)
	v.SetDefault("result_delay_ms", DefaultResultDelayMs)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetDefault("ssh.address", DefaultSSHAddress)
	v.SetDefault("ssh.host_key", DefaultSSHHostKey)
	v.SetDefault("ssh.idle_timeout", DefaultSSHIdleTimeout)

	v.SetDefault("metrics.address", "")
}

// Validate checks settings values.
func (s *Settings) Validate() error {
	if s.FPS <= 0 || s.FPS > 240 {
		return fmt.Errorf("config: fps %d out of range 1..240", s.FPS)
	}
	if _, err := ParsePreset(s.Difficulty); err != nil {
		return err
	}
	if s.CountdownStepMs < 0 || s.TransitionMs < 0 || s.ResultDelayMs < 0 {
		return errors.New("config: animation timings must not be negative")
	}
	return nil
}

// Preset returns the parsed difficulty preset.
func (s *Settings) Preset() DifficultyPreset {
	p, err := ParsePreset(s.Difficulty)
	if err != nil {
		return DifficultyNormal
	}
	return p
}

// defaultDBPath returns ~/.swipes/scores.db, or scores.db if home is unavailable.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "scores.db"
	}
	return filepath.Join(home, ".swipes", "scores.db")
}
