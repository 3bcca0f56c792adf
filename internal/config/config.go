package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/athlog/internal/domain"
)

// PBNotifications controls which personal-best metrics produce a
// notification after logging a workout. Enabled is a tri-state: nil means
// the user has never been asked, which triggers a one-time prompt.
type PBNotifications struct {
	Enabled        *bool `toml:"enabled,omitempty"`
	NotifyWeight   bool  `toml:"notify_weight"`
	NotifyReps     bool  `toml:"notify_reps"`
	NotifyDuration bool  `toml:"notify_duration"`
	NotifyDistance bool  `toml:"notify_distance"`
}

// Config holds all user-tunable settings, persisted as TOML.
type Config struct {
	Units               domain.Units    `toml:"units"`
	PromptForBodyweight bool            `toml:"prompt_for_bodyweight"`
	StreakIntervalDays  int             `toml:"streak_interval_days"`
	TargetBodyweight    *float64        `toml:"target_bodyweight,omitempty"`
	PBNotifications     PBNotifications `toml:"pb_notifications"`
}

// Default returns a Config with sensible defaults: metric units, daily
// streaks, all PB metrics on but the global toggle undecided.
func Default() Config {
	return Config{
		Units:               domain.UnitsMetric,
		PromptForBodyweight: true,
		StreakIntervalDays:  1,
		PBNotifications: PBNotifications{
			NotifyWeight:   true,
			NotifyReps:     true,
			NotifyDuration: true,
			NotifyDistance: true,
		},
	}
}

// DefaultPath returns the config file location: ATHLOG_CONFIG if set,
// otherwise ~/.athlog/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv("ATHLOG_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".athlog", "config.toml"), nil
}

// DefaultDBPath returns the database location: ATHLOG_DB if set,
// otherwise ~/.athlog/athlog.db.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ATHLOG_DB"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".athlog", "athlog.db"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Unknown keys are ignored; invalid values for known
// keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if cfg.StreakIntervalDays < 1 {
		cfg.StreakIntervalDays = 1
	}
	if _, err := domain.ParseUnits(string(cfg.Units)); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
