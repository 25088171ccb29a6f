// Package config loads the TOML configuration, writing a default file on
// first launch.
package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultDirName    = ".lolTasks"
	DefaultConfigName = "config.toml"
	DefaultDBName     = "weekly_tasks.db"
)

// Keymap holds the rune-bound normal-mode keys. Arrows, Tab, Enter and the
// control chords are fixed and not remappable.
type Keymap struct {
	Quit      string `toml:"quit"`
	Reorder   string `toml:"reorder"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	PrevWeek  string `toml:"prev_week"`
	NextWeek  string `toml:"next_week"`
	Add       string `toml:"add"`
	Delete    string `toml:"delete"`
	EditStart string `toml:"edit_start"`
	ShiftNext string `toml:"shift_next"`
	ShiftPrev string `toml:"shift_prev"`
}

type Config struct {
	DBPath string `toml:"db_path"`
	Keys   Keymap `toml:"keys"`
}

// ResolvePath returns the default config file location under the user's
// data directory.
func ResolvePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigName
	}
	return filepath.Join(home, DefaultDirName, DefaultConfigName)
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// no file exists yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDBName
	}
	return filepath.Join(home, DefaultDirName, DefaultDBName)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath: defaultDBPath(),
		Keys: Keymap{
			Quit:      "q",
			Reorder:   "r",
			Up:        "k",
			Down:      "j",
			PrevWeek:  "h",
			NextWeek:  "l",
			Add:       "a",
			Delete:    "d",
			EditStart: "I",
			ShiftNext: "n",
			ShiftPrev: "p",
		},
	}
}
