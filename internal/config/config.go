package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Config holds application configuration
type Config struct {
	DataDir string `toml:"data_dir"`
	Source  string `toml:"source"`  // csv|sqlite
	DBPath  string `toml:"db_path"` // SQLite database holding one table per city
	LogDir  string `toml:"log_dir"`
	Debug   bool   `toml:"debug"`

	// LegacyDayFilter compares the day selector directly against the 0-6
	// weekday index and never treats 0 as "all days"
	LegacyDayFilter bool `toml:"legacy_day_filter"`
}

// Default returns the configuration used when nothing else is provided
func Default() Config {
	return Config{
		DataDir: ".",
		Source:  SourceCSV,
		DBPath:  "bikeshare.db",
		LogDir:  "logs",
	}
}

// Load builds a Config from defaults, an optional TOML file and the environment.
// Flags are applied on top by the caller
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("BIKESHARE_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("BIKESHARE_LOG_DIR")); v != "" {
		cfg.LogDir = v
	}
	if v := strings.TrimSpace(os.Getenv("BIKESHARE_SOURCE")); v != "" {
		cfg.Source = v
	}
	if v := strings.TrimSpace(os.Getenv("BIKESHARE_DB")); v != "" {
		cfg.DBPath = v
	}

	return cfg, nil
}

// Validate checks values that cannot be repaired later
func (c Config) Validate() error {
	switch c.Source {
	case SourceCSV, SourceSQLite:
	default:
		return fmt.Errorf("unknown source %q (csv|sqlite)", c.Source)
	}
	if c.Source == SourceSQLite && c.DBPath == "" {
		return fmt.Errorf("sqlite source requires a database path")
	}
	return nil
}
