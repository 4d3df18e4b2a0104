// Package config handles the amort configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all amort configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Appearance AppearanceConfig `toml:"appearance"`
	Output     OutputConfig     `toml:"output"`
}

// DefaultsConfig holds the loan parameters used when flags are omitted.
type DefaultsConfig struct {
	Principal    float64 `toml:"principal"`
	Interest     float64 `toml:"interest"`
	TermsPerYear int     `toml:"terms_per_year"`
	Fee          float64 `toml:"fee"`
	DueDay       int     `toml:"due_day"`
	ExtraDay     int     `toml:"extra_day"`
}

// AppearanceConfig holds theme and currency settings.
type AppearanceConfig struct {
	Theme    string `toml:"theme"`
	Currency string `toml:"currency"`
}

// OutputConfig holds file output settings.
type OutputConfig struct {
	ChartPath string `toml:"chart_path,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Principal:    1_000_000,
			Interest:     4.5,
			TermsPerYear: 12,
			Fee:          0,
			DueDay:       20,
			ExtraDay:     25,
		},
		Appearance: AppearanceConfig{
			Theme:    "flexoki-dark",
			Currency: "$",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "amort")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "amort")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory for the scenario DB.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "amort")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "amort")
}

// ScenarioDBPath returns the path of the scenario database.
func ScenarioDBPath() string {
	return filepath.Join(DataDir(), "scenarios.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
