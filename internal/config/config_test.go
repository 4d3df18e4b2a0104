package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withTempConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.TermsPerYear != 12 {
		t.Errorf("TermsPerYear = %d, want 12", cfg.Defaults.TermsPerYear)
	}
	if cfg.Appearance.Currency != "$" {
		t.Errorf("Currency = %q, want $", cfg.Appearance.Currency)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigHome(t)

	cfg := DefaultConfig()
	cfg.Defaults.Principal = 4_350_000
	cfg.Defaults.Interest = 1.25
	cfg.Appearance.Currency = "kr "
	cfg.Output.ChartPath = "/tmp/loan.svg"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Defaults.Principal != 4_350_000 {
		t.Errorf("Principal = %v, want 4350000", got.Defaults.Principal)
	}
	if got.Defaults.Interest != 1.25 {
		t.Errorf("Interest = %v, want 1.25", got.Defaults.Interest)
	}
	if got.Appearance.Currency != "kr " {
		t.Errorf("Currency = %q, want \"kr \"", got.Appearance.Currency)
	}
	if got.Output.ChartPath != "/tmp/loan.svg" {
		t.Errorf("ChartPath = %q", got.Output.ChartPath)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := withTempConfigHome(t)

	path := filepath.Join(dir, "amort")
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "config.toml"), []byte("not [valid toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil error for malformed config")
	}
}

func TestScenarioDBPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	want := filepath.Join("/tmp/xdg-data", "amort", "scenarios.db")
	if got := ScenarioDBPath(); got != want {
		t.Errorf("ScenarioDBPath() = %q, want %q", got, want)
	}
}
