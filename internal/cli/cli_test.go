package cli

import (
	"errors"
	"testing"

	"BikeShare/internal/config"
)

func TestSelectionFromFlags(t *testing.T) {
	sel, err := selectionFromFlags(" New York City", "MARCH", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.City != "new york city" || sel.Month != "march" || sel.Day != 3 {
		t.Fatalf("unexpected selection: %+v", sel)
	}
}

func TestSelectionFromFlags_Invalid(t *testing.T) {
	if _, err := selectionFromFlags("boston", "all", 0); !errors.Is(err, config.ErrUnknownCity) {
		t.Errorf("expected ErrUnknownCity, got %v", err)
	}
	if _, err := selectionFromFlags("chicago", "mar", 0); err == nil {
		t.Error("expected error for abbreviated month")
	}
	if _, err := selectionFromFlags("chicago", "all", 8); err == nil {
		t.Error("expected error for day 8")
	}
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	t.Setenv("BIKESHARE_DATA_DIR", "/from-env")
	t.Setenv("BIKESHARE_LOG_DIR", "")
	t.Setenv("BIKESHARE_SOURCE", "")
	t.Setenv("BIKESHARE_DB", "")

	cmd, _, err := RootCmd.Find([]string{"report"})
	if err != nil {
		t.Fatalf("find report: %v", err)
	}
	if err := cmd.ParseFlags([]string{"--legacy-day-filter", "--log-dir", "/tmp/bikeshare-logs"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataDir != "/from-env" {
		t.Errorf("unset flag should keep env value, got %q", cfg.DataDir)
	}
	if !cfg.LegacyDayFilter || cfg.LogDir != "/tmp/bikeshare-logs" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}
