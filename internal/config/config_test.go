package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultGridRemoval(t *testing.T) {
	cfg := DefaultGridRemoval()

	if cfg.CloseDistance == nil || *cfg.CloseDistance != 10 {
		t.Errorf("CloseDistance: got %v, want 10", cfg.CloseDistance)
	}
	if cfg.ForegroundColor == nil || *cfg.ForegroundColor != "#000000" {
		t.Errorf("ForegroundColor: got %v, want #000000", cfg.ForegroundColor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	if got := cfg.GetCloseDistance(); got != 10 {
		t.Errorf("GetCloseDistance() = %v, want 10", got)
	}
	if got := cfg.GetDarkThreshold(); got != 128 {
		t.Errorf("GetDarkThreshold() = %d, want 128", got)
	}
	if got := cfg.GetMinLineCoverage(); got != 0.6 {
		t.Errorf("GetMinLineCoverage() = %v, want 0.6", got)
	}
	if got := cfg.GetPreviewColor().Hex(); got != "#ff0000" {
		t.Errorf("GetPreviewColor() = %s, want #ff0000", got)
	}
}

func TestEmptyConfigUsesDefaults(t *testing.T) {
	cfg := &GridRemoval{}

	if got := cfg.GetCloseDistance(); got != DefaultCloseDistance {
		t.Errorf("GetCloseDistance() = %v, want %v", got, DefaultCloseDistance)
	}
	if got := cfg.GetForegroundColor().Hex(); got != "#000000" {
		t.Errorf("GetForegroundColor() = %s, want #000000", got)
	}
	if got := cfg.GetDarkThreshold(); got != DefaultDarkThreshold {
		t.Errorf("GetDarkThreshold() = %d, want %d", got, DefaultDarkThreshold)
	}
}

func TestLoadGridRemoval(t *testing.T) {
	path := writeConfig(t, "grid.json", `{
  "close_distance": 4.5,
  "foreground_color": "#102030",
  "min_line_coverage": 0.9
}`)

	cfg, err := LoadGridRemoval(path)
	if err != nil {
		t.Fatalf("LoadGridRemoval failed: %v", err)
	}

	if got := cfg.GetCloseDistance(); got != 4.5 {
		t.Errorf("GetCloseDistance() = %v, want 4.5", got)
	}
	if got := cfg.GetForegroundColor().Hex(); got != "#102030" {
		t.Errorf("GetForegroundColor() = %s, want #102030", got)
	}
	if got := cfg.GetMinLineCoverage(); got != 0.9 {
		t.Errorf("GetMinLineCoverage() = %v, want 0.9", got)
	}
	// Omitted fields fall back to defaults.
	if cfg.DarkThreshold != nil {
		t.Errorf("DarkThreshold should be unset, got %d", *cfg.DarkThreshold)
	}
	if got := cfg.GetDarkThreshold(); got != DefaultDarkThreshold {
		t.Errorf("GetDarkThreshold() = %d, want %d", got, DefaultDarkThreshold)
	}
}

func TestLoadGridRemoval_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"wrong extension", "grid.yaml", `{}`, "extension"},
		{"bad json", "grid.json", `{"close_distance":`, "parse"},
		{"negative distance", "grid.json", `{"close_distance": -1}`, "close_distance"},
		{"bad color", "grid.json", `{"foreground_color": "black"}`, "foreground_color"},
		{"threshold range", "grid.json", `{"dark_threshold": 300}`, "dark_threshold"},
		{"coverage range", "grid.json", `{"min_line_coverage": 0}`, "min_line_coverage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.body)
			_, err := LoadGridRemoval(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadGridRemoval_ValidationErrorIsInvalid(t *testing.T) {
	path := writeConfig(t, "grid.json", `{"close_distance": -3}`)
	_, err := LoadGridRemoval(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadGridRemoval_Missing(t *testing.T) {
	_, err := LoadGridRemoval(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv without file: %v", err)
	}
	if got := cfg.GetCloseDistance(); got != DefaultCloseDistance {
		t.Errorf("GetCloseDistance() = %v, want default", got)
	}

	path := writeConfig(t, "env.json", `{"close_distance": 2}`)
	t.Setenv(EnvConfigPath, path)
	cfg, err = FromEnv()
	if err != nil {
		t.Fatalf("FromEnv with file: %v", err)
	}
	if got := cfg.GetCloseDistance(); got != 2 {
		t.Errorf("GetCloseDistance() = %v, want 2", got)
	}
}

func TestMerge(t *testing.T) {
	base := DefaultGridRemoval()
	override := &GridRemoval{
		CloseDistance: ptrFloat64(3),
		PreviewColor:  ptrString("#00FF00"),
	}

	merged := base.Merge(override)

	if got := merged.GetCloseDistance(); got != 3 {
		t.Errorf("merged CloseDistance = %v, want 3", got)
	}
	if got := merged.GetPreviewColor().Hex(); got != "#00ff00" {
		t.Errorf("merged PreviewColor = %s, want #00ff00", got)
	}
	if got := merged.GetDarkThreshold(); got != DefaultDarkThreshold {
		t.Errorf("merged DarkThreshold = %d, want default", got)
	}
	// The base is not modified.
	if got := base.GetCloseDistance(); got != DefaultCloseDistance {
		t.Errorf("base CloseDistance changed to %v", got)
	}

	if got := base.Merge(nil).GetCloseDistance(); got != DefaultCloseDistance {
		t.Errorf("Merge(nil) CloseDistance = %v", got)
	}
}

func TestGetters_MalformedFallback(t *testing.T) {
	cfg := &GridRemoval{
		ForegroundColor: ptrString("nope"),
		DarkThreshold:   ptrInt(-5),
	}
	if got := cfg.GetForegroundColor().Hex(); got != "#000000" {
		t.Errorf("GetForegroundColor() = %s, want fallback #000000", got)
	}
	if got := cfg.GetDarkThreshold(); got != DefaultDarkThreshold {
		t.Errorf("GetDarkThreshold() = %d, want fallback", got)
	}
}
