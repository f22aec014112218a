// Package config holds the grid removal model: the thresholds and colors used
// to detect, erase and heal a reference grid.
//
// Fields are pointers so that a partial JSON file, or a partial set of tool
// arguments, only overrides what it names. The Get* methods supply defaults
// for anything left unset.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// EnvConfigPath names the environment variable holding an optional config
// file path.
const EnvConfigPath = "GRID_HEAL_CONFIG"

// Defaults.
const (
	DefaultCloseDistance   = 10.0
	DefaultForegroundColor = "#000000"
	DefaultPreviewColor    = "#FF0000"
	DefaultDarkThreshold   = 128
	DefaultMinLineCoverage = 0.6
)

const maxFileSize = 1 * 1024 * 1024

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid grid removal config")

// GridRemoval is the grid removal model.
type GridRemoval struct {
	// CloseDistance is the centroid separation in pixels below which two
	// boundary groups are reconnected.
	CloseDistance *float64 `json:"close_distance,omitempty"`

	// ForegroundColor is painted into healed pixels, "#RRGGBB".
	ForegroundColor *string `json:"foreground_color,omitempty"`

	// PreviewColor is used to draw detected grid lines in previews.
	PreviewColor *string `json:"preview_color,omitempty"`

	// DarkThreshold is the gray level below which grid detection counts a
	// pixel as dark (0-255).
	DarkThreshold *int `json:"dark_threshold,omitempty"`

	// MinLineCoverage is the fraction of dark pixels a row or column needs to
	// be taken as a grid line, in (0, 1].
	MinLineCoverage *float64 `json:"min_line_coverage,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// DefaultGridRemoval returns a config with every field set to its default.
func DefaultGridRemoval() *GridRemoval {
	return &GridRemoval{
		CloseDistance:   ptrFloat64(DefaultCloseDistance),
		ForegroundColor: ptrString(DefaultForegroundColor),
		PreviewColor:    ptrString(DefaultPreviewColor),
		DarkThreshold:   ptrInt(DefaultDarkThreshold),
		MinLineCoverage: ptrFloat64(DefaultMinLineCoverage),
	}
}

// LoadGridRemoval reads a JSON config file. Omitted fields keep their
// defaults.
func LoadGridRemoval(path string) (*GridRemoval, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &GridRemoval{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv loads the file named by GRID_HEAL_CONFIG, or returns the defaults
// when the variable is unset.
func FromEnv() (*GridRemoval, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return DefaultGridRemoval(), nil
	}
	return LoadGridRemoval(path)
}

// Merge returns a copy of c with every field set in override taking
// precedence.
func (c *GridRemoval) Merge(override *GridRemoval) *GridRemoval {
	out := *c
	if override == nil {
		return &out
	}
	if override.CloseDistance != nil {
		out.CloseDistance = override.CloseDistance
	}
	if override.ForegroundColor != nil {
		out.ForegroundColor = override.ForegroundColor
	}
	if override.PreviewColor != nil {
		out.PreviewColor = override.PreviewColor
	}
	if override.DarkThreshold != nil {
		out.DarkThreshold = override.DarkThreshold
	}
	if override.MinLineCoverage != nil {
		out.MinLineCoverage = override.MinLineCoverage
	}
	return &out
}

// Validate checks every field that is set.
func (c *GridRemoval) Validate() error {
	if c.CloseDistance != nil && *c.CloseDistance < 0 {
		return fmt.Errorf("%w: close_distance must be non-negative, got %g", ErrInvalid, *c.CloseDistance)
	}
	if c.ForegroundColor != nil {
		if _, err := colorful.Hex(*c.ForegroundColor); err != nil {
			return fmt.Errorf("%w: foreground_color %q: %v", ErrInvalid, *c.ForegroundColor, err)
		}
	}
	if c.PreviewColor != nil {
		if _, err := colorful.Hex(*c.PreviewColor); err != nil {
			return fmt.Errorf("%w: preview_color %q: %v", ErrInvalid, *c.PreviewColor, err)
		}
	}
	if c.DarkThreshold != nil && (*c.DarkThreshold < 0 || *c.DarkThreshold > 255) {
		return fmt.Errorf("%w: dark_threshold must be between 0 and 255, got %d", ErrInvalid, *c.DarkThreshold)
	}
	if c.MinLineCoverage != nil && (*c.MinLineCoverage <= 0 || *c.MinLineCoverage > 1) {
		return fmt.Errorf("%w: min_line_coverage must be in (0, 1], got %g", ErrInvalid, *c.MinLineCoverage)
	}
	return nil
}

// GetCloseDistance returns close_distance or the default.
func (c *GridRemoval) GetCloseDistance() float64 {
	if c.CloseDistance == nil {
		return DefaultCloseDistance
	}
	return *c.CloseDistance
}

// GetForegroundColor returns the parsed foreground color, falling back to
// black when unset or malformed.
func (c *GridRemoval) GetForegroundColor() colorful.Color {
	return parseColor(c.ForegroundColor, DefaultForegroundColor)
}

// GetPreviewColor returns the parsed preview color, falling back to red.
func (c *GridRemoval) GetPreviewColor() colorful.Color {
	return parseColor(c.PreviewColor, DefaultPreviewColor)
}

// GetDarkThreshold returns dark_threshold or the default.
func (c *GridRemoval) GetDarkThreshold() uint8 {
	if c.DarkThreshold == nil || *c.DarkThreshold < 0 || *c.DarkThreshold > 255 {
		return DefaultDarkThreshold
	}
	return uint8(*c.DarkThreshold)
}

// GetMinLineCoverage returns min_line_coverage or the default.
func (c *GridRemoval) GetMinLineCoverage() float64 {
	if c.MinLineCoverage == nil {
		return DefaultMinLineCoverage
	}
	return *c.MinLineCoverage
}

func parseColor(hex *string, fallback string) colorful.Color {
	if hex != nil {
		if col, err := colorful.Hex(*hex); err == nil {
			return col
		}
	}
	col, _ := colorful.Hex(fallback)
	return col
}
