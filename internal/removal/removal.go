package removal

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/grid-heal-mcp/internal/config"
	"github.com/ironsheep/grid-heal-mcp/internal/detection"
	"github.com/ironsheep/grid-heal-mcp/internal/healer"
	"github.com/ironsheep/grid-heal-mcp/internal/imaging"
)

// ErrLineOutOfBounds is returned when a supplied grid line lies outside the
// image.
var ErrLineOutOfBounds = errors.New("grid line outside image")

// Paper is painted over erased grid pixels.
var Paper = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Stats summarizes one removal.
type Stats struct {
	Rows           int `json:"rows"`
	Cols           int `json:"cols"`
	ErasedPixels   int `json:"erased_pixels"`
	Groups         int `json:"groups"`
	ConnectedPairs int `json:"connected_pairs"`
	PixelsDrawn    int `json:"pixels_drawn"`
}

// Result is the healed image and what it took to produce it.
type Result struct {
	// Image starts at (0,0) regardless of the source bounds.
	Image *image.NRGBA
	Lines *detection.GridLines
	Stats Stats
}

// Remove erases the grid from a copy of img and heals the curves it cut.
//
// When lines is nil the grid is detected with the thresholds in cfg;
// otherwise the supplied rows and columns are used as-is, in absolute image
// coordinates. Only dark pixels on a grid line are erased, so background
// showing through a faint or broken line is left alone. img is not modified.
func Remove(img image.Image, lines *detection.GridLines, cfg *config.GridRemoval, logger healer.Logger) (*Result, error) {
	if cfg == nil {
		cfg = config.DefaultGridRemoval()
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, detection.ErrEmptyImage
	}

	if lines == nil {
		detected, err := detection.DetectGridLines(img, cfg.GetDarkThreshold(), cfg.GetMinLineCoverage())
		if err != nil {
			return nil, fmt.Errorf("grid detection failed: %w", err)
		}
		lines = detected
	} else if err := checkLines(bounds, lines); err != nil {
		return nil, err
	}

	opts := []healer.Option{}
	if logger != nil {
		opts = append(opts, healer.WithLogger(logger))
	}
	h := healer.New(img, healer.Config{
		CloseDistance: cfg.GetCloseDistance(),
		Foreground:    cfg.GetForegroundColor(),
	}, opts...)

	out := imaging.Clone(img)
	mask := detection.DarkMask(img, cfg.GetDarkThreshold())
	erased := make([]bool, bounds.Dx()*bounds.Dy())

	erase := func(row, col int) {
		i := row*bounds.Dx() + col
		if erased[i] || !mask.Dark(bounds.Min.X+col, bounds.Min.Y+row) {
			return
		}
		erased[i] = true
		out.SetNRGBA(col, row, Paper)
		h.ErasePixel(row, col)
	}

	for _, y := range lines.Rows {
		for col := 0; col < bounds.Dx(); col++ {
			erase(y-bounds.Min.Y, col)
		}
	}
	for _, x := range lines.Cols {
		for row := 0; row < bounds.Dy(); row++ {
			erase(row, x-bounds.Min.X)
		}
	}

	stats := Stats{
		Rows: len(lines.Rows),
		Cols: len(lines.Cols),
	}
	for _, e := range erased {
		if e {
			stats.ErasedPixels++
		}
	}

	report := h.Heal(out)
	stats.Groups = report.Groups
	stats.ConnectedPairs = report.ConnectedPairs
	stats.PixelsDrawn = report.PixelsDrawn

	if logger != nil {
		logger.Printf("removal: %d rows %d cols, erased %d pixels, healed %d pairs",
			stats.Rows, stats.Cols, stats.ErasedPixels, stats.ConnectedPairs)
	}

	return &Result{Image: out, Lines: lines, Stats: stats}, nil
}

func checkLines(bounds image.Rectangle, lines *detection.GridLines) error {
	for _, y := range lines.Rows {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			return fmt.Errorf("%w: row %d not in [%d,%d)", ErrLineOutOfBounds, y, bounds.Min.Y, bounds.Max.Y)
		}
	}
	for _, x := range lines.Cols {
		if x < bounds.Min.X || x >= bounds.Max.X {
			return fmt.Errorf("%w: column %d not in [%d,%d)", ErrLineOutOfBounds, x, bounds.Min.X, bounds.Max.X)
		}
	}
	return nil
}
