package healer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Config holds the grid-removal settings the healer depends on.
type Config struct {
	// CloseDistance is the centroid separation, in pixels, below which two
	// boundary groups are reconnected.
	CloseDistance float64

	// Foreground is the color painted into the destination image for healed
	// pixels. Nil means black.
	Foreground color.Color
}

// Logger receives diagnostic messages. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Option configures a Healer.
type Option func(*Healer)

// WithLogger routes the healer's diagnostics to l.
func WithLogger(l Logger) Option {
	return func(h *Healer) {
		if l != nil {
			h.log = l
		}
	}
}

// Report summarizes one Heal call.
type Report struct {
	Groups         int `json:"groups"`
	ConnectedPairs int `json:"connected_pairs"`
	PixelsDrawn    int `json:"pixels_drawn"`
}

// Healer owns the pixel grid for a single healing pass over one image.
type Healer struct {
	width, height int
	pixels        []PixelState

	// groups is indexed by id - FirstGroupID.
	groups []BoundaryGroup
	next   GroupID

	cfg    Config
	log    Logger
	healed bool
}

// New classifies img into a pixel grid. It panics if img has no pixels.
func New(img image.Image, cfg Config, opts ...Option) *Healer {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		panic(fmt.Sprintf("healer: degenerate image bounds %v", bounds))
	}
	if cfg.Foreground == nil {
		cfg.Foreground = color.Black
	}

	h := &Healer{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		next:   FirstGroupID,
		cfg:    cfg,
		log:    nopLogger{},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.pixels = classify(img)
	h.log.Printf("healer: classified %dx%d image", h.width, h.height)
	return h
}

// Width returns the number of grid columns.
func (h *Healer) Width() int { return h.width }

// Height returns the number of grid rows.
func (h *Healer) Height() int { return h.height }

// State returns the state of the cell at (row, col).
func (h *Healer) State(row, col int) PixelState {
	h.mustContain(row, col)
	return h.pixels[h.index(row, col)]
}

// Groups returns the boundary groups found by Heal, in id order. It is empty
// before Heal runs.
func (h *Healer) Groups() []BoundaryGroup {
	out := make([]BoundaryGroup, len(h.groups))
	copy(out, h.groups)
	return out
}

// Group returns the boundary group with the given id.
func (h *Healer) Group(id GroupID) (BoundaryGroup, bool) {
	i := int(id - FirstGroupID)
	if i < 0 || i >= len(h.groups) {
		return BoundaryGroup{}, false
	}
	return h.groups[i], true
}

// Heal groups the adjacent pixels left by ErasePixel and draws connecting
// lines between close groups into dst. dst must be the same size as the
// classified image. Heal may be called only once.
func (h *Healer) Heal(dst draw.Image) Report {
	if h.healed {
		panic("healer: Heal called twice")
	}
	if b := dst.Bounds(); b.Dx() != h.width || b.Dy() != h.height {
		panic(fmt.Sprintf("healer: destination is %dx%d, grid is %dx%d", b.Dx(), b.Dy(), h.width, h.height))
	}
	h.healed = true

	h.log.Printf("healer: heal")
	h.groupAdjacentPixels()
	pairs, drawn := h.connectCloseGroups(dst)

	return Report{
		Groups:         len(h.groups),
		ConnectedPairs: pairs,
		PixelsDrawn:    drawn,
	}
}

func (h *Healer) index(row, col int) int {
	return row*h.width + col
}

func (h *Healer) inBounds(row, col int) bool {
	return row >= 0 && row < h.height && col >= 0 && col < h.width
}

func (h *Healer) mustContain(row, col int) {
	if !h.inBounds(row, col) {
		panic(fmt.Sprintf("healer: (%d,%d) outside %dx%d grid", row, col, h.height, h.width))
	}
}
