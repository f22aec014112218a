package detection

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/segment"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrCoverage is returned when the minimum line coverage is outside (0, 1].
	ErrCoverage = errors.New("min line coverage must be in (0, 1]")
)

// Mask is a thresholded view of an image that answers whether a pixel is
// dark. Coordinates are absolute coordinates of the source image.
type Mask struct {
	gray   *image.Gray
	origin image.Point
}

// DarkMask thresholds img at level. Pixels whose luminance is below level are
// dark.
func DarkMask(img image.Image, level uint8) *Mask {
	return &Mask{
		gray:   segment.Threshold(img, level),
		origin: img.Bounds().Min,
	}
}

// Dark reports whether the pixel at (x, y) is dark.
func (m *Mask) Dark(x, y int) bool {
	b := m.gray.Bounds()
	return m.gray.Pix[m.gray.PixOffset(b.Min.X+x-m.origin.X, b.Min.Y+y-m.origin.Y)] == 0
}

// GridLines describes the grid found in an image.
type GridLines struct {
	// Rows are the y coordinates of horizontal grid lines, ascending.
	Rows []int `json:"rows"`

	// Cols are the x coordinates of vertical grid lines, ascending.
	Cols []int `json:"cols"`

	// RowPitch and ColPitch are the mean spacing between consecutive lines,
	// zero with fewer than two lines.
	RowPitch float64 `json:"row_pitch"`
	ColPitch float64 `json:"col_pitch"`

	// Confidence is the mean dark coverage of the detected lines (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
}

// Count returns the total number of detected lines.
func (g *GridLines) Count() int {
	return len(g.Rows) + len(g.Cols)
}

// DetectGridLines finds axis-aligned grid lines by projection profile.
//
// The image is thresholded at darkThreshold and the dark pixels on every row
// and column are counted. A row (column) whose dark fraction is at least
// minCoverage is a grid line. Curves rarely span the whole plot, so a high
// coverage separates the grid from the data; a curve that does run straight
// across the full width will be reported as a grid line.
func DetectGridLines(img image.Image, darkThreshold uint8, minCoverage float64) (*GridLines, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	if minCoverage <= 0 || minCoverage > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrCoverage, minCoverage)
	}

	width, height := bounds.Dx(), bounds.Dy()
	mask := DarkMask(img, darkThreshold)

	rowDark := make([]int, height)
	colDark := make([]int, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask.Dark(bounds.Min.X+x, bounds.Min.Y+y) {
				rowDark[y]++
				colDark[x]++
			}
		}
	}

	result := &GridLines{Rows: []int{}, Cols: []int{}}
	var coverage []float64

	for y, n := range rowDark {
		c := float64(n) / float64(width)
		if c >= minCoverage {
			result.Rows = append(result.Rows, bounds.Min.Y+y)
			coverage = append(coverage, c)
		}
	}
	for x, n := range colDark {
		c := float64(n) / float64(height)
		if c >= minCoverage {
			result.Cols = append(result.Cols, bounds.Min.X+x)
			coverage = append(coverage, c)
		}
	}

	if len(coverage) > 0 {
		result.Confidence = stat.Mean(coverage, nil)
	}
	result.RowPitch = meanPitch(result.Rows)
	result.ColPitch = meanPitch(result.Cols)

	return result, nil
}

func meanPitch(lines []int) float64 {
	if len(lines) < 2 {
		return 0
	}
	gaps := make([]float64, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		gaps[i-1] = float64(lines[i] - lines[i-1])
	}
	return stat.Mean(gaps, nil)
}
