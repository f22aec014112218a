package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region is a rectangle in absolute image coordinates. (X1,Y1) is inclusive,
// (X2,Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// checkRegion verifies r is a non-empty rectangle inside bounds.
func checkRegion(bounds image.Rectangle, r Region) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if !r.Rect().In(bounds) {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// cropRegion cuts r out of a zero-based copy of an image whose original
// bounds were bounds.
func cropRegion(img *image.NRGBA, bounds image.Rectangle, r Region) *image.NRGBA {
	return imaging.Crop(img, r.Rect().Sub(bounds.Min))
}
