package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// MaxPreviewScale bounds the preview scale factor.
const MaxPreviewScale = 4.0

// GridPreviewResult contains the preview image with grid lines highlighted.
type GridPreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// GridPreview renders a grayscale copy of img with the given grid rows and
// columns painted in lineColor, so the lines a removal would erase can be
// checked by eye. rows and cols are absolute y and x coordinates in img.
//
// When region is non-nil only that part of the image is returned, which is
// the quickest way to inspect a single crossing. The preview is then scaled
// by scale (nearest neighbour, so one-pixel lines stay visible) and encoded
// as PNG.
func GridPreview(img image.Image, rows, cols []int, lineColor color.Color, scale float64, region *Region) (*GridPreviewResult, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}
	if scale <= 0 || scale > MaxPreviewScale {
		return nil, fmt.Errorf("scale must be in (0, %g], got %g", MaxPreviewScale, scale)
	}
	for _, y := range rows {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			return nil, fmt.Errorf("grid row %d outside image rows [%d,%d)", y, bounds.Min.Y, bounds.Max.Y)
		}
	}
	for _, x := range cols {
		if x < bounds.Min.X || x >= bounds.Max.X {
			return nil, fmt.Errorf("grid column %d outside image columns [%d,%d)", x, bounds.Min.X, bounds.Max.X)
		}
	}
	if region != nil {
		if err := checkRegion(bounds, *region); err != nil {
			return nil, err
		}
	}

	gray := effect.Grayscale(img)
	preview := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(preview, preview.Bounds(), gray, gray.Bounds().Min, draw.Src)

	width, height := bounds.Dx(), bounds.Dy()
	for _, y := range rows {
		for x := 0; x < width; x++ {
			preview.Set(x, y-bounds.Min.Y, lineColor)
		}
	}
	for _, x := range cols {
		for y := 0; y < height; y++ {
			preview.Set(x-bounds.Min.X, y, lineColor)
		}
	}

	out := preview
	if region != nil {
		out = cropRegion(out, bounds, *region)
	}
	if scale != 1.0 {
		w := max(1, int(float64(out.Bounds().Dx())*scale))
		h := max(1, int(float64(out.Bounds().Dy())*scale))
		out = imaging.Resize(out, w, h, imaging.NearestNeighbor)
	}

	encoded, err := EncodePNGBase64(out)
	if err != nil {
		return nil, err
	}

	return &GridPreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Rows:        len(rows),
		Cols:        len(cols),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
