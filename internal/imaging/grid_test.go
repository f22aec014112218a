package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func decodePreview(t *testing.T, result *GridPreviewResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	return img
}

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestGridPreview(t *testing.T) {
	img := solidImage(40, 30, color.White)
	red := color.RGBA{255, 0, 0, 255}

	result, err := GridPreview(img, []int{10, 20}, []int{5}, red, 1.0, nil)
	if err != nil {
		t.Fatalf("GridPreview failed: %v", err)
	}

	if result.Width != 40 || result.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", result.Width, result.Height)
	}
	if result.Rows != 2 || result.Cols != 1 {
		t.Errorf("lines: got %d rows %d cols, want 2 rows 1 col", result.Rows, result.Cols)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	preview := decodePreview(t, result)
	tests := []struct {
		name    string
		x, y    int
		r, g, b uint8
	}{
		{"row line", 30, 10, 255, 0, 0},
		{"second row line", 0, 20, 255, 0, 0},
		{"column line", 5, 2, 255, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := rgb8(preview.At(tt.x, tt.y))
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("(%d,%d): got (%d,%d,%d), want (%d,%d,%d)", tt.x, tt.y, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}

	if r, _, _ := rgb8(preview.At(15, 15)); r < 250 {
		t.Errorf("background should stay white, got %d", r)
	}
}

func TestGridPreview_IsGrayscale(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{0, 0, 255, 255})

	result, err := GridPreview(img, nil, nil, color.Black, 1.0, nil)
	if err != nil {
		t.Fatalf("GridPreview failed: %v", err)
	}

	r, g, b := rgb8(decodePreview(t, result).At(4, 4))
	if r != g || g != b {
		t.Errorf("background not gray: (%d,%d,%d)", r, g, b)
	}
}

func TestGridPreview_OffsetBounds(t *testing.T) {
	base := solidImage(20, 20, color.White)
	sub := base.SubImage(image.Rect(5, 5, 15, 15))
	blue := color.RGBA{0, 0, 255, 255}

	result, err := GridPreview(sub, []int{7}, nil, blue, 1.0, nil)
	if err != nil {
		t.Fatalf("GridPreview failed: %v", err)
	}

	// Absolute row 7 is preview row 2.
	preview := decodePreview(t, result)
	if r, g, b := rgb8(preview.At(0, 2)); r != 0 || g != 0 || b != 255 {
		t.Errorf("line pixel: got (%d,%d,%d), want blue", r, g, b)
	}
	if _, err := GridPreview(sub, []int{2}, nil, blue, 1.0, nil); err == nil {
		t.Error("row outside sub-image bounds should fail")
	}
}

func TestGridPreview_Scale(t *testing.T) {
	img := solidImage(40, 20, color.White)

	tests := []struct {
		scale         float64
		width, height int
	}{
		{0.5, 20, 10},
		{2, 80, 40},
		{0.01, 1, 1},
	}

	for _, tt := range tests {
		result, err := GridPreview(img, []int{3}, nil, color.Black, tt.scale, nil)
		if err != nil {
			t.Fatalf("GridPreview(scale=%g) failed: %v", tt.scale, err)
		}
		if result.Width != tt.width || result.Height != tt.height {
			t.Errorf("scale %g: got %dx%d, want %dx%d", tt.scale, result.Width, result.Height, tt.width, tt.height)
		}
	}
}

func TestGridPreview_Region(t *testing.T) {
	base := solidImage(30, 30, color.White)
	sub := base.SubImage(image.Rect(10, 10, 30, 30))
	red := color.RGBA{255, 0, 0, 255}

	region := &Region{X1: 12, Y1: 14, X2: 20, Y2: 18}
	result, err := GridPreview(sub, []int{15}, []int{19}, red, 2.0, region)
	if err != nil {
		t.Fatalf("GridPreview failed: %v", err)
	}

	if result.Width != 16 || result.Height != 8 {
		t.Fatalf("dimensions: got %dx%d, want 16x8", result.Width, result.Height)
	}

	// Row 15 is region row 1, scaled rows 2-3. Column 19 is region column 7,
	// scaled columns 14-15.
	preview := decodePreview(t, result)
	if r, g, _ := rgb8(preview.At(0, 2)); r != 255 || g != 0 {
		t.Error("grid row missing from region")
	}
	if r, g, _ := rgb8(preview.At(15, 6)); r != 255 || g != 0 {
		t.Error("grid column missing from region")
	}
	if _, g, _ := rgb8(preview.At(4, 6)); g < 250 {
		t.Error("background inside region should be white")
	}

	bad := []Region{
		{X1: 5, Y1: 14, X2: 20, Y2: 18},
		{X1: 12, Y1: 14, X2: 31, Y2: 18},
		{X1: 15, Y1: 14, X2: 15, Y2: 18},
	}
	for _, r := range bad {
		if _, err := GridPreview(sub, nil, nil, red, 1.0, &r); err == nil {
			t.Errorf("region %+v should fail", r)
		}
	}
}

func TestGridPreview_Errors(t *testing.T) {
	img := solidImage(10, 10, color.White)

	tests := []struct {
		name  string
		rows  []int
		cols  []int
		scale float64
	}{
		{"zero scale", nil, nil, 0},
		{"negative scale", nil, nil, -1},
		{"huge scale", nil, nil, MaxPreviewScale + 1},
		{"row too large", []int{10}, nil, 1},
		{"negative row", []int{-1}, nil, 1},
		{"column too large", nil, []int{12}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GridPreview(img, tt.rows, tt.cols, color.Black, tt.scale, nil); err == nil {
				t.Error("expected error")
			}
		})
	}

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := GridPreview(empty, nil, nil, color.Black, 1, nil); err == nil {
		t.Error("empty image should fail")
	}
}
