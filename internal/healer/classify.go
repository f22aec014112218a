package healer

import (
	"image"
	"image/color"
)

// BackgroundThreshold is the gray level above which a pixel is background.
const BackgroundThreshold = 128

// Gray returns the 8-bit intensity of (r, g, b) using the 11:16:5 weighting.
// The components are non-premultiplied 8-bit values.
func Gray(r, g, b uint8) uint8 {
	return uint8((uint32(r)*11 + uint32(g)*16 + uint32(b)*5) / 32)
}

// classify maps every pixel of img to Background or Foreground. Alpha is
// ignored: a transparent pixel is classified by its color alone.
func classify(img image.Image) []PixelState {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]PixelState, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if Gray(c.R, c.G, c.B) > BackgroundThreshold {
				pixels[y*width+x] = PixelState{Kind: Background}
			} else {
				pixels[y*width+x] = PixelState{Kind: Foreground}
			}
		}
	}
	return pixels
}
