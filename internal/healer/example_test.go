package healer_test

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/ironsheep/grid-heal-mcp/internal/healer"
)

// ExampleHealer heals a horizontal curve on row 2 that a vertical grid line
// at column 3 cut in two.
func ExampleHealer() {
	src := image.NewGray(image.Rect(0, 0, 7, 5))
	draw.Draw(src, src.Bounds(), image.White, image.Point{}, draw.Src)
	for x := 0; x < 7; x++ {
		src.SetGray(x, 2, color.Gray{Y: 0})
	}

	dst := image.NewGray(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)

	h := healer.New(src, healer.Config{CloseDistance: 3})
	for row := 0; row < 5; row++ {
		h.ErasePixel(row, 3)
		dst.SetGray(3, row, color.Gray{Y: 255})
	}

	report := h.Heal(dst)
	fmt.Printf("groups=%d pairs=%d drawn=%d\n", report.Groups, report.ConnectedPairs, report.PixelsDrawn)
	for _, g := range h.Groups() {
		fmt.Printf("group %d at (%d,%d)\n", g.ID, g.Representative.Row, g.Representative.Col)
	}
	fmt.Println(h.State(2, 3), dst.GrayAt(3, 2).Y)
	// Output:
	// groups=2 pairs=1 drawn=3
	// group 100 at (2,2)
	// group 101 at (2,4)
	// healed 0
}
