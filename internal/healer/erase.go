package healer

// ErasePixel records that the pixel at (row, col) was removed by the grid
// pass. Foreground pixels touching it become Adjacent candidates for
// grouping; neighbours in any other state are left alone.
func (h *Healer) ErasePixel(row, col int) {
	h.mustContain(row, col)
	if h.healed {
		panic("healer: ErasePixel after Heal")
	}

	h.pixels[h.index(row, col)] = PixelState{Kind: Removed}

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if !h.inBounds(r, c) {
				continue
			}
			i := h.index(r, c)
			if h.pixels[i].Kind == Foreground {
				h.pixels[i] = PixelState{Kind: Adjacent}
			}
		}
	}
}
