package healer

import "image/draw"

// connectCloseGroups draws a line between the representative pixels of every
// pair of groups whose centroids are strictly closer than the close
// distance. It returns the number of pairs connected and pixels drawn.
// Every pair is checked.
func (h *Healer) connectCloseGroups(dst draw.Image) (pairs, drawn int) {
	closeSquared := h.cfg.CloseDistance * h.cfg.CloseDistance
	origin := dst.Bounds().Min

	for i := range h.groups {
		from := h.groups[i]
		for j := i + 1; j < len(h.groups); j++ {
			to := h.groups[j]

			dRow := from.Centroid.Row - to.Centroid.Row
			dCol := from.Centroid.Col - to.Centroid.Col
			if dRow*dRow+dCol*dCol >= closeSquared {
				continue
			}
			pairs++

			count := 1 + max(abs(from.Representative.Row-to.Representative.Row),
				abs(from.Representative.Col-to.Representative.Col))
			if count == 1 {
				continue
			}

			for k := 0; k < count; k++ {
				s := float64(k) / float64(count-1)
				row := int(0.5 + (1-s)*float64(from.Representative.Row) + s*float64(to.Representative.Row))
				col := int(0.5 + (1-s)*float64(from.Representative.Col) + s*float64(to.Representative.Col))

				h.pixels[h.index(row, col)] = PixelState{Kind: Healed}
				dst.Set(origin.X+col, origin.Y+row, h.cfg.Foreground)
				drawn++
			}

			h.log.Printf("healer: joined group %d (%d,%d) to group %d (%d,%d)",
				from.ID, from.Representative.Row, from.Representative.Col,
				to.ID, to.Representative.Row, to.Representative.Col)
		}
	}

	return pairs, drawn
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
