package healer

// groupAdjacentPixels labels every 8-connected set of Adjacent pixels with a
// fresh group id and records the group's centroid and representative pixel.
//
// Seeds are found in row-major order, so the representative of each group is
// its first pixel in that order.
func (h *Healer) groupAdjacentPixels() {
	var stack []int

	for row := 0; row < h.height; row++ {
		for col := 0; col < h.width; col++ {
			if h.pixels[h.index(row, col)].Kind != Adjacent {
				continue
			}

			id := h.next
			h.next++

			count := 0
			var rowSum, colSum float64

			// Pixels are labeled when pushed so none is pushed twice.
			stack = append(stack[:0], h.index(row, col))
			h.pixels[h.index(row, col)] = GroupState(id)

			for len(stack) > 0 {
				i := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				r, c := i/h.width, i%h.width
				count++
				rowSum += float64(r)
				colSum += float64(c)

				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						nr, nc := r+dr, c+dc
						if !h.inBounds(nr, nc) {
							continue
						}
						ni := h.index(nr, nc)
						if h.pixels[ni].Kind == Adjacent {
							h.pixels[ni] = GroupState(id)
							stack = append(stack, ni)
						}
					}
				}
			}

			h.groups = append(h.groups, BoundaryGroup{
				ID: id,
				Centroid: Centroid{
					Row: rowSum / float64(count),
					Col: colSum / float64(count),
				},
				Representative: Pixel{Row: row, Col: col},
				Size:           count,
			})
		}
	}

	h.log.Printf("healer: %d boundary groups", len(h.groups))
}
