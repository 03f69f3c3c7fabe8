package gridgraph

// Regions finds the contiguous areas of free cells (neither forbidden nor in
// the buffer) inside the border's bounds, according to conn.
// Each region lists cells in BFS discovery order; regions are ordered by
// their first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8, plus buffer lookups.
// Memory: O(W·H) for visited flags and output.
func Regions(border *BufferBorder, conn Connectivity) ([][]Cell, error) {
	if border == nil {
		return nil, ErrNilBorder
	}
	bounds := border.bounds
	seen := make([]bool, bounds.Len())
	offsets := conn.offsets()
	var regions [][]Cell

	for i := 0; i < bounds.Len(); i++ {
		if seen[i] {
			continue
		}
		start := bounds.Cell(i)
		ok, err := border.free(start)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		// BFS to collect the region
		seen[i] = true
		queue := []Cell{start}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range offsets {
				v := Cell{X: u.X + d[0], Y: u.Y + d[1]}
				vi, err := bounds.Index(v)
				if err != nil || seen[vi] {
					continue
				}
				if free, _ := border.free(v); !free {
					continue
				}
				seen[vi] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions, nil
}
