package life

import "life-ca/internal/figure"

// Figures splits the live cells into connected figures using the same
// adjacency as Advance. Cells are scanned row-major and each figure is
// collected with an explicit stack, so large regions cannot exhaust the
// goroutine stack.
//
// On wrapped axes a figure that crosses the seam is reported with unwrapped
// coordinates (they may fall outside the board) so that its shape stays
// contiguous for classification.
func (b *Board) Figures() []figure.Figure {
	cells := b.cur.Cells()
	w, h := b.cur.W, b.cur.H
	visited := make([]bool, len(cells))
	pos := make([]figure.Point, len(cells))

	var (
		figs  []figure.Figure
		stack []int32
	)
	for i, v := range cells {
		if v == 0 || visited[i] {
			continue
		}
		visited[i] = true
		x, y := b.cur.Coords(i)
		pos[i] = figure.Point{X: x, Y: y}
		stack = append(stack[:0], int32(i))

		var pts []figure.Point
		for len(stack) > 0 {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pts = append(pts, pos[j])

			jx, jy := b.cur.Coords(int(j))
			for _, k := range b.graph.of(int(j)) {
				if cells[k] == 0 || visited[k] {
					continue
				}
				visited[k] = true
				kx, ky := b.cur.Coords(int(k))
				pos[k] = figure.Point{
					X: pos[j].X + seamDelta(kx-jx, w),
					Y: pos[j].Y + seamDelta(ky-jy, h),
				}
				stack = append(stack, k)
			}
		}
		figs = append(figs, figure.New(pts...))
	}
	return figs
}

// seamDelta turns a raw coordinate difference between adjacent cells into a
// step of -1, 0 or 1, undoing a wrap across an axis of length n.
func seamDelta(d, n int) int {
	switch {
	case d > 1:
		return d - n
	case d < -1:
		return d + n
	default:
		return d
	}
}
