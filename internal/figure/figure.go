// Package figure holds connected shapes of live cells and matches them
// against a library of named reference shapes up to rotation.
package figure

import (
	"cmp"
	"slices"
)

// Point is an integer lattice coordinate (column, row).
type Point struct {
	X, Y int
}

func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Figure is an immutable set of points kept sorted row-major without
// duplicates, so two figures are equal exactly when their slices are.
type Figure struct {
	pts []Point
}

// New builds a Figure from points in any order; duplicates collapse.
func New(points ...Point) Figure {
	pts := slices.Clone(points)
	slices.SortFunc(pts, comparePoints)
	return Figure{pts: slices.Compact(pts)}
}

// Len returns the number of cells in the figure.
func (f Figure) Len() int { return len(f.pts) }

// Points returns a copy of the figure's points in row-major order.
func (f Figure) Points() []Point { return slices.Clone(f.pts) }

// Contains reports whether p belongs to the figure.
func (f Figure) Contains(p Point) bool {
	_, ok := slices.BinarySearchFunc(f.pts, p, comparePoints)
	return ok
}

// Equal reports set equality.
func (f Figure) Equal(o Figure) bool { return slices.Equal(f.pts, o.pts) }

// Bounds returns the minimum corner and the width/height of the bounding box.
// An empty figure has zero bounds.
func (f Figure) Bounds() (origin Point, w, h int) {
	if len(f.pts) == 0 {
		return Point{}, 0, 0
	}
	lo, hi := f.pts[0], f.pts[0]
	for _, p := range f.pts[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi.X - lo.X + 1, hi.Y - lo.Y + 1
}

// Normalize translates the figure so its bounding box starts at (0,0).
func (f Figure) Normalize() Figure {
	origin, _, _ := f.Bounds()
	if origin == (Point{}) {
		return f
	}
	pts := make([]Point, len(f.pts))
	for i, p := range f.pts {
		pts[i] = Point{X: p.X - origin.X, Y: p.Y - origin.Y}
	}
	// Translation keeps row-major order intact.
	return Figure{pts: pts}
}

// Rotate turns the figure 90 degrees about the origin, mapping (x, y) to
// (y, -x). The result is not normalized.
func (f Figure) Rotate() Figure {
	pts := make([]Point, len(f.pts))
	for i, p := range f.pts {
		pts[i] = Point{X: p.Y, Y: -p.X}
	}
	slices.SortFunc(pts, comparePoints)
	return Figure{pts: pts}
}

// String renders the normalized figure as rows of '0'/'1', the same layout
// the reference files use.
func (f Figure) String() string {
	n := f.Normalize()
	_, w, h := n.Bounds()
	buf := make([]byte, 0, (w+1)*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if n.Contains(Point{X: x, Y: y}) {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
