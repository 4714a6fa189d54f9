// Package life implements Conway's Game of Life on a finite board whose edges
// follow one of several topologies, together with the board text format,
// population stability detection and extraction of connected figures.
package life

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"life-ca/internal/core"
	"life-ca/internal/figure"
)

// NextState applies the B3/S23 rule: a live cell survives with two or three
// live neighbours, a dead cell is born with exactly three.
func NextState(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}

// Board is a fixed-size grid of cells with a precomputed neighbour graph.
// Cell values are 0 (dead) or 1 (alive), stored row-major.
type Board struct {
	topology Topology
	cellSize int

	cur   *core.ByteGrid
	nxt   *core.ByteGrid
	graph neighborGraph

	generation int
	workers    int
}

// MaxCells bounds the number of cells on a board so that neighbour indices
// fit in int32.
const MaxCells = math.MaxInt32 / 8

// minWrapped is the shortest wrapped axis on which every cell still has
// distinct neighbours on both sides.
const minWrapped = 3

// New creates an empty board of (width/cellSize) x (height/cellSize) cells.
func New(width, height, cellSize int, topology Topology) (*Board, error) {
	cols, rows, err := boardDims(width, height, cellSize, topology)
	if err != nil {
		return nil, err
	}
	b := &Board{
		topology: topology,
		cellSize: cellSize,
		cur:      core.NewByteGrid(cols, rows),
		nxt:      core.NewByteGrid(cols, rows),
	}
	b.graph = buildNeighbors(b.cur, topology)
	return b, nil
}

// boardDims validates a board request and returns its size in cells without
// allocating anything.
func boardDims(width, height, cellSize int, topology Topology) (cols, rows int, err error) {
	if cellSize <= 0 {
		return 0, 0, fmt.Errorf("%w: cell size %d", ErrInvalidDimensions, cellSize)
	}
	cols, rows = width/cellSize, height/cellSize
	if width <= 0 || height <= 0 || cols < 1 || rows < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d with cell size %d", ErrInvalidDimensions, width, height, cellSize)
	}
	if int(topology) >= len(topologyNames) {
		return 0, 0, fmt.Errorf("%w: unknown topology %d", ErrInvalidConfig, uint8(topology))
	}
	if cols > MaxCells/rows {
		return 0, 0, fmt.Errorf("%w: %dx%d cells exceeds %d", ErrInvalidDimensions, cols, rows, MaxCells)
	}
	wrapX, wrapY := topology.wraps()
	if (wrapX && cols < minWrapped) || (wrapY && rows < minWrapped) {
		return 0, 0, fmt.Errorf("%w: %v needs at least %d cells along each wrapped axis, got %dx%d",
			ErrInvalidDimensions, topology, minWrapped, cols, rows)
	}
	return cols, rows, nil
}

// NewFromConfig creates a board sized by cfg and seeds it with
// cfg.LiveDensity live cells using cfg.Seed.
func NewFromConfig(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := New(cfg.Width, cfg.Height, cfg.CellSize, cfg.Topology)
	if err != nil {
		return nil, err
	}
	b.SetWorkers(cfg.Workers)
	b.Randomize(core.NewRNG(cfg.Seed), cfg.LiveDensity)
	return b, nil
}

// Columns returns the number of cells per row.
func (b *Board) Columns() int { return b.cur.W }

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.cur.H }

// Width returns the board width in pixels (columns times cell size).
func (b *Board) Width() int { return b.cur.W * b.cellSize }

// Height returns the board height in pixels.
func (b *Board) Height() int { return b.cur.H * b.cellSize }

// CellSize returns the pixel size of one cell.
func (b *Board) CellSize() int { return b.cellSize }

// Topology returns the board's edge rule.
func (b *Board) Topology() Topology { return b.topology }

// Size returns the grid dimensions in cells.
func (b *Board) Size() core.Size { return core.Size{W: b.cur.W, H: b.cur.H} }

// Generation returns how many times the board has advanced.
func (b *Board) Generation() int { return b.generation }

// Cells exposes the current generation. Callers must treat it as read-only.
func (b *Board) Cells() []uint8 { return b.cur.Cells() }

// Population returns the number of live cells.
func (b *Board) Population() int { return b.cur.Count() }

// Alive reports whether the cell at (x, y) is alive. Out of range is dead.
func (b *Board) Alive(x, y int) bool {
	if !b.cur.In(x, y) {
		return false
	}
	return b.cur.Cells()[b.cur.Index(x, y)] != 0
}

// Set changes the state of the cell at (x, y); out of range is ignored.
func (b *Board) Set(x, y int, alive bool) {
	if !b.cur.In(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	b.cur.Cells()[b.cur.Index(x, y)] = v
}

// Randomize makes each cell alive with probability density.
func (b *Board) Randomize(rng *core.RNG, density float64) {
	rng.FillDensity(b.cur.Cells(), density)
}

// Neighbors returns the coordinates adjacent to (x, y) under the topology.
func (b *Board) Neighbors(x, y int) []figure.Point {
	if !b.cur.In(x, y) {
		return nil
	}
	adj := b.graph.of(b.cur.Index(x, y))
	out := make([]figure.Point, len(adj))
	for i, j := range adj {
		nx, ny := b.cur.Coords(int(j))
		out[i] = figure.Point{X: nx, Y: ny}
	}
	return out
}

// SetWorkers sets how many goroutines evaluate a generation. Values below two
// evaluate on the calling goroutine.
func (b *Board) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	b.workers = n
}

// Advance moves the board one generation forward. Every cell's next state is
// computed from the current generation before any cell is updated.
func (b *Board) Advance() {
	b.evaluate()
	b.cur, b.nxt = b.nxt, b.cur
	b.generation++
}

func (b *Board) evaluate() {
	rows := b.cur.H
	if b.workers <= 1 || rows < 2 {
		b.evaluateRows(0, rows)
		return
	}
	band := (rows + b.workers - 1) / b.workers
	var eg errgroup.Group
	for start := 0; start < rows; start += band {
		end := min(start+band, rows)
		eg.Go(func() error {
			b.evaluateRows(start, end)
			return nil
		})
	}
	// Workers never fail; Wait is the barrier before the commit.
	_ = eg.Wait()
}

func (b *Board) evaluateRows(y0, y1 int) {
	cur, nxt := b.cur.Cells(), b.nxt.Cells()
	w := b.cur.W
	for i := y0 * w; i < y1*w; i++ {
		live := 0
		for _, j := range b.graph.of(i) {
			live += int(cur[j])
		}
		nxt[i] = 0
		if NextState(cur[i] != 0, live) {
			nxt[i] = 1
		}
	}
}
