package life

import (
	"fmt"

	"life-ca/internal/core"
)

// Topology selects which cells count as neighbours at the board edges.
type Topology uint8

const (
	// Grid is a bounded plane: edge cells simply have fewer neighbours.
	Grid Topology = iota
	// Sphere wraps both axes, so every cell has eight neighbours.
	Sphere
	// Cylinder wraps the x axis only.
	Cylinder
)

var topologyNames = [...]string{
	Grid:     "Grid",
	Sphere:   "Sphere",
	Cylinder: "Cylinder",
}

// Topologies lists every supported topology.
func Topologies() []Topology { return []Topology{Grid, Sphere, Cylinder} }

func (t Topology) String() string {
	if int(t) < len(topologyNames) {
		return topologyNames[t]
	}
	return fmt.Sprintf("Topology(%d)", uint8(t))
}

// ParseTopology maps a name such as "Sphere" to its Topology.
func ParseTopology(name string) (Topology, error) {
	for i, n := range topologyNames {
		if n == name {
			return Topology(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown topology %q", ErrMalformed, name)
}

// MarshalText encodes the topology by name.
func (t Topology) MarshalText() ([]byte, error) {
	if int(t) >= len(topologyNames) {
		return nil, fmt.Errorf("%w: unknown topology %d", ErrInvalidConfig, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a topology name.
func (t *Topology) UnmarshalText(b []byte) error {
	v, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Topology) wraps() (x, y bool) {
	switch t {
	case Sphere:
		return true, true
	case Cylinder:
		return true, false
	default:
		return false, false
	}
}

// neighborGraph is the fixed adjacency of a board in compressed form: the
// neighbours of cell i are adj[start[i]:start[i+1]], as indices into the
// board's row-major storage.
type neighborGraph struct {
	start []int32
	adj   []int32
}

func (g *neighborGraph) of(i int) []int32 {
	return g.adj[g.start[i]:g.start[i+1]]
}

// buildNeighbors computes the Moore neighbourhood of every cell under the
// topology. Wrapped axes are at least minWrapped long, so each list holds
// distinct cells other than the cell itself.
func buildNeighbors(grid *core.ByteGrid, t Topology) neighborGraph {
	wrapX, wrapY := t.wraps()
	n := grid.Len()
	g := neighborGraph{
		start: make([]int32, n+1),
		adj:   make([]int32, 0, n*8),
	}
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			self := grid.Index(x, y)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if !grid.In(nx, ny) {
						wx, wy := grid.Wrap(nx, ny)
						if (wx != nx && !wrapX) || (wy != ny && !wrapY) {
							continue
						}
						nx, ny = wx, wy
					}
					g.adj = append(g.adj, int32(grid.Index(nx, ny)))
				}
			}
			g.start[self+1] = int32(len(g.adj))
		}
	}
	return g
}
