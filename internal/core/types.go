package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a front end needs to drive an automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Persister is implemented by sims that can write their state to a file and
// replace it from one.
type Persister interface {
	Save(path string) error
	Load(path string) error
}

// ParameterProvider exposes a read-only view of a sim's current settings.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
