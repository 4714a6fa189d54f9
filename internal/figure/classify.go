package figure

import (
	"fmt"
	"io"
)

// Match is the classification result for one figure. An empty Name means no
// reference matched.
type Match struct {
	Figure Figure
	Name   string
	// Turns is the number of 90 degree rotations that mapped the figure onto
	// the reference, in [0, 3].
	Turns int
}

// Known reports whether the figure matched a reference.
func (m Match) Known() bool { return m.Name != "" }

// String formats the match as one report line.
func (m Match) String() string {
	if !m.Known() {
		return fmt.Sprintf("unknown figure: size %d", m.Figure.Len())
	}
	return fmt.Sprintf("%s: size %d", m.Name, m.Figure.Len())
}

// Match looks the figure up in the library. References are tried in name
// order and only those with the same cell count are compared. For each one
// the figure is rotated and normalized up to four times; the first equal
// orientation wins. Mirror images are not tried.
func (l *Library) Match(f Figure) Match {
	for _, name := range l.names {
		ref := l.figs[name]
		if ref.Len() != f.Len() {
			continue
		}
		cur := f
		for round := 1; round <= 4; round++ {
			cur = cur.Rotate().Normalize()
			if cur.Equal(ref) {
				return Match{Figure: f, Name: name, Turns: round % 4}
			}
		}
	}
	return Match{Figure: f}
}

// Classify matches every figure independently, preserving input order.
func (l *Library) Classify(figs []Figure) []Match {
	out := make([]Match, len(figs))
	for i, f := range figs {
		out[i] = l.Match(f)
	}
	return out
}

// Report classifies figures in order and writes one line per figure as soon
// as it is matched.
func (l *Library) Report(w io.Writer, figs []Figure) ([]Match, error) {
	out := make([]Match, 0, len(figs))
	for _, f := range figs {
		m := l.Match(f)
		out = append(out, m)
		if _, err := fmt.Fprintln(w, m); err != nil {
			return out, err
		}
	}
	return out, nil
}
