package life

import "slices"

// DefaultStableWindow is the number of equal consecutive population counts
// that mark a board as stable.
const DefaultStableWindow = 5

// StabilityDetector watches population counts and reports a fixed point once
// the last Window counts are all equal. Oscillators whose population changes
// from one generation to the next are never reported.
type StabilityDetector struct {
	window  int
	history []int
}

// NewStabilityDetector returns a detector with the given window; values
// below one use DefaultStableWindow.
func NewStabilityDetector(window int) *StabilityDetector {
	if window < 1 {
		window = DefaultStableWindow
	}
	return &StabilityDetector{window: window, history: make([]int, 0, window)}
}

// Window returns the number of counts compared.
func (d *StabilityDetector) Window() int { return d.window }

// History returns a copy of the retained counts, oldest first.
func (d *StabilityDetector) History() []int { return slices.Clone(d.history) }

// Observe records one population count and reports whether the window is
// full of equal values.
func (d *StabilityDetector) Observe(population int) bool {
	d.history = append(d.history, population)
	if len(d.history) > d.window {
		d.history = slices.Delete(d.history, 0, 1)
	}
	if len(d.history) < d.window {
		return false
	}
	for _, v := range d.history[1:] {
		if v != d.history[0] {
			return false
		}
	}
	return true
}

// Reset forgets all recorded counts.
func (d *StabilityDetector) Reset() { d.history = d.history[:0] }
