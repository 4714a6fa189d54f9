package life

import "testing"

func TestStabilityAfterFullWindow(t *testing.T) {
	d := NewStabilityDetector(5)
	for i := 1; i <= 5; i++ {
		got := d.Observe(7)
		if want := i == 5; got != want {
			t.Fatalf("observation %d: stable=%v, want %v", i, got, want)
		}
	}
}

func TestStabilityNeedsConsecutiveEqualCounts(t *testing.T) {
	d := NewStabilityDetector(5)
	seq := []int{7, 7, 8, 7, 7, 7, 7, 7}
	for i, v := range seq {
		got := d.Observe(v)
		// The differing value leaves the window after the 8th observation.
		if want := i == 7; got != want {
			t.Fatalf("observation %d (%d): stable=%v, want %v", i+1, v, got, want)
		}
	}
}

func TestStabilityIgnoresOscillation(t *testing.T) {
	d := NewStabilityDetector(DefaultStableWindow)
	for i := 0; i < 50; i++ {
		if d.Observe(3 + i%2) {
			t.Fatalf("alternating population reported stable at %d", i)
		}
	}
}

func TestStabilityReset(t *testing.T) {
	d := NewStabilityDetector(3)
	d.Observe(1)
	d.Observe(1)
	d.Reset()
	if len(d.History()) != 0 {
		t.Fatalf("history not cleared: %v", d.History())
	}
	if d.Observe(1) {
		t.Fatal("reset detector reported stable after one observation")
	}
}

func TestStabilityWindowBounded(t *testing.T) {
	d := NewStabilityDetector(0)
	if d.Window() != DefaultStableWindow {
		t.Fatalf("window = %d, want default", d.Window())
	}
	for i := 0; i < 20; i++ {
		d.Observe(i)
	}
	if got := len(d.History()); got != DefaultStableWindow {
		t.Fatalf("history holds %d counts, want %d", got, DefaultStableWindow)
	}
}
