package session

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"life-ca/internal/figure"
	"life-ca/internal/life"
)

var (
	boardsDir  = filepath.Join("..", "life", "testdata")
	figuresDir = filepath.Join("..", "..", "figures")
)

func loadSession(t *testing.T, board string) (*Session, *bytes.Buffer) {
	t.Helper()
	lib, err := figure.LoadLibrary(figuresDir)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	b, err := life.LoadBoard(filepath.Join(boardsDir, board))
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	s := New(life.DefaultConfig(), b, lib)
	var out bytes.Buffer
	s.SetOutput(&out)
	return s, &out
}

func TestRunStillLifes(t *testing.T) {
	s, out := loadSession(t, "still.txt")
	stable, err := s.Run(100)
	if err != nil || !stable {
		t.Fatalf("Run = %v, %v", stable, err)
	}
	want := strings.Join([]string{
		"Board is stable in generation 5",
		"Number of figures: 5",
		"block: size 4",
		"beehive: size 6",
		"boat: size 5",
		"tub: size 4",
		"loaf: size 7",
		"",
	}, "\n")
	if out.String() != want {
		t.Fatalf("report:\n%s\nwant:\n%s", out.String(), want)
	}
	if len(s.Matches()) != 5 {
		t.Fatalf("matches = %d", len(s.Matches()))
	}
}

func TestRunFourBlinkers(t *testing.T) {
	s, out := loadSession(t, "4blinkers.txt")
	if stable, err := s.Run(100); err != nil || !stable {
		t.Fatalf("Run = %v, %v", stable, err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("report has %d lines:\n%s", len(lines), out.String())
	}
	for _, l := range lines[2:] {
		if l != "blinker: size 3" {
			t.Fatalf("unexpected line %q", l)
		}
	}
}

func TestTickAfterStableIsNoop(t *testing.T) {
	s, out := loadSession(t, "still.txt")
	if _, err := s.Run(0); err != nil {
		t.Fatal(err)
	}
	n := out.Len()
	gen := s.Generation()
	if stable, _ := s.Tick(); !stable {
		t.Fatal("stable session reported unstable")
	}
	if out.Len() != n || s.Generation() != gen {
		t.Fatal("Tick after stability changed the session")
	}
}

func TestOscillatingPopulationNeverStable(t *testing.T) {
	b, err := life.New(8, 8, 1, life.Grid)
	if err != nil {
		t.Fatal(err)
	}
	// Beacon: population alternates between 8 and 6.
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		b.Set(p[0], p[1], true)
	}
	s := New(life.DefaultConfig(), b, nil)
	stable, err := s.Run(60)
	if err != nil || stable {
		t.Fatalf("Run = %v, %v; beacon must not be stable", stable, err)
	}
	if s.Generation() != 61 {
		t.Fatalf("generation = %d, want 61", s.Generation())
	}
}

func TestLoadMissingKeepsBoard(t *testing.T) {
	s, _ := loadSession(t, "ship.txt")
	before := s.Board()
	cells := slices.Clone(before.Cells())
	err := s.Load(filepath.Join(t.TempDir(), "maze.txt"))
	if !errors.Is(err, life.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if s.Board() != before || !slices.Equal(s.Board().Cells(), cells) {
		t.Fatal("failed load modified the board")
	}
}

func TestLoadResetsProgress(t *testing.T) {
	s, out := loadSession(t, "still.txt")
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if err := s.Load(filepath.Join(boardsDir, "ship.txt")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Generation() != 1 {
		t.Fatalf("generation = %d after load, want 1", s.Generation())
	}
	// A fresh history needs a full window before reporting.
	for i := 1; i <= 4; i++ {
		if stable, _ := s.Tick(); stable {
			t.Fatalf("stable after %d ticks of the new board", i)
		}
	}
	if stable, _ := s.Tick(); !stable {
		t.Fatal("ship board not stable on the fifth tick")
	}
	if !strings.Contains(out.String(), "ship: size 6") {
		t.Fatalf("report = %q", out.String())
	}
}

func TestSaveThenLoad(t *testing.T) {
	s, _ := loadSession(t, "glider.txt")
	s.Tick()
	s.Tick()
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	cells := slices.Clone(s.Cells())
	if err := s.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(cells, s.Cells()) {
		t.Fatal("loaded board differs from saved one")
	}
}

func TestResetSeeded(t *testing.T) {
	cfg := life.DefaultConfig()
	s, err := NewFromConfig(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Reset(99)
	first := slices.Clone(s.Cells())
	s.Tick()
	s.Reset(99)
	if !slices.Equal(first, s.Cells()) || s.Generation() != 1 {
		t.Fatal("Reset with the same seed is not reproducible")
	}
}

func TestParameters(t *testing.T) {
	s, _ := loadSession(t, "ship.txt")
	lines := s.Parameters().Lines()
	for _, want := range []string{"Topology: Sphere", "Generation: 1", "Population: 6", "Status: running", "Live density: 0.5"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("Parameters() = %v, missing %q", lines, want)
		}
	}
}
