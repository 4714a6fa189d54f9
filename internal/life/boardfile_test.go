package life

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"life-ca/internal/core"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, topo := range Topologies() {
		b, err := New(24, 12, 2, topo)
		if err != nil {
			t.Fatal(err)
		}
		b.Randomize(core.NewRNG(3), 0.3)

		path := filepath.Join(t.TempDir(), "board.txt")
		if err := b.Save(path); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := LoadBoard(path)
		if err != nil {
			t.Fatalf("LoadBoard: %v", err)
		}
		if got.Topology() != topo || got.CellSize() != 2 || got.Columns() != 12 || got.Rows() != 6 {
			t.Fatalf("%v: loaded %v %dx%d cell %d", topo, got.Topology(), got.Columns(), got.Rows(), got.CellSize())
		}
		if !slices.Equal(got.Cells(), b.Cells()) {
			t.Fatalf("%v: cells differ after round trip", topo)
		}
	}
}

func TestSaveLoadWideBoard(t *testing.T) {
	b := mustBoard(t, 70000, 2, Grid)
	b.Set(0, 0, true)
	b.Set(69999, 1, true)
	b.Set(35000, 1, true)

	path := filepath.Join(t.TempDir(), "wide.txt")
	if err := b.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := LoadBoard(path)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if got.Columns() != 70000 || got.Rows() != 2 {
		t.Fatalf("loaded %dx%d", got.Columns(), got.Rows())
	}
	if !slices.Equal(got.Cells(), b.Cells()) {
		t.Fatal("cells differ after round trip")
	}
}

func TestWriteToFormat(t *testing.T) {
	b := mustBoard(t, 3, 2, Cylinder)
	b.Set(0, 0, true)
	b.Set(2, 1, true)
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	want := "3 2 1 Cylinder\n100\n001\n"
	if buf.String() != want {
		t.Fatalf("WriteTo = %q, want %q", buf.String(), want)
	}
}

func TestReadBoardMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"short header":  "3 2 1\n000\n000\n",
		"bad width":     "x 2 1 Grid\n000\n000\n",
		"bad topology":  "3 2 1 Torus\n000\n000\n",
		"short row":     "3 2 1 Grid\n000\n00\n",
		"missing row":   "3 2 1 Grid\n000\n",
		"bad char":      "3 2 1 Grid\n000\n0a0\n",
		"trailing data": "3 2 1 Grid\n000\n000\n111\n",
		"header only":   "4000 4000 1 Sphere\n",
		"truncated":     "4000 4000 1 Sphere\n" + strings.Repeat("0", 4000) + "\n",
	}
	for name, in := range cases {
		if _, err := ReadBoard(strings.NewReader(in)); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: err = %v, want ErrMalformed", name, err)
		}
	}
	dims := map[string]string{
		"zero cell size": "3 2 0 Grid\n000\n000\n",
		"too many cells": "100000 100000 1 Grid\n",
		"narrow sphere":  "3 2 1 Sphere\n000\n000\n",
	}
	for name, in := range dims {
		if _, err := ReadBoard(strings.NewReader(in)); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%s: err = %v, want ErrInvalidDimensions", name, err)
		}
	}
}

func TestReadBoardToleratesCRLFAndTrailingBlank(t *testing.T) {
	b, err := ReadBoard(strings.NewReader("3 3 1 Sphere\r\n010\r\n111\r\n000\r\n\r\n"))
	if err != nil {
		t.Fatalf("ReadBoard: %v", err)
	}
	if b.Population() != 4 || b.Topology() != Sphere {
		t.Fatalf("population %d topology %v", b.Population(), b.Topology())
	}
}

func TestLoadBoardMissing(t *testing.T) {
	_, err := LoadBoard(filepath.Join(t.TempDir(), "maze.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
