package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0}
	buf := make([]byte, 8)
	FillBinaryRGBA(buf, cells, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	want := []byte{255, 255, 255, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestTextRows(t *testing.T) {
	cells := []uint8{
		0, 1, 0,
		1, 1, 1,
	}
	got := TextRows(cells, 3)
	want := []string{" * ", "***"}
	if !slices.Equal(got, want) {
		t.Fatalf("TextRows = %q, want %q", got, want)
	}
	if TextRows(cells, 0) != nil {
		t.Fatal("zero width must render nothing")
	}
}
