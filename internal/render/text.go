package render

import "strings"

// Glyphs used for console output.
const (
	AliveGlyph = '*'
	DeadGlyph  = ' '
)

// TextRows renders a w-wide row-major cell buffer as one string per row.
func TextRows(cells []uint8, w int) []string {
	if w <= 0 {
		return nil
	}
	rows := make([]string, 0, len(cells)/w)
	var sb strings.Builder
	for start := 0; start+w <= len(cells); start += w {
		sb.Reset()
		for _, c := range cells[start : start+w] {
			if c != 0 {
				sb.WriteByte(AliveGlyph)
			} else {
				sb.WriteByte(DeadGlyph)
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}
