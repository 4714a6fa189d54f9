package figure

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"life-ca/internal/core"
)

var (
	// ErrNotFound is returned when a figure file or directory is missing.
	ErrNotFound = core.ErrNotFound
	// ErrMalformed is returned for figure text that is not a 0/1 rectangle.
	ErrMalformed = core.ErrMalformed
)

// FileExt is the extension of reference figure files.
const FileExt = ".txt"

// Library maps reference names to normalized figures. It is read-only once
// built.
type Library struct {
	names []string
	figs  map[string]Figure
}

// NewLibrary builds a library from already parsed figures. Each figure is
// normalized on the way in.
func NewLibrary(figs map[string]Figure) *Library {
	l := &Library{figs: make(map[string]Figure, len(figs))}
	for name, f := range figs {
		l.figs[name] = f.Normalize()
		l.names = append(l.names, name)
	}
	slices.Sort(l.names)
	return l
}

// Names returns the reference names in lookup order.
func (l *Library) Names() []string { return slices.Clone(l.names) }

// Len returns the number of references.
func (l *Library) Len() int { return len(l.names) }

// Get returns the normalized reference stored under name.
func (l *Library) Get(name string) (Figure, bool) {
	f, ok := l.figs[name]
	return f, ok
}

// ParseFigure reads rows of '0'/'1' characters; each '1' at column x of row y
// becomes the point (x, y). Rows must share one length and at least one cell
// must be set. Trailing blank lines are ignored.
func ParseFigure(r io.Reader) (Figure, error) {
	var (
		pts   []Point
		width = -1
		y     int
		blank int
	)
	lr := core.NewLineReader(r)
	for {
		line, ok, err := lr.Next()
		if err != nil {
			return Figure{}, err
		}
		if !ok {
			break
		}
		if line == "" {
			blank++
			continue
		}
		if blank > 0 {
			return Figure{}, fmt.Errorf("%w: blank line inside figure at row %d", ErrMalformed, y)
		}
		if width >= 0 && len(line) != width {
			return Figure{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformed, y, len(line), width)
		}
		width = len(line)
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '1':
				pts = append(pts, Point{X: x, Y: y})
			case '0':
			default:
				return Figure{}, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrMalformed, line[x], y, x)
			}
		}
		y++
	}
	if len(pts) == 0 {
		return Figure{}, fmt.Errorf("%w: figure has no live cells", ErrMalformed)
	}
	return New(pts...), nil
}

// LoadFigure reads a single reference figure file.
func LoadFigure(path string) (Figure, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Figure{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Figure{}, err
	}
	defer f.Close()
	fig, err := ParseFigure(f)
	if err != nil {
		return Figure{}, fmt.Errorf("%s: %w", path, err)
	}
	return fig, nil
}

// LoadLibrary reads every *.txt file in dir; the file name without extension
// becomes the reference name.
func LoadLibrary(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, err
	}
	figs := make(map[string]Figure)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != FileExt {
			continue
		}
		fig, err := LoadFigure(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		figs[strings.TrimSuffix(e.Name(), FileExt)] = fig
	}
	return NewLibrary(figs), nil
}
