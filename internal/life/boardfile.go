package life

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"life-ca/internal/core"
)

// Board text format:
//
//	<width> <height> <cellSize> <topology>
//	<rows lines of columns '0'/'1' characters, top to bottom>

// WriteTo encodes the board in the text format.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	c, err := fmt.Fprintf(bw, "%d %d %d %s\n", b.Width(), b.Height(), b.cellSize, b.topology)
	n += int64(c)
	if err != nil {
		return n, err
	}
	cells := b.cur.Cells()
	row := make([]byte, b.cur.W+1)
	row[b.cur.W] = '\n'
	for y := 0; y < b.cur.H; y++ {
		for x := 0; x < b.cur.W; x++ {
			row[x] = '0' + cells[b.cur.Index(x, y)]
		}
		c, err = bw.Write(row)
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Save writes the board to path, replacing any existing file.
func (b *Board) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadBoard decodes a board in the text format. The header must have exactly
// four fields and exactly Rows rows of Columns '0'/'1' characters must follow;
// only blank lines may trail them. Storage grows with the rows actually read,
// so a header alone cannot force a large allocation.
func ReadBoard(r io.Reader) (*Board, error) {
	lr := core.NewLineReader(r)
	line, ok, err := lr.Next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	h, err := parseHeader(line)
	if err != nil {
		return nil, err
	}

	var cells []uint8
	for y := 0; y < h.rows; y++ {
		line, ok, err := lr.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: got %d rows, want %d", ErrMalformed, y, h.rows)
		}
		if len(line) != h.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformed, y, len(line), h.cols)
		}
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '0', '1':
				cells = append(cells, line[x]-'0')
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrMalformed, line[x], y, x)
			}
		}
	}
	for {
		line, ok, err := lr.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, fmt.Errorf("%w: extra data after %d rows", ErrMalformed, h.rows)
		}
	}

	b, err := New(h.width, h.height, h.cellSize, h.topology)
	if err != nil {
		return nil, err
	}
	copy(b.cur.Cells(), cells)
	return b, nil
}

type boardHeader struct {
	width, height, cellSize int
	topology                Topology
	cols, rows              int
}

func parseHeader(line string) (boardHeader, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return boardHeader{}, fmt.Errorf("%w: header %q needs 4 fields", ErrMalformed, line)
	}
	var dims [3]int
	for i, name := range []string{"width", "height", "cell size"} {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return boardHeader{}, fmt.Errorf("%w: %s %q", ErrMalformed, name, fields[i])
		}
		dims[i] = v
	}
	topology, err := ParseTopology(fields[3])
	if err != nil {
		return boardHeader{}, err
	}
	cols, rows, err := boardDims(dims[0], dims[1], dims[2], topology)
	if err != nil {
		return boardHeader{}, err
	}
	return boardHeader{
		width:    dims[0],
		height:   dims[1],
		cellSize: dims[2],
		topology: topology,
		cols:     cols,
		rows:     rows,
	}, nil
}

// LoadBoard reads a board file. It always returns a freshly built board; a
// failed load has no effect on boards the caller already holds.
func LoadBoard(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()
	b, err := ReadBoard(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
