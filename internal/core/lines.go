package core

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader reads newline-separated text with no limit on line length.
// A trailing "\r" is stripped from every line.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line. ok is false once the input is exhausted.
func (l *LineReader) Next() (line string, ok bool, err error) {
	s, err := l.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if s == "" {
			return "", false, nil
		}
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), true, nil
}
