package core

import "errors"

var (
	// ErrNotFound reports a board or figure file that does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrMalformed reports board or figure text that cannot be parsed.
	ErrMalformed = errors.New("malformed input")
)
