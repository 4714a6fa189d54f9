package life

import (
	"errors"

	"life-ca/internal/core"
)

var (
	// ErrNotFound is returned when a board file does not exist.
	ErrNotFound = core.ErrNotFound
	// ErrMalformed is returned for board text that cannot be parsed.
	ErrMalformed = core.ErrMalformed
	// ErrInvalidDimensions is returned when the requested size holds no cells.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)
