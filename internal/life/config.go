package life

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
)

// Config describes how to build and run a board. JSON field names follow the
// config.json files written by earlier versions of the program.
type Config struct {
	Width       int      `json:"Width"`
	Height      int      `json:"Height"`
	CellSize    int      `json:"CellSize"`
	LiveDensity float64  `json:"LiveDensity"`
	Topology    Topology `json:"BoardTopology"`

	Seed         int64 `json:"Seed,omitempty"`
	StableWindow int   `json:"StableWindow,omitempty"`
	DelayMillis  int   `json:"DelayMillis,omitempty"`
	Workers      int   `json:"Workers,omitempty"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        50,
		Height:       20,
		CellSize:     1,
		LiveDensity:  0.5,
		Topology:     Grid,
		Seed:         1,
		StableWindow: DefaultStableWindow,
		DelayMillis:  500,
		Workers:      1,
	}
}

// Delay returns the pause between generations for interactive front ends.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMillis) * time.Millisecond
}

// Validate rejects configurations that cannot produce a usable board.
func (c Config) Validate() error {
	if c.CellSize <= 0 || c.Width < c.CellSize || c.Height < c.CellSize {
		return fmt.Errorf("%w: %dx%d with cell size %d", ErrInvalidDimensions, c.Width, c.Height, c.CellSize)
	}
	if c.LiveDensity < 0 || c.LiveDensity > 1 {
		return fmt.Errorf("%w: live density %v outside [0,1]", ErrInvalidConfig, c.LiveDensity)
	}
	if int(c.Topology) >= len(topologyNames) {
		return fmt.Errorf("%w: unknown topology %d", ErrInvalidConfig, uint8(c.Topology))
	}
	if c.StableWindow < 1 {
		return fmt.Errorf("%w: stable window %d", ErrInvalidConfig, c.StableWindow)
	}
	if c.DelayMillis < 0 || c.Workers < 0 {
		return fmt.Errorf("%w: negative delay or worker count", ErrInvalidConfig)
	}
	return nil
}

// FromMap overrides fields of base from flag-style key/value pairs. Unknown
// keys and unparsable values are ignored.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.LiveDensity = parsed
		}
	}
	if v, ok := cfg["topology"]; ok {
		if parsed, err := ParseTopology(v); err == nil {
			c.Topology = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["window"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StableWindow = parsed
		}
	}
	if v, ok := cfg["delay"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.DelayMillis = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

// LoadConfig reads a JSON config. Fields absent from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrCreateConfig reads path, writing DefaultConfig there first when the
// file does not exist.
func LoadOrCreateConfig(path string) (Config, error) {
	c, err := LoadConfig(path)
	if errors.Is(err, ErrNotFound) {
		c = DefaultConfig()
		return c, SaveConfig(path, c)
	}
	return c, err
}

// SaveConfig writes c as indented JSON.
func SaveConfig(path string, c Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// UnmarshalJSON accepts either a topology name or its numeric value, which is
// how older config files stored it.
func (t *Topology) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		return t.UnmarshalText([]byte(name))
	}
	n, err := strconv.Atoi(string(bytes.TrimSpace(b)))
	if err != nil || n < 0 || n >= len(topologyNames) {
		return fmt.Errorf("%w: topology %s", ErrMalformed, b)
	}
	*t = Topology(n)
	return nil
}
