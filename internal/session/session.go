// Package session drives a board generation by generation until its
// population settles, then reports the figures left on it.
package session

import (
	"fmt"
	"io"
	"log"

	"life-ca/internal/core"
	"life-ca/internal/figure"
	"life-ca/internal/life"
)

// Session owns the board, the population history and the reference library
// for one simulation. Sessions share nothing, so several can run at once.
type Session struct {
	cfg      life.Config
	board    *life.Board
	detector *life.StabilityDetector
	library  *figure.Library

	out    io.Writer
	logger *log.Logger

	stable  bool
	matches []figure.Match
}

// New wraps an existing board. A nil library classifies every figure as
// unknown.
func New(cfg life.Config, board *life.Board, lib *figure.Library) *Session {
	if lib == nil {
		lib = figure.NewLibrary(nil)
	}
	board.SetWorkers(cfg.Workers)
	return &Session{
		cfg:      cfg,
		board:    board,
		detector: life.NewStabilityDetector(cfg.StableWindow),
		library:  lib,
		out:      io.Discard,
		logger:   log.New(io.Discard, "", 0),
	}
}

// NewFromConfig builds a randomly seeded board from cfg.
func NewFromConfig(cfg life.Config, lib *figure.Library) (*Session, error) {
	board, err := life.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(cfg, board, lib), nil
}

// SetOutput sets where the stability report is written.
func (s *Session) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.out = w
}

// SetLogger sets the logger for lifecycle events.
func (s *Session) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	s.logger = l
}

// Board returns the current board. It changes identity after Load or Reset.
func (s *Session) Board() *life.Board { return s.board }

// Generation is the 1-based number of the generation currently shown.
func (s *Session) Generation() int { return s.board.Generation() + 1 }

// Stable reports whether the population has settled.
func (s *Session) Stable() bool { return s.stable }

// Matches returns the classification made when the board became stable.
func (s *Session) Matches() []figure.Match { return s.matches }

// Tick runs one iteration: the current population is recorded and, if it has
// been constant for the whole window, the figures are classified and written
// to the output. Otherwise the board advances one generation. Once stable,
// Tick does nothing and keeps returning true.
func (s *Session) Tick() (bool, error) {
	if s.stable {
		return true, nil
	}
	if !s.detector.Observe(s.board.Population()) {
		s.board.Advance()
		return false, nil
	}
	s.stable = true
	s.logger.Printf("board stable in generation %d", s.Generation())
	return true, s.report()
}

func (s *Session) report() error {
	figs := s.board.Figures()
	if _, err := fmt.Fprintf(s.out, "Board is stable in generation %d\nNumber of figures: %d\n", s.Generation(), len(figs)); err != nil {
		return err
	}
	matches, err := s.library.Report(s.out, figs)
	s.matches = matches
	return err
}

// Run ticks until the board is stable or maxTicks iterations have run; a
// non-positive maxTicks means no limit.
func (s *Session) Run(maxTicks int) (bool, error) {
	for i := 0; maxTicks <= 0 || i < maxTicks; i++ {
		stable, err := s.Tick()
		if err != nil || stable {
			return stable, err
		}
	}
	return false, nil
}

// Save writes the current board to path.
func (s *Session) Save(path string) error {
	if err := s.board.Save(path); err != nil {
		return err
	}
	s.logger.Printf("saved generation %d to %s", s.Generation(), path)
	return nil
}

// Load replaces the board with the one stored at path and starts counting
// generations and population history afresh. On error the session is left
// untouched.
func (s *Session) Load(path string) error {
	board, err := life.LoadBoard(path)
	if err != nil {
		return err
	}
	s.swap(board)
	s.logger.Printf("loaded %s (%dx%d %s)", path, board.Columns(), board.Rows(), board.Topology())
	return nil
}

// Reset replaces the board with a fresh random one built from the session
// config and the given seed.
func (s *Session) Reset(seed int64) {
	cfg := s.cfg
	cfg.Seed = seed
	board, err := life.NewFromConfig(cfg)
	if err != nil {
		s.logger.Printf("reset: %v", err)
		return
	}
	s.swap(board)
}

func (s *Session) swap(board *life.Board) {
	board.SetWorkers(s.cfg.Workers)
	s.board = board
	s.detector.Reset()
	s.stable = false
	s.matches = nil
}

// Name identifies the simulation.
func (s *Session) Name() string { return "life" }

// Size returns the board dimensions in cells.
func (s *Session) Size() core.Size { return s.board.Size() }

// Cells exposes the current generation for rendering.
func (s *Session) Cells() []uint8 { return s.board.Cells() }

// Step is Tick for front ends that do not handle errors.
func (s *Session) Step() {
	if _, err := s.Tick(); err != nil {
		s.logger.Printf("report: %v", err)
	}
}

// Parameters describes the session for status displays.
func (s *Session) Parameters() core.ParameterSnapshot {
	b := s.board
	status := "running"
	if s.stable {
		status = "stable"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.StringParam("topology", "Topology", b.Topology().String()),
				core.IntParam("w", "Columns", b.Columns()),
				core.IntParam("h", "Rows", b.Rows()),
				core.FloatParam("density", "Live density", s.cfg.LiveDensity),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.Generation()),
				core.IntParam("population", "Population", b.Population()),
				core.StringParam("status", "Status", status),
			},
		},
	}}
}

var (
	_ core.Sim               = (*Session)(nil)
	_ core.Persister         = (*Session)(nil)
	_ core.ParameterProvider = (*Session)(nil)
)
