// Package console runs a session interactively in a terminal.
package console

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/session"
)

// Options configures the console front end.
type Options struct {
	// Delay is the pause between generations.
	Delay time.Duration
	// BoardPath is the file used by the save and load keys.
	BoardPath string
}

// Console draws a session on a tcell screen and maps keys to actions:
// q/Esc quit, s save, l load, space pause, n single step.
type Console struct {
	screen tcell.Screen
	sess   *session.Session
	pacer  *core.FixedStep
	opts   Options

	report  bytes.Buffer
	message string
	paused  bool
	stepOne bool
}

const pollInterval = 20 * time.Millisecond

// New attaches a console to an initialised screen. The session's report
// output is captured and shown under the board.
func New(screen tcell.Screen, sess *session.Session, opts Options) *Console {
	if opts.BoardPath == "" {
		opts.BoardPath = "board.txt"
	}
	c := &Console{
		screen: screen,
		sess:   sess,
		pacer:  core.NewFixedStep(opts.Delay),
		opts:   opts,
	}
	sess.SetOutput(&c.report)
	return c
}

// Run processes input and advances the session until the user quits.
func (c *Console) Run() error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	c.Draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if c.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				c.screen.Sync()
			}
		case <-ticker.C:
			if !c.Advance() {
				continue
			}
		}
		c.Draw()
	}
}

// Advance ticks the session when the pacer allows it or a single step was
// requested. It reports whether anything changed.
func (c *Console) Advance() bool {
	if c.sess.Stable() {
		return false
	}
	if c.stepOne {
		c.stepOne = false
	} else if c.paused || !c.pacer.ShouldStep() {
		return false
	}
	if _, err := c.sess.Tick(); err != nil {
		c.message = fmt.Sprintf("report failed: %v", err)
	}
	return true
}

// HandleKey applies one key press and reports whether the user asked to quit.
func (c *Console) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 's', 'S':
		if err := c.sess.Save(c.opts.BoardPath); err != nil {
			c.message = fmt.Sprintf("save failed: %v", err)
		} else {
			c.message = "saved " + c.opts.BoardPath
		}
	case 'l', 'L':
		if err := c.sess.Load(c.opts.BoardPath); err != nil {
			c.message = fmt.Sprintf("load failed: %v", err)
		} else {
			c.report.Reset()
			c.message = "loaded " + c.opts.BoardPath
		}
	case ' ':
		c.paused = !c.paused
	case 'n', 'N':
		c.stepOne = true
	}
	return false
}

// Message returns the last status message.
func (c *Console) Message() string { return c.message }

// Draw renders the board, a status line and the stability report.
func (c *Console) Draw() {
	c.screen.Clear()
	size := c.sess.Size()
	alive := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for y, row := range render.TextRows(c.sess.Cells(), size.W) {
		for x, ch := range row {
			c.screen.SetContent(x, y, ch, nil, alive)
		}
	}

	line := size.H
	status := fmt.Sprintf("Generation: %d  Population: %d", c.sess.Generation(), c.sess.Board().Population())
	if c.paused {
		status += "  [paused]"
	}
	c.drawString(0, line, status)
	line++
	if c.message != "" {
		c.drawString(0, line, c.message)
		line++
	}
	for _, l := range strings.Split(strings.TrimRight(c.report.String(), "\n"), "\n") {
		if l == "" {
			continue
		}
		c.drawString(0, line, l)
		line++
	}
	c.drawString(0, line, "q quit  s save  l load  space pause  n step")
	c.screen.Show()
}

func (c *Console) drawString(x, y int, s string) {
	for i, r := range []rune(s) {
		c.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
