package console

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"life-ca/internal/life"
	"life-ca/internal/session"
)

func newConsole(t *testing.T) (*Console, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 30)

	b, err := life.LoadBoard(filepath.Join("..", "life", "testdata", "ship.txt"))
	if err != nil {
		t.Fatal(err)
	}
	sess := session.New(life.DefaultConfig(), b, nil)
	c := New(screen, sess, Options{BoardPath: filepath.Join(t.TempDir(), "board.txt")})
	return c, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screenLine(s tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestDrawShowsBoard(t *testing.T) {
	c, screen := newConsole(t)
	c.Draw()
	// ship.txt places the ship at (5,5).
	if r, _, _, _ := screen.GetContent(5, 5); r != '*' {
		t.Fatalf("cell (5,5) drawn as %q", r)
	}
	if r, _, _, _ := screen.GetContent(7, 5); r != ' ' {
		t.Fatalf("cell (7,5) drawn as %q", r)
	}
	if line := screenLine(screen, 20, 40); !strings.HasPrefix(line, "Generation: 1  Population: 6") {
		t.Fatalf("status line = %q", line)
	}
}

func TestKeys(t *testing.T) {
	c, _ := newConsole(t)
	if c.HandleKey(key('s')) {
		t.Fatal("save must not quit")
	}
	if !strings.HasPrefix(c.Message(), "saved ") {
		t.Fatalf("message = %q", c.Message())
	}
	c.HandleKey(key(' '))
	if c.Advance() {
		t.Fatal("paused console advanced")
	}
	c.HandleKey(key('n'))
	if !c.Advance() || c.sess.Generation() != 2 {
		t.Fatalf("single step did not advance: generation %d", c.sess.Generation())
	}
	c.HandleKey(key('l'))
	if !strings.HasPrefix(c.Message(), "loaded ") || c.sess.Generation() != 1 {
		t.Fatalf("load: message %q generation %d", c.Message(), c.sess.Generation())
	}
	if !c.HandleKey(key('q')) {
		t.Fatal("q must quit")
	}
	if !c.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc must quit")
	}
}

func TestLoadMissingReportsError(t *testing.T) {
	c, _ := newConsole(t)
	c.HandleKey(key('l'))
	if !strings.Contains(c.Message(), "file not found") {
		t.Fatalf("message = %q", c.Message())
	}
}

func TestReportShownWhenStable(t *testing.T) {
	c, screen := newConsole(t)
	for i := 0; i < 5; i++ {
		c.HandleKey(key('n'))
		c.Advance()
	}
	if !c.sess.Stable() {
		t.Fatal("ship board should be stable after five ticks")
	}
	c.Draw()
	var found bool
	for y := 20; y < 30; y++ {
		if strings.HasPrefix(screenLine(screen, y, 40), "Number of figures: 1") {
			found = true
		}
	}
	if !found {
		t.Fatal("stability report not drawn")
	}
}
