//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale     int
	paused    bool
	tickOnce  bool
	seed      int64
	boardPath string
}

// New constructs a Game for the provided simulation. Generations advance at
// most once per delay; boardPath is used by the save and load keys.
func New(sim core.Sim, scale int, seed int64, delay time.Duration, boardPath string) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:       sim,
		painter:   gp,
		hud:       ui.NewHUD(sim, hudWidth),
		pacer:     core.NewFixedStep(delay),
		onColor:   color.White,
		offColor:  color.Black,
		scale:     scale,
		seed:      seed,
		boardPath: boardPath,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.resizePainter()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if p, ok := g.sim.(core.Persister); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.notify("saved", p.Save(g.boardPath))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyL) {
			err := p.Load(g.boardPath)
			g.notify("loaded", err)
			if err == nil {
				g.resizePainter()
			}
		}
	}

	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

func (g *Game) notify(action string, err error) {
	if err != nil {
		g.hud.SetMessage(err.Error())
		return
	}
	g.hud.SetMessage(fmt.Sprintf("%s %s", action, g.boardPath))
}

// A loaded board may have different dimensions.
func (g *Game) resizePainter() {
	s := g.sim.Size()
	if w, h := g.painter.Size(); w != s.W || h != s.H {
		g.painter = render.NewGridPainter(s.W, s.H)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
