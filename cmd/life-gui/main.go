//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"life-ca/internal/app"
	"life-ca/internal/figure"
	"life-ca/internal/life"
	"life-ca/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.json", "run configuration (created with defaults when missing)")
	boardPath := flag.String("board", "board.txt", "board file used by the save and load keys")
	figuresDir := flag.String("figures", "figures", "directory of reference figures")
	scale := flag.Int("scale", 8, "pixel scale multiplier")
	flag.Parse()

	logger := log.New(os.Stderr, "life-gui: ", log.LstdFlags)

	cfg, err := life.LoadOrCreateConfig(*configPath)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	lib, err := figure.LoadLibrary(*figuresDir)
	if err != nil {
		logger.Fatalf("figures: %v", err)
	}
	sess, err := session.NewFromConfig(cfg, lib)
	if err != nil {
		logger.Fatalf("board: %v", err)
	}
	sess.SetLogger(logger)
	sess.SetOutput(os.Stdout)

	game := app.New(sess, *scale, cfg.Seed, cfg.Delay(), *boardPath)
	size := sess.Size()

	ebiten.SetWindowTitle("life: " + cfg.Topology.String())
	ebiten.SetWindowSize(size.W*(*scale)+220, size.H*(*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
