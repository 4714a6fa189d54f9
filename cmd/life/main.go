package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"life-ca/internal/console"
	"life-ca/internal/figure"
	"life-ca/internal/life"
	"life-ca/internal/session"
)

func main() {
	var opts options
	opts.bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "life: ", log.LstdFlags)

	cfg, err := life.LoadOrCreateConfig(opts.configPath)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	cfg = life.FromMap(cfg, opts.overrides.Map())
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	lib, err := figure.LoadLibrary(opts.figuresDir)
	if err != nil {
		logger.Fatalf("figures: %v", err)
	}

	sess, err := session.NewFromConfig(cfg, lib)
	if err != nil {
		logger.Fatalf("board: %v", err)
	}
	if opts.startBoard != "" {
		if err := sess.Load(opts.startBoard); err != nil {
			logger.Fatalf("board: %v", err)
		}
	}

	if opts.headless {
		sess.SetLogger(logger)
		if err := runHeadless(sess, os.Stdout, opts.maxTicks); err != nil {
			logger.Fatal(err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatalf("initializing screen: %v", err)
	}
	c := console.New(screen, sess, console.Options{Delay: cfg.Delay(), BoardPath: opts.boardPath})
	err = c.Run()
	screen.Fini()
	if err != nil {
		logger.Fatal(err)
	}
}

func runHeadless(sess *session.Session, out io.Writer, maxTicks int) error {
	sess.SetOutput(out)
	stable, err := sess.Run(maxTicks)
	if err != nil {
		return err
	}
	if !stable {
		fmt.Fprintf(out, "Board not stable after %d generations (population %d)\n", sess.Generation(), sess.Board().Population())
	}
	return nil
}
