package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/Garsondee/Shooter-Mode/internal/config"
	"github.com/Garsondee/Shooter-Mode/internal/game"
	"github.com/Garsondee/Shooter-Mode/internal/logging"
	"github.com/Garsondee/Shooter-Mode/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	settings.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := settings.Validate(); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return terminal.ErrNotTerminal
	}

	// The screen owns stdout, so logs go to a file or nowhere.
	logPath := settings.LogFile
	if logPath == "" {
		logPath = os.DevNull
	}
	logger, closeLog, err := logging.Open(logPath, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := game.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seed := settings.ResolvedSeed()
	session := game.NewSession(cfg, rand.New(rand.NewSource(seed))) // #nosec G404 -- gameplay randomness
	logger.Info("starting terminal session", "session_id", session.ID, "seed", seed)

	return terminal.NewApp(screen, session, settings.Step(), logger).Run(ctx)
}
