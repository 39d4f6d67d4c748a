package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Shooter-Mode/internal/config"
	"github.com/Garsondee/Shooter-Mode/internal/desktop"
	"github.com/Garsondee/Shooter-Mode/internal/game"
	"github.com/Garsondee/Shooter-Mode/internal/logging"
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

	logger, closeLog, err := logging.Open(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := game.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := settings.ResolvedSeed()
	session := game.NewSession(cfg, rand.New(rand.NewSource(seed))) // #nosec G404 -- gameplay randomness
	logger.Info("starting desktop session", "session_id", session.ID, "seed", seed, "tps", settings.TPS)

	ebiten.SetWindowTitle("Shooter Mode")
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(settings.TPS)
	if err := ebiten.RunGame(desktop.New(session, settings.TPS, logger)); err != nil {
		logger.Error("desktop session failed", "session_id", session.ID, "error", err)
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("desktop session ended", "session_id", session.ID, "frames", session.Frames())
	return nil
}
