package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// Environment variables read by Load.
const (
	EnvWidth    = "SHOOTER_WIDTH"
	EnvHeight   = "SHOOTER_HEIGHT"
	EnvTPS      = "SHOOTER_TPS"
	EnvSeed     = "SHOOTER_SEED"
	EnvLogLevel = "SHOOTER_LOG_LEVEL"
	EnvLogFile  = "SHOOTER_LOG_FILE"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the host-level knobs shared by every command. The arena itself
// is configured through game.Config.
type Settings struct {
	Width    int    // window width in pixels
	Height   int    // window height in pixels
	TPS      int    // simulation steps per second
	Seed     int64  // 0 picks a seed from the clock
	LogLevel string // debug, info, warn or error
	LogFile  string // empty logs to stderr
}

// Defaults returns the stock settings.
func Defaults() Settings {
	return Settings{
		Width:    1280,
		Height:   800,
		TPS:      60,
		LogLevel: "info",
	}
}

// Load reads settings from SHOOTER_* environment variables on top of
// Defaults.
func Load() (Settings, error) {
	s := Defaults()
	var err error
	if s.Width, err = EnvInt(EnvWidth, s.Width); err != nil {
		return s, err
	}
	if s.Height, err = EnvInt(EnvHeight, s.Height); err != nil {
		return s, err
	}
	if s.TPS, err = EnvInt(EnvTPS, s.TPS); err != nil {
		return s, err
	}
	if s.Seed, err = EnvInt64(EnvSeed, s.Seed); err != nil {
		return s, err
	}
	s.LogLevel = GetEnv(EnvLogLevel, s.LogLevel)
	s.LogFile = GetEnv(EnvLogFile, s.LogFile)
	return s, s.Validate()
}

// RegisterFlags binds s to fs so command-line flags override the
// environment. Call fs.Parse afterwards, then Validate.
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&s.Width, "width", s.Width, "window width in pixels")
	fs.IntVar(&s.Height, "height", s.Height, "window height in pixels")
	fs.IntVar(&s.TPS, "tps", s.TPS, "simulation steps per second")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "target placement seed (0 = clock)")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&s.LogFile, "log-file", s.LogFile, "write logs to this file instead of stderr")
}

// Validate rejects settings no host can run with.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSettings, s.Width, s.Height)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidSettings, s.TPS)
	}
	return nil
}

// Step returns the fixed simulation step for TPS.
func (s Settings) Step() time.Duration {
	return time.Second / time.Duration(s.TPS)
}

// ResolvedSeed returns Seed, or a clock-derived seed when Seed is 0.
func (s Settings) ResolvedSeed() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}
