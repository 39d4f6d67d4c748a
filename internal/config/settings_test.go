package config

import (
	"errors"
	"flag"
	"strconv"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SHOOTER_TEST_VALUE", "x")
	if got := GetEnv("SHOOTER_TEST_VALUE", "y"); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
	if got := GetEnv("SHOOTER_TEST_UNSET", "y"); got != "y" {
		t.Fatalf("expected fallback y, got %q", got)
	}
}

func TestEnvNumbers(t *testing.T) {
	t.Setenv("SHOOTER_TEST_INT", "42")
	t.Setenv("SHOOTER_TEST_FLOAT", "0.25")
	t.Setenv("SHOOTER_TEST_BAD", "forty")

	if n, err := EnvInt("SHOOTER_TEST_INT", 1); err != nil || n != 42 {
		t.Fatalf("EnvInt: got %d, %v", n, err)
	}
	if f, err := EnvFloat("SHOOTER_TEST_FLOAT", 1); err != nil || f != 0.25 {
		t.Fatalf("EnvFloat: got %g, %v", f, err)
	}
	if n, err := EnvInt("SHOOTER_TEST_UNSET", 7); err != nil || n != 7 {
		t.Fatalf("EnvInt fallback: got %d, %v", n, err)
	}
	_, err := EnvInt("SHOOTER_TEST_BAD", 1)
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("expected a syntax error, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{EnvWidth, EnvHeight, EnvTPS, EnvSeed, EnvLogLevel, EnvLogFile} {
		t.Setenv(k, "")
	}
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Width != 1280 || s.Height != 800 || s.TPS != 60 {
		t.Fatalf("unexpected defaults %+v", s)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvWidth, "640")
	t.Setenv(EnvTPS, "30")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvLogLevel, "debug")
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Width != 640 || s.TPS != 30 || s.Seed != 99 || s.LogLevel != "debug" {
		t.Fatalf("env not applied: %+v", s)
	}
	if s.Step() != time.Second/30 {
		t.Fatalf("unexpected step %v", s.Step())
	}
	if s.ResolvedSeed() != 99 {
		t.Fatalf("expected fixed seed, got %d", s.ResolvedSeed())
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv(EnvTPS, "0")
	if _, err := Load(); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
	t.Setenv(EnvTPS, "sixty")
	if _, err := Load(); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestRegisterFlags_OverrideEnv(t *testing.T) {
	t.Setenv(EnvWidth, "640")
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	s.RegisterFlags(fs)
	if err := fs.Parse([]string{"-width", "1024", "-seed", "5"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Width != 1024 || s.Seed != 5 || s.Height != 800 {
		t.Fatalf("flags not applied: %+v", s)
	}
}
