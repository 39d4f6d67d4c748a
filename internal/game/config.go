package game

import (
	"errors"
	"fmt"
)

// ProjectileCapacity is the number of projectiles kept alive at once. Firing
// past it evicts the oldest shot. It is a compile-time constant because the
// projectile ring is a fixed-size array held by value inside World.
const ProjectileCapacity = 10

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the tunables of one arena. Values are fixed for the lifetime of
// a Sim; nothing mutates them at runtime.
type Config struct {
	ArenaRadius   Vec2    // half-extents of the playable court
	BulletRadius  Vec2    // projectile half-extents
	AimRadius     Vec2    // target hit-zone half-extents
	PlayerSpeed   float64 // units/s per held direction
	BulletSpeed   float64 // units/s
	FireInterval  float64 // seconds between shots while fire is held
	RoundDuration float64 // seconds before the score resets
}

// DefaultConfig returns the stock arena.
func DefaultConfig() Config {
	return Config{
		ArenaRadius:   V(8.0, 5.0),
		BulletRadius:  V(0.1, 0.1),
		AimRadius:     V(0.2, 0.2),
		PlayerSpeed:   4.0,
		BulletSpeed:   8.0,
		FireInterval:  0.5,
		RoundDuration: 30.0,
	}
}

// Validate rejects configs the simulation cannot run with. The simulation
// itself assumes a valid config and never calls this.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"arena radius x", c.ArenaRadius.X},
		{"arena radius y", c.ArenaRadius.Y},
		{"bullet radius x", c.BulletRadius.X},
		{"bullet radius y", c.BulletRadius.Y},
		{"aim radius x", c.AimRadius.X},
		{"aim radius y", c.AimRadius.Y},
		{"player speed", c.PlayerSpeed},
		{"bullet speed", c.BulletSpeed},
		{"fire interval", c.FireInterval},
		{"round duration", c.RoundDuration},
	}
	for _, ch := range checks {
		if !(ch.v > 0) {
			return fmt.Errorf("%w: %s must be > 0, got %g", ErrInvalidConfig, ch.name, ch.v)
		}
	}
	if c.BulletRadius.X >= c.ArenaRadius.X || c.BulletRadius.Y >= c.ArenaRadius.Y {
		return fmt.Errorf("%w: bullet radius %v does not fit arena %v", ErrInvalidConfig, c.BulletRadius, c.ArenaRadius)
	}
	return nil
}
