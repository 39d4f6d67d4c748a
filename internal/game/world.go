package game

// World is the complete simulation state of one arena. It is a plain value:
// copying a World snapshots everything, projectiles included.
type World struct {
	Player       Vec2
	Aim          Vec2 // aim point the last step was computed with
	Target       Vec2
	Shots        Projectiles
	Score        int
	RoundTimer   float64 // seconds left in the round
	FireCooldown float64 // seconds until the next shot is allowed
}

// NewWorld returns the opening state: player halfway to the top-right
// corner, target at a random spot, a full round on the clock.
func NewWorld(cfg Config, rng RandSource) World {
	return World{
		Player:     cfg.ArenaRadius.Scale(0.5),
		Target:     randomInArena(cfg, rng),
		RoundTimer: cfg.RoundDuration,
	}
}

// randomInArena samples a point uniformly within the arena half-extents.
func randomInArena(cfg Config, rng RandSource) Vec2 {
	x := rng.Float64()*2 - 1
	y := rng.Float64()*2 - 1
	return V(x, y).Mul(cfg.ArenaRadius)
}
