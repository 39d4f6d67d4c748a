package game

//go:generate go tool mockgen -destination=./mocks/game_mock.go -package=mocks . RandSource,FrameSink

// RandSource supplies uniform samples in [0,1). *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// StepReport summarises what one Advance call did.
type StepReport struct {
	Fired      bool // a projectile was spawned
	Evicted    bool // spawning pushed the oldest projectile out
	Hits       int  // projectiles that struck the target
	WallExits  int  // projectiles that left the arena
	RoundReset bool // the round timer ran out and the score was cleared
}

// Sim owns a World and advances it one frame at a time.
type Sim struct {
	cfg   Config
	world World
	rng   RandSource
}

// NewSim creates a simulation in its opening state. rng drives target
// placement; pass a seeded source for reproducible runs.
func NewSim(cfg Config, rng RandSource) *Sim {
	return &Sim{
		cfg:   cfg,
		world: NewWorld(cfg, rng),
		rng:   rng,
	}
}

// Config returns the arena configuration.
func (s *Sim) Config() Config {
	return s.cfg
}

// World returns a snapshot of the current state.
func (s *Sim) World() World {
	return s.world
}

// SetWorld replaces the current state. Used by harnesses to stage scenarios.
func (s *Sim) SetWorld(w World) {
	s.world = w
}

// Advance moves the world forward by elapsed seconds given the current input.
// The order is fixed: movement, cooldown, firing, projectiles, round timer.
// Because the timer runs last, a hit scored in the same call that ends the
// round is wiped by the reset.
func (s *Sim) Advance(in Input, elapsed float64) StepReport {
	var rep StepReport
	w := s.world
	w.Aim = in.Aim

	w = stepMovement(w, in, s.cfg, elapsed)
	w = stepCooldown(w, elapsed)
	w, rep.Fired, rep.Evicted = stepFire(w, in, s.cfg)
	w, rep.Hits, rep.WallExits = stepProjectiles(w, s.cfg, elapsed, s.rng)
	w, rep.RoundReset = stepRoundTimer(w, s.cfg, elapsed)

	s.world = w
	return rep
}

// stepMovement applies held directions. Each axis is clamped on its own, so
// holding two directions moves diagonally at full speed on both axes.
func stepMovement(w World, in Input, cfg Config, dt float64) World {
	d := cfg.PlayerSpeed * dt
	if in.Up {
		w.Player.Y = clampAxis(w.Player.Y+d, cfg.ArenaRadius.Y)
	}
	if in.Left {
		w.Player.X = clampAxis(w.Player.X-d, cfg.ArenaRadius.X)
	}
	if in.Down {
		w.Player.Y = clampAxis(w.Player.Y-d, cfg.ArenaRadius.Y)
	}
	if in.Right {
		w.Player.X = clampAxis(w.Player.X+d, cfg.ArenaRadius.X)
	}
	return w
}

func stepCooldown(w World, dt float64) World {
	if w.FireCooldown > 0 {
		w.FireCooldown -= dt
	}
	return w
}

// stepFire spawns a projectile toward the aim point when fire is held and
// the cooldown has run out. Aiming at the player's own position has no
// direction, so nothing is fired and the cooldown is left alone.
func stepFire(w World, in Input, cfg Config) (World, bool, bool) {
	if !in.Fire || w.FireCooldown > 0 {
		return w, false, false
	}
	dir, ok := in.Aim.Sub(w.Player).Normalize()
	if !ok {
		return w, false, false
	}
	evicted := w.Shots.Push(Projectile{Pos: w.Player, Dir: dir, Active: true})
	w.FireCooldown = cfg.FireInterval
	return w, true, evicted
}

// stepProjectiles flies every active projectile, then resolves walls and the
// target. Both checks always run; either one deactivates the shot.
func stepProjectiles(w World, cfg Config, dt float64, rng RandSource) (World, int, int) {
	hits, exits := 0, 0
	for i := 0; i < w.Shots.Len(); i++ {
		p := w.Shots.At(i)
		if !p.Active {
			continue
		}
		p.Pos = p.Pos.Add(p.Dir.Scale(cfg.BulletSpeed * dt))

		if leavesArena(p.Pos, cfg.BulletRadius, cfg.ArenaRadius) {
			p.Active = false
			exits++
		}

		if boxesOverlap(p.Pos, cfg.BulletRadius, w.Target, cfg.AimRadius) {
			w.Target = randomInArena(cfg, rng)
			w.Score++
			p.Active = false
			hits++
		}
	}
	return w, hits, exits
}

func stepRoundTimer(w World, cfg Config, dt float64) (World, bool) {
	w.RoundTimer -= dt
	if w.RoundTimer <= 0 {
		w.RoundTimer = cfg.RoundDuration
		w.Score = 0
		return w, true
	}
	return w, false
}
