package game

import (
	"math/rand"
)

// TestSim is a headless harness used by tests and the headless report. It
// mirrors what a host does each frame but with deterministic seeding,
// scripted or pilot-driven input, and structured logging.
type TestSim struct {
	Cfg     Config
	Sim     *Sim
	Input   Input
	SimLog  *SimLog
	Pilot   *Autopilot
	Frame   int
	Reports []StepReport

	rng    *rand.Rand
	staged []func(*World)
}

// SimOption is a builder function applied to a TestSim during construction.
type SimOption func(*TestSim)

// WithConfig replaces the stock arena config.
func WithConfig(cfg Config) SimOption {
	return func(ts *TestSim) {
		ts.Cfg = cfg
	}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}
}

// WithVerbose enables per-frame verbose logging.
func WithVerbose(v bool) SimOption {
	return func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}
}

// WithPlayerAt places the player.
func WithPlayerAt(x, y float64) SimOption {
	return func(ts *TestSim) {
		ts.staged = append(ts.staged, func(w *World) { w.Player = V(x, y) })
	}
}

// WithTargetAt places the target.
func WithTargetAt(x, y float64) SimOption {
	return func(ts *TestSim) {
		ts.staged = append(ts.staged, func(w *World) { w.Target = V(x, y) })
	}
}

// WithAimAt sets the aim point directly in simulation space.
func WithAimAt(x, y float64) SimOption {
	return func(ts *TestSim) {
		ts.Input.Aim = V(x, y)
	}
}

// WithHeld holds the given movement keys for the whole run.
func WithHeld(keys ...Key) SimOption {
	return func(ts *TestSim) {
		for _, k := range keys {
			ts.Input.OnKey(k, true)
		}
	}
}

// WithFireHeld keeps the fire button down.
func WithFireHeld() SimOption {
	return func(ts *TestSim) {
		ts.Input.OnFireButton(true)
	}
}

// WithRoundTimer sets the time left in the round.
func WithRoundTimer(sec float64) SimOption {
	return func(ts *TestSim) {
		ts.staged = append(ts.staged, func(w *World) { w.RoundTimer = sec })
	}
}

// WithScore sets the starting score.
func WithScore(n int) SimOption {
	return func(ts *TestSim) {
		ts.staged = append(ts.staged, func(w *World) { w.Score = n })
	}
}

// WithProjectile stages an active projectile.
func WithProjectile(x, y, dx, dy float64) SimOption {
	return func(ts *TestSim) {
		ts.staged = append(ts.staged, func(w *World) {
			w.Shots.Push(Projectile{Pos: V(x, y), Dir: V(dx, dy), Active: true})
		})
	}
}

// WithAutopilot lets a pilot decide the input every frame.
func WithAutopilot(ap *Autopilot) SimOption {
	return func(ts *TestSim) {
		ts.Pilot = ap
	}
}

// NewTestSim constructs a TestSim. Options are applied in order, the world
// is created from the resulting config and seed, then staged world edits run.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Cfg:    DefaultConfig(),
		SimLog: NewSimLog(false),
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		o(ts)
	}
	ts.Sim = NewSim(ts.Cfg, ts.rng)
	w := ts.Sim.World()
	for _, fn := range ts.staged {
		fn(&w)
	}
	ts.Sim.SetWorld(w)
	return ts
}

// World returns the current simulation state.
func (ts *TestSim) World() World {
	return ts.Sim.World()
}

// Step advances one frame of dt seconds and logs what happened.
func (ts *TestSim) Step(dt float64) StepReport {
	if ts.Pilot != nil {
		ts.Pilot.Decide(ts.Sim.World(), ts.rng).Apply(&ts.Input)
	}
	ts.Frame++
	rep := ts.Sim.Advance(ts.Input, dt)
	ts.Reports = append(ts.Reports, rep)
	ts.SimLog.RecordStep(ts.Frame, rep, ts.Sim.World())
	return rep
}

// RunFrames advances n frames of dt seconds each.
func (ts *TestSim) RunFrames(n int, dt float64) {
	for i := 0; i < n; i++ {
		ts.Step(dt)
	}
}

// RunUntil advances up to maxFrames, stopping early if predicate returns
// true. Returns the frame at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int, dt float64) int {
	for i := 0; i < maxFrames; i++ {
		ts.Step(dt)
		if predicate(ts) {
			return ts.Frame
		}
	}
	return -1
}

// Totals sums every report recorded so far.
func (ts *TestSim) Totals() (shots, hits, exits, resets int) {
	for _, r := range ts.Reports {
		if r.Fired {
			shots++
		}
		hits += r.Hits
		exits += r.WallExits
		if r.RoundReset {
			resets++
		}
	}
	return shots, hits, exits, resets
}

// Shot returns a copy of the i-th stored projectile, oldest first.
func (ts *TestSim) Shot(i int) Projectile {
	w := ts.Sim.World()
	return *w.Shots.At(i)
}

// ShotCount returns how many projectiles are stored.
func (ts *TestSim) ShotCount() int {
	w := ts.Sim.World()
	return w.Shots.Len()
}
