package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// exactConfig uses radii that are exact in binary so edge-touching cases
// are not decided by rounding.
func exactConfig() Config {
	cfg := DefaultConfig()
	cfg.BulletRadius = V(0.125, 0.125)
	cfg.AimRadius = V(0.25, 0.25)
	return cfg
}

func TestMovement_UpHeldForOneSecondClampsAtWall(t *testing.T) {
	ts := NewTestSim(WithHeld(KeyUp), WithTargetAt(-6, -4))
	ts.Step(1.0)
	p := ts.World().Player
	// 2.5 + 4*1 overshoots the top edge at 5.
	if !near(p.X, 4) || !near(p.Y, 5) {
		t.Fatalf("expected player at (4,5), got (%.4f,%.4f)", p.X, p.Y)
	}
}

func TestMovement_UpHeldForQuarterSecond(t *testing.T) {
	ts := NewTestSim(WithHeld(KeyUp), WithTargetAt(-6, -4))
	ts.Step(0.25)
	p := ts.World().Player
	if !near(p.X, 4) || !near(p.Y, 3.5) {
		t.Fatalf("expected player at (4,3.5), got (%.4f,%.4f)", p.X, p.Y)
	}
}

func TestMovement_ClampedForEveryKeyCombination(t *testing.T) {
	keys := []Key{KeyUp, KeyLeft, KeyDown, KeyRight}
	steps := []float64{0, 1.0 / 60, 0.5, 3, 100}
	for mask := 0; mask < 16; mask++ {
		var held []Key
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				held = append(held, k)
			}
		}
		for _, dt := range steps {
			ts := NewTestSim(WithHeld(held...))
			r := ts.Cfg.ArenaRadius
			for i := 0; i < 5; i++ {
				ts.Step(dt)
				p := ts.World().Player
				if math.Abs(p.X) > r.X || math.Abs(p.Y) > r.Y {
					t.Fatalf("mask=%04b dt=%g: player escaped arena at (%.3f,%.3f)", mask, dt, p.X, p.Y)
				}
			}
		}
	}
}

func TestMovement_CornerPinned(t *testing.T) {
	ts := NewTestSim(WithHeld(KeyUp, KeyRight))
	ts.Step(100)
	p := ts.World().Player
	if p.X != 8 || p.Y != 5 {
		t.Fatalf("expected player pinned at (8,5), got (%.3f,%.3f)", p.X, p.Y)
	}
}

func TestMovement_DiagonalClampsPerAxis(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(0, 0), WithHeld(KeyUp, KeyRight))
	ts.Step(0.5)
	p := ts.World().Player
	// Each axis moves the full speed*dt; the diagonal is not normalised.
	if !near(p.X, 2) || !near(p.Y, 2) {
		t.Fatalf("expected (2,2), got (%.4f,%.4f)", p.X, p.Y)
	}
}

func TestMovement_OpposingKeysCancel(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(1, 1), WithHeld(KeyLeft, KeyRight))
	ts.Step(0.25)
	p := ts.World().Player
	if !near(p.X, 1) || !near(p.Y, 1) {
		t.Fatalf("expected player to stay at (1,1), got (%.4f,%.4f)", p.X, p.Y)
	}
}

func TestFire_SpawnsTowardAim(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(0, 0), WithAimAt(1, 0), WithFireHeld(), WithTargetAt(-6, -4))
	rep := ts.Step(0.01)
	if !rep.Fired {
		t.Fatal("expected a projectile to be fired")
	}
	w := ts.World()
	if w.Shots.Len() != 1 {
		t.Fatalf("expected 1 projectile, got %d", w.Shots.Len())
	}
	p := w.Shots.At(0)
	if !near(p.Dir.X, 1) || !near(p.Dir.Y, 0) {
		t.Fatalf("expected direction (1,0), got (%.4f,%.4f)", p.Dir.X, p.Dir.Y)
	}
	if w.FireCooldown != 0.5 {
		t.Fatalf("expected cooldown 0.5, got %g", w.FireCooldown)
	}
	// The new projectile flies in the same step it was fired.
	if !near(p.Pos.X, 0.08) || !near(p.Pos.Y, 0) {
		t.Fatalf("expected projectile at (0.08,0), got (%.4f,%.4f)", p.Pos.X, p.Pos.Y)
	}
}

func TestFire_DirectionIsUnitLength(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(-1, 2), WithAimAt(3, -1), WithFireHeld(), WithTargetAt(-7, -4))
	ts.Step(0)
	d := ts.Shot(0).Dir
	if !near(d.Len(), 1) {
		t.Fatalf("expected unit direction, got length %g", d.Len())
	}
	if !near(d.X, 0.8) || !near(d.Y, -0.6) {
		t.Fatalf("expected (0.8,-0.6), got (%.4f,%.4f)", d.X, d.Y)
	}
}

func TestFire_AimOnPlayerIsNoOp(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(1, 1), WithAimAt(1, 1), WithFireHeld())
	rep := ts.Step(0.1)
	w := ts.World()
	if rep.Fired || w.Shots.Len() != 0 {
		t.Fatalf("expected no spawn when aiming at the player, got fired=%v len=%d", rep.Fired, w.Shots.Len())
	}
	if w.FireCooldown != 0 {
		t.Fatalf("skipped shot must not start the cooldown, got %g", w.FireCooldown)
	}
}

func TestFire_NotHeldDoesNothing(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(0, 0), WithAimAt(1, 0))
	ts.RunFrames(30, 0.1)
	if n := ts.ShotCount(); n != 0 {
		t.Fatalf("expected no projectiles without fire held, got %d", n)
	}
}

func TestFire_RateLimited(t *testing.T) {
	for _, dt := range []float64{1.0 / 60, 0.05, 0.1, 0.37, 1.3} {
		ts := NewTestSim(WithPlayerAt(0, 0), WithAimAt(1, 0), WithFireHeld(), WithTargetAt(-6, -4))
		frames := 200
		ts.RunFrames(frames, dt)
		shots, _, _, _ := ts.Totals()
		T := float64(frames) * dt
		limit := int(math.Floor(T/ts.Cfg.FireInterval+1e-9)) + 1
		if shots > limit {
			t.Fatalf("dt=%g: %d shots in %.2fs exceeds limit %d", dt, shots, T, limit)
		}
		if shots == 0 {
			t.Fatalf("dt=%g: expected at least one shot", dt)
		}
	}
}

func TestFire_CooldownDecaysBeforeFiring(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(0, 0), WithAimAt(1, 0), WithFireHeld(), WithTargetAt(-6, -4))
	ts.Step(0.25) // fires, cooldown 0.5
	if rep := ts.Step(0.25); rep.Fired {
		t.Fatal("fired again with cooldown still running")
	}
	if rep := ts.Step(0.25); !rep.Fired {
		t.Fatal("expected second shot once the cooldown reached zero")
	}
}

func TestProjectiles_CapacityBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FireInterval = 0.01
	ts := NewTestSim(WithConfig(cfg), WithPlayerAt(-7, 0), WithAimAt(8, 0), WithFireHeld(), WithTargetAt(0, -4))
	evictions := 0
	for i := 0; i < 50; i++ {
		rep := ts.Step(0.02)
		if !rep.Fired {
			t.Fatalf("frame %d: expected a shot every frame", i)
		}
		if rep.Evicted {
			evictions++
		}
		if n := ts.ShotCount(); n > ProjectileCapacity {
			t.Fatalf("frame %d: %d projectiles exceeds capacity", i, n)
		}
	}
	if n := ts.ShotCount(); n != ProjectileCapacity {
		t.Fatalf("expected a full ring, got %d", n)
	}
	if evictions != 50-ProjectileCapacity {
		t.Fatalf("expected %d evictions, got %d", 50-ProjectileCapacity, evictions)
	}
}

func TestProjectiles_WallDeactivatesSameStep(t *testing.T) {
	ts := NewTestSim(WithTargetAt(-5, -3), WithProjectile(7.85, 0, 1, 0))
	rep := ts.Step(0.01) // x = 7.93, limit is 7.9
	if rep.WallExits != 1 {
		t.Fatalf("expected 1 wall exit, got %d", rep.WallExits)
	}
	p := ts.Shot(0)
	if p.Active {
		t.Fatal("projectile past the wall is still active")
	}
	ts.RunFrames(20, 0.1)
	q := ts.Shot(0)
	if q.Active {
		t.Fatal("projectile reactivated")
	}
	if q.Pos != p.Pos {
		t.Fatalf("inactive projectile moved from %v to %v", p.Pos, q.Pos)
	}
}

func TestProjectiles_InsideMarginStaysActive(t *testing.T) {
	ts := NewTestSim(WithTargetAt(-5, -3), WithProjectile(7.8, 0, 1, 0))
	ts.Step(0.001) // x = 7.808
	if !ts.Shot(0).Active {
		t.Fatal("projectile inside the wall margin was deactivated")
	}
}

func TestProjectiles_AllFourWalls(t *testing.T) {
	cases := []struct {
		name         string
		x, y, dx, dy float64
	}{
		{"right", 7.85, 0, 1, 0},
		{"left", -7.85, 0, -1, 0},
		{"top", 0, 4.85, 0, 1},
		{"bottom", 0, -4.85, 0, -1},
	}
	for _, c := range cases {
		ts := NewTestSim(WithTargetAt(3, 3), WithProjectile(c.x, c.y, c.dx, c.dy))
		if rep := ts.Step(0.01); rep.WallExits != 1 {
			t.Fatalf("%s wall: expected exit, got %+v", c.name, rep)
		}
	}
}

func TestTarget_CentreHitScores(t *testing.T) {
	ts := NewTestSim(WithTargetAt(2, 1), WithProjectile(2, 1, 1, 0))
	rep := ts.Step(0)
	w := ts.World()
	if rep.Hits != 1 || w.Score != 1 {
		t.Fatalf("expected one hit and score 1, got hits=%d score=%d", rep.Hits, w.Score)
	}
	if w.Shots.At(0).Active {
		t.Fatal("projectile that hit the target is still active")
	}
	r := ts.Cfg.ArenaRadius
	if math.Abs(w.Target.X) > r.X || math.Abs(w.Target.Y) > r.Y {
		t.Fatalf("target relocated outside the arena: %v", w.Target)
	}
}

func TestTarget_EdgeContactMisses(t *testing.T) {
	cfg := exactConfig()
	off := cfg.BulletRadius.Add(cfg.AimRadius) // 0.375 on each axis
	offsets := []Vec2{
		V(off.X, 0), V(-off.X, 0), V(0, off.Y), V(0, -off.Y), off, off.Scale(-1),
	}
	for _, o := range offsets {
		ts := NewTestSim(WithConfig(cfg), WithTargetAt(2, 1), WithProjectile(2+o.X, 1+o.Y, 1, 0))
		rep := ts.Step(0)
		w := ts.World()
		if rep.Hits != 0 || w.Score != 0 {
			t.Fatalf("offset %v: expected a miss, got hits=%d score=%d", o, rep.Hits, w.Score)
		}
		if !w.Shots.At(0).Active {
			t.Fatalf("offset %v: missed projectile was deactivated", o)
		}
		if w.Target != V(2, 1) {
			t.Fatalf("offset %v: target moved on a miss", o)
		}
	}
}

func TestTarget_JustInsideEdgeHits(t *testing.T) {
	cfg := exactConfig()
	ts := NewTestSim(WithConfig(cfg), WithTargetAt(2, 1), WithProjectile(2.25, 1, 1, 0))
	if rep := ts.Step(0); rep.Hits != 1 {
		t.Fatalf("expected overlap at 0.25 offset to hit, got %+v", rep)
	}
}

func TestTarget_WallAndHitSameStep(t *testing.T) {
	ts := NewTestSim(WithTargetAt(7.8, 0), WithProjectile(7.85, 0, 1, 0))
	rep := ts.Step(0.01)
	w := ts.World()
	if rep.WallExits != 1 || rep.Hits != 1 {
		t.Fatalf("expected both wall exit and hit, got %+v", rep)
	}
	if w.Score != 1 {
		t.Fatalf("expected exactly one point, got %d", w.Score)
	}
	if w.Shots.At(0).Active {
		t.Fatal("projectile still active after wall exit and hit")
	}
}

func TestRound_ResetsScoreAndTimer(t *testing.T) {
	ts := NewTestSim(WithRoundTimer(0.5), WithScore(7))
	rep := ts.Step(0.5)
	w := ts.World()
	if !rep.RoundReset {
		t.Fatal("expected a round reset")
	}
	if w.Score != 0 || w.RoundTimer != 30 {
		t.Fatalf("expected score 0 and timer 30, got score=%d timer=%g", w.Score, w.RoundTimer)
	}
}

func TestRound_FullRoundOfSteps(t *testing.T) {
	ts := NewTestSim(WithScore(4))
	for i := 1; i <= 120; i++ {
		rep := ts.Step(0.25)
		if rep.RoundReset != (i == 120) {
			t.Fatalf("step %d: unexpected reset=%v timer=%g", i, rep.RoundReset, ts.World().RoundTimer)
		}
	}
	w := ts.World()
	if w.Score != 0 || w.RoundTimer != 30 {
		t.Fatalf("expected fresh round, got score=%d timer=%g", w.Score, w.RoundTimer)
	}
}

func TestRound_HitOnFinalStepIsWiped(t *testing.T) {
	// The timer runs after scoring, so the last-frame point is lost.
	ts := NewTestSim(WithRoundTimer(0.01), WithScore(2), WithTargetAt(0, 0), WithProjectile(0, 0, 1, 0))
	rep := ts.Step(0.01)
	if rep.Hits != 1 || !rep.RoundReset {
		t.Fatalf("expected a hit and a reset in the same step, got %+v", rep)
	}
	if s := ts.World().Score; s != 0 {
		t.Fatalf("expected score wiped to 0, got %d", s)
	}
	if ts.SimLog.CountCategory("target", "hit") != 1 || ts.SimLog.CountCategory("round", "reset") != 1 {
		t.Fatalf("expected both the hit and the reset in the log:\n%s", ts.SimLog.Format())
	}
}

func TestSteps_DoNotMutateTheirInput(t *testing.T) {
	cfg := DefaultConfig()
	w0 := World{Player: V(0, 0), Target: V(5, 4), RoundTimer: 10}
	in := Input{Fire: true, Aim: V(1, 0), Up: true}

	w1 := stepMovement(w0, in, cfg, 1)
	w2, fired, _ := stepFire(w1, in, cfg)
	w3, _, _ := stepProjectiles(w2, cfg, 0.1, nil)
	_, _ = stepRoundTimer(w3, cfg, 1)

	if !fired {
		t.Fatal("expected stepFire to fire")
	}
	if w0.Player != V(0, 0) || w0.Shots.Len() != 0 || w0.RoundTimer != 10 {
		t.Fatalf("input world was mutated: %+v", w0)
	}
	if w2.Shots.At(0).Pos != V(0, 4) {
		t.Fatalf("stepProjectiles moved the caller's copy: %v", w2.Shots.At(0).Pos)
	}
	if w3.Shots.At(0).Pos.X <= 0 {
		t.Fatalf("expected returned world to hold the moved projectile, got %v", w3.Shots.At(0).Pos)
	}
}

func TestAdvance_RecordsAimInWorld(t *testing.T) {
	ts := NewTestSim(WithAimAt(-2, 3))
	ts.Step(0.016)
	if a := ts.World().Aim; a != V(-2, 3) {
		t.Fatalf("expected world aim (-2,3), got %v", a)
	}
}
