package game

import "math"

// Autopilot is a rule-based player used by headless runs. Each frame it aims
// at the target, keeps the trigger down, and walks toward the target along
// whichever axis is further off.
type Autopilot struct {
	Deadzone  float64 // stop closing in once within this distance on an axis
	AimJitter float64 // max aim error per axis, scaled by rng
}

// NewAutopilot returns a pilot with stock settings.
func NewAutopilot() *Autopilot {
	return &Autopilot{Deadzone: 2.0, AimJitter: 0.15}
}

// Decide returns the control state for the next frame. rng may be nil for a
// perfectly steady aim.
func (ap *Autopilot) Decide(w World, rng RandSource) Input {
	in := Input{Fire: true, Aim: w.Target}
	if rng != nil && ap.AimJitter > 0 {
		in.Aim = in.Aim.Add(V(
			(rng.Float64()*2-1)*ap.AimJitter,
			(rng.Float64()*2-1)*ap.AimJitter,
		))
	}

	d := w.Target.Sub(w.Player)
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X > ap.Deadzone {
			in.Right = true
		} else if d.X < -ap.Deadzone {
			in.Left = true
		}
	} else {
		if d.Y > ap.Deadzone {
			in.Up = true
		} else if d.Y < -ap.Deadzone {
			in.Down = true
		}
	}
	return in
}

// Apply replays in through the tracker's key and button handlers. The aim
// point is copied as-is since pilots already work in simulation space.
func (in Input) Apply(t *Input) {
	t.OnKey(KeyUp, in.Up)
	t.OnKey(KeyLeft, in.Left)
	t.OnKey(KeyDown, in.Down)
	t.OnKey(KeyRight, in.Right)
	t.OnFireButton(in.Fire)
	t.Aim = in.Aim
}
