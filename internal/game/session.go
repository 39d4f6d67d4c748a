package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FrameSink receives each built frame. Renderers implement it.
type FrameSink interface {
	Submit(f Frame) error
}

// RoundStats counts what happened in the current round. They are cleared
// whenever the round timer resets.
type RoundStats struct {
	Shots     int
	Hits      int
	WallExits int
	Evictions int
}

// Accuracy returns hits per shot, or 0 before the first shot.
func (rs RoundStats) Accuracy() float64 {
	if rs.Shots == 0 {
		return 0
	}
	return float64(rs.Hits) / float64(rs.Shots)
}

// Session drives one player's game frame by frame: host input first, then
// the simulation step, then geometry. It keeps the inverse projection of the
// last built frame so pointer events are mapped with what is on screen.
type Session struct {
	ID      string
	input   Input
	sim     *Sim
	batch   Batch
	inverse Affine
	frames  int
	round   RoundStats
}

// NewSession starts a session with a fresh world. Until the first frame is
// built pointer positions map through the identity.
func NewSession(cfg Config, rng RandSource) *Session {
	return &Session{
		ID:      uuid.NewString(),
		sim:     NewSim(cfg, rng),
		inverse: Identity(),
	}
}

// Key forwards a movement key event.
func (s *Session) Key(k Key, pressed bool) {
	s.input.OnKey(k, pressed)
}

// FireButton forwards the fire button state.
func (s *Session) FireButton(pressed bool) {
	s.input.OnFireButton(pressed)
}

// PointerMove forwards a pointer position in viewport pixels.
func (s *Session) PointerMove(x, y float64, vp Viewport) {
	s.input.OnPointerMove(x, y, vp, s.inverse)
}

// Input returns the tracked control state.
func (s *Session) Input() Input {
	return s.input
}

// Sim exposes the underlying simulation.
func (s *Session) Sim() *Sim {
	return s.sim
}

// Frames returns how many frames have been stepped.
func (s *Session) Frames() int {
	return s.frames
}

// Round returns the current round's counters.
func (s *Session) Round() RoundStats {
	return s.round
}

// Inverse returns the device-to-simulation map of the last built frame.
func (s *Session) Inverse() Affine {
	return s.inverse
}

// Frame advances the simulation by elapsed seconds and builds the frame for
// vp. The vertices stay valid until the next call.
func (s *Session) Frame(elapsed float64, vp Viewport) (Frame, StepReport) {
	rep := s.sim.Advance(s.input, elapsed)
	s.frames++
	s.count(rep)

	f := s.batch.Build(s.sim.World(), s.sim.Config(), vp)
	s.inverse = f.Inverse
	return f, rep
}

// Pump runs Frame and hands the result to sink.
func (s *Session) Pump(sink FrameSink, elapsed float64, vp Viewport) (StepReport, error) {
	f, rep := s.Frame(elapsed, vp)
	if err := sink.Submit(f); err != nil {
		return rep, fmt.Errorf("submit frame %d: %w", s.frames, err)
	}
	return rep, nil
}

// count folds rep into the round stats. A reset frame starts the new round
// with that frame's shot and eviction, since the projectile outlives the
// reset. Its hits and wall exits belong to the round that just ended.
func (s *Session) count(rep StepReport) {
	if rep.RoundReset {
		s.round = RoundStats{}
	} else {
		s.round.Hits += rep.Hits
		s.round.WallExits += rep.WallExits
	}
	if rep.Fired {
		s.round.Shots++
	}
	if rep.Evicted {
		s.round.Evictions++
	}
}

// Report renders a short plain-text status block for the current round.
func (s *Session) Report() string {
	w := s.sim.World()
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Shooter session %s ---\n", s.ID)
	fmt.Fprintf(&sb, "frames=%d score=%d time_left=%.1fs\n", s.frames, w.Score, w.RoundTimer)
	fmt.Fprintf(&sb, "player=(%.2f,%.2f) aim=(%.2f,%.2f) target=(%.2f,%.2f)\n",
		w.Player.X, w.Player.Y, w.Aim.X, w.Aim.Y, w.Target.X, w.Target.Y)
	fmt.Fprintf(&sb, "round: shots=%d hits=%d wall_exits=%d evictions=%d accuracy=%.0f%%\n",
		s.round.Shots, s.round.Hits, s.round.WallExits, s.round.Evictions, s.round.Accuracy()*100)
	fmt.Fprintf(&sb, "projectiles: stored=%d active=%d\n", w.Shots.Len(), w.Shots.ActiveCount())
	return sb.String()
}
