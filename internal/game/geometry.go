package game

import "math"

// Palette.
var (
	BackgroundColor = Hex(0x193b59ff)
	ForegroundColor = Hex(0xf2d2b6ff)
	ShadowColor     = Hex(0xf2ad94ff)
)

// Layout of everything drawn around the court, in simulation units.
const (
	wallRadius     = 0.05 // half-thickness of the court walls
	scenePadding   = 0.14 // gap between the walls and the viewport edge
	scoreRadius    = 0.1  // half-size of one score marker
	timerBarRadius = 0.05 // half-height of the round timer bar
	timerBarLength = 4.0  // length of a full timer bar
)

// Player arrow template, pointing along +Y before rotation.
var (
	arrowTip   = V(0, 0.58)
	arrowLeft  = V(-0.5, -0.28)
	arrowRight = V(0.5, -0.28)
)

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Transform Affine // simulation -> device
	Inverse   Affine // device -> simulation, for the next pointer mapping
	Vertices  []Vertex
}

// SceneBounds returns the rectangle that must stay visible: the court, its
// walls, the score strip above it and a margin.
func SceneBounds(cfg Config) (min, max Vec2) {
	r := cfg.ArenaRadius
	min = V(-r.X-2*wallRadius-scenePadding, -r.Y-2*wallRadius-scenePadding)
	max = V(r.X+2*wallRadius+scenePadding, r.Y+2*wallRadius+3*scoreRadius+scenePadding)
	return min, max
}

// Batch accumulates triangle vertices. The zero value is ready to use and a
// Batch can be reused across frames to avoid reallocating.
type Batch struct {
	Vertices []Vertex
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.Vertices = b.Vertices[:0]
}

func (b *Batch) vertex(p Vec2, c RGBA8) {
	b.Vertices = append(b.Vertices, Vertex{
		Pos:   [3]float32{float32(p.X), float32(p.Y), 0},
		Color: c,
		UV:    solidUV,
	})
}

// Triangle adds one triangle.
func (b *Batch) Triangle(p0, p1, p2 Vec2, c RGBA8) {
	b.vertex(p0, c)
	b.vertex(p1, c)
	b.vertex(p2, c)
}

// Rect adds an axis-aligned rectangle as two counter-clockwise triangles.
func (b *Batch) Rect(center, radius Vec2, c RGBA8) {
	lo := center.Sub(radius)
	hi := center.Add(radius)
	b.Triangle(lo, V(hi.X, lo.Y), hi, c)
	b.Triangle(lo, hi, V(lo.X, hi.Y), c)
}

// playerHeading returns the arrow rotation for a player looking at aim.
// The arguments are (dx, dy), so the angle is measured from +Y, clockwise.
func playerHeading(player, aim Vec2) float64 {
	return math.Atan2(aim.X-player.X, aim.Y-player.Y)
}

// rotateCW rotates v clockwise by angle radians.
func rotateCW(v Vec2, angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return V(v.X*c+v.Y*s, -v.X*s+v.Y*c)
}

// Player draws the arrow at player facing aim.
func (b *Batch) Player(player, aim Vec2, c RGBA8) {
	a := playerHeading(player, aim)
	tip := player.Add(rotateCW(arrowTip, a))
	left := player.Add(rotateCW(arrowLeft, a))
	right := player.Add(rotateCW(arrowRight, a))
	b.Triangle(tip, left, player, c)
	b.Triangle(tip, right, player, c)
}

// Crosshair draws four bars around p.
func (b *Batch) Crosshair(p Vec2, c RGBA8) {
	b.Rect(p.Add(V(0.2, 0)), V(0.1, 0.03), c)
	b.Rect(p.Add(V(-0.2, 0)), V(0.1, 0.03), c)
	b.Rect(p.Add(V(0, 0.2)), V(0.03, 0.1), c)
	b.Rect(p.Add(V(0, -0.2)), V(0.03, 0.1), c)
}

// Walls draws the four court walls. The side walls run the full height so
// the corners are closed.
func (b *Batch) Walls(r Vec2, c RGBA8) {
	side := V(wallRadius, r.Y+2*wallRadius)
	b.Rect(V(-r.X-wallRadius, 0), side, c)
	b.Rect(V(r.X+wallRadius, 0), side, c)
	b.Rect(V(0, -r.Y-wallRadius), V(r.X, wallRadius), c)
	b.Rect(V(0, r.Y+wallRadius), V(r.X, wallRadius), c)
}

// ScoreMarkers draws one square per point along the strip above the court.
func (b *Batch) ScoreMarkers(r Vec2, score int, c RGBA8) {
	y := r.Y + 2*wallRadius + 2*scoreRadius
	for i := 0; i < score; i++ {
		x := -r.X + (2+3*float64(i))*scoreRadius
		b.Rect(V(x, y), V(scoreRadius, scoreRadius), c)
	}
}

// TimerBar draws the time left in the round as a bar right-aligned to the
// court edge in the score strip.
func (b *Batch) TimerBar(r Vec2, remaining, total float64, c RGBA8) {
	if total <= 0 || remaining <= 0 {
		return
	}
	frac := math.Min(remaining/total, 1)
	half := timerBarLength * frac / 2
	y := r.Y + 2*wallRadius + 2*scoreRadius
	b.Rect(V(r.X-half, y), V(half, timerBarRadius), c)
}

// Build fills the batch with w and returns the frame for viewport vp.
// The returned Vertices alias the batch until its next Reset or Build.
func (b *Batch) Build(w World, cfg Config, vp Viewport) Frame {
	b.Reset()
	r := cfg.ArenaRadius

	b.Player(w.Player, w.Aim, ForegroundColor)
	b.Crosshair(w.Aim, ForegroundColor)
	for i := 0; i < w.Shots.Len(); i++ {
		if p := w.Shots.At(i); p.Active {
			b.Rect(p.Pos, cfg.BulletRadius, ForegroundColor)
		}
	}
	b.Walls(r, ForegroundColor)
	b.Rect(w.Target, cfg.AimRadius, ForegroundColor)
	b.ScoreMarkers(r, w.Score, ForegroundColor)
	b.TimerBar(r, w.RoundTimer, cfg.RoundDuration, ShadowColor)

	min, max := SceneBounds(cfg)
	proj := NewProjection(min, max, vp)
	return Frame{
		Transform: proj.Forward,
		Inverse:   proj.Inverse,
		Vertices:  b.Vertices,
	}
}

// BuildFrame is Build on a fresh batch.
func BuildFrame(w World, cfg Config, vp Viewport) Frame {
	var b Batch
	return b.Build(w, cfg, vp)
}
