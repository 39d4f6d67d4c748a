package game

// Key is a logical movement key. Hosts map their physical keys onto these.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyLeft
	KeyDown
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyLeft:
		return "left"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	default:
		return "none"
	}
}

// Input is the tracked control state the simulation reads each frame.
type Input struct {
	Up, Left, Down, Right bool
	Fire                  bool
	Aim                   Vec2 // aim point in simulation space
}

// OnKey records a press or release of one movement key. Unknown keys are
// ignored.
func (in *Input) OnKey(k Key, pressed bool) {
	switch k {
	case KeyUp:
		in.Up = pressed
	case KeyLeft:
		in.Left = pressed
	case KeyDown:
		in.Down = pressed
	case KeyRight:
		in.Right = pressed
	}
}

// OnFireButton records the fire button state.
func (in *Input) OnFireButton(pressed bool) {
	in.Fire = pressed
}

// OnPointerMove maps a pointer position in viewport pixels to the aim point.
// Pixel rows grow downward while device y grows upward. inverse must be the
// device-to-simulation map of the most recently drawn frame. The aim point is
// not clamped to the arena. Moves over an empty viewport are dropped.
func (in *Input) OnPointerMove(x, y float64, vp Viewport, inverse Affine) {
	if vp.W <= 0 || vp.H <= 0 {
		return
	}
	in.Aim = inverse.Apply(vp.PixelToDevice(x, y))
}
