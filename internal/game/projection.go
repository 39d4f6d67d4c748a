package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Viewport is the drawable size in pixels.
type Viewport struct {
	W, H int
}

// Aspect returns width over height. Empty viewports count as square.
func (vp Viewport) Aspect() float64 {
	if vp.W <= 0 || vp.H <= 0 {
		return 1
	}
	return float64(vp.W) / float64(vp.H)
}

// PixelToDevice maps the centre of pixel (x, y) to device coordinates in
// [-1,1]x[-1,1], flipping y.
func (vp Viewport) PixelToDevice(x, y float64) Vec2 {
	return V(
		2*(x+0.5)/float64(vp.W)-1,
		1-2*(y+0.5)/float64(vp.H),
	)
}

// DeviceToPixel is the inverse of PixelToDevice without the half-pixel
// offset: it returns the continuous pixel position of a device point.
func (vp Viewport) DeviceToPixel(p Vec2) Vec2 {
	return V(
		(p.X+1)/2*float64(vp.W),
		(1-p.Y)/2*float64(vp.H),
	)
}

// Affine is a 2D affine map held as a homogeneous 3x3 matrix in mathgl's
// column-major order.
type Affine mgl64.Mat3

// Identity returns the map that leaves points unchanged.
func Identity() Affine {
	return Affine(mgl64.Ident3())
}

// ScaleTranslate returns the map p*scale + offset.
func ScaleTranslate(scale, offset Vec2) Affine {
	return Affine(mgl64.Translate2D(offset.X, offset.Y).Mul3(mgl64.Scale2D(scale.X, scale.Y)))
}

// Then returns the map that applies m first and next second.
func (m Affine) Then(next Affine) Affine {
	return Affine(mgl64.Mat3(next).Mul3(mgl64.Mat3(m)))
}

// Apply maps p.
func (m Affine) Apply(p Vec2) Vec2 {
	r := mgl64.Mat3(m).Mul3x1(p.vec().Vec3(1))
	return V(r[0], r[1])
}

// Mat4 expands m to a 4x4 matrix with z passed through, the layout a shader
// OBJECT_TO_CLIP uniform expects.
func (m Affine) Mat4() mgl32.Mat4 {
	return mgl32.Mat4{
		float32(m[0]), float32(m[1]), 0, 0,
		float32(m[3]), float32(m[4]), 0, 0,
		0, 0, 1, 0,
		float32(m[6]), float32(m[7]), 0, 1,
	}
}

// Projection fits a rectangle of simulation space into device coordinates
// with a uniform scale.
type Projection struct {
	Min, Max Vec2 // visible scene bounds
	Center   Vec2
	Aspect   float64
	Scale    float64
	Forward  Affine // simulation -> device
	Inverse  Affine // device -> simulation
}

// NewProjection centres [min,max] in the viewport. The scene fits inside
// [-aspect,aspect]x[-1,1] before x is divided by aspect, so shapes stay
// square on non-square viewports.
func NewProjection(min, max Vec2, vp Viewport) Projection {
	aspect := vp.Aspect()
	size := max.Sub(min)
	scale := 2 * aspect / size.X
	if sy := 2 / size.Y; sy < scale {
		scale = sy
	}
	center := min.Add(max).Scale(0.5)
	sx := scale / aspect

	return Projection{
		Min:    min,
		Max:    max,
		Center: center,
		Aspect: aspect,
		Scale:  scale,
		Forward: Affine(mgl64.Scale2D(sx, scale).
			Mul3(mgl64.Translate2D(-center.X, -center.Y))),
		Inverse: Affine(mgl64.Translate2D(center.X, center.Y).
			Mul3(mgl64.Scale2D(1/sx, 1/scale))),
	}
}
