package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a point or direction in simulation space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) vec() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func fromVec(m mgl64.Vec2) Vec2 {
	return Vec2{X: m[0], Y: m[1]}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return fromVec(v.vec().Add(o.vec()))
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return fromVec(v.vec().Sub(o.vec()))
}

func (v Vec2) Scale(k float64) Vec2 {
	return fromVec(v.vec().Mul(k))
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

func (v Vec2) Len() float64 {
	return v.vec().Len()
}

// minNormLen is the shortest vector Normalize will accept.
const minNormLen = 1e-12

// Normalize returns v scaled to unit length. ok is false when v has no usable
// direction (zero length, NaN or infinite components).
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if !(l > minNormLen) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return fromVec(v.vec().Normalize()), true
}

// clampAxis limits x to [-r, r].
func clampAxis(x, r float64) float64 {
	if x > r {
		return r
	}
	if x < -r {
		return -r
	}
	return x
}
