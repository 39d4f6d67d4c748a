package game

import (
	"encoding/binary"
	"image/color"
	"math"
)

// VertexSize is the packed size of one Vertex in bytes: three float32
// position components, four colour bytes, two float32 texture coordinates.
const VertexSize = 4*3 + 1*4 + 4*2

// RGBA8 is an 8-bit-per-channel straight-alpha colour.
type RGBA8 struct {
	R, G, B, A uint8
}

// Hex converts 0xRRGGBBAA.
func Hex(c uint32) RGBA8 {
	return RGBA8{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

// RGBA implements color.Color.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Vertex is one corner of a solid-colour triangle.
type Vertex struct {
	Pos   [3]float32
	Color RGBA8
	UV    [2]float32
}

// solidUV samples the centre of a 1x1 white texture.
var solidUV = [2]float32{0.5, 0.5}

// EncodeVertices appends vs to dst in the packed little-endian layout
// (position at offset 0, colour at 12, texcoord at 16, stride VertexSize).
func EncodeVertices(dst []byte, vs []Vertex) []byte {
	for _, v := range vs {
		for _, f := range v.Pos {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
		dst = append(dst, v.Color.R, v.Color.G, v.Color.B, v.Color.A)
		for _, f := range v.UV {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
	}
	return dst
}

// DecodeVertex reads one packed vertex from b, which must hold at least
// VertexSize bytes.
func DecodeVertex(b []byte) Vertex {
	f := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
	}
	return Vertex{
		Pos:   [3]float32{f(0), f(4), f(8)},
		Color: RGBA8{R: b[12], G: b[13], B: b[14], A: b[15]},
		UV:    [2]float32{f(16), f(20)},
	}
}
