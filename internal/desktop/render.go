package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Shooter-Mode/internal/game"
)

// newWhiteImage returns a 1x1 white sub-image to use as the DrawTriangles
// source. Sampling the centre of a 3x3 image avoids bleeding at the edges.
func newWhiteImage() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// toScreenVertices converts device-space vertices to ebiten vertices for a
// w by h target and appends them to dst. Texture coordinates are offset by
// the white sub-image origin.
func toScreenVertices(dst []ebiten.Vertex, vs []game.Vertex, w, h int) []ebiten.Vertex {
	fw, fh := float32(w), float32(h)
	for _, v := range vs {
		dst = append(dst, ebiten.Vertex{
			DstX:   (v.Pos[0] + 1) / 2 * fw,
			DstY:   (1 - v.Pos[1]) / 2 * fh,
			SrcX:   1 + v.UV[0],
			SrcY:   1 + v.UV[1],
			ColorR: float32(v.Color.R) / 255,
			ColorG: float32(v.Color.G) / 255,
			ColorB: float32(v.Color.B) / 255,
			ColorA: float32(v.Color.A) / 255,
		})
	}
	return dst
}

// toDevice applies the frame transform to every vertex, returning the
// device-space copy in dst.
func toDevice(dst, vs []game.Vertex, m game.Affine) []game.Vertex {
	dst = dst[:0]
	for _, v := range vs {
		p := m.Apply(game.V(float64(v.Pos[0]), float64(v.Pos[1])))
		v.Pos[0], v.Pos[1] = float32(p.X), float32(p.Y)
		dst = append(dst, v)
	}
	return dst
}

// sequentialIndices returns 0..n-1, growing dst as needed.
func sequentialIndices(dst []uint16, n int) []uint16 {
	for i := len(dst); i < n; i++ {
		dst = append(dst, uint16(i))
	}
	return dst[:n]
}
