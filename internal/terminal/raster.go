// Package terminal hosts a Session in a text terminal through tcell.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Shooter-Mode/internal/game"
)

// halfBlock paints the top half of a cell in the foreground colour and the
// bottom half in the background colour, doubling vertical resolution.
const halfBlock = '▀'

// Raster is an RGBA framebuffer with two pixels per terminal cell
// vertically. It implements game.FrameSink.
type Raster struct {
	cols, rows int
	pix        []game.RGBA8 // [y*cols + x], y in [0, rows*2)
	device     []game.Vec2
}

// NewRaster returns a raster covering cols by rows terminal cells.
func NewRaster(cols, rows int) *Raster {
	r := &Raster{}
	r.Resize(cols, rows)
	return r
}

// Resize changes the covered cell area, discarding the contents.
func (r *Raster) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	r.cols, r.rows = cols, rows
	n := cols * rows * 2
	if cap(r.pix) < n {
		r.pix = make([]game.RGBA8, n)
	}
	r.pix = r.pix[:n]
}

// Viewport returns the pixel size the projection should fit.
func (r *Raster) Viewport() game.Viewport {
	return game.Viewport{W: r.cols, H: r.rows * 2}
}

// Clear fills every pixel with c.
func (r *Raster) Clear(c game.RGBA8) {
	for i := range r.pix {
		r.pix[i] = c
	}
}

// At returns pixel (x, y). Out-of-range reads return the zero colour.
func (r *Raster) At(x, y int) game.RGBA8 {
	w, h := r.Viewport().W, r.Viewport().H
	if x < 0 || y < 0 || x >= w || y >= h {
		return game.RGBA8{}
	}
	return r.pix[y*w+x]
}

// Submit clears to the background colour and rasterises f.
func (r *Raster) Submit(f game.Frame) error {
	if len(f.Vertices)%3 != 0 {
		return fmt.Errorf("vertex count %d is not a multiple of 3", len(f.Vertices))
	}
	r.Clear(game.BackgroundColor)
	vp := r.Viewport()
	if vp.W == 0 || vp.H == 0 {
		return nil
	}

	r.device = r.device[:0]
	for _, v := range f.Vertices {
		d := f.Transform.Apply(game.V(float64(v.Pos[0]), float64(v.Pos[1])))
		r.device = append(r.device, vp.DeviceToPixel(d))
	}
	for i := 0; i < len(r.device); i += 3 {
		r.fillTriangle(r.device[i], r.device[i+1], r.device[i+2], f.Vertices[i].Color)
	}
	return nil
}

func edge(a, b, p game.Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// fillTriangle covers every pixel whose centre lies inside abc, either
// winding. Triangles are flat-shaded with the first vertex colour.
func (r *Raster) fillTriangle(a, b, c game.Vec2, col game.RGBA8) {
	area := edge(a, b, c)
	if area == 0 {
		return
	}
	w, h := r.Viewport().W, r.Viewport().H
	minX := clampInt(int(min3(a.X, b.X, c.X)), 0, w-1)
	maxX := clampInt(int(max3(a.X, b.X, c.X)), 0, w-1)
	minY := clampInt(int(min3(a.Y, b.Y, c.Y)), 0, h-1)
	maxY := clampInt(int(max3(a.Y, b.Y, c.Y)), 0, h-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := game.V(float64(x)+0.5, float64(y)+0.5)
			w0, w1, w2 := edge(b, c, p), edge(c, a, p), edge(a, b, p)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			i := y*w + x
			r.pix[i] = blend(r.pix[i], col)
		}
	}
}

// blend composites src over dst with straight alpha.
func blend(dst, src game.RGBA8) game.RGBA8 {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}
	a := uint32(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	return game.RGBA8{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

func tcellColor(c game.RGBA8) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Flush writes the raster to screen starting at the top-left cell. It does
// not call Show.
func (r *Raster) Flush(screen tcell.Screen) {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			top := r.pix[(2*row)*r.cols+col]
			bot := r.pix[(2*row+1)*r.cols+col]
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bot))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float64) float64 {
	return min(a, min(b, c))
}

func max3(a, b, c float64) float64 {
	return max(a, max(b, c))
}
