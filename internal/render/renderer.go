// Package render draws blob fields onto a Canvas.
package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/blob-background/internal/blob"
	"github.com/iburimskiy/blob-background/internal/config"
)

// Canvas is a drawing surface that can fill closed polygons.
type Canvas interface {
	// Resize sets the surface size in pixels. Resizing clears the surface.
	Resize(width, height int)
	Clear()
	// FillPolygon fills the closed polygon through pts with c. It must not
	// retain pts.
	FillPolygon(pts []Point, c color.NRGBA)
}

// Placement is a blob resolved to pixels for one frame.
type Placement struct {
	Center Point
	Radius float64
}

// Place resolves blob b, at index i of its field, on a width x height
// surface at timestamp ts (milliseconds).
func Place(b blob.Blob, i int, ts float64, width, height int) Placement {
	w, h := float64(width), float64(height)
	t := ts / config.TimeScale
	nx := math.Sin(t*b.Speed+b.Phase+float64(i)) * b.Motion.X * config.OffsetScale
	ny := math.Cos(t*b.Speed+b.Phase-float64(i)) * b.Motion.Y * config.OffsetScale
	return Placement{
		Center: Point{X: b.Pos.X*w + nx, Y: b.Pos.Y*h + ny},
		Radius: b.Radius * math.Min(w, h),
	}
}

// Renderer draws every blob of a field each frame.
type Renderer struct {
	canvas  Canvas
	scratch []Point
}

func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// DrawFrame clears the canvas and draws blobs at timestamp ts.
func (r *Renderer) DrawFrame(ts float64, width, height int, blobs []blob.Blob) {
	r.canvas.Clear()
	for i, b := range blobs {
		p := Place(b, i, ts, width, height)
		r.drawBlob(p, b.Color)
	}
}

// drawBlob draws the halo outermost layer first, then the body.
func (r *Renderer) drawBlob(p Placement, c color.NRGBA) {
	for k := config.GlowLayers; k >= 1; k-- {
		spread := config.GlowBlur * float64(k) / config.GlowLayers
		r.scratch = AppendNoisyCircle(r.scratch[:0], p.Center.X, p.Center.Y, p.Radius+spread)
		r.canvas.FillPolygon(r.scratch, glowColor(c, k))
	}
	r.scratch = AppendNoisyCircle(r.scratch[:0], p.Center.X, p.Center.Y, p.Radius)
	r.canvas.FillPolygon(r.scratch, c)
}

// glowColor fades halo layer k of config.GlowLayers, outer layers fainter.
// The layer alphas roughly follow the falloff of a blurred shadow.
func glowColor(c color.NRGBA, k int) color.NRGBA {
	falloff := 1 - float64(k)/float64(config.GlowLayers+1)
	c.A = uint8(math.Round(float64(c.A) * config.GlowStrength * falloff))
	return c
}
