package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/blob-background/internal/applog"
)

// RasterCanvas is a Canvas backed by a gg software context. It renders
// frames without a display.
type RasterCanvas struct {
	dc *gg.Context
}

// NewRasterCanvas returns a canvas with no surface. Drawing is a no-op until
// Resize is called with a positive size.
func NewRasterCanvas() *RasterCanvas {
	return &RasterCanvas{}
}

func (c *RasterCanvas) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		applog.Logger().Warn("raster canvas: ignoring empty size", "width", width, "height", height)
		c.release()
		return
	}
	if c.dc != nil && c.dc.Width() == width && c.dc.Height() == height {
		// same size still clears, like a canvas element
		c.dc.Clear()
		return
	}
	c.release()
	c.dc = gg.NewContext(width, height)
}

func (c *RasterCanvas) release() {
	if c.dc == nil {
		return
	}
	if err := c.dc.Close(); err != nil {
		applog.Logger().Warn("raster canvas: close context", "err", err)
	}
	c.dc = nil
}

func (c *RasterCanvas) Clear() {
	if c.dc != nil {
		c.dc.Clear()
	}
}

func (c *RasterCanvas) FillPolygon(pts []Point, col color.NRGBA) {
	if c.dc == nil || len(pts) < 3 {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.SetColor(col)
	if err := c.dc.Fill(); err != nil {
		applog.Logger().Warn("raster canvas: fill", "err", err)
	}
}

// Size returns the surface size, zero when unallocated.
func (c *RasterCanvas) Size() (width, height int) {
	if c.dc == nil {
		return 0, 0
	}
	return c.dc.Width(), c.dc.Height()
}

// Image returns a snapshot of the surface, or nil when unallocated.
func (c *RasterCanvas) Image() image.Image {
	if c.dc == nil {
		return nil
	}
	return c.dc.Image()
}
