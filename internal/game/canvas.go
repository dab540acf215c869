package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/blob-background/internal/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenCanvas draws onto the ebiten screen image bound for the current
// Draw call. Outside Draw it has no target and drawing is a no-op.
type screenCanvas struct {
	target   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newScreenCanvas() *screenCanvas {
	return &screenCanvas{}
}

func (c *screenCanvas) bind(screen *ebiten.Image) { c.target = screen }

// Resize is a no-op: ebiten sizes the screen from Layout and hands a fresh
// image to every Draw.
func (c *screenCanvas) Resize(width, height int) {}

func (c *screenCanvas) Clear() {
	if c.target != nil {
		c.target.Clear()
	}
}

func (c *screenCanvas) FillPolygon(pts []render.Point, col color.NRGBA) {
	if c.target == nil || len(pts) < 3 {
		return
	}
	r, g, b, a := vertexColor(col)
	c.vertices, c.indices = appendPolygon(c.vertices[:0], c.indices[:0], pts, r, g, b, a)
	c.target.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

// appendPolygon traces pts as a closed vector.Path and appends the fill
// vertices, tinted with the given straight-alpha color.
func appendPolygon(vs []ebiten.Vertex, is []uint16, pts []render.Point, r, g, b, a float32) ([]ebiten.Vertex, []uint16) {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	start := len(vs)
	vs, is = path.AppendVerticesAndIndicesForFilling(vs, is)
	for i := start; i < len(vs); i++ {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	return vs, is
}
