package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
)

// The debug font is a fixed 6x16 bitmap; text is drawn at that size into a
// scratch image and scaled to the requested height.
const (
	glyphW = 6
	glyphH = 16
)

// Renderer draws onto the screen image handed to Game.Draw.
type Renderer struct {
	screen  *ebiten.Image
	white   *ebiten.Image
	scratch *ebiten.Image

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		white:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		scratch: ebiten.NewImage(glyphW*64, glyphH),
	}
}

// Target sets the image drawn to until the next call.
func (r *Renderer) Target(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) Clear(c platform.Color) {
	r.screen.Fill(c)
}

func (r *Renderer) Circle(center geom.Vec2, radius float32, c platform.Color) {
	vector.DrawFilledCircle(r.screen, center.X, center.Y, radius, c, true)
}

// Ring strokes an arc along the middle of the band. Angles follow raylib:
// degrees, clockwise on screen from the positive x axis.
func (r *Renderer) Ring(center geom.Vec2, inner, outer, startDeg, endDeg float32, c platform.Color) {
	start, end := geom.Deg2Rad(startDeg), geom.Deg2Rad(endDeg)
	dir := vector.Clockwise
	if end < start {
		dir = vector.CounterClockwise
	}

	r.path = vector.Path{}
	r.path.Arc(center.X, center.Y, (inner+outer)/2, start, end, dir)
	r.vertices, r.indices = r.path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &vector.StrokeOptions{
		Width: outer - inner,
	})
	r.fill(c)
}

func (r *Renderer) Rect(rect geom.Rect, c platform.Color) {
	vector.DrawFilledRect(r.screen, rect.X, rect.Y, rect.W, rect.H, c, false)
}

func (r *Renderer) Poly(center geom.Vec2, sides int, radius, rotation float32, c platform.Color) {
	if sides < 3 {
		return
	}
	r.path = vector.Path{}
	step := 2 * math.Pi / float32(sides)
	rot := geom.Deg2Rad(rotation)
	for i := range sides {
		sin, cos := geom.Sincos(rot + step*float32(i))
		x, y := center.X+cos*radius, center.Y+sin*radius
		if i == 0 {
			r.path.MoveTo(x, y)
		} else {
			r.path.LineTo(x, y)
		}
	}
	r.path.Close()
	r.fillPath(c)
}

func (r *Renderer) Triangle(a, b, v geom.Vec2, c platform.Color) {
	r.path = vector.Path{}
	r.path.MoveTo(a.X, a.Y)
	r.path.LineTo(b.X, b.Y)
	r.path.LineTo(v.X, v.Y)
	r.path.Close()
	r.fillPath(c)
}

func (r *Renderer) Pixel(p geom.Vec2, c platform.Color) {
	vector.DrawFilledRect(r.screen, p.X, p.Y, 1, 1, c, false)
}

func (r *Renderer) Text(s string, x, y, size int, c platform.Color) {
	if s == "" || size <= 0 {
		return
	}
	if w := len(s) * glyphW; w > r.scratch.Bounds().Dx() {
		r.scratch = ebiten.NewImage(w, glyphH)
	}
	r.scratch.Clear()
	ebitenutil.DebugPrintAt(r.scratch, s, 0, 0)

	scale := float64(size) / glyphH
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	r.screen.DrawImage(r.scratch.SubImage(image.Rect(0, 0, len(s)*glyphW, glyphH)).(*ebiten.Image), op)
}

func (r *Renderer) MeasureText(s string, size int) int {
	return len(s) * glyphW * size / glyphH
}

func (r *Renderer) fillPath(c platform.Color) {
	r.vertices, r.indices = r.path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.fill(c)
}

func (r *Renderer) fill(c platform.Color) {
	cr, cg, cb, ca := c.RGBA()
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(cr) / 0xffff
		r.vertices[i].ColorG = float32(cg) / 0xffff
		r.vertices[i].ColorB = float32(cb) / 0xffff
		r.vertices[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	r.screen.DrawTriangles(r.vertices, r.indices, r.white, op)
}
