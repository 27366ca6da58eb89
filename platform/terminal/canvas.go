package terminal

import (
	"math"

	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
)

type cell struct {
	bg platform.Color
	fg platform.Color
	ch rune
}

// Canvas rasterises world-space primitives onto a grid of terminal cells.
// A cell is covered when its centre lies inside the shape; shapes smaller
// than a cell still mark the cell under their centre. Translucent colors are
// blended over what is already there.
type Canvas struct {
	worldW, worldH float32
	cols, rows     int
	cells          []cell
}

func NewCanvas(worldW, worldH float32, cols, rows int) *Canvas {
	c := &Canvas{worldW: worldW, worldH: worldH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 1), max(rows, 1)
	c.cells = make([]cell, c.cols*c.rows)
}

func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows
}

// Cell returns what the cell at (col, row) shows.
func (c *Canvas) Cell(col, row int) (ch rune, fg, bg platform.Color) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0, platform.Color{}, platform.Color{}
	}
	cl := c.cells[row*c.cols+col]
	return cl.ch, cl.fg, cl.bg
}

func (c *Canvas) cellW() float32 { return c.worldW / float32(c.cols) }
func (c *Canvas) cellH() float32 { return c.worldH / float32(c.rows) }

// toCell maps a world point to the cell containing it.
func (c *Canvas) toCell(p geom.Vec2) (int, int) {
	return int(math.Floor(float64(p.X / c.cellW()))), int(math.Floor(float64(p.Y / c.cellH())))
}

func (c *Canvas) center(col, row int) geom.Vec2 {
	return geom.V((float32(col)+0.5)*c.cellW(), (float32(row)+0.5)*c.cellH())
}

func (c *Canvas) paint(col, row int, color platform.Color) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows || color.A == 0 {
		return
	}
	cl := &c.cells[row*c.cols+col]
	cl.bg = blend(cl.bg, color)
	if color.A == 255 {
		cl.ch = ' '
	}
}

// fill paints every cell in the bounding box whose centre satisfies inside,
// and the cell under anchor if none did.
func (c *Canvas) fill(minP, maxP, anchor geom.Vec2, color platform.Color, inside func(geom.Vec2) bool) {
	c0, r0 := c.toCell(minP)
	c1, r1 := c.toCell(maxP)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, c.cols-1), min(r1, c.rows-1)

	hit := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if inside(c.center(col, row)) {
				c.paint(col, row, color)
				hit = true
			}
		}
	}
	if !hit {
		c.paintAt(anchor, color)
	}
}

func (c *Canvas) paintAt(p geom.Vec2, color platform.Color) {
	col, row := c.toCell(p)
	c.paint(col, row, color)
}

func (c *Canvas) Clear(color platform.Color) {
	color.A = 255
	for i := range c.cells {
		c.cells[i] = cell{bg: color, ch: ' '}
	}
}

func (c *Canvas) Circle(center geom.Vec2, radius float32, color platform.Color) {
	if radius <= 0 {
		return
	}
	r := geom.V(radius, radius)
	c.fill(center.Sub(r), center.Add(r), center, color, func(p geom.Vec2) bool {
		return geom.Dist(p, center) <= radius
	})
}

// Ring covers the band between inner and outer over [startDeg, endDeg], with
// raylib's angle convention: degrees, clockwise on screen from +x.
func (c *Canvas) Ring(center geom.Vec2, inner, outer, startDeg, endDeg float32, color platform.Color) {
	lo, hi := min(startDeg, endDeg), max(startDeg, endDeg)
	r := geom.V(outer, outer)
	anchor := center.Add(geom.V(outer, 0))
	c.fill(center.Sub(r), center.Add(r), anchor, color, func(p geom.Vec2) bool {
		d := geom.Dist(p, center)
		if d < inner || d > outer {
			return false
		}
		a := float32(math.Atan2(float64(p.Y-center.Y), float64(p.X-center.X)) * 180 / math.Pi)
		for _, cand := range [...]float32{a, a - 360, a + 360} {
			if cand >= lo && cand <= hi {
				return true
			}
		}
		return false
	})
}

// Rect covers every cell the rectangle overlaps, so thin beams stay visible.
func (c *Canvas) Rect(rect geom.Rect, color platform.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	c0, r0 := c.toCell(geom.V(rect.X, rect.Y))
	c1 := int(math.Ceil(float64((rect.X+rect.W)/c.cellW()))) - 1
	r1 := int(math.Ceil(float64((rect.Y+rect.H)/c.cellH()))) - 1
	for row := max(r0, 0); row <= min(r1, c.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, c.cols-1); col++ {
			c.paint(col, row, color)
		}
	}
}

func (c *Canvas) Poly(center geom.Vec2, sides int, radius, rotation float32, color platform.Color) {
	if sides < 3 || radius <= 0 {
		return
	}
	pts := make([]geom.Vec2, sides)
	step := 2 * math.Pi / float32(sides)
	rot := geom.Deg2Rad(rotation)
	for i := range pts {
		sin, cos := geom.Sincos(rot + step*float32(i))
		pts[i] = center.Add(geom.V(cos*radius, sin*radius))
	}
	r := geom.V(radius, radius)
	c.fill(center.Sub(r), center.Add(r), center, color, func(p geom.Vec2) bool {
		return insideConvex(pts, p)
	})
}

func (c *Canvas) Triangle(a, b, v geom.Vec2, color platform.Color) {
	minP := geom.V(min(a.X, b.X, v.X), min(a.Y, b.Y, v.Y))
	maxP := geom.V(max(a.X, b.X, v.X), max(a.Y, b.Y, v.Y))
	anchor := geom.V((a.X+b.X+v.X)/3, (a.Y+b.Y+v.Y)/3)
	pts := []geom.Vec2{a, b, v}
	c.fill(minP, maxP, anchor, color, func(p geom.Vec2) bool {
		return insideConvex(pts, p)
	})
}

func (c *Canvas) Pixel(p geom.Vec2, color platform.Color) {
	c.paintAt(p, color)
}

// Text writes one character per cell starting at the cell containing (x, y).
// The size is ignored; a terminal has one font size.
func (c *Canvas) Text(s string, x, y, size int, color platform.Color) {
	col, row := c.toCell(geom.V(float32(x), float32(y)))
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.cols {
			cl := &c.cells[row*c.cols+col]
			cl.ch = r
			cl.fg = blend(cl.bg, color)
		}
		col++
	}
}

// MeasureText returns the world width s occupies on the grid.
func (c *Canvas) MeasureText(s string, size int) int {
	n := 0
	for range s {
		n++
	}
	return int(float32(n) * c.cellW())
}

// insideConvex reports whether p lies inside the convex polygon pts, in
// either winding order.
func insideConvex(pts []geom.Vec2, p geom.Vec2) bool {
	var pos, neg bool
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

func blend(dst, src platform.Color) platform.Color {
	if src.A == 255 {
		return src
	}
	a := float32(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float32(s)*a + float32(d)*(1-a) + 0.5)
	}
	return platform.Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}
