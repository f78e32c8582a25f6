// seehuhn.de/go/voronoi - visualise Voronoi diagrams of points and segments
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster draws Voronoi diagrams into images.
//
// The [Rasteriser] computes exact area coverage for polygons and strokes;
// the [Canvas] uses it to implement the drawing interfaces of package
// voronoi on top of an [image.RGBA].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates, stored
// with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original segment pointed downwards, else -1
}

// Rasteriser converts paths and line lists to pixel coverage values.
// The caller creates one instance and reuses it; internal buffers grow as
// needed but never shrink.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates, with integer
	// coordinates.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// LineWidth is the width of stroked lines in device pixels.
	LineWidth float64

	// Cap is the cap style for the ends of stroked lines.
	// LineCapButt, LineCapRound and LineCapSquare are supported.
	Cap graphics.LineCapStyle

	edges     []edge
	active    []int
	cover     []float32 // change of the winding number, per pixel
	area      []float32 // coverage inside the pixel, per pixel
	crossings []float64 // y values where an edge crosses a pixel column

	poly []vec.Vec2 // scratch polygon in device space

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with an
// identity CTM and one pixel wide lines with butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default settings for a new clip rectangle, keeping
// the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.LineWidth = 1
	r.Cap = graphics.LineCapButt
	r.edges = r.edges[:0]
}

// FillNonZero fills the path p using the nonzero winding rule.
// Coverage is delivered row by row via emit; the coverage slice is only
// valid during the call.
func (r *Rasteriser) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	r.addPath(p)
	r.rasterise(emit)
}

// FillFan fills a triangle fan given in user space: the triangles are
// formed by pts[0] and each pair of consecutive later points.
func (r *Rasteriser) FillFan(pts []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	for i := 2; i < len(pts); i++ {
		r.poly = append(r.poly[:0], r.toDevice(pts[0]), r.toDevice(pts[i-1]), r.toDevice(pts[i]))
		r.addPolygon(r.poly)
	}
	r.rasterise(emit)
}

// Circle returns a closed path approximating the circle of radius rad
// around c by four cubic Bézier arcs.
func Circle(c vec.Vec2, rad float64) path.Path {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	pt := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: c.X + x*rad, Y: c.Y + y*rad}
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{pt(1, 0)}) &&
			yield(path.CmdCubeTo, []vec.Vec2{pt(1, k), pt(k, 1), pt(0, 1)}) &&
			yield(path.CmdCubeTo, []vec.Vec2{pt(-k, 1), pt(-1, k), pt(-1, 0)}) &&
			yield(path.CmdCubeTo, []vec.Vec2{pt(-1, -k), pt(-k, -1), pt(0, -1)}) &&
			yield(path.CmdCubeTo, []vec.Vec2{pt(k, -1), pt(1, -k), pt(1, 0)}) &&
			yield(path.CmdClose, nil)
	}
}

func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the length of the user space vector v in device
// space.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := &r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// addPath adds the edges of all subpaths of p. Open subpaths are closed
// implicitly.
func (r *Rasteriser) addPath(p path.Path) {
	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addUserEdge(current, start)
			}
			current, start = pts[0], pts[0]
		case path.CmdLineTo:
			r.addUserEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			// degree elevation
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3))
			r.flattenCubic(current, c1, c2, pts[1])
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addUserEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addUserEdge(current, start)
	}
}

// flattenCubic approximates a cubic Bézier curve by lines, using Wang's
// formula for the number of lines.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addUserEdge(prev, q)
		prev = q
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

func (r *Rasteriser) addUserEdge(a, b vec.Vec2) {
	r.addEdge(r.toDevice(a), r.toDevice(b))
}

// addPolygon adds a closed polygon given in device space, oriented so that
// it contributes a positive winding number.
func (r *Rasteriser) addPolygon(pts []vec.Vec2) {
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		if area < 0 {
			p, q = q, p
		}
		r.addEdge(p, q)
	}
}

// addEdge adds a line in device space.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	e := edge{dir: 1}
	if dy < 0 {
		a, b = b, a
		e.dir = -1
	}
	e.x0, e.y0, e.x1, e.y1 = a.X, a.Y, b.X, b.Y
	e.dxdy = (b.X - a.X) / (b.Y - a.Y)
	r.edges = append(r.edges, e)

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(a.X, b.X), max(a.X, b.X)
		r.byMin, r.byMax = a.Y, b.Y
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, a.X, b.X)
	r.bxMax = max(r.bxMax, a.X, b.X)
	r.byMin = min(r.byMin, a.Y)
	r.byMax = max(r.byMax, b.Y)
}

// rasterise scans the collected edges from top to bottom, keeping a list
// of the edges which intersect the current scanline.
//
// For every pixel two values are accumulated: cover is the signed height
// of all edge pieces inside the pixel's column, and area is the part of
// this which lies to the right of the edges inside the pixel. The
// winding number of a pixel is then the running sum of cover over the
// pixels to its left, plus its own area.
func (r *Rasteriser) rasterise(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0

	// skip edges which end above the clip rectangle
	for next < len(r.edges) && r.edges[next].y0 < float64(yMin) {
		if r.edges[next].y1 > float64(yMin) {
			r.active = append(r.active, next)
		}
		next++
	}

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := top + 1

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			r.accumulate(e, top, bot, xMin, xMax)
			i++
		}

		integrate(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e between the scanlines top and bot.
func (r *Rasteriser) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	y0 := max(top, e.y0)
	y1 := min(bot, e.y1)
	if y1 <= y0 {
		return
	}
	xa := e.x0 + e.dxdy*(y0-e.y0)
	xb := e.x0 + e.dxdy*(y1-e.y0)
	left, right := min(xa, xb), max(xa, xb)
	h := e.dir * float32(y1-y0)

	if left >= float64(xMax) {
		return
	}
	if right < float64(xMin) {
		r.addPiece(h, left, xMin, xMax)
		return
	}

	pl := int(math.Floor(left))
	pr := int(math.Floor(right))
	if pl == pr {
		r.addPiece(h, (xa+xb)/2, xMin, xMax)
		return
	}

	// Split where the edge crosses pixel column boundaries. Pieces left
	// of the clip rectangle all land in the first column, pieces right of
	// it are dropped, so only crossings inside need to be found.
	r.crossings = append(r.crossings[:0], y0, y1)
	for x := max(pl+1, xMin); x <= min(pr, xMax); x++ {
		yc := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yc > y0 && yc < y1 {
			r.crossings = append(r.crossings, yc)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		ya, yb := r.crossings[i-1], r.crossings[i]
		if yb <= ya {
			continue
		}
		xm := e.x0 + e.dxdy*((ya+yb)/2-e.y0)
		r.addPiece(e.dir*float32(yb-ya), xm, xMin, xMax)
	}
}

// addPiece records an edge piece of signed height h which lies inside a
// single pixel column, at average position x.
func (r *Rasteriser) addPiece(h float32, x float64, xMin, xMax int) {
	px := int(math.Floor(x))
	switch {
	case px < xMin:
		r.cover[0] += h
		r.area[0] += h
	case px < xMax:
		i := px - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-(x-float64(px)))
	}
}

// integrate turns the accumulated values into coverage using the nonzero
// winding rule, in place.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(w), 1)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// discFlatness is the flattening tolerance for smooth discs, which are
	// small enough that the default would visibly shrink them.
	discFlatness = 0.01

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroked line, in
	// device pixels.
	zeroLengthThreshold = 1e-10
)
