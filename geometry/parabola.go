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

package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/site"
)

const (
	// degenerateThreshold is the smallest distance, relative to the
	// segment length, between the point site and the segment's line.
	// Closer points do not define a usable parabola.
	degenerateThreshold = 1e-12

	// maxArcSegments bounds the number of line segments per arc.
	maxArcSegments = 1 << 16
)

// parabolaFrame is a coordinate system with the segment along the x-axis.
// In this frame the arc is the graph of f(x) = ((x-a)² + b²) / (2b).
type parabolaFrame struct {
	origin vec.Vec2 // low end of the segment
	u, n   vec.Vec2 // unit vectors along and across the segment
	a, b   float64  // point site in frame coordinates
}

func newParabolaFrame(p site.Point, seg site.Segment) (parabolaFrame, bool) {
	d := seg.High.Sub(seg.Low)
	length := d.Length()
	if length == 0 {
		return parabolaFrame{}, false
	}
	u := d.Mul(1 / length)
	n := vec.Vec2{X: -u.Y, Y: u.X}
	rel := p.Sub(seg.Low)
	b := rel.Dot(n)
	if math.Abs(b) <= degenerateThreshold*length {
		return parabolaFrame{}, false
	}
	return parabolaFrame{origin: seg.Low, u: u, n: n, a: rel.Dot(u), b: b}, true
}

// project returns the x-coordinate of q in the frame.
func (f *parabolaFrame) project(q vec.Vec2) float64 {
	return q.Sub(f.origin).Dot(f.u)
}

func (f *parabolaFrame) y(x float64) float64 {
	dx := x - f.a
	return (dx*dx + f.b*f.b) / (2 * f.b)
}

func (f *parabolaFrame) slope(x float64) float64 {
	return (x - f.a) / f.b
}

func (f *parabolaFrame) toWorld(x, y float64) vec.Vec2 {
	return f.origin.Add(f.u.Mul(x)).Add(f.n.Mul(y))
}

// Discretize appends a polyline approximating the parabolic arc from start
// to end to dst. The arc consists of the points equidistant from p and
// the line through seg. Both start and end must lie on the arc.
// The polyline begins with start, ends with end, and stays within
// maxDist of the arc.
func Discretize(dst []vec.Vec2, p site.Point, seg site.Segment, start, end vec.Vec2, maxDist float64) []vec.Vec2 {
	f, ok := newParabolaFrame(p, seg)
	if !ok || !(maxDist > 0) {
		return append(dst, start, end)
	}

	// The arc between x0 and x1 is exactly the quadratic Bézier curve with
	// control point at the intersection of the end tangents.
	x0 := f.project(start)
	x1 := f.project(end)
	xm := (x0 + x1) / 2
	y0 := f.y(x0)
	y1 := f.y(x1)
	ym := y0 + f.slope(x0)*(xm-x0)

	// Distance between a quadratic Bézier and its chord is at most
	// |P0 - 2P1 + P2| / 4; splitting the parameter range into n equal
	// parts divides this by n².
	e := vec.Vec2{X: x0 - 2*xm + x1, Y: y0 - 2*ym + y1}.Length() / 4
	n := 1
	if e > maxDist {
		n = min(int(math.Ceil(math.Sqrt(e/maxDist))), maxArcSegments)
	}

	dst = append(dst, start)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		x := omt*omt*x0 + 2*omt*t*xm + t*t*x1
		y := omt*omt*y0 + 2*omt*t*ym + t*t*y1
		dst = append(dst, f.toWorld(x, y))
	}
	return append(dst, end)
}
