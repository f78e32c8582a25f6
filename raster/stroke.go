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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeLines strokes a line list given in user space: every pair of
// consecutive points pts[2i], pts[2i+1] forms one line. A trailing
// unpaired point is ignored.
//
// The width of the lines is LineWidth, measured in device pixels, so that
// lines keep their width when the CTM scales the drawing. Overlapping
// lines are combined using the nonzero winding rule.
func (r *Rasteriser) StrokeLines(pts []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	d := r.LineWidth / 2
	if d <= 0 {
		return
	}
	for i := 1; i < len(pts); i += 2 {
		a := r.toDevice(pts[i-1])
		b := r.toDevice(pts[i])
		r.poly = r.lineOutline(r.poly[:0], a, b, d)
		if len(r.poly) >= 3 {
			r.addPolygon(r.poly)
		}
	}
	r.rasterise(emit)
}

// lineOutline appends the outline of the line from a to b, with half
// width d, in device space.
func (r *Rasteriser) lineOutline(dst []vec.Vec2, a, b vec.Vec2, d float64) []vec.Vec2 {
	ab := b.Sub(a)
	l := ab.Length()
	if l < zeroLengthThreshold {
		if r.Cap == graphics.LineCapRound {
			dst = r.appendArc(dst, a, d, vec.Vec2{X: 1}, 2*math.Pi)
		}
		return dst
	}
	t := ab.Mul(1 / l)
	n := vec.Vec2{X: -t.Y, Y: t.X} // normal, 90° counter-clockwise from t

	switch r.Cap {
	case graphics.LineCapRound:
		dst = append(dst, a.Add(n.Mul(d)))
		dst = r.appendArc(dst, b, d, n, -math.Pi)
		dst = r.appendArc(dst, a, d, n.Mul(-1), -math.Pi)
		dst = dst[:len(dst)-1] // the arc ends where the outline started
	case graphics.LineCapSquare:
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
		fallthrough
	default:
		dst = append(dst,
			a.Add(n.Mul(d)),
			b.Add(n.Mul(d)),
			b.Sub(n.Mul(d)),
			a.Sub(n.Mul(d)))
	}
	return dst
}

// appendArc appends points on the circle of radius d around c, starting in
// direction start and turning by sweep radians (positive is
// counter-clockwise). The start point is included.
func (r *Rasteriser) appendArc(dst []vec.Vec2, c vec.Vec2, d float64, start vec.Vec2, sweep float64) []vec.Vec2 {
	// A chord spanning angle θ deviates from the circle by d(1-cos(θ/2)).
	step := math.Pi / 4
	if d > r.Flatness {
		step = 2 * math.Acos(1-r.Flatness/d)
	}
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 1)

	dt := sweep / float64(n)
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: start.X*cos - start.Y*sin,
			Y: start.X*sin + start.Y*cos,
		}
		dst = append(dst, c.Add(dir.Mul(d)))
	}
	return dst
}
