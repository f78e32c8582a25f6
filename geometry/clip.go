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

	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/region"
	"seehuhn.de/go/voronoi/site"
)

// ClipInfinite appends the two end points of the clipped unbounded edge e
// to dst. Missing vertices are replaced by points on the edge's line
// which lie outside r; existing vertices are kept unchanged.
func ClipInfinite(dst []vec.Vec2, d *diagram.Diagram, e diagram.EdgeIndex, r region.Region, s *site.Store) []vec.Vec2 {
	c1 := d.Cell(e)
	c2 := d.Cell(d.Twin(e))

	var origin, dir vec.Vec2
	switch {
	case c1.ContainsPoint() && c2.ContainsPoint():
		p1 := s.ResolvePoint(c1)
		p2 := s.ResolvePoint(c2)
		origin = p1.Add(p2).Mul(0.5)
		dir = vec.Vec2{X: p1.Y - p2.Y, Y: p2.X - p1.X}

	case c1.ContainsSegment() && c2.ContainsSegment():
		panic("geometry: unbounded edge between two segment cells")

	default:
		var seg site.Segment
		if c1.ContainsSegment() {
			origin, seg = s.ResolvePoint(c2), s.ResolveSegment(c1)
		} else {
			origin, seg = s.ResolvePoint(c1), s.ResolveSegment(c2)
		}
		dx := seg.High.X - seg.Low.X
		dy := seg.High.Y - seg.Low.Y
		if (seg.Low == origin) != c1.ContainsPoint() {
			dir = vec.Vec2{X: dy, Y: -dx}
		} else {
			dir = vec.Vec2{X: -dy, Y: dx}
		}
	}

	// Synthesised points are one region width away from origin in the
	// maximum norm, so they lie outside r.
	koef := r.Width() / max(math.Abs(dir.X), math.Abs(dir.Y))

	if v := d.Start(e); v == diagram.NoVertex {
		dst = append(dst, origin.Sub(dir.Mul(koef)))
	} else {
		dst = append(dst, d.Vertices[v].Pos)
	}
	if v := d.End(e); v == diagram.NoVertex {
		dst = append(dst, origin.Add(dir.Mul(koef)))
	} else {
		dst = append(dst, d.Vertices[v].Pos)
	}
	return dst
}
