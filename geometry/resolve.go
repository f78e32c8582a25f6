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

// Package geometry turns the half-edges of a Voronoi diagram into finite
// polylines which can be drawn: unbounded edges are clipped and parabolic
// arcs are replaced by line segments.
package geometry

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/region"
	"seehuhn.de/go/voronoi/site"
)

// maxDeviationRatio is the maximal distance between a parabolic arc and
// its approximating polyline, relative to the width of the region.
const maxDeviationRatio = 1e-3

// MaxDeviation returns the flattening tolerance used for curved edges
// inside r.
func MaxDeviation(r region.Region) float64 {
	return maxDeviationRatio * r.Width()
}

// Resolve appends the polyline for half-edge e to dst and returns the
// extended slice. The polyline runs from the start of e to its end:
//   - finite straight edges give their two vertices,
//   - finite curved edges give their vertices with samples of the arc in
//     between,
//   - unbounded edges are clipped to a segment which leaves the region r.
//
// The diagram must have been built from the sites in s.
func Resolve(dst []vec.Vec2, d *diagram.Diagram, e diagram.EdgeIndex, r region.Region, s *site.Store) []vec.Vec2 {
	if !d.IsFinite(e) {
		return ClipInfinite(dst, d, e, r, s)
	}

	start := d.Vertices[d.Start(e)].Pos
	end := d.Vertices[d.End(e)].Pos
	if !d.IsCurved(e) {
		return append(dst, start, end)
	}

	c1 := d.Cell(e)
	c2 := d.Cell(d.Twin(e))
	var p site.Point
	var seg site.Segment
	if c1.ContainsPoint() {
		p, seg = s.ResolvePoint(c1), s.ResolveSegment(c2)
	} else {
		p, seg = s.ResolvePoint(c2), s.ResolveSegment(c1)
	}
	return Discretize(dst, p, seg, start, end, MaxDeviation(r))
}
