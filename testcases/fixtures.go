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

package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/site"
)

// segmentOnly is a single horizontal segment. The diagram has a cell for
// each endpoint and one for the segment, separated by two vertical
// secondary lines through the endpoints.
var segmentOnly = Fixture{
	Name: "segment_only",
	Sites: &site.Store{
		Segments: []site.Segment{site.NewSegment(pt(0, 0), pt(10, 0))},
	},
	Diagram: func() *diagram.Diagram {
		d := diagram.New(3, 0, 4)
		start := d.AddCell(0, diagram.SegmentStartPoint)
		seg := d.AddCell(0, diagram.InitialSegment)
		end := d.AddCell(0, diagram.SegmentEndPoint)

		// both lines point downwards
		d.AddEdgePair(seg, start, diagram.NoVertex, diagram.NoVertex, false)
		d.AddEdgePair(end, seg, diagram.NoVertex, diagram.NoVertex, false)
		return d
	},
}

// pointAndSegment is the point (5,5) above the segment from (0,0) to
// (10,0). The point and the segment are separated by the parabola
// y = ((x-5)² + 25) / 10, between the vertices (0,5) and (10,5).
var pointAndSegment = Fixture{
	Name: "point_and_segment",
	Sites: &site.Store{
		Points:   []site.Point{pt(5, 5)},
		Segments: []site.Segment{site.NewSegment(pt(0, 0), pt(10, 0))},
	},
	Diagram: func() *diagram.Diagram {
		d := diagram.New(4, 2, 10)
		point := d.AddCell(0, diagram.SinglePoint)
		start := d.AddCell(1, diagram.SegmentStartPoint)
		seg := d.AddCell(1, diagram.InitialSegment)
		end := d.AddCell(1, diagram.SegmentEndPoint)

		v0 := d.AddVertex(pt(0, 5))
		v1 := d.AddVertex(pt(10, 5))

		d.AddEdgePair(point, seg, v0, v1, true)
		d.AddEdgePair(start, point, v0, diagram.NoVertex, true)
		d.AddEdgePair(seg, start, v0, diagram.NoVertex, false)
		d.AddEdgePair(point, end, v1, diagram.NoVertex, true)
		d.AddEdgePair(end, seg, v1, diagram.NoVertex, false)

		// directions at the start of each half-edge
		dirs := []vec.Vec2{
			pt(1, -1), pt(-1, -1), // parabola tangents
			pt(-1, 1), {},
			pt(0, -1), {},
			pt(1, 1), {},
			pt(0, -1), {},
		}
		d.LinkRotations(func(e diagram.EdgeIndex) vec.Vec2 { return dirs[e] })
		return d
	},
}
