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

package voronoi

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/geometry"
)

// fanSegments is the number of boundary points of a disc.
const fanSegments = 20

// appendFan appends a triangle fan approximating the disc of radius r
// around c: the centre, then the boundary points, with the first boundary
// point repeated at the end.
func appendFan(dst []vec.Vec2, c vec.Vec2, r float64) []vec.Vec2 {
	dst = append(dst, c)
	for i := 0; i <= fanSegments; i++ {
		phi := 2 * math.Pi * float64(i%fanSegments) / fanSegments
		dst = append(dst, vec.Vec2{
			X: c.X + r*math.Cos(phi),
			Y: c.Y + r*math.Sin(phi),
		})
	}
	return dst
}

// appendLineList appends the polyline pts as a line list, shifted by
// -shift. Interior points are repeated, so that every pair of points forms
// one line.
func appendLineList(dst []vec.Vec2, pts []vec.Vec2, shift vec.Vec2) []vec.Vec2 {
	for i := 1; i < len(pts); i++ {
		dst = append(dst, pts[i-1].Sub(shift), pts[i].Sub(shift))
	}
	return dst
}

// fillPoints uploads one disc for every input point and every segment
// endpoint.
func (v *Visualizer) fillPoints(upload func(Primitive) error) error {
	shift := v.region.Center()
	r := v.pixelsToWorld(v.pointRadius)
	for p := range v.sites.Coordinates {
		v.scratch = appendFan(v.scratch[:0], p.Sub(shift), r)
		if err := upload(Primitive{Kind: TriangleFan, Points: v.scratch}); err != nil {
			return err
		}
	}
	return nil
}

// fillSegments uploads all input segments as a single line list.
func (v *Visualizer) fillSegments(upload func(Primitive) error) error {
	if len(v.sites.Segments) == 0 {
		return nil
	}
	shift := v.region.Center()
	v.scratch = v.scratch[:0]
	for _, seg := range v.sites.Segments {
		v.scratch = append(v.scratch, seg.Low.Sub(shift), seg.High.Sub(shift))
	}
	return upload(Primitive{Kind: LineList, Points: v.scratch})
}

// fillVertices uploads one disc for every diagram vertex which passes the
// current filter.
func (v *Visualizer) fillVertices(upload func(Primitive) error) error {
	shift := v.region.Center()
	r := v.pixelsToWorld(v.vertexRadius)
	for i, vert := range v.diagram.Vertices {
		if v.filter&InternalOnly != 0 && v.diagram.IsExteriorVertex(diagram.VertexIndex(i)) {
			continue
		}
		v.scratch = appendFan(v.scratch[:0], vert.Pos.Sub(shift), r)
		if err := upload(Primitive{Kind: TriangleFan, Points: v.scratch}); err != nil {
			return err
		}
	}
	return nil
}

// fillEdges uploads one line list per edge pair which passes the current
// filter.
func (v *Visualizer) fillEdges(upload func(Primitive) error) error {
	d := v.diagram
	shift := v.region.Center()
	for e := range d.Pairs {
		if v.filter&PrimaryOnly != 0 && !d.IsPrimary(e) {
			continue
		}
		if v.filter&InternalOnly != 0 && d.IsExteriorEdge(e) {
			continue
		}
		v.polyline = geometry.Resolve(v.polyline[:0], d, e, v.region, v.sites)
		v.scratch = appendLineList(v.scratch[:0], v.polyline, shift)
		if err := upload(Primitive{Kind: LineList, Points: v.scratch}); err != nil {
			return err
		}
	}
	return nil
}

// pixelsToWorld converts a length in viewport pixels to diagram units.
func (v *Visualizer) pixelsToWorld(px float64) float64 {
	return px * v.region.Width() / float64(v.viewport)
}
