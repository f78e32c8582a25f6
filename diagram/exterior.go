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

package diagram

// MarkExterior tags every edge and vertex which can be reached from
// infinity by walking along primary edges. Secondary edges are tagged
// when reached, but the walk does not continue past them. This separates
// the inside of closed polygons from the outside.
//
// Calling MarkExterior again on a marked diagram has no effect.
func (d *Diagram) MarkExterior() {
	d.growTags()

	var stack []EdgeIndex
	for i := range d.Edges {
		e := EdgeIndex(i)
		if d.IsFinite(e) {
			continue
		}
		// Seed with the half which points at the finite vertex (if any),
		// so that the walk does not depend on the order of the edges.
		if d.Edges[e].End == NoVertex {
			e = d.Edges[e].Twin
		}
		stack = append(stack[:0], e)

		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if d.edgeExterior[e] {
				continue
			}
			edge := &d.Edges[e]
			d.edgeExterior[e] = true
			d.edgeExterior[edge.Twin] = true

			v := edge.End
			if v == NoVertex || !edge.Primary {
				continue
			}
			d.vertexExterior[v] = true

			first := d.Vertices[v].Incident
			if first == NoEdge {
				continue
			}
			next := first
			for {
				stack = append(stack, next)
				next = d.Edges[next].RotNext
				if next == first || next == NoEdge {
					break
				}
			}
		}
	}
}

// IsExteriorEdge reports whether MarkExterior tagged e.
func (d *Diagram) IsExteriorEdge(e EdgeIndex) bool {
	return int(e) < len(d.edgeExterior) && d.edgeExterior[e]
}

// IsExteriorVertex reports whether MarkExterior tagged v.
func (d *Diagram) IsExteriorVertex(v VertexIndex) bool {
	return int(v) < len(d.vertexExterior) && d.vertexExterior[v]
}

// ResetTags removes all exterior tags.
func (d *Diagram) ResetTags() {
	clear(d.edgeExterior)
	clear(d.vertexExterior)
}

// ExteriorCounts returns the number of tagged half-edges and vertices.
func (d *Diagram) ExteriorCounts() (edges, vertices int) {
	for _, x := range d.edgeExterior {
		if x {
			edges++
		}
	}
	for _, x := range d.vertexExterior {
		if x {
			vertices++
		}
	}
	return edges, vertices
}

// growTags makes sure the tag arrays cover diagrams whose slices were
// filled directly, without AddVertex and AddEdgePair.
func (d *Diagram) growTags() {
	if n := len(d.Edges) - len(d.edgeExterior); n > 0 {
		d.edgeExterior = append(d.edgeExterior, make([]bool, n)...)
	}
	if n := len(d.Vertices) - len(d.vertexExterior); n > 0 {
		d.vertexExterior = append(d.vertexExterior, make([]bool, n)...)
	}
}
