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

// Package builder constructs Voronoi diagrams of point sites, as the dual
// of the Delaunay triangulation.
//
// The construction is quadratic in the number of points and uses plain
// floating point predicates. It is meant for the moderately sized inputs
// of an interactive viewer. Segment sites are not supported.
package builder

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/site"
)

// ErrSegmentSites is returned by Build if the input contains segments.
var ErrSegmentSites = errors.New("segment sites are not supported")

// mergeRatio controls when the circumcentres of adjacent triangles are
// treated as the same Voronoi vertex, relative to the extent of the input.
const mergeRatio = 1e-9

// Build returns the Voronoi diagram of the point sites in s.
//
// Repeated points produce a single cell, which refers to the first
// occurrence. Half-edges have their cell on the left, and every half-edge
// is primary.
func Build(s *site.Store) (*diagram.Diagram, error) {
	if len(s.Segments) > 0 {
		return nil, ErrSegmentSites
	}

	// unique points, with the index of their first occurrence
	var pts []vec.Vec2
	var src []int
	seen := make(map[site.Point]bool, len(s.Points))
	for i, p := range s.Points {
		if seen[p] {
			continue
		}
		seen[p] = true
		pts = append(pts, p)
		src = append(src, i)
	}

	d := diagram.New(len(pts), 2*len(pts), 6*len(pts))
	for _, i := range src {
		d.AddCell(i, diagram.SinglePoint)
	}
	if len(pts) < 2 {
		return d, nil
	}

	c := -1
	for i := 2; i < len(pts); i++ {
		if orient(pts[0], pts[1], pts[i]) != 0 {
			c = i
			break
		}
	}
	if c < 0 {
		buildCollinear(d, pts)
		return d, nil
	}

	tr := triangulate(pts, 0, 1, c)
	buildDual(d, tr)

	d.LinkRotations(func(e diagram.EdgeIndex) vec.Vec2 {
		p := pts[d.Edges[e].Cell]
		q := pts[d.Edges[d.Twin(e)].Cell]
		return vec.Vec2{X: p.Y - q.Y, Y: q.X - p.X}
	})
	return d, nil
}

// buildCollinear handles the case where all points lie on a line. The
// diagram then consists of parallel lines without any vertices.
func buildCollinear(d *diagram.Diagram, pts []vec.Vec2) {
	order := make([]int, len(pts))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		if c := cmp.Compare(pts[i].X, pts[j].X); c != 0 {
			return c
		}
		return cmp.Compare(pts[i].Y, pts[j].Y)
	})
	for k := 1; k < len(order); k++ {
		left := diagram.CellIndex(order[k-1])
		right := diagram.CellIndex(order[k])
		d.AddEdgePair(left, right, diagram.NoVertex, diagram.NoVertex, true)
	}
}

// buildDual adds the Voronoi vertices and edges dual to the triangulation.
func buildDual(d *diagram.Diagram, tr *triangulation) {
	// extent of the input, for the merge tolerance
	lo, hi := tr.pts[0], tr.pts[0]
	for _, p := range tr.pts[1:] {
		lo = vec.Vec2{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = vec.Vec2{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	eps := mergeRatio * max(hi.X-lo.X, hi.Y-lo.Y)

	centre := make([]vec.Vec2, len(tr.tris))
	parent := make([]int, len(tr.tris))
	for i := range tr.tris {
		parent[i] = i
		t := &tr.tris[i]
		if t.dead || t.isGhost() {
			continue
		}
		centre[i] = circumcenter(tr.pts[t.v[0]], tr.pts[t.v[1]], tr.pts[t.v[2]])
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	// Triangles with a common circumcircle give a single vertex.
	for i := range tr.tris {
		t := &tr.tris[i]
		if t.dead || t.isGhost() {
			continue
		}
		for _, j := range t.nb {
			u := &tr.tris[j]
			if j < i || u.isGhost() {
				continue
			}
			if dist(centre[i], centre[j]) <= eps {
				parent[find(j)] = find(i)
			}
		}
	}

	vertex := make([]diagram.VertexIndex, len(tr.tris))
	for i := range tr.tris {
		vertex[i] = diagram.NoVertex
	}
	for i := range tr.tris {
		t := &tr.tris[i]
		if t.dead || t.isGhost() {
			continue
		}
		r := find(i)
		if vertex[r] == diagram.NoVertex {
			vertex[r] = d.AddVertex(centre[r])
		}
		vertex[i] = vertex[r]
	}

	// One edge pair per Delaunay edge. The triangle on the left of a→b
	// gives the end of the half-edge of cell a.
	for i := range tr.tris {
		t := &tr.tris[i]
		if t.dead {
			continue
		}
		for k := range 3 {
			a, b := t.v[(k+1)%3], t.v[(k+2)%3]
			j := t.nb[k]
			if a == ghost || b == ghost || j < i {
				continue
			}
			start, end := vertex[j], vertex[i]
			if start != diagram.NoVertex && start == end {
				continue
			}
			d.AddEdgePair(diagram.CellIndex(a), diagram.CellIndex(b), start, end, true)
		}
	}
}

func dist(a, b vec.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
