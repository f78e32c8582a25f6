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

package builder

import (
	"seehuhn.de/go/geom/vec"
)

// ghost is the vertex at infinity. Every hull edge a→b of the
// triangulation has a ghost triangle (a, b, ghost) on its outer side.
const ghost = -1

// triangle is a counter-clockwise triangle of the Delaunay triangulation.
// nb[i] is the triangle across the edge opposite v[i].
type triangle struct {
	v    [3]int
	nb   [3]int
	dead bool
}

func (t *triangle) isGhost() bool {
	return t.v[0] == ghost || t.v[1] == ghost || t.v[2] == ghost
}

// edgeIndex returns i such that the edge opposite v[i] runs from a to b,
// or -1.
func (t *triangle) edgeIndex(a, b int) int {
	for i := range 3 {
		if t.v[(i+1)%3] == a && t.v[(i+2)%3] == b {
			return i
		}
	}
	return -1
}

// triangulation is a Delaunay triangulation, built by Bowyer-Watson
// insertion. The points must not all be collinear.
type triangulation struct {
	pts  []vec.Vec2
	tris []triangle

	// scratch space, reused between insertions
	cavity  []int
	inCav   []bool
	stack   []int
	byStart map[int]int
	byEnd   map[int]int
}

// triangulate computes the Delaunay triangulation of pts. The points must
// be distinct, and pts[a], pts[b], pts[c] must not be collinear.
func triangulate(pts []vec.Vec2, a, b, c int) *triangulation {
	if orient(pts[a], pts[b], pts[c]) < 0 {
		b, c = c, b
	}
	tr := &triangulation{
		pts:     pts,
		tris:    make([]triangle, 0, 4*len(pts)),
		byStart: make(map[int]int),
		byEnd:   make(map[int]int),
	}
	// One real triangle and three ghosts, one per hull edge.
	tr.tris = append(tr.tris,
		triangle{v: [3]int{a, b, c}, nb: [3]int{2, 3, 1}},
		triangle{v: [3]int{b, a, ghost}, nb: [3]int{3, 2, 0}},
		triangle{v: [3]int{c, b, ghost}, nb: [3]int{1, 3, 0}},
		triangle{v: [3]int{a, c, ghost}, nb: [3]int{2, 1, 0}},
	)

	for i := range pts {
		if i == a || i == b || i == c {
			continue
		}
		tr.insert(i)
	}
	return tr
}

// conflicts reports whether point p lies strictly inside the circumcircle
// of triangle t. For a ghost triangle the circumcircle degenerates into
// the open half-plane outside the hull edge, together with the interior
// of the edge itself.
func (tr *triangulation) conflicts(t *triangle, p vec.Vec2) bool {
	for i := range 3 {
		if t.v[i] != ghost {
			continue
		}
		a := tr.pts[t.v[(i+1)%3]]
		b := tr.pts[t.v[(i+2)%3]]
		o := orient(a, b, p)
		if o != 0 {
			return o > 0
		}
		return p.Sub(a).Dot(b.Sub(a)) > 0 && p.Sub(b).Dot(a.Sub(b)) > 0
	}
	return inCircle(tr.pts[t.v[0]], tr.pts[t.v[1]], tr.pts[t.v[2]], p) > 0
}

func (tr *triangulation) insert(pi int) {
	p := tr.pts[pi]

	seed := -1
	for i := range tr.tris {
		t := &tr.tris[i]
		if !t.dead && tr.conflicts(t, p) {
			seed = i
			break
		}
	}
	if seed < 0 {
		// Cannot happen for distinct points: some ghost triangle or some
		// triangle containing p is always in conflict.
		panic("builder: no conflicting triangle")
	}

	// Collect the cavity of all triangles in conflict with p.
	if n := len(tr.tris) - len(tr.inCav); n > 0 {
		tr.inCav = append(tr.inCav, make([]bool, n)...)
	}
	tr.cavity = tr.cavity[:0]
	tr.stack = append(tr.stack[:0], seed)
	tr.inCav[seed] = true
	for len(tr.stack) > 0 {
		ti := tr.stack[len(tr.stack)-1]
		tr.stack = tr.stack[:len(tr.stack)-1]
		tr.cavity = append(tr.cavity, ti)
		for _, ni := range tr.tris[ti].nb {
			if tr.inCav[ni] || !tr.conflicts(&tr.tris[ni], p) {
				continue
			}
			tr.inCav[ni] = true
			tr.stack = append(tr.stack, ni)
		}
	}

	// Connect p to every edge on the boundary of the cavity.
	clear(tr.byStart)
	clear(tr.byEnd)
	for _, ti := range tr.cavity {
		for i := range 3 {
			t := &tr.tris[ti]
			out := t.nb[i]
			if tr.inCav[out] {
				continue
			}
			u, v := t.v[(i+1)%3], t.v[(i+2)%3]

			// The boundary edge is always opposite p in the new triangle.
			var nt triangle
			switch {
			case u == ghost:
				nt.v = [3]int{v, pi, ghost}
				nt.nb[1] = out
			case v == ghost:
				nt.v = [3]int{pi, u, ghost}
				nt.nb[0] = out
			default:
				nt.v = [3]int{u, v, pi}
				nt.nb[2] = out
			}
			ni := len(tr.tris)
			tr.tris = append(tr.tris, nt)

			o := &tr.tris[out]
			o.nb[o.edgeIndex(v, u)] = ni
			tr.byStart[u] = ni
			tr.byEnd[v] = ni
		}
	}
	for _, ti := range tr.cavity {
		tr.tris[ti].dead = true
		tr.inCav[ti] = false
	}

	// Link the new triangles to each other.
	for ni := len(tr.tris) - len(tr.byStart); ni < len(tr.tris); ni++ {
		nt := &tr.tris[ni]
		for i := range 3 {
			a, b := nt.v[(i+1)%3], nt.v[(i+2)%3]
			switch {
			case b == pi:
				// a→p is shared with the triangle on the boundary edge
				// which starts at a
				nt.nb[i] = tr.byStart[a]
			case a == pi:
				// p→b is shared with the triangle on the boundary edge
				// which ends at b
				nt.nb[i] = tr.byEnd[b]
			}
		}
	}
}

// orient returns twice the signed area of the triangle abc; the result is
// positive if the points are in counter-clockwise order.
func orient(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircle returns a positive value if d lies inside the circumcircle of
// the counter-clockwise triangle abc, zero if the four points are
// cocircular and a negative value otherwise.
func inCircle(a, b, c, d vec.Vec2) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y
	ad := adx*adx + ady*ady
	bd := bdx*bdx + bdy*bdy
	cd := cdx*cdx + cdy*cdy
	return adx*(bdy*cd-bd*cdy) - ady*(bdx*cd-bd*cdx) + ad*(bdx*cdy-bdy*cdx)
}

// circumcenter returns the centre of the circle through a, b and c.
// The points must not be collinear.
func circumcenter(a, b, c vec.Vec2) vec.Vec2 {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	return vec.Vec2{
		X: a.X + (cy*b2-by*c2)/d,
		Y: a.Y + (bx*c2-cx*b2)/d,
	}
}
