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

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by all errors returned from Validate.
var ErrInvalid = errors.New("invalid diagram")

// ValidationError describes one broken invariant of a diagram.
type ValidationError struct {
	Edge    EdgeIndex // offending half-edge, or NoEdge
	Message string
}

func (e *ValidationError) Error() string {
	if e.Edge == NoEdge {
		return e.Message
	}
	return fmt.Sprintf("edge %d: %s", e.Edge, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Validate checks the structural invariants a builder must establish:
// indices are in range, twins are mutual and run in opposite directions,
// and the rotation ring around every vertex consists of half-edges
// starting at that vertex. All problems found are joined into one error.
func (d *Diagram) Validate() error {
	var errs []error
	fail := func(e EdgeIndex, format string, args ...any) {
		errs = append(errs, &ValidationError{Edge: e, Message: fmt.Sprintf(format, args...)})
	}

	nc, nv, ne := len(d.Cells), len(d.Vertices), len(d.Edges)
	validVertex := func(v VertexIndex) bool {
		return v == NoVertex || (v >= 0 && int(v) < nv)
	}

	for i := range d.Edges {
		e := EdgeIndex(i)
		edge := &d.Edges[e]
		if edge.Cell < 0 || int(edge.Cell) >= nc {
			fail(e, "cell %d out of range", edge.Cell)
			continue
		}
		if edge.Twin < 0 || int(edge.Twin) >= ne || edge.Twin == e {
			fail(e, "twin %d out of range", edge.Twin)
			continue
		}
		if !validVertex(edge.Start) || !validVertex(edge.End) {
			fail(e, "vertex out of range")
			continue
		}
		twin := &d.Edges[edge.Twin]
		if twin.Twin != e {
			fail(e, "twin %d does not point back", edge.Twin)
		}
		if twin.Start != edge.End || twin.End != edge.Start {
			fail(e, "twin %d has different end points", edge.Twin)
		}
		if twin.Primary != edge.Primary {
			fail(e, "twin %d disagrees about primary", edge.Twin)
		}
		if edge.Start == NoVertex {
			continue
		}
		if edge.RotNext < 0 || int(edge.RotNext) >= ne {
			fail(e, "rotation successor %d out of range", edge.RotNext)
		} else if d.Edges[edge.RotNext].Start != edge.Start {
			fail(e, "rotation successor %d starts elsewhere", edge.RotNext)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for i := range d.Vertices {
		v := VertexIndex(i)
		first := d.Vertices[v].Incident
		if first == NoEdge {
			continue
		}
		if first < 0 || int(first) >= ne || d.Edges[first].Start != v {
			fail(NoEdge, "vertex %d: incident edge %d does not start here", v, first)
			continue
		}
		// the ring must close before it could have visited every edge twice
		e, steps := first, 0
		for {
			e = d.Edges[e].RotNext
			steps++
			if e == first {
				break
			}
			if steps > ne {
				fail(NoEdge, "vertex %d: rotation ring does not close", v)
				break
			}
		}
	}

	return errors.Join(errs...)
}
