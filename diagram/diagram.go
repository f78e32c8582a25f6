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

// Package diagram stores a Voronoi diagram as a half-edge graph.
//
// Cells, vertices and half-edges live in flat slices and refer to each
// other by integer index. The connectivity is fixed once a builder has
// returned the diagram; the only mutable state is the exterior tagging,
// which is kept in arrays parallel to the vertex and edge slices.
package diagram

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// CellIndex identifies a cell of a [Diagram].
type CellIndex int

// VertexIndex identifies a vertex of a [Diagram].
type VertexIndex int

// EdgeIndex identifies a half-edge of a [Diagram].
type EdgeIndex int

// NoVertex marks an edge end which lies at infinity.
const NoVertex VertexIndex = -1

// NoEdge marks a missing edge reference.
const NoEdge EdgeIndex = -1

// SourceCategory describes which part of an input site generated a cell.
type SourceCategory int

// These are the possible source categories.
const (
	SinglePoint SourceCategory = iota
	SegmentStartPoint
	SegmentEndPoint
	InitialSegment
	ReverseSegment
)

func (c SourceCategory) String() string {
	switch c {
	case SinglePoint:
		return "single point"
	case SegmentStartPoint:
		return "segment start point"
	case SegmentEndPoint:
		return "segment end point"
	case InitialSegment:
		return "initial segment"
	case ReverseSegment:
		return "reverse segment"
	default:
		return fmt.Sprintf("SourceCategory(%d)", int(c))
	}
}

// Cell is the region of the plane closest to one site.
type Cell struct {
	// SourceIndex is an index into the concatenation of the input points
	// and the input segments.
	SourceIndex int

	// Category tells which part of the site the cell belongs to.
	Category SourceCategory

	// Incident is one of the half-edges bounding the cell, or NoEdge.
	Incident EdgeIndex
}

// ContainsPoint reports whether the cell was generated by a point, either a
// single input point or the endpoint of an input segment.
func (c *Cell) ContainsPoint() bool {
	switch c.Category {
	case SinglePoint, SegmentStartPoint, SegmentEndPoint:
		return true
	}
	return false
}

// ContainsSegment reports whether the cell was generated by the interior of
// an input segment.
func (c *Cell) ContainsSegment() bool {
	switch c.Category {
	case InitialSegment, ReverseSegment:
		return true
	}
	return false
}

// Vertex is a point where three or more cells meet.
type Vertex struct {
	Pos vec.Vec2

	// Incident is a half-edge which starts at this vertex.
	Incident EdgeIndex
}

// Edge is a directed half-edge. The cell it belongs to lies on its left.
type Edge struct {
	Cell  CellIndex
	Twin  EdgeIndex
	Start VertexIndex // NoVertex if the edge comes from infinity
	End   VertexIndex // NoVertex if the edge goes to infinity

	// RotNext is the next half-edge, counter-clockwise, around Start.
	// It is NoEdge if Start is NoVertex.
	RotNext EdgeIndex

	// Primary is false for the secondary edges which separate a segment
	// from one of its own endpoints.
	Primary bool
}

// Diagram is a Voronoi diagram in half-edge form.
//
// A Diagram is not safe for concurrent use.
type Diagram struct {
	Cells    []Cell
	Vertices []Vertex
	Edges    []Edge

	edgeExterior   []bool
	vertexExterior []bool
}

// New returns an empty diagram with room for the given number of elements.
func New(cells, vertices, edges int) *Diagram {
	return &Diagram{
		Cells:    make([]Cell, 0, cells),
		Vertices: make([]Vertex, 0, vertices),
		Edges:    make([]Edge, 0, edges),
	}
}

// AddCell appends a cell and returns its index.
func (d *Diagram) AddCell(sourceIndex int, category SourceCategory) CellIndex {
	d.Cells = append(d.Cells, Cell{
		SourceIndex: sourceIndex,
		Category:    category,
		Incident:    NoEdge,
	})
	return CellIndex(len(d.Cells) - 1)
}

// AddVertex appends a vertex and returns its index.
func (d *Diagram) AddVertex(pos vec.Vec2) VertexIndex {
	d.Vertices = append(d.Vertices, Vertex{Pos: pos, Incident: NoEdge})
	d.vertexExterior = append(d.vertexExterior, false)
	return VertexIndex(len(d.Vertices) - 1)
}

// AddEdgePair appends two twin half-edges separating the cells left and
// right. The first half-edge runs from start to end and belongs to left,
// its twin runs from end to start and belongs to right.
// The index of the first half-edge is returned; the twin has the next index.
func (d *Diagram) AddEdgePair(left, right CellIndex, start, end VertexIndex, primary bool) EdgeIndex {
	e := EdgeIndex(len(d.Edges))
	d.Edges = append(d.Edges,
		Edge{Cell: left, Twin: e + 1, Start: start, End: end, RotNext: NoEdge, Primary: primary},
		Edge{Cell: right, Twin: e, Start: end, End: start, RotNext: NoEdge, Primary: primary},
	)
	d.edgeExterior = append(d.edgeExterior, false, false)

	if d.Cells[left].Incident == NoEdge {
		d.Cells[left].Incident = e
	}
	if d.Cells[right].Incident == NoEdge {
		d.Cells[right].Incident = e + 1
	}
	if start != NoVertex && d.Vertices[start].Incident == NoEdge {
		d.Vertices[start].Incident = e
	}
	if end != NoVertex && d.Vertices[end].Incident == NoEdge {
		d.Vertices[end].Incident = e + 1
	}
	return e
}

// SetRotNext sets the rotation successor of e.
func (d *Diagram) SetRotNext(e, next EdgeIndex) {
	d.Edges[e].RotNext = next
}

// LinkRotations sets RotNext for every half-edge with a start vertex, by
// sorting the half-edges leaving each vertex by angle. The direction
// function gives the initial direction of a half-edge; it is only called
// for half-edges which have a start vertex.
func (d *Diagram) LinkRotations(direction func(e EdgeIndex) vec.Vec2) {
	type leaving struct {
		e     EdgeIndex
		angle float64
	}
	around := make([][]leaving, len(d.Vertices))
	for i := range d.Edges {
		e := EdgeIndex(i)
		v := d.Edges[e].Start
		if v == NoVertex {
			continue
		}
		dir := direction(e)
		around[v] = append(around[v], leaving{e, math.Atan2(dir.Y, dir.X)})
	}
	for _, ring := range around {
		slices.SortFunc(ring, func(a, b leaving) int {
			return cmp.Compare(a.angle, b.angle)
		})
		for i, l := range ring {
			d.Edges[l.e].RotNext = ring[(i+1)%len(ring)].e
		}
	}
}

// Twin returns the opposite half-edge of e.
func (d *Diagram) Twin(e EdgeIndex) EdgeIndex {
	return d.Edges[e].Twin
}

// RotNext returns the next half-edge, counter-clockwise, around the start
// vertex of e.
func (d *Diagram) RotNext(e EdgeIndex) EdgeIndex {
	return d.Edges[e].RotNext
}

// Start returns the start vertex of e, or NoVertex.
func (d *Diagram) Start(e EdgeIndex) VertexIndex {
	return d.Edges[e].Start
}

// End returns the end vertex of e, or NoVertex.
func (d *Diagram) End(e EdgeIndex) VertexIndex {
	return d.Edges[e].End
}

// Cell returns the cell e belongs to.
func (d *Diagram) Cell(e EdgeIndex) *Cell {
	return &d.Cells[d.Edges[e].Cell]
}

// IsPrimary reports whether e is a primary edge.
func (d *Diagram) IsPrimary(e EdgeIndex) bool {
	return d.Edges[e].Primary
}

// IsFinite reports whether both ends of e are vertices.
func (d *Diagram) IsFinite(e EdgeIndex) bool {
	edge := &d.Edges[e]
	return edge.Start != NoVertex && edge.End != NoVertex
}

// IsCurved reports whether e is a parabolic arc. This is the case for
// primary edges between a point cell and a segment cell.
func (d *Diagram) IsCurved(e EdgeIndex) bool {
	if !d.Edges[e].Primary {
		return false
	}
	return d.Cell(e).ContainsSegment() != d.Cell(d.Twin(e)).ContainsSegment()
}

// Pairs calls yield once for every pair of twin half-edges, passing the
// half-edge with the smaller index.
func (d *Diagram) Pairs(yield func(EdgeIndex) bool) {
	for i := range d.Edges {
		e := EdgeIndex(i)
		if d.Edges[e].Twin < e {
			continue
		}
		if !yield(e) {
			return
		}
	}
}
