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

// Package site holds the input points and segments of a Voronoi diagram.
//
// The order of the sites is significant: diagram cells refer back to
// their site by a flat index into the points followed by the segments.
package site

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/diagram"
)

// Point is an input point.
type Point = vec.Vec2

// Segment is an input line segment. Low is the smaller endpoint in
// lexicographic (x, then y) order.
type Segment struct {
	Low, High Point
}

// NewSegment returns the segment between a and b, with the endpoints
// ordered.
func NewSegment(a, b Point) Segment {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return Segment{Low: a, High: b}
}

// Store is the ordered collection of input sites.
type Store struct {
	Points   []Point
	Segments []Segment
}

// AddPoint appends a point site.
func (s *Store) AddPoint(p Point) {
	s.Points = append(s.Points, p)
}

// AddSegment appends a segment site.
func (s *Store) AddSegment(a, b Point) {
	s.Segments = append(s.Segments, NewSegment(a, b))
}

// Len returns the total number of sites.
func (s *Store) Len() int {
	return len(s.Points) + len(s.Segments)
}

// IsEmpty reports whether the store holds no sites.
func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// Coordinates calls yield for every input point and for both endpoints of
// every segment.
func (s *Store) Coordinates(yield func(Point) bool) {
	for _, p := range s.Points {
		if !yield(p) {
			return
		}
	}
	for _, seg := range s.Segments {
		if !yield(seg.Low) || !yield(seg.High) {
			return
		}
	}
}

// ResolvePoint returns the point which generated a point cell.
// For cells of segment endpoints this is the corresponding endpoint.
// The cell must refer to a site in s.
func (s *Store) ResolvePoint(c *diagram.Cell) Point {
	idx := c.SourceIndex
	if c.Category == diagram.SinglePoint {
		return s.Points[idx]
	}
	seg := s.segment(idx - len(s.Points))
	switch c.Category {
	case diagram.SegmentStartPoint, diagram.InitialSegment:
		return seg.Low
	case diagram.SegmentEndPoint, diagram.ReverseSegment:
		return seg.High
	default:
		panic(fmt.Sprintf("site: cell with unknown category %s", c.Category))
	}
}

// ResolveSegment returns the segment which generated a cell.
// It panics if the cell belongs to a single input point.
func (s *Store) ResolveSegment(c *diagram.Cell) Segment {
	if c.Category == diagram.SinglePoint {
		panic("site: segment requested for a point cell")
	}
	return s.segment(c.SourceIndex - len(s.Points))
}

func (s *Store) segment(idx int) Segment {
	if idx < 0 || idx >= len(s.Segments) {
		panic(fmt.Sprintf("site: segment index %d out of range [0,%d)", idx, len(s.Segments)))
	}
	return s.Segments[idx]
}
