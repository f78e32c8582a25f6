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

// Package voronoi prepares Voronoi diagrams of points and segments for
// display.
//
// A [Visualizer] reads the input sites, has a [Builder] construct the
// diagram, marks the parts of the diagram which can be reached from
// infinity, and turns sites, vertices and edges into drawing primitives.
// The primitives are uploaded to a [Backend] once and then drawn by a
// [Surface] as often as needed.
package voronoi

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/region"
	"seehuhn.de/go/voronoi/site"
)

// Kind says how the points of a [Primitive] are connected.
type Kind int

const (
	// TriangleFan connects the first point with every pair of consecutive
	// later points.
	TriangleFan Kind = iota

	// LineList draws a line between points 0 and 1, 2 and 3, and so on.
	LineList
)

func (k Kind) String() string {
	switch k {
	case TriangleFan:
		return "triangle fan"
	case LineList:
		return "line list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitive is a list of points in shifted diagram coordinates, together
// with the way the points are connected.
type Primitive struct {
	Kind   Kind
	Points []vec.Vec2
}

// VertexCount returns the number of points in the primitive.
func (p Primitive) VertexCount() int {
	return len(p.Points)
}

// Buffer is a primitive which has been uploaded to a backend.
// Release frees the resources held by the buffer. Calling Release more
// than once has no effect.
type Buffer interface {
	Release()
}

// Backend stores primitives for drawing. Upload must not retain
// p.Points, which the caller may reuse.
type Backend interface {
	Upload(p Primitive) (Buffer, error)
}

// Surface draws uploaded buffers. The view maps shifted diagram
// coordinates to the square [-1,1]×[-1,1].
type Surface interface {
	Draw(layer Layer, bufs []Buffer, view region.View) error
}

// Builder constructs the Voronoi diagram of a set of sites.
// Half-edges of the returned diagram must have their cell on the left.
type Builder interface {
	Build(s *site.Store) (*diagram.Diagram, error)
}

// BuilderFunc adapts an ordinary function to the [Builder] interface.
type BuilderFunc func(s *site.Store) (*diagram.Diagram, error)

// Build calls f(s).
func (f BuilderFunc) Build(s *site.Store) (*diagram.Diagram, error) {
	return f(s)
}

// Layer identifies one of the groups of primitives drawn by a Visualizer.
type Layer int

// The layers, in drawing order.
const (
	LayerPoints Layer = iota
	LayerSegments
	LayerVertices
	LayerEdges

	numLayers
)

// Layers lists all layers in drawing order.
var Layers = []Layer{LayerPoints, LayerSegments, LayerVertices, LayerEdges}

func (l Layer) String() string {
	switch l {
	case LayerPoints:
		return "points"
	case LayerSegments:
		return "segments"
	case LayerVertices:
		return "vertices"
	case LayerEdges:
		return "edges"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// Filter selects which parts of the diagram are shown.
type Filter int

const (
	// PrimaryOnly hides the secondary edges between a segment and its
	// own endpoints.
	PrimaryOnly Filter = 1 << iota

	// InternalOnly hides edges and vertices which can be reached from
	// infinity.
	InternalOnly
)

func (f Filter) String() string {
	switch f {
	case 0:
		return "none"
	case PrimaryOnly:
		return "primary-only"
	case InternalOnly:
		return "internal-only"
	case PrimaryOnly | InternalOnly:
		return "primary-only|internal-only"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// Style describes how the primitives of a layer are drawn.
type Style struct {
	Color     color.RGBA
	LineWidth float64 // in device pixels, for line lists
}

// Styles holds one style per layer.
type Styles [numLayers]Style

// DefaultStyles returns the colours and line widths of the classic
// viewer: input sites in light blue, the diagram in black.
func DefaultStyles() Styles {
	input := color.RGBA{R: 0, G: 128, B: 255, A: 255}
	black := color.RGBA{A: 255}
	return Styles{
		LayerPoints:   {Color: input},
		LayerSegments: {Color: input, LineWidth: 2.7},
		LayerVertices: {Color: black},
		LayerEdges:    {Color: black, LineWidth: 1.7},
	}
}
