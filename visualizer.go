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
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/builder"
	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/region"
	"seehuhn.de/go/voronoi/site"
)

// Default sizes, in viewport pixels.
const (
	DefaultViewport     = 600
	DefaultPointRadius  = 4.5
	DefaultVertexRadius = 3.0
)

// Visualizer holds the current input, its Voronoi diagram and the
// primitives derived from them.
//
// Primitives are computed lazily when they are first needed, and are kept
// until the input or the filter changes. A Visualizer must not be used
// from more than one goroutine at a time.
type Visualizer struct {
	backend Backend
	builder Builder
	logger  *log.Logger

	viewport     int
	pointRadius  float64
	vertexRadius float64

	// current state; sites == nil means that nothing has been built
	sites   *site.Store
	diagram *diagram.Diagram
	region  region.Region
	filter  Filter
	gen     generation

	layers [numLayers]group

	// scratch space for primitive construction
	scratch  []vec.Vec2
	polyline []vec.Vec2
}

// Option configures a Visualizer.
type Option func(*Visualizer)

// WithLogger sets the logger. By default, nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(v *Visualizer) {
		v.logger = l
	}
}

// WithBuilder sets the diagram builder. By default, the point-site
// builder from package builder is used.
func WithBuilder(b Builder) Option {
	return func(v *Visualizer) {
		v.builder = b
	}
}

// WithViewport sets the size of the viewport in pixels. This determines
// the size of the discs drawn around sites and vertices.
func WithViewport(px int) Option {
	return func(v *Visualizer) {
		if px > 0 {
			v.viewport = px
		}
	}
}

// WithRadii sets the radii of the discs drawn around input points and
// diagram vertices, in viewport pixels.
func WithRadii(point, vertex float64) Option {
	return func(v *Visualizer) {
		if point > 0 {
			v.pointRadius = point
		}
		if vertex > 0 {
			v.vertexRadius = vertex
		}
	}
}

// New returns a Visualizer which uploads its primitives to b.
func New(b Backend, opts ...Option) *Visualizer {
	v := &Visualizer{
		backend:      b,
		builder:      BuilderFunc(builder.Build),
		viewport:     DefaultViewport,
		pointRadius:  DefaultPointRadius,
		vertexRadius: DefaultVertexRadius,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = log.New(io.Discard)
	}
	return v
}

// Build reads the sites from the named file and builds their diagram.
// If the file cannot be read, the previous diagram is kept.
func (v *Visualizer) Build(name string) error {
	s, err := site.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	v.logger.Debug("read input", "file", name)
	return v.BuildSites(s)
}

// BuildFrom reads the sites from r and builds their diagram.
// If the input cannot be parsed, the previous diagram is kept.
func (v *Visualizer) BuildFrom(r io.Reader) error {
	s, err := site.Read(r)
	if err != nil {
		return err
	}
	return v.BuildSites(s)
}

// BuildSites builds the diagram of s. The Visualizer keeps a reference to
// s, which must not be modified afterwards.
//
// An empty store clears the Visualizer. If the builder fails, the previous
// diagram is kept.
func (v *Visualizer) BuildSites(s *site.Store) error {
	if s.IsEmpty() {
		v.clear()
		v.gen.build++
		v.logger.Debug("empty input")
		return nil
	}

	d, err := v.builder.Build(s)
	if err != nil {
		return fmt.Errorf("building diagram: %w", err)
	}
	r, err := region.Compute(s)
	if err != nil {
		return err
	}
	d.MarkExterior()

	v.clear()
	v.sites = s
	v.diagram = d
	v.region = r
	v.gen.build++

	if v.logger.GetLevel() <= log.DebugLevel {
		st := v.Stats()
		v.logger.Debug("built diagram",
			"points", st.Points,
			"segments", st.Segments,
			"cells", st.Cells,
			"vertices", st.Vertices,
			"edges", st.Edges,
			"exterior_edges", st.ExteriorEdges,
			"exterior_vertices", st.ExteriorVertices)
	}
	return nil
}

// Toggle switches the given filter on or off.
func (v *Visualizer) Toggle(f Filter) {
	v.filter ^= f
	v.gen.filter++
	v.logger.Debug("toggled filter", "filter", f, "active", v.filter)
}

// Filter returns the currently active filters.
func (v *Visualizer) Filter() Filter {
	return v.filter
}

// Region returns the square around the sites. The second return value is
// false if nothing has been built.
func (v *Visualizer) Region() (region.Region, bool) {
	return v.region, v.sites != nil
}

// View returns the mapping from shifted diagram coordinates to the
// normalised square. Before the first build, this is the identity.
func (v *Visualizer) View() region.View {
	if v.sites == nil {
		return region.View{Scale: vec.Vec2{X: 1, Y: 1}}
	}
	return region.NewView(v.region)
}

// Points returns the buffers for the input points and segment endpoints.
func (v *Visualizer) Points() ([]Buffer, error) {
	return v.layer(LayerPoints)
}

// Segments returns the buffers for the input segments.
func (v *Visualizer) Segments() ([]Buffer, error) {
	return v.layer(LayerSegments)
}

// Vertices returns the buffers for the diagram vertices which pass the
// current filter.
func (v *Visualizer) Vertices() ([]Buffer, error) {
	return v.layer(LayerVertices)
}

// Edges returns the buffers for the diagram edges which pass the current
// filter.
func (v *Visualizer) Edges() ([]Buffer, error) {
	return v.layer(LayerEdges)
}

func (v *Visualizer) layer(l Layer) ([]Buffer, error) {
	if v.sites == nil {
		return nil, nil
	}

	key := generation{build: v.gen.build}
	var fill func(func(Primitive) error) error
	switch l {
	case LayerPoints:
		fill = v.fillPoints
	case LayerSegments:
		fill = v.fillSegments
	case LayerVertices:
		key.filter = v.gen.filter
		fill = v.fillVertices
	case LayerEdges:
		key.filter = v.gen.filter
		fill = v.fillEdges
	default:
		panic(fmt.Sprintf("voronoi: unknown layer %d", l))
	}

	bufs, err := v.layers[l].get(key, v.backend, fill)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", l, err)
	}
	return bufs, nil
}

// Paint draws all non-empty layers onto s, in the order given by
// [Layers].
func (v *Visualizer) Paint(s Surface) error {
	view := v.View()
	for _, l := range Layers {
		bufs, err := v.layer(l)
		if err != nil {
			return err
		}
		if len(bufs) == 0 {
			continue
		}
		if err := s.Draw(l, bufs, view); err != nil {
			return fmt.Errorf("drawing %s: %w", l, err)
		}
	}
	return nil
}

// Close releases all buffers and forgets the current diagram.
// The Visualizer can be used again afterwards.
func (v *Visualizer) Close() error {
	v.clear()
	v.gen.build++
	return nil
}

func (v *Visualizer) clear() {
	for i := range v.layers {
		v.layers[i].release()
	}
	v.sites = nil
	v.diagram = nil
	v.region = region.Region{}
}

// Stats summarises the current diagram.
type Stats struct {
	Points, Segments int
	Cells            int
	Vertices, Edges  int

	ExteriorVertices, ExteriorEdges int
}

// Stats returns the sizes of the current input and diagram.
// Edge counts refer to half-edges.
func (v *Visualizer) Stats() Stats {
	if v.sites == nil {
		return Stats{}
	}
	ee, ev := v.diagram.ExteriorCounts()
	return Stats{
		Points:           len(v.sites.Points),
		Segments:         len(v.sites.Segments),
		Cells:            len(v.diagram.Cells),
		Vertices:         len(v.diagram.Vertices),
		Edges:            len(v.diagram.Edges),
		ExteriorVertices: ev,
		ExteriorEdges:    ee,
	}
}
