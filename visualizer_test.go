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
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/builder"
	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/region"
	"seehuhn.de/go/voronoi/site"
	"seehuhn.de/go/voronoi/testcases"
)

// fakeBackend records all uploads.
type fakeBackend struct {
	bufs []*fakeBuffer
	fail bool
}

type fakeBuffer struct {
	prim     Primitive
	releases int
}

func (b *fakeBuffer) Release() {
	b.releases++
}

func (f *fakeBackend) Upload(p Primitive) (Buffer, error) {
	if f.fail {
		return nil, errors.New("out of memory")
	}
	buf := &fakeBuffer{prim: Primitive{
		Kind:   p.Kind,
		Points: append([]vec.Vec2(nil), p.Points...),
	}}
	f.bufs = append(f.bufs, buf)
	return buf, nil
}

// live returns the number of buffers which have not been released.
func (f *fakeBackend) live() int {
	n := 0
	for _, b := range f.bufs {
		if b.releases == 0 {
			n++
		}
	}
	return n
}

// checkReleases verifies that no buffer was released more than once.
func (f *fakeBackend) checkReleases(t *testing.T) {
	t.Helper()
	for i, b := range f.bufs {
		if b.releases > 1 {
			t.Errorf("buffer %d released %d times", i, b.releases)
		}
	}
}

type drawCall struct {
	layer Layer
	n     int
	view  region.View
}

type fakeSurface struct {
	calls []drawCall
}

func (s *fakeSurface) Draw(layer Layer, bufs []Buffer, view region.View) error {
	s.calls = append(s.calls, drawCall{layer, len(bufs), view})
	return nil
}

const squareInput = "4\n0 0\n10 0\n0 10\n10 10\n0\n"

func prims(t *testing.T) func([]Buffer, error) []Primitive {
	return func(bufs []Buffer, err error) []Primitive {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		res := make([]Primitive, len(bufs))
		for i, b := range bufs {
			res[i] = b.(*fakeBuffer).prim
		}
		return res
	}
}

func TestSquare(t *testing.T) {
	b := &fakeBackend{}
	v := New(b)
	if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
		t.Fatal(err)
	}

	points := prims(t)(v.Points())
	if len(points) != 4 {
		t.Fatalf("got %d point discs, want 4", len(points))
	}
	// region side 12, viewport 600
	wantRadius := DefaultPointRadius * 12.0 / 600
	for _, p := range points {
		if p.Kind != TriangleFan || p.VertexCount() != fanSegments+2 {
			t.Fatalf("wrong disc primitive: %s with %d points", p.Kind, p.VertexCount())
		}
		if p.Points[1] != p.Points[fanSegments+1] {
			t.Error("fan is not closed")
		}
		r := p.Points[1].Sub(p.Points[0]).Length()
		if math.Abs(r-wantRadius) > 1e-12 {
			t.Errorf("disc radius %g, want %g", r, wantRadius)
		}
	}
	if got := points[0].Points[0]; got != (vec.Vec2{X: -5, Y: -5}) {
		t.Errorf("first point at %v, want shifted to (-5,-5)", got)
	}

	if segs := prims(t)(v.Segments()); len(segs) != 0 {
		t.Errorf("got %d segment buffers", len(segs))
	}

	vertices := prims(t)(v.Vertices())
	if len(vertices) != 1 || vertices[0].Points[0] != (vec.Vec2{}) {
		t.Errorf("vertex discs: %v", vertices)
	}

	edges := prims(t)(v.Edges())
	if len(edges) != 4 {
		t.Fatalf("got %d edges, want 4", len(edges))
	}
	for _, e := range edges {
		if e.Kind != LineList || e.VertexCount() != 2 {
			t.Errorf("wrong edge primitive: %s with %d points", e.Kind, e.VertexCount())
		}
	}

	st := v.Stats()
	if st.Vertices != 1 || st.ExteriorVertices != 1 || st.ExteriorEdges != 8 {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestToggle(t *testing.T) {
	b := &fakeBackend{}
	v := New(b)
	if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
		t.Fatal(err)
	}
	if _, err := v.Points(); err != nil {
		t.Fatal(err)
	}
	edges, err := v.Edges()
	if err != nil {
		t.Fatal(err)
	}
	old := edges[0].(*fakeBuffer)
	before := len(b.bufs)

	v.Toggle(InternalOnly)
	if v.Filter() != InternalOnly {
		t.Errorf("filter is %s", v.Filter())
	}
	if n := len(prims(t)(v.Vertices())); n != 0 {
		t.Errorf("%d vertices shown with internal-only", n)
	}
	if n := len(prims(t)(v.Edges())); n != 0 {
		t.Errorf("%d edges shown with internal-only", n)
	}
	if old.releases != 1 {
		t.Errorf("old edge buffer released %d times", old.releases)
	}

	// the points do not depend on the filter
	if _, err := v.Points(); err != nil {
		t.Fatal(err)
	}
	if len(b.bufs) != before {
		t.Errorf("toggle caused %d new uploads", len(b.bufs)-before)
	}

	v.Toggle(InternalOnly)
	if n := len(prims(t)(v.Edges())); n != 4 {
		t.Errorf("got %d edges after toggling back", n)
	}
	b.checkReleases(t)
}

// enclosed returns a diagram in which the vertex v0 can be reached from
// infinity, but the secondary edge from v0 to v1 shields v1 and
// everything behind it.
//
//	v2
//	|          (primary)
//	v1 ---- v3 (secondary)
//	|          (secondary)
//	v0
//	|          (primary, unbounded)
func enclosed(*site.Store) (*diagram.Diagram, error) {
	d := diagram.New(3, 4, 8)
	c0 := d.AddCell(0, diagram.SinglePoint)
	c1 := d.AddCell(1, diagram.SinglePoint)
	c2 := d.AddCell(2, diagram.SinglePoint)

	v0 := d.AddVertex(vec.Vec2{X: 5, Y: 3})
	v1 := d.AddVertex(vec.Vec2{X: 5, Y: 6})
	v2 := d.AddVertex(vec.Vec2{X: 5, Y: 8})
	v3 := d.AddVertex(vec.Vec2{X: 8, Y: 6})

	d.AddEdgePair(c0, c1, v0, diagram.NoVertex, true)
	d.AddEdgePair(c0, c2, v0, v1, false)
	d.AddEdgePair(c0, c2, v1, v2, true)
	d.AddEdgePair(c2, c1, v1, v3, false)

	d.LinkRotations(func(e diagram.EdgeIndex) vec.Vec2 {
		if end := d.End(e); end != diagram.NoVertex {
			return d.Vertices[end].Pos.Sub(d.Vertices[d.Start(e)].Pos)
		}
		return vec.Vec2{Y: -1}
	})
	return d, nil
}

func TestFilterCombinations(t *testing.T) {
	s := &site.Store{}
	s.AddPoint(vec.Vec2{X: 0, Y: 0})
	s.AddPoint(vec.Vec2{X: 10, Y: 0})
	s.AddPoint(vec.Vec2{X: 5, Y: 10})

	b := &fakeBackend{}
	v := New(b, WithBuilder(BuilderFunc(enclosed)))
	if err := v.BuildSites(s); err != nil {
		t.Fatal(err)
	}
	st := v.Stats()
	if st.Vertices != 4 || st.ExteriorVertices != 1 || st.ExteriorEdges != 4 {
		t.Fatalf("unexpected stats %+v", st)
	}

	points, err := v.Points()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.Segments(); err != nil {
		t.Fatal(err)
	}

	// Each step toggles one filter, so that every combination is seen.
	steps := []struct {
		toggle   Filter
		want     Filter
		vertices int
		edges    int
	}{
		{0, 0, 4, 4},
		{InternalOnly, InternalOnly, 3, 2},
		{PrimaryOnly, PrimaryOnly | InternalOnly, 3, 1},
		{InternalOnly, PrimaryOnly, 4, 2},
		{PrimaryOnly, 0, 4, 4},
	}
	for _, step := range steps {
		if step.toggle != 0 {
			v.Toggle(step.toggle)
		}
		if v.Filter() != step.want {
			t.Fatalf("filter is %s, want %s", v.Filter(), step.want)
		}
		if n := len(prims(t)(v.Vertices())); n != step.vertices {
			t.Errorf("%s: got %d vertices, want %d", step.want, n, step.vertices)
		}
		if n := len(prims(t)(v.Edges())); n != step.edges {
			t.Errorf("%s: got %d edges, want %d", step.want, n, step.edges)
		}

		again, err := v.Points()
		if err != nil {
			t.Fatal(err)
		}
		if len(again) != len(points) {
			t.Fatalf("%s: got %d point buffers, want %d", step.want, len(again), len(points))
		}
		for i := range points {
			if again[i] != points[i] {
				t.Errorf("%s: point buffer %d was uploaded again", step.want, i)
			}
		}
	}

	for i, buf := range points {
		if buf.(*fakeBuffer).releases != 0 {
			t.Errorf("point buffer %d released", i)
		}
	}
	b.checkReleases(t)
}

func TestCacheReuse(t *testing.T) {
	b := &fakeBackend{}
	v := New(b)
	if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
		t.Fatal(err)
	}
	s := &fakeSurface{}
	for range 3 {
		if err := v.Paint(s); err != nil {
			t.Fatal(err)
		}
	}
	// 4 points + 1 vertex + 4 edges, uploaded once
	if len(b.bufs) != 9 {
		t.Errorf("got %d uploads, want 9", len(b.bufs))
	}
}

func TestReleaseOnRebuild(t *testing.T) {
	b := &fakeBackend{}
	v := New(b)
	for range 2 {
		if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
			t.Fatal(err)
		}
		if err := v.Paint(&fakeSurface{}); err != nil {
			t.Fatal(err)
		}
	}
	if n := b.live(); n != 9 {
		t.Errorf("%d live buffers after rebuild, want 9", n)
	}

	if err := v.Close(); err != nil {
		t.Fatal(err)
	}
	if n := b.live(); n != 0 {
		t.Errorf("%d buffers leaked after Close", n)
	}
	b.checkReleases(t)
}

func TestEmptyInput(t *testing.T) {
	b := &fakeBackend{}
	v := New(b)
	if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
		t.Fatal(err)
	}
	if err := v.Paint(&fakeSurface{}); err != nil {
		t.Fatal(err)
	}

	if err := v.BuildFrom(strings.NewReader("0\n0\n")); err != nil {
		t.Fatalf("empty input: %v", err)
	}
	if n := b.live(); n != 0 {
		t.Errorf("%d buffers survived empty input", n)
	}
	if _, ok := v.Region(); ok {
		t.Error("region still set")
	}
	s := &fakeSurface{}
	if err := v.Paint(s); err != nil {
		t.Fatal(err)
	}
	if len(s.calls) != 0 {
		t.Errorf("painting empty state drew %d layers", len(s.calls))
	}
	if v.Stats() != (Stats{}) {
		t.Errorf("non-zero stats %+v", v.Stats())
	}
}

func TestInputErrorKeepsState(t *testing.T) {
	b := &fakeBackend{}
	v := New(b)
	if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
		t.Fatal(err)
	}
	if err := v.Paint(&fakeSurface{}); err != nil {
		t.Fatal(err)
	}
	uploads := len(b.bufs)
	stats := v.Stats()

	err := v.BuildFrom(strings.NewReader("3\n1 2\n"))
	if !errors.Is(err, site.ErrMalformedInput) {
		t.Errorf("got %v, want ErrMalformedInput", err)
	}
	err = v.Build(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}

	if v.Stats() != stats {
		t.Errorf("stats changed to %+v", v.Stats())
	}
	if err := v.Paint(&fakeSurface{}); err != nil {
		t.Fatal(err)
	}
	if len(b.bufs) != uploads || b.live() != uploads {
		t.Error("buffers were rebuilt after a failed build")
	}
}

func TestBuilderErrorKeepsState(t *testing.T) {
	v := New(&fakeBackend{})
	if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
		t.Fatal(err)
	}
	err := v.BuildFrom(strings.NewReader("0\n1\n0 0 1 1\n"))
	if !errors.Is(err, builder.ErrSegmentSites) {
		t.Errorf("got %v, want ErrSegmentSites", err)
	}
	if v.Stats().Points != 4 {
		t.Error("previous diagram lost")
	}
}

func TestBuildFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "square.txt")
	if err := os.WriteFile(name, []byte(squareInput), 0o644); err != nil {
		t.Fatal(err)
	}
	v := New(&fakeBackend{})
	if err := v.Build(name); err != nil {
		t.Fatal(err)
	}
	if v.Stats().Cells != 4 {
		t.Errorf("got %d cells", v.Stats().Cells)
	}
}

func TestSegmentFixture(t *testing.T) {
	var f testcases.Fixture
	for _, fx := range testcases.Fixtures {
		if fx.Name == "segment_only" {
			f = fx
		}
	}

	b := &fakeBackend{}
	v := New(b, WithBuilder(f))
	if err := v.BuildSites(f.Sites); err != nil {
		t.Fatal(err)
	}

	if n := len(prims(t)(v.Points())); n != 2 {
		t.Errorf("got %d endpoint discs, want 2", n)
	}
	segs := prims(t)(v.Segments())
	if len(segs) != 1 || segs[0].Kind != LineList || segs[0].VertexCount() != 2 {
		t.Fatalf("wrong segment primitives %v", segs)
	}
	// region centre is (5,0)
	if segs[0].Points[0] != (vec.Vec2{X: -5}) || segs[0].Points[1] != (vec.Vec2{X: 5}) {
		t.Errorf("segment at %v", segs[0].Points)
	}

	if n := len(prims(t)(v.Edges())); n != 2 {
		t.Errorf("got %d edges, want 2", n)
	}
	v.Toggle(PrimaryOnly)
	if n := len(prims(t)(v.Edges())); n != 0 {
		t.Errorf("got %d primary edges, want 0", n)
	}
}

func TestCurvedEdge(t *testing.T) {
	var f testcases.Fixture
	for _, fx := range testcases.Fixtures {
		if fx.Name == "point_and_segment" {
			f = fx
		}
	}

	v := New(&fakeBackend{}, WithBuilder(f))
	if err := v.BuildSites(f.Sites); err != nil {
		t.Fatal(err)
	}
	edges := prims(t)(v.Edges())
	if len(edges) != 5 {
		t.Fatalf("got %d edges, want 5", len(edges))
	}
	curved := edges[0]
	if curved.VertexCount() <= 2 || curved.VertexCount()%2 != 0 {
		t.Fatalf("arc has %d points", curved.VertexCount())
	}
	// consecutive lines share their end points
	for i := 2; i < len(curved.Points); i += 2 {
		if curved.Points[i] != curved.Points[i-1] {
			t.Errorf("line list broken at %d", i)
		}
	}
}

func TestPaint(t *testing.T) {
	v := New(&fakeBackend{})
	s := &fakeSurface{}
	if err := v.Paint(s); err != nil {
		t.Fatal(err)
	}
	if len(s.calls) != 0 {
		t.Errorf("painting before build drew %d layers", len(s.calls))
	}

	if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
		t.Fatal(err)
	}
	if err := v.Paint(s); err != nil {
		t.Fatal(err)
	}
	want := []Layer{LayerPoints, LayerVertices, LayerEdges}
	if len(s.calls) != len(want) {
		t.Fatalf("got %d draw calls, want %d", len(s.calls), len(want))
	}
	for i, c := range s.calls {
		if c.layer != want[i] {
			t.Errorf("call %d drew %s, want %s", i, c.layer, want[i])
		}
		if c.view != v.View() {
			t.Errorf("call %d used the wrong view", i)
		}
	}
}

func TestUploadFailure(t *testing.T) {
	b := &fakeBackend{}
	v := New(b)
	if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
		t.Fatal(err)
	}
	b.fail = true
	if err := v.Paint(&fakeSurface{}); err == nil {
		t.Fatal("expected an error")
	}
	b.fail = false
	if err := v.Paint(&fakeSurface{}); err != nil {
		t.Fatal(err)
	}
	if n := b.live(); n != 9 {
		t.Errorf("%d live buffers, want 9", n)
	}
}

func TestViewportRadius(t *testing.T) {
	v := New(&fakeBackend{}, WithViewport(1200), WithRadii(6, 4))
	if err := v.BuildFrom(strings.NewReader(squareInput)); err != nil {
		t.Fatal(err)
	}
	vertices := prims(t)(v.Vertices())
	r := vertices[0].Points[5].Sub(vertices[0].Points[0]).Length()
	if want := 4 * 12.0 / 1200; math.Abs(r-want) > 1e-12 {
		t.Errorf("vertex radius %g, want %g", r, want)
	}
}
