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

package region

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/site"
)

func store(coords ...float64) *site.Store {
	s := &site.Store{}
	for i := 0; i+1 < len(coords); i += 2 {
		s.AddPoint(vec.Vec2{X: coords[i], Y: coords[i+1]})
	}
	return s
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name  string
		sites *site.Store
		want  rect.Rect
	}{
		{
			name:  "square",
			sites: store(0, 0, 10, 0, 0, 10, 10, 10),
			want:  rect.Rect{LLx: -1, LLy: -1, URx: 11, URy: 11},
		},
		{
			name:  "wide",
			sites: store(0, 0, 20, 4),
			want:  rect.Rect{LLx: -2, LLy: -10, URx: 22, URy: 14},
		},
		{
			name:  "single",
			sites: store(3, 4),
			want:  rect.Rect{LLx: 2.4, LLy: 3.4, URx: 3.6, URy: 4.6},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Compute(c.sites)
			if err != nil {
				t.Fatal(err)
			}
			if !nearlyEqual(r.Rect, c.want) {
				t.Errorf("got %v, want %v", r.Rect, c.want)
			}
			if math.Abs(r.Width()-r.Height()) > 1e-12 {
				t.Errorf("region is not square: %g×%g", r.Width(), r.Height())
			}
			for p := range c.sites.Coordinates {
				if !r.ContainsStrictly(p) {
					t.Errorf("site %v not strictly inside %v", p, r.Rect)
				}
			}
		})
	}
}

func TestComputeSegments(t *testing.T) {
	s := &site.Store{}
	s.AddSegment(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0})
	r, err := Compute(s)
	if err != nil {
		t.Fatal(err)
	}
	want := rect.Rect{LLx: -1, LLy: -6, URx: 11, URy: 6}
	if !nearlyEqual(r.Rect, want) {
		t.Errorf("got %v, want %v", r.Rect, want)
	}
}

func TestComputeOrder(t *testing.T) {
	a, err := Compute(store(1, 7, -3, 2, 8, 8, 0, -5))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(store(8, 8, 0, -5, 1, 7, -3, 2))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("region depends on order: %v != %v", a.Rect, b.Rect)
	}
}

func TestComputeEmpty(t *testing.T) {
	_, err := Compute(&site.Store{})
	if !errors.Is(err, ErrNoSites) {
		t.Errorf("got %v, want ErrNoSites", err)
	}
}

func TestView(t *testing.T) {
	r, err := Compute(store(0, 0, 10, 0, 0, 10, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	v := NewView(r)
	shifted := r.Translate(r.Center())

	cases := []struct {
		in, out vec.Vec2
	}{
		{vec.Vec2{X: shifted.Rect.LLx, Y: shifted.Rect.LLy}, vec.Vec2{X: -1, Y: -1}},
		{vec.Vec2{X: shifted.Rect.URx, Y: shifted.Rect.URy}, vec.Vec2{X: 1, Y: 1}},
		{vec.Vec2{}, vec.Vec2{}},
	}
	m := v.Affine()
	for _, c := range cases {
		got := v.Apply(c.in)
		if got.Sub(c.out).Length() > 1e-12 {
			t.Errorf("Apply(%v) = %v, want %v", c.in, got, c.out)
		}
		x := m[0]*c.in.X + m[2]*c.in.Y + m[4]
		y := m[1]*c.in.X + m[3]*c.in.Y + m[5]
		if math.Abs(x-got.X) > 1e-12 || math.Abs(y-got.Y) > 1e-12 {
			t.Errorf("Affine disagrees with Apply at %v", c.in)
		}
	}

	m4 := v.Mat4()
	if m4[0] != float32(v.Scale.X) || m4[5] != float32(v.Scale.Y) || m4[15] != 1 {
		t.Errorf("wrong projection matrix %v", m4)
	}
}

func nearlyEqual(a, b rect.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.LLx-b.LLx) < eps && math.Abs(a.LLy-b.LLy) < eps &&
		math.Abs(a.URx-b.URx) < eps && math.Abs(a.URy-b.URy) < eps
}
