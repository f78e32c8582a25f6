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

// Package region computes the square region around a set of sites.
// The region is used to clip unbounded edges and to map the diagram
// onto the viewport.
package region

import (
	"errors"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/site"
)

// ErrNoSites is returned by Compute for an empty site store.
var ErrNoSites = errors.New("no sites")

const (
	// margin is the ratio between the side of the region and the extent
	// of the sites.
	margin = 1.2

	// minSide replaces a zero extent, when all sites coincide.
	minSide = 1.0
)

// Region is an axis-aligned square.
type Region struct {
	Rect rect.Rect
}

// Compute returns the square which contains all sites of s with a margin
// of 20%, centred on the centre of the sites' bounding box.
// The result only depends on the set of coordinates, not on their order.
func Compute(s *site.Store) (Region, error) {
	var box rect.Rect
	first := true
	for p := range s.Coordinates {
		if first {
			box = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			first = false
			continue
		}
		box.LLx = min(box.LLx, p.X)
		box.LLy = min(box.LLy, p.Y)
		box.URx = max(box.URx, p.X)
		box.URy = max(box.URy, p.Y)
	}
	if first {
		return Region{}, ErrNoSites
	}

	side := max(box.URx-box.LLx, box.URy-box.LLy)
	if side <= 0 {
		side = minSide
	}
	half := side * margin / 2
	cx := (box.LLx + box.URx) / 2
	cy := (box.LLy + box.URy) / 2
	return Region{Rect: rect.Rect{
		LLx: cx - half,
		LLy: cy - half,
		URx: cx + half,
		URy: cy + half,
	}}, nil
}

// Width returns the side length of the region in x-direction.
func (r Region) Width() float64 {
	return r.Rect.URx - r.Rect.LLx
}

// Height returns the side length of the region in y-direction.
func (r Region) Height() float64 {
	return r.Rect.URy - r.Rect.LLy
}

// Center returns the centre of the region. Geometry is shifted by this
// amount before rendering, to keep coordinates small.
func (r Region) Center() vec.Vec2 {
	return vec.Vec2{
		X: (r.Rect.LLx + r.Rect.URx) / 2,
		Y: (r.Rect.LLy + r.Rect.URy) / 2,
	}
}

// Contains reports whether p lies in the closed region.
func (r Region) Contains(p vec.Vec2) bool {
	return p.X >= r.Rect.LLx && p.X <= r.Rect.URx &&
		p.Y >= r.Rect.LLy && p.Y <= r.Rect.URy
}

// ContainsStrictly reports whether p lies in the open region.
func (r Region) ContainsStrictly(p vec.Vec2) bool {
	return p.X > r.Rect.LLx && p.X < r.Rect.URx &&
		p.Y > r.Rect.LLy && p.Y < r.Rect.URy
}

// Translate returns the region moved by -shift.
func (r Region) Translate(shift vec.Vec2) Region {
	return Region{Rect: rect.Rect{
		LLx: r.Rect.LLx - shift.X,
		LLy: r.Rect.LLy - shift.Y,
		URx: r.Rect.URx - shift.X,
		URy: r.Rect.URy - shift.Y,
	}}
}
