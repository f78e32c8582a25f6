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

package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/site"
)

// TestCase is an input for the diagram builder.
type TestCase struct {
	Name  string // lowercase a-z, 0-9 and _ only
	Sites *site.Store
}

// Fixture is an input together with its diagram, for inputs which the
// builder in this module cannot handle.
type Fixture struct {
	Name    string
	Sites   *site.Store
	Diagram func() *diagram.Diagram // returns a fresh copy on every call
}

// Build returns the fixture's diagram. The sites argument is ignored, so
// that a Fixture can stand in for a diagram builder.
func (f Fixture) Build(*site.Store) (*diagram.Diagram, error) {
	return f.Diagram(), nil
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// points builds a store from alternating x and y coordinates.
func points(coords ...float64) *site.Store {
	s := &site.Store{}
	for i := 0; i+1 < len(coords); i += 2 {
		s.AddPoint(pt(coords[i], coords[i+1]))
	}
	return s
}
