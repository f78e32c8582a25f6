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
	"math"
	"math/rand/v2"

	"seehuhn.de/go/voronoi/site"
)

var basicCases = []TestCase{
	{
		Name:  "square",
		Sites: points(0, 0, 10, 0, 0, 10, 10, 10),
	},
	{
		Name:  "triangle",
		Sites: points(0, 0, 10, 0, 5, 8),
	},
	{
		Name:  "obtuse_triangle",
		Sites: points(0, 0, 20, 0, 10, 2),
	},
	{
		Name:  "pentagon",
		Sites: polygon(5, 100, true),
	},
	{
		Name:  "hexagon",
		Sites: polygon(6, 100, false),
	},
}

var degenerateCases = []TestCase{
	{
		Name:  "single",
		Sites: points(3, 4),
	},
	{
		Name:  "pair",
		Sites: points(0, 0, 10, 0),
	},
	{
		Name:  "collinear",
		Sites: points(0, 0, 1, 1, 2, 2, 5, 5),
	},
	{
		Name:  "duplicates",
		Sites: points(0, 0, 10, 0, 0, 0, 5, 8, 10, 0),
	},
	{
		Name:  "collinear_then_off",
		Sites: points(0, 0, 1, 0, 2, 0, 3, 0, 1, 5),
	},
}

var gridCases = []TestCase{
	{
		Name:  "grid_3x3",
		Sites: grid(3, 3, 10),
	},
	{
		Name:  "grid_5x4",
		Sites: grid(5, 4, 7),
	},
}

var randomCases = []TestCase{
	{
		Name:  "random_20",
		Sites: random(20, 1000, 1),
	},
	{
		Name:  "random_100",
		Sites: random(100, 10000, 2),
	},
	{
		Name:  "random_clustered",
		Sites: random(60, 30, 3),
	},
}

// polygon places n points on a circle of radius r, rounded to integers.
func polygon(n int, r float64, centre bool) *site.Store {
	s := &site.Store{}
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		s.AddPoint(pt(math.Round(r*math.Cos(phi)), math.Round(r*math.Sin(phi))))
	}
	if centre {
		s.AddPoint(pt(0, 0))
	}
	return s
}

// grid places nx×ny points with the given spacing.
func grid(nx, ny int, spacing float64) *site.Store {
	s := &site.Store{}
	for j := range ny {
		for i := range nx {
			s.AddPoint(pt(float64(i)*spacing, float64(j)*spacing))
		}
	}
	return s
}

// random places n points with integer coordinates in [0,size).
// Repeated points are possible.
func random(n, size int, seed uint64) *site.Store {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	s := &site.Store{}
	for range n {
		s.AddPoint(pt(float64(rng.IntN(size)), float64(rng.IntN(size))))
	}
	return s
}
