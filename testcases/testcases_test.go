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
	"bytes"
	"regexp"
	"testing"

	"seehuhn.de/go/voronoi/site"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	check := func(name string) {
		if !validName.MatchString(name) {
			t.Errorf("invalid name %q", name)
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}
	for category, cases := range All {
		for _, tc := range cases {
			check(category + "_" + tc.Name)
		}
	}
	for _, f := range Fixtures {
		check("fixture_" + f.Name)
	}
}

// All inputs must survive a round trip through the input file format.
func TestWritable(t *testing.T) {
	stores := make(map[string]*site.Store)
	for category, cases := range All {
		for _, tc := range cases {
			stores[category+"_"+tc.Name] = tc.Sites
		}
	}
	for _, f := range Fixtures {
		stores["fixture_"+f.Name] = f.Sites
	}

	for name, s := range stores {
		buf := &bytes.Buffer{}
		if err := site.Write(buf, s); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		got, err := site.Read(buf)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if got.Len() != s.Len() {
			t.Errorf("%s: %d sites after round trip, want %d", name, got.Len(), s.Len())
		}
	}
}

func TestFixtures(t *testing.T) {
	for _, f := range Fixtures {
		t.Run(f.Name, func(t *testing.T) {
			d := f.Diagram()
			if err := d.Validate(); err != nil {
				t.Fatal(err)
			}
			// a segment has one cell for its interior and one per endpoint
			want := len(f.Sites.Points) + 3*len(f.Sites.Segments)
			if len(d.Cells) != want {
				t.Errorf("%d cells, want %d", len(d.Cells), want)
			}
			// every call returns an independent copy
			d.MarkExterior()
			if ee, _ := f.Diagram().ExteriorCounts(); ee != 0 {
				t.Error("fixture diagrams share state")
			}
		})
	}
}
