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

// Command genpdf draws every test case, once as a PDF file and once as a
// PNG image, for visual inspection.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/voronoi"
	"seehuhn.de/go/voronoi/site"
	"seehuhn.de/go/voronoi/snapshot"
	"seehuhn.de/go/voronoi/testcases"
)

const outDir = "testdata/pictures"

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := draw(name, tc.Sites, nil); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	for _, f := range testcases.Fixtures {
		name := "fixture_" + f.Name
		if err := draw(name, f.Sites, f); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
	}
}

// draw writes the pictures for one input. If b is nil, the default
// builder is used.
func draw(name string, s *site.Store, b voronoi.Builder) error {
	for _, format := range []snapshot.Format{snapshot.PDF, snapshot.PNG} {
		out := filepath.Join(outDir, name+format.Ext())
		target, err := snapshot.Create(out, format, nil)
		if err != nil {
			return err
		}

		var opts []voronoi.Option
		if b != nil {
			opts = append(opts, voronoi.WithBuilder(b))
		}
		v := voronoi.New(target, opts...)
		err = v.BuildSites(s)
		if err == nil {
			err = v.Paint(target)
		}
		v.Close()
		if cerr := target.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}
