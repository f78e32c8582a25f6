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

// Command export writes all test inputs as input files, for use with the
// vorviz command, together with an index of the expected diagram sizes.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/voronoi/builder"
	"seehuhn.de/go/voronoi/diagram"
	"seehuhn.de/go/voronoi/site"
	"seehuhn.de/go/voronoi/testcases"
)

const outDir = "testdata/inputs"

type entry struct {
	Name     string `json:"name"`
	Points   int    `json:"points"`
	Segments int    `json:"segments"`
	Cells    int    `json:"cells"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`

	ExteriorVertices int `json:"exterior_vertices"`
	ExteriorEdges    int `json:"exterior_edges"`
}

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		panic(err)
	}

	var index []entry
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			d, err := builder.Build(tc.Sites)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			index = append(index, export(name, tc.Sites, d))
		}
	}
	for _, f := range testcases.Fixtures {
		name := "fixture_" + f.Name
		index = append(index, export(name, f.Sites, f.Diagram()))
	}

	fd, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		panic(err)
	}
	defer fd.Close()

	enc := json.NewEncoder(fd)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		panic(err)
	}
}

// export writes the sites to a file and returns the index entry.
func export(name string, s *site.Store, d *diagram.Diagram) entry {
	fd, err := os.Create(filepath.Join(outDir, name+".txt"))
	if err != nil {
		panic(err)
	}
	if err := site.Write(fd, s); err != nil {
		panic(fmt.Errorf("%s: %w", name, err))
	}
	if err := fd.Close(); err != nil {
		panic(err)
	}

	d.MarkExterior()
	ee, ev := d.ExteriorCounts()
	return entry{
		Name:             name,
		Points:           len(s.Points),
		Segments:         len(s.Segments),
		Cells:            len(d.Cells),
		Vertices:         len(d.Vertices),
		Edges:            len(d.Edges) / 2,
		ExteriorVertices: ev,
		ExteriorEdges:    ee / 2,
	}
}
