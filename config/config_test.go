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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/voronoi"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "vorviz.toml")
	if err := os.WriteFile(name, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Width != 600 || c.Height != 600 {
		t.Errorf("size %dx%d", c.Width, c.Height)
	}
	if c.PointRadius != 4.5 || c.VertexRadius != 3 {
		t.Errorf("radii %g, %g", c.PointRadius, c.VertexRadius)
	}
	if c.SegmentWidth != 2.7 || c.EdgeWidth != 1.7 {
		t.Errorf("widths %g, %g", c.SegmentWidth, c.EdgeWidth)
	}
	if c.Filter() != 0 {
		t.Errorf("filter %s", c.Filter())
	}
	if !c.RoundCaps || !c.SmoothDiscs {
		t.Errorf("round caps %t, smooth discs %t", c.RoundCaps, c.SmoothDiscs)
	}
}

func TestLoadFile(t *testing.T) {
	name := writeFile(t, `
width = 800
edge_width = 3.5
internal_only = true
format = "pdf"
smooth_discs = false
`)
	c, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 800 || c.Height != 600 {
		t.Errorf("size %dx%d", c.Width, c.Height)
	}
	if c.Format != "pdf" {
		t.Errorf("format %q", c.Format)
	}
	if c.SmoothDiscs {
		t.Error("smooth_discs not read")
	}
	if c.Filter() != voronoi.InternalOnly {
		t.Errorf("filter %s", c.Filter())
	}
	if w := c.Styles()[voronoi.LayerEdges].LineWidth; w != 3.5 {
		t.Errorf("edge width %g", w)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	name := writeFile(t, "widht = 800\n")
	if _, err := Load(name); err == nil {
		t.Error("misspelled key accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadEnv(t *testing.T) {
	name := writeFile(t, "width = 800\nheight = 700\n")
	t.Setenv("VORVIZ_WIDTH", "1024")
	t.Setenv("VORVIZ_PRIMARY_ONLY", "true")

	c, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 1024 || c.Height != 700 {
		t.Errorf("size %dx%d", c.Width, c.Height)
	}
	if c.Filter() != voronoi.PrimaryOnly {
		t.Errorf("filter %s", c.Filter())
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *Config)
	}{
		{"width", func(c *Config) { c.Width = 0 }},
		{"height", func(c *Config) { c.Height = -1 }},
		{"point_radius", func(c *Config) { c.PointRadius = 0 }},
		{"edge_width", func(c *Config) { c.EdgeWidth = -2 }},
		{"format", func(c *Config) { c.Format = "gif" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.modify(c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
