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

// Package config holds the settings of the vorviz command.
//
// Settings start from [Default], are then read from an optional TOML file,
// and can finally be overridden by environment variables with the prefix
// VORVIZ_, for example VORVIZ_WIDTH=800.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/voronoi"
	"seehuhn.de/go/voronoi/snapshot"
)

// EnvPrefix is the prefix of environment variables which override settings.
const EnvPrefix = "VORVIZ"

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all settings.
type Config struct {
	// Width and Height give the size of the output in pixels.
	Width  int `toml:"width" envconfig:"WIDTH"`
	Height int `toml:"height" envconfig:"HEIGHT"`

	// Radii of the discs around input points and diagram vertices, and
	// widths of the lines, in pixels.
	PointRadius  float64 `toml:"point_radius" envconfig:"POINT_RADIUS"`
	VertexRadius float64 `toml:"vertex_radius" envconfig:"VERTEX_RADIUS"`
	SegmentWidth float64 `toml:"segment_width" envconfig:"SEGMENT_WIDTH"`
	EdgeWidth    float64 `toml:"edge_width" envconfig:"EDGE_WIDTH"`

	PrimaryOnly  bool `toml:"primary_only" envconfig:"PRIMARY_ONLY"`
	InternalOnly bool `toml:"internal_only" envconfig:"INTERNAL_ONLY"`

	// Format is the output format: png, bmp, tiff or pdf.
	Format string `toml:"format" envconfig:"FORMAT"`

	RoundCaps bool `toml:"round_caps" envconfig:"ROUND_CAPS"`

	// SmoothDiscs draws points and vertices as circles rather than as
	// the 20-gons of the interactive viewer.
	SmoothDiscs bool `toml:"smooth_discs" envconfig:"SMOOTH_DISCS"`
}

// Default returns the settings of the classic viewer.
func Default() *Config {
	styles := voronoi.DefaultStyles()
	return &Config{
		Width:        voronoi.DefaultViewport,
		Height:       voronoi.DefaultViewport,
		PointRadius:  voronoi.DefaultPointRadius,
		VertexRadius: voronoi.DefaultVertexRadius,
		SegmentWidth: styles[voronoi.LayerSegments].LineWidth,
		EdgeWidth:    styles[voronoi.LayerEdges].LineWidth,
		Format:       "png",
		RoundCaps:    true,
		SmoothDiscs:  true,
	}
}

// Load returns the default settings, updated from the TOML file at path
// (if path is not empty) and from the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%s: unknown settings %s", path, strings.Join(keys, ", "))
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all sizes are positive and that the format is
// known.
func (c *Config) Validate() error {
	var errs []error
	check := func(name string, ok bool) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s must be positive", ErrInvalid, name))
		}
	}
	check("width", c.Width > 0)
	check("height", c.Height > 0)
	check("point_radius", c.PointRadius > 0)
	check("vertex_radius", c.VertexRadius > 0)
	check("segment_width", c.SegmentWidth > 0)
	check("edge_width", c.EdgeWidth > 0)
	if _, err := snapshot.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// Filter returns the diagram filters selected by the settings.
func (c *Config) Filter() voronoi.Filter {
	var f voronoi.Filter
	if c.PrimaryOnly {
		f |= voronoi.PrimaryOnly
	}
	if c.InternalOnly {
		f |= voronoi.InternalOnly
	}
	return f
}

// Styles returns the layer styles with the configured line widths.
func (c *Config) Styles() voronoi.Styles {
	s := voronoi.DefaultStyles()
	s[voronoi.LayerSegments].LineWidth = c.SegmentWidth
	s[voronoi.LayerEdges].LineWidth = c.EdgeWidth
	return s
}
