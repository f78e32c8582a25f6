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

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/voronoi"
	"seehuhn.de/go/voronoi/config"
	"seehuhn.de/go/voronoi/snapshot"
)

type buildOptions struct {
	configFile   string
	output       string
	format       string
	width        int
	height       int
	primaryOnly  bool
	internalOnly bool
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build <input>",
		Short: "Draw the Voronoi diagram of an input file",
		Long: `Build reads points and segments from an input file, computes their
Voronoi diagram and writes a picture of it.

Settings are taken from the configuration file, then from VORVIZ_*
environment variables, and finally from the command line flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return runBuild(cmd.Context(), args[0], opts.output, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format's extension)")
	f.StringVar(&opts.configFile, "config", "", "TOML configuration file")
	f.StringVarP(&opts.format, "format", "f", "", "output format: png, bmp, tiff or pdf")
	f.IntVar(&opts.width, "width", 0, "picture width in pixels")
	f.IntVar(&opts.height, "height", 0, "picture height in pixels")
	f.BoolVar(&opts.primaryOnly, "primary-only", false, "hide edges between a segment and its endpoints")
	f.BoolVar(&opts.internalOnly, "internal-only", false, "hide the parts of the diagram which reach infinity")
	return cmd
}

// config merges the configuration file, the environment and the flags
// which were set explicitly.
func (o *buildOptions) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Height = o.height
	}
	if flags.Changed("primary-only") {
		cfg.PrimaryOnly = o.primaryOnly
	}
	if flags.Changed("internal-only") {
		cfg.InternalOnly = o.internalOnly
	}
	switch {
	case flags.Changed("format"):
		cfg.Format = o.format
	case o.output != "":
		if f, err := snapshot.FormatFromName(o.output); err == nil {
			cfg.Format = f.String()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// outputName returns the name of the picture for the given input file.
func outputName(input string, f snapshot.Format) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + f.Ext()
}

func runBuild(ctx context.Context, input, output string, cfg *config.Config) (err error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	format, err := snapshot.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if output == "" {
		output = outputName(input, format)
	}

	opt := &snapshot.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Styles: cfg.Styles(),
		Cap:    graphics.LineCapButt,

		SmoothDiscs: cfg.SmoothDiscs,
	}
	if cfg.RoundCaps {
		opt.Cap = graphics.LineCapRound
	}
	target, err := snapshot.Create(output, format, opt)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := target.Close(); err == nil {
			err = cerr
		}
	}()

	v := voronoi.New(target,
		voronoi.WithLogger(logger),
		voronoi.WithViewport(min(cfg.Width, cfg.Height)),
		voronoi.WithRadii(cfg.PointRadius, cfg.VertexRadius))
	defer v.Close()

	if err := v.Build(input); err != nil {
		return err
	}
	if v.Stats().Cells == 0 {
		logger.Info("no sites, writing an empty picture", "file", input)
	}
	for _, f := range []voronoi.Filter{voronoi.PrimaryOnly, voronoi.InternalOnly} {
		if cfg.Filter()&f != 0 {
			v.Toggle(f)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := v.Paint(target); err != nil {
		return err
	}

	st := v.Stats()
	prog.done(fmt.Sprintf("wrote %s: %d cells, %d vertices, %d edges",
		output, st.Cells, st.Vertices, st.Edges/2))
	return nil
}
