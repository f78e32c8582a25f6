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

// Package cli implements the vorviz command-line interface.
//
// The commands are:
//   - build: compute the Voronoi diagram of an input file and write a
//     picture of it
//   - list: show the input files in a directory
//
// All commands accept --verbose (-v) for debug output. The logger is passed
// to the commands through the context.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the vorviz command with all subcommands.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "vorviz",
		Short:        "vorviz draws Voronoi diagrams of points and segments",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newListCmd())
	return root
}

// Execute runs the vorviz command with the arguments from the command line.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
