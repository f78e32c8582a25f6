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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/voronoi/site"
)

// inputExt is the file name extension of input files.
const inputExt = ".txt"

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List the input files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runList(cmd, dir)
		},
	}
}

func runList(cmd *cobra.Command, dir string) error {
	logger := loggerFromContext(cmd.Context())

	names, err := inputFiles(dir)
	if err != nil {
		return err
	}
	logger.Debug("listing inputs", "dir", dir, "files", len(names))

	out := cmd.OutOrStdout()
	for _, name := range names {
		s, err := site.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("cannot read input", "file", name, "err", err)
			fmt.Fprintf(out, "%s\tunreadable\n", name)
			continue
		}
		printEntry(out, name, s)
	}
	return nil
}

// inputFiles returns the sorted names of the input files in dir.
func inputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), inputExt) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

func printEntry(w io.Writer, name string, s *site.Store) {
	fmt.Fprintf(w, "%s\t%d points\t%d segments\n", name, len(s.Points), len(s.Segments))
}
