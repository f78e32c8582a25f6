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

package site

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Write stores s in the format understood by [Read].
// All coordinates must be integers.
func Write(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, len(s.Points))
	for _, p := range s.Points {
		if err := writeCoords(bw, p); err != nil {
			return err
		}
	}
	fmt.Fprintln(bw, len(s.Segments))
	for _, seg := range s.Segments {
		if err := writeCoords(bw, seg.Low, seg.High); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeCoords(w *bufio.Writer, pts ...Point) error {
	for i, p := range pts {
		for j, x := range []float64{p.X, p.Y} {
			if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
				return fmt.Errorf("site: coordinate %g is not a valid integer", x)
			}
			if i > 0 || j > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
		}
	}
	return w.WriteByte('\n')
}
