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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrMalformedInput is returned when an input file cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

// maxCount limits the point and segment counts, to avoid huge allocations
// for corrupt files.
const maxCount = 1 << 24

// ReadFile reads sites from the named file. See [Read] for the format.
func ReadFile(name string) (s *Store, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Read(f)
}

// Read parses sites in the following whitespace separated format:
//
//	N
//	x y          (N times)
//	M
//	x1 y1 x2 y2  (M times)
//
// All values are integers. A missing segment section is treated as M = 0.
func Read(r io.Reader) (*Store, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tr := &tokenReader{sc: sc}

	numPoints, err := tr.count("point count")
	if err != nil {
		return nil, err
	}
	s := &Store{Points: make([]Point, 0, min(numPoints, 1024))}
	for range numPoints {
		p, err := tr.point()
		if err != nil {
			return nil, err
		}
		s.AddPoint(p)
	}

	if !tr.more() {
		return s, tr.sc.Err()
	}
	numSegments, err := tr.count("segment count")
	if err != nil {
		return nil, err
	}
	s.Segments = make([]Segment, 0, min(numSegments, 1024))
	for range numSegments {
		a, err := tr.point()
		if err != nil {
			return nil, err
		}
		b, err := tr.point()
		if err != nil {
			return nil, err
		}
		s.AddSegment(a, b)
	}
	return s, nil
}

type tokenReader struct {
	sc      *bufio.Scanner
	pending string
	has     bool
	pos     int
}

func (t *tokenReader) more() bool {
	if t.has {
		return true
	}
	if !t.sc.Scan() {
		return false
	}
	t.pending, t.has = t.sc.Text(), true
	return true
}

func (t *tokenReader) integer(what string) (int, error) {
	if !t.more() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: token %d: missing %s", ErrMalformedInput, t.pos+1, what)
	}
	tok := t.pending
	t.has = false
	t.pos++
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: invalid %s %q", ErrMalformedInput, t.pos, what, tok)
	}
	return v, nil
}

func (t *tokenReader) count(what string) (int, error) {
	n, err := t.integer(what)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > maxCount {
		return 0, fmt.Errorf("%w: token %d: %s %d out of range", ErrMalformedInput, t.pos, what, n)
	}
	return n, nil
}

func (t *tokenReader) point() (Point, error) {
	x, err := t.integer("x coordinate")
	if err != nil {
		return Point{}, err
	}
	y, err := t.integer("y coordinate")
	if err != nil {
		return Point{}, err
	}
	return Point{X: float64(x), Y: float64(y)}, nil
}
