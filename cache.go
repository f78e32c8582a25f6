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

package voronoi

// generation identifies the state a group of buffers was built from.
// Groups which do not depend on the filter leave that field at zero.
type generation struct {
	build  uint64
	filter uint64
}

// group is a lazily built set of buffers for one layer.
type group struct {
	key   generation
	valid bool
	bufs  []Buffer
}

// get returns the buffers for key. If the stored buffers belong to a
// different generation, they are released and fill is called to upload
// new ones.
func (g *group) get(key generation, b Backend, fill func(upload func(Primitive) error) error) ([]Buffer, error) {
	if g.valid && g.key == key {
		return g.bufs, nil
	}
	g.release()

	err := fill(func(p Primitive) error {
		buf, err := b.Upload(p)
		if err != nil {
			return err
		}
		g.bufs = append(g.bufs, buf)
		return nil
	})
	if err != nil {
		g.release()
		return nil, err
	}
	g.key = key
	g.valid = true
	return g.bufs, nil
}

// release frees all buffers of the group and marks it as stale.
func (g *group) release() {
	for i, buf := range g.bufs {
		buf.Release()
		g.bufs[i] = nil
	}
	g.bufs = g.bufs[:0]
	g.valid = false
}
