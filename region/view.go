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

package region

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// View maps shifted diagram coordinates onto the normalised square
// [-1,1]×[-1,1].
type View struct {
	Scale     vec.Vec2
	Translate vec.Vec2
}

// NewView returns the view for a region. The region is first shifted by
// its centre, the same shift which is applied to all rendered geometry.
func NewView(r Region) View {
	v := r.Translate(r.Center())
	w, h := v.Width(), v.Height()
	return View{
		Scale: vec.Vec2{X: 2 / w, Y: 2 / h},
		Translate: vec.Vec2{
			X: -(v.Rect.LLx + v.Rect.URx) / w,
			Y: -(v.Rect.LLy + v.Rect.URy) / h,
		},
	}
}

// Apply maps a point to normalised coordinates.
func (v View) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: v.Scale.X*p.X + v.Translate.X,
		Y: v.Scale.Y*p.Y + v.Translate.Y,
	}
}

// Affine returns the view as a 2D transformation matrix.
func (v View) Affine() matrix.Matrix {
	return matrix.Matrix{v.Scale.X, 0, 0, v.Scale.Y, v.Translate.X, v.Translate.Y}
}

// Mat4 returns the view as a column-major 4×4 projection matrix, in the
// form expected by OpenGL style shaders.
func (v View) Mat4() [16]float32 {
	var m [16]float32
	m[0] = float32(v.Scale.X)
	m[5] = float32(v.Scale.Y)
	m[10] = -1
	m[12] = float32(v.Translate.X)
	m[13] = float32(v.Translate.Y)
	m[15] = 1
	return m
}
