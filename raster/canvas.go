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

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/voronoi"
	"seehuhn.de/go/voronoi/region"
)

var (
	// ErrReleased is returned when a released buffer is drawn.
	ErrReleased = errors.New("buffer has been released")

	// ErrForeignBuffer is returned when a buffer from a different backend
	// is drawn.
	ErrForeignBuffer = errors.New("buffer belongs to a different backend")
)

// Canvas is an in-memory image which can be used as the backend and the
// drawing surface of a [voronoi.Visualizer].
type Canvas struct {
	Image  *image.RGBA
	Styles voronoi.Styles

	// Cap is the cap style for lines.
	Cap graphics.LineCapStyle

	// SmoothDiscs draws triangle fans as the circles they approximate,
	// using the first point as the centre and the second point to find
	// the radius.
	SmoothDiscs bool

	r *Rasteriser
}

// NewCanvas returns a white canvas of the given size in pixels, using
// the default styles and round line caps.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Canvas{
		Image:  img,
		Styles: voronoi.DefaultStyles(),
		Cap:    graphics.LineCapRound,
		r:      NewRasteriser(clipRect(img.Bounds())),
	}
}

type buffer struct {
	owner    *Canvas
	prim     voronoi.Primitive
	released bool
}

func (b *buffer) Release() {
	b.released = true
	b.prim.Points = nil
}

// Upload implements the [voronoi.Backend] interface.
func (c *Canvas) Upload(p voronoi.Primitive) (voronoi.Buffer, error) {
	if p.Kind != voronoi.TriangleFan && p.Kind != voronoi.LineList {
		return nil, fmt.Errorf("unsupported primitive %s", p.Kind)
	}
	p.Points = slices.Clone(p.Points)
	return &buffer{owner: c, prim: p}, nil
}

// Draw implements the [voronoi.Surface] interface.
func (c *Canvas) Draw(l voronoi.Layer, bufs []voronoi.Buffer, view region.View) error {
	style := c.Styles[l]
	bounds := c.Image.Bounds()

	r := c.r
	r.Reset(clipRect(bounds))
	r.CTM = viewToDevice(view, bounds)
	r.LineWidth = style.LineWidth
	r.Cap = c.Cap

	emit := func(y, xMin int, coverage []float32) {
		c.blend(y, xMin, coverage, style.Color)
	}
	for _, b := range bufs {
		buf, ok := b.(*buffer)
		if !ok || buf.owner != c {
			return ErrForeignBuffer
		}
		if buf.released {
			return ErrReleased
		}
		pts := buf.prim.Points
		switch buf.prim.Kind {
		case voronoi.TriangleFan:
			if c.SmoothDiscs && len(pts) > 1 {
				r.Flatness = discFlatness
				r.FillNonZero(Circle(pts[0], pts[1].Sub(pts[0]).Length()), emit)
			} else {
				r.FillFan(pts, emit)
			}
		case voronoi.LineList:
			r.StrokeLines(pts, emit)
		}
	}
	return nil
}

// blend paints col onto one row of the image, using the coverage values
// as opacity.
func (c *Canvas) blend(y, xMin int, coverage []float32, col color.RGBA) {
	img := c.Image
	i := img.PixOffset(xMin, y)
	src := [4]float32{float32(col.R), float32(col.G), float32(col.B), float32(col.A)}
	for _, cov := range coverage {
		a := cov * src[3] / 255
		for k := range 4 {
			d := float32(img.Pix[i+k])
			img.Pix[i+k] = uint8(d + (src[k]-d)*a + 0.5)
		}
		i += 4
	}
}

// viewToDevice returns the matrix which maps shifted diagram coordinates to
// pixel coordinates: the view maps onto [-1,1]×[-1,1], which is then
// scaled to the largest square centred in the image, with the y axis
// pointing down.
func viewToDevice(view region.View, bounds image.Rectangle) matrix.Matrix {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	side := min(w, h)
	toDevice := matrix.Matrix{
		side / 2, 0,
		0, -side / 2,
		float64(bounds.Min.X) + w/2, float64(bounds.Min.Y) + h/2,
	}
	return compose(view.Affine(), toDevice)
}

// compose returns the matrix which first applies a and then b.
func compose(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

func clipRect(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

var (
	_ voronoi.Backend = (*Canvas)(nil)
	_ voronoi.Surface = (*Canvas)(nil)
)
