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

package snapshot

import (
	"errors"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/voronoi"
	"seehuhn.de/go/voronoi/raster"
	"seehuhn.de/go/voronoi/region"
)

// ErrClosed is returned when drawing to a closed PDF target.
var ErrClosed = errors.New("snapshot already written")

// PDFTarget draws the diagram as vector graphics onto a single PDF page.
type PDFTarget struct {
	page   *document.Page
	opt    Options
	width  float64
	height float64
}

// CreatePDF starts a one-page PDF file. The page is written when the
// target is closed.
func CreatePDF(name string, opt *Options) (*PDFTarget, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	w, h := float64(opt.Width), float64(opt.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return &PDFTarget{page: page, opt: *opt, width: w, height: h}, nil
}

type pdfBuffer struct {
	owner    *PDFTarget
	prim     voronoi.Primitive
	released bool
}

func (b *pdfBuffer) Release() {
	b.released = true
	b.prim.Points = nil
}

// Upload implements the [voronoi.Backend] interface.
func (t *PDFTarget) Upload(p voronoi.Primitive) (voronoi.Buffer, error) {
	p.Points = slices.Clone(p.Points)
	return &pdfBuffer{owner: t, prim: p}, nil
}

// Draw implements the [voronoi.Surface] interface. All buffers of one
// layer are painted with a single fill or stroke operation, so layers must
// not mix triangle fans and line lists.
func (t *PDFTarget) Draw(l voronoi.Layer, bufs []voronoi.Buffer, view region.View) error {
	if t.page == nil {
		return ErrClosed
	}
	style := t.opt.Styles[l]
	col := color.DeviceRGB{
		float64(style.Color.R) / 255,
		float64(style.Color.G) / 255,
		float64(style.Color.B) / 255}

	page := t.page
	var fill, stroke bool
	for _, b := range bufs {
		buf, ok := b.(*pdfBuffer)
		if !ok || buf.owner != t {
			return raster.ErrForeignBuffer
		}
		if buf.released {
			return raster.ErrReleased
		}
		pts := buf.prim.Points
		switch buf.prim.Kind {
		case voronoi.TriangleFan:
			if !fill {
				page.SetFillColor(col)
				fill = true
			}
			if t.opt.SmoothDiscs && len(pts) > 1 {
				t.circle(view, pts[0], pts[1].Sub(pts[0]).Length())
				continue
			}
			for i := 2; i < len(pts); i++ {
				p0 := t.toPage(view, pts[0])
				p1 := t.toPage(view, pts[i-1])
				p2 := t.toPage(view, pts[i])
				u, v := p1.Sub(p0), p2.Sub(p0)
				if u.X*v.Y-u.Y*v.X < 0 {
					p1, p2 = p2, p1
				}
				page.MoveTo(p0.X, p0.Y)
				page.LineTo(p1.X, p1.Y)
				page.LineTo(p2.X, p2.Y)
				page.ClosePath()
			}
		case voronoi.LineList:
			if !stroke {
				page.SetStrokeColor(col)
				page.SetLineWidth(style.LineWidth)
				page.SetLineCap(t.opt.Cap)
				stroke = true
			}
			for i := 1; i < len(pts); i += 2 {
				p0 := t.toPage(view, pts[i-1])
				p1 := t.toPage(view, pts[i])
				page.MoveTo(p0.X, p0.Y)
				page.LineTo(p1.X, p1.Y)
			}
		}
	}
	switch {
	case fill:
		page.Fill()
	case stroke:
		page.Stroke()
	}
	return nil
}

// circle appends a circle around the shifted diagram point c to the
// current path.
func (t *PDFTarget) circle(view region.View, c vec.Vec2, rad float64) {
	page := t.page
	for cmd, pts := range raster.Circle(c, rad) {
		switch cmd {
		case path.CmdMoveTo:
			p := t.toPage(view, pts[0])
			page.MoveTo(p.X, p.Y)
		case path.CmdCubeTo:
			p1 := t.toPage(view, pts[0])
			p2 := t.toPage(view, pts[1])
			p3 := t.toPage(view, pts[2])
			page.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// toPage maps shifted diagram coordinates to PDF page coordinates. The
// normalised square is scaled to the largest square centred on the page;
// both have the y axis pointing up.
func (t *PDFTarget) toPage(view region.View, p vec.Vec2) vec.Vec2 {
	q := view.Apply(p)
	side := min(t.width, t.height)
	return vec.Vec2{
		X: t.width/2 + q.X*side/2,
		Y: t.height/2 + q.Y*side/2,
	}
}

// Close writes the PDF file.
func (t *PDFTarget) Close() error {
	if t.page == nil {
		return ErrClosed
	}
	err := t.page.Close()
	t.page = nil
	return err
}
