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

// Package snapshot writes pictures of Voronoi diagrams to files.
//
// Raster formats are drawn with a [raster.Canvas] and then encoded; PDF
// output is written as vector graphics.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/voronoi"
	"seehuhn.de/go/voronoi/raster"
)

// Format is an output file format.
type Format int

// These are the supported output formats.
const (
	PNG Format = iota
	BMP
	TIFF
	PDF
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown format")

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file name extension for f, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat converts a format name like "png" to a Format.
// Case is ignored, and "tif" is accepted for TIFF.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// FormatFromName guesses the format from a file name extension.
func FormatFromName(name string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return 0, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
	return ParseFormat(ext)
}

// Options controls the appearance of a snapshot.
type Options struct {
	// Width and Height give the size of the picture, in pixels for raster
	// formats and in PDF points otherwise.
	Width, Height int

	Styles voronoi.Styles
	Cap    graphics.LineCapStyle

	// SmoothDiscs draws points and vertices as true circles instead of
	// the polygons uploaded by the visualizer.
	SmoothDiscs bool
}

// DefaultOptions returns the options used by the interactive viewer.
func DefaultOptions() *Options {
	return &Options{
		Width:  voronoi.DefaultViewport,
		Height: voronoi.DefaultViewport,
		Styles: voronoi.DefaultStyles(),
		Cap:    graphics.LineCapRound,

		SmoothDiscs: true,
	}
}

// Target is a drawing target which writes a file when it is closed.
type Target interface {
	voronoi.Backend
	voronoi.Surface
	io.Closer
}

// Create returns a target which writes a snapshot of format f to the
// named file.
func Create(name string, f Format, opt *Options) (Target, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", opt.Width, opt.Height)
	}

	switch f {
	case PNG, BMP, TIFF:
		c := raster.NewCanvas(opt.Width, opt.Height)
		c.Styles = opt.Styles
		c.Cap = opt.Cap
		c.SmoothDiscs = opt.SmoothDiscs
		return &imageTarget{Canvas: c, name: name, format: f}, nil
	case PDF:
		return CreatePDF(name, opt)
	default:
		return nil, fmt.Errorf("%w %s", ErrUnknownFormat, f)
	}
}

// imageTarget draws onto a canvas and encodes the result on Close.
type imageTarget struct {
	*raster.Canvas
	name   string
	format Format
}

func (t *imageTarget) Close() (err error) {
	fd, err := os.Create(t.name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(fd, t.Image, t.format)
}

// Encode writes img in one of the raster formats.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return WritePNG(w, img)
	case BMP:
		return WriteBMP(w, img)
	case TIFF:
		return WriteTIFF(w, img)
	default:
		return fmt.Errorf("%s is not a raster format", f)
	}
}

// WritePNG writes img as a PNG image.
func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// WriteBMP writes img as an uncompressed BMP image.
func WriteBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// WriteTIFF writes img as a deflate-compressed TIFF image.
func WriteTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{
		Compression: tiff.Deflate,
		Predictor:   true,
	})
}
