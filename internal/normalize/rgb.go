// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"image"
	"image/color"
)

// RGB is an opaque raster with 8 bits per channel and three bytes per
// pixel, laid out row by row.
type RGB struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewRGB allocates an RGB raster covering r.
func NewRGB(r image.Rectangle) *RGB {
	return &RGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

func (p *RGB) ColorModel() color.Model { return color.RGBAModel }

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

func (p *RGB) Opaque() bool { return true }

func (p *RGB) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Rect) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 0xff}
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Width and Height report the raster size in pixels.
func (p *RGB) Width() int  { return p.Rect.Dx() }
func (p *RGB) Height() int { return p.Rect.Dy() }
