// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest reads back documents written by package pdf so tests can
// check page count, page order, page size and pixels. Parsing is done by
// github.com/pdfcpu/pdfcpu.
package pdftest

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	api.DisableConfigDir()
}

// Page describes one page and the image drawn on it.
type Page struct {
	// MediaWidth and MediaHeight are the page size in points.
	MediaWidth, MediaHeight float64
	// Width and Height are the image size in pixels.
	Width, Height int
	// Pixels is the image as packed 8-bit RGB, row by row.
	Pixels []byte
}

// Document is the inspected content of a PDF.
type Document struct {
	Pages []Page
}

// Inspect validates data and returns its pages in order. Every page must
// carry exactly one image.
func Inspect(data []byte) (*Document, error) {
	conf := model.NewDefaultConfiguration()

	dims, err := api.PageDims(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("reading page sizes: %w", err)
	}
	images, err := api.ExtractImagesRaw(bytes.NewReader(data), nil, conf)
	if err != nil {
		return nil, fmt.Errorf("extracting images: %w", err)
	}
	if len(images) != len(dims) {
		return nil, fmt.Errorf("%d pages but images for %d", len(dims), len(images))
	}

	doc := &Document{Pages: make([]Page, len(dims))}
	for i, dim := range dims {
		if len(images[i]) != 1 {
			return nil, fmt.Errorf("page %d: %d images, want 1", i+1, len(images[i]))
		}
		page := Page{MediaWidth: dim.Width, MediaHeight: dim.Height}
		for _, img := range images[i] {
			decoded, _, err := image.Decode(img)
			if err != nil {
				return nil, fmt.Errorf("page %d: decoding image: %w", i+1, err)
			}
			page.Width, page.Height = decoded.Bounds().Dx(), decoded.Bounds().Dy()
			page.Pixels = packRGB(decoded)
		}
		doc.Pages[i] = page
	}
	return doc, nil
}

func packRGB(img image.Image) []byte {
	b := img.Bounds()
	pix := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pix = append(pix, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}
	return pix
}
