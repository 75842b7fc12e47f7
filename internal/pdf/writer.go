// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf assembles multi-page PDF documents with one full-page image
// per page, using github.com/go-pdf/fpdf for serialization.
//
// Each page is sized to its image at a fixed 100 DPI, so a 1000x1500 pixel
// image produces a 720x1080 point page. Output is deterministic: the same
// pages always produce the same bytes.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// DPI is the resolution recorded for every page.
const DPI = 100

// Producer is written to the document information dictionary.
const Producer = "img2pdf"

// ErrNoPages is returned when writing a document that has no pages.
var ErrNoPages = errors.New("document has no pages")

// stamp is recorded as both creation and modification date.
var stamp = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Document accumulates pages in order. Page images are PNG-encoded when
// added, so the caller can drop its raster straight away.
type Document struct {
	pdf   *fpdf.Fpdf
	pages int
}

// NewDocument returns an empty document measured in points.
func NewDocument() *Document {
	f := fpdf.New("P", "pt", "A4", "")
	f.SetProducer(Producer, false)
	f.SetCreationDate(stamp)
	f.SetModificationDate(stamp)
	f.SetCatalogSort(true)
	f.SetCompression(true)
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)
	return &Document{pdf: f}
}

// PageCount returns the number of pages added so far.
func (d *Document) PageCount() int {
	return d.pages
}

// AddImage appends a page showing img at 100 DPI. img should be opaque;
// transparency is not flattened here.
func (d *Document) AddImage(img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("image bounds invalid (%d x %d)", b.Dx(), b.Dy())
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding page image: %w", err)
	}

	name := fmt.Sprintf("page%d", d.pages+1)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, &buf)
	if err := d.pdf.Error(); err != nil {
		// The page was never started, so the document stays usable.
		d.pdf.ClearError()
		return fmt.Errorf("embedding page image: %w", err)
	}

	w, h := toPoints(b.Dx()), toPoints(b.Dy())
	d.pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
	d.pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("placing page image: %w", err)
	}
	d.pages++
	return nil
}

// toPoints converts a pixel length to points at DPI.
func toPoints(px int) float64 {
	return float64(px) * 72 / DPI
}

// Output serializes the document to w. The document is closed afterwards
// and cannot be written again.
func (d *Document) Output(w io.Writer) error {
	if d.pages == 0 {
		return ErrNoPages
	}
	return d.pdf.Output(w)
}
