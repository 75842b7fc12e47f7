// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bind runs the image-to-PDF pipeline: scan a folder, sort the
// images in natural order, normalize each to RGB, and write them as one
// multi-page PDF.
//
// A file that fails to decode is reported and skipped; the run continues.
// A missing folder, a folder without images, a run where nothing decoded,
// and a failed write end the run without producing output.
package bind

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/pdiddy/img2pdf/internal/natsort"
	"github.com/pdiddy/img2pdf/internal/normalize"
	"github.com/pdiddy/img2pdf/internal/pdf"
	"github.com/pdiddy/img2pdf/internal/report"
	"github.com/pdiddy/img2pdf/internal/scan"
	"github.com/pdiddy/img2pdf/pkg/types"
)

// ErrNothingDecoded is returned when every source image failed to decode.
var ErrNothingDecoded = errors.New("nothing to process")

// Result holds the outcome of a bind run.
type Result struct {
	// Scanned is the number of supported image files found.
	Scanned int
	// Added is the number of pages written.
	Added int
	// Skipped is the number of files that failed to decode.
	Skipped int
	// Output is the absolute path of the written document, empty if none.
	Output string
	// Outcomes lists every scanned file in page order.
	Outcomes []types.Outcome
	// DecodeErrors combines the errors of the skipped files.
	DecodeErrors *multierror.Error
}

// HasSkips reports whether any file was left out of the document.
func (r Result) HasSkips() bool {
	return r.Skipped > 0
}

// Run binds the images of cfg.InputDir into cfg.Output. Status lines go to
// w; debug diagnostics go to log.
func Run(cfg types.BindConfig, fsys afero.Fs, w io.Writer, log hclog.Logger) (Result, error) {
	var result Result
	rep := report.New(w, cfg.Color)

	if err := cfg.Validate(); err != nil {
		rep.Failed("invalid configuration: %v", err)
		return result, fmt.Errorf("invalid configuration: %w", err)
	}

	names, err := scan.Images(fsys, cfg.InputDir)
	switch {
	case errors.Is(err, scan.ErrNotFound):
		rep.Failed("folder %q does not exist", cfg.InputDir)
		return result, err
	case errors.Is(err, scan.ErrNoImages):
		rep.Failed("no images found in %q", cfg.InputDir)
		return result, err
	case err != nil:
		rep.Failed("%v", err)
		return result, err
	}

	natsort.Strings(names)
	result.Scanned = len(names)
	rep.Infof("found %d images, processing...", len(names))
	rep.Infof("first image after sorting: %s", names[0])

	doc := pdf.NewDocument()
	for _, name := range names {
		outcome := addPage(doc, fsys, filepath.Join(cfg.InputDir, name), log)
		outcome.Name = name
		if outcome.Status == types.PageSkipped {
			result.Skipped++
			result.DecodeErrors = multierror.Append(result.DecodeErrors, outcome.Err)
			rep.Skipped(name, outcome.Err)
		} else {
			result.Added++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if doc.PageCount() == 0 {
		rep.Failed("%v: none of the %d images could be decoded", ErrNothingDecoded, len(names))
		return result, ErrNothingDecoded
	}

	if err := pdf.WriteFile(fsys, cfg.Output, doc); err != nil {
		rep.Failed("saving PDF: %v", err)
		return result, err
	}

	abs, err := filepath.Abs(cfg.Output)
	if err != nil {
		abs = cfg.Output
	}
	result.Output = abs
	rep.Saved(abs, result.Added)
	log.Debug("bind complete", "scanned", result.Scanned, "added", result.Added, "skipped", result.Skipped)
	return result, nil
}

// addPage decodes one file, normalizes it and appends it to doc. Only the
// compressed page stays in memory once it returns.
func addPage(doc *pdf.Document, fsys afero.Fs, path string, log hclog.Logger) types.Outcome {
	img, err := normalize.Decode(fsys, path)
	if err != nil {
		log.Debug("decode failed", "path", path, "error", err)
		return types.Outcome{Status: types.PageSkipped, Err: err}
	}

	rgb := img.RGB()
	log.Debug("normalized image",
		"path", path,
		"format", img.Format,
		"mode", img.Mode.String(),
		"composited", img.Translucent,
		"width", rgb.Width(),
		"height", rgb.Height())

	outcome := types.Outcome{Mode: img.Mode.String(), Flattened: img.Translucent}
	if err := doc.AddImage(rgb); err != nil {
		outcome.Status = types.PageSkipped
		outcome.Err = &normalize.DecodeError{Path: path, Err: err}
		return outcome
	}
	outcome.Status = types.PageAdded
	return outcome
}
