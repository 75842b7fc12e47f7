// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prints human-readable status lines for a bind run.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// Reporter writes one status line per event to an io.Writer. The leading
// verb of skip, failure and success lines is coloured when enabled.
type Reporter struct {
	w       io.Writer
	skip    *color.Color
	fail    *color.Color
	success *color.Color
}

// New returns a Reporter writing to w. With types.ColorAuto, colour is
// enabled only when w is a terminal and NO_COLOR is unset.
func New(w io.Writer, mode types.ColorMode) *Reporter {
	r := &Reporter{
		w:       w,
		skip:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		success: color.New(color.FgGreen),
	}

	enable := false
	switch mode {
	case types.ColorAlways:
		enable = true
	case types.ColorNever:
		enable = false
	default:
		enable = isTerminal(w) && os.Getenv("NO_COLOR") == ""
	}
	for _, c := range []*color.Color{r.skip, r.fail, r.success} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Infof prints an uncoloured progress line.
func (r *Reporter) Infof(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Skipped reports a source file left out of the document.
func (r *Reporter) Skipped(name string, err error) {
	fmt.Fprintf(r.w, "%s %s: %v\n", r.skip.Sprint("skipped"), name, err)
}

// Failed reports an error that ends the run.
func (r *Reporter) Failed(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "%s %s\n", r.fail.Sprint("error:"), fmt.Sprintf(format, args...))
}

// Saved reports the written document.
func (r *Reporter) Saved(path string, pages int) {
	fmt.Fprintf(r.w, "%s %s (%d %s)\n", r.success.Sprint("saved PDF to"), path, pages, plural(pages, "page", "pages"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
