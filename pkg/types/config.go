// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the img2pdf pipeline.
package types

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultOutput is the output file name used when none is given.
const DefaultOutput = "output.pdf"

// ColorMode controls ANSI colouring of status lines.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// BindConfig holds the settings for one bind run. It is built once from the
// command line and passed by value into the pipeline.
type BindConfig struct {
	// InputDir is the folder scanned for images (non-recursive).
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// Output is the destination PDF path (default "output.pdf").
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Verbose enables debug diagnostics on stderr.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`

	// Color selects status-line colouring: auto, always, or never.
	Color ColorMode `json:"color" yaml:"color" mapstructure:"color"`
}

// Validate reports whether the configuration can be run.
func (c BindConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.InputDir, validation.Required),
		validation.Field(&c.Output, validation.Required, validation.By(notDirPath)),
		validation.Field(&c.Color, validation.In(ColorAuto, ColorAlways, ColorNever)),
	)
}

// notDirPath rejects output paths that name a directory rather than a file.
func notDirPath(value interface{}) error {
	s, _ := value.(string)
	if strings.HasSuffix(s, "/") || strings.HasSuffix(s, `\`) {
		return errors.New("must name a file, not a directory")
	}
	return nil
}
