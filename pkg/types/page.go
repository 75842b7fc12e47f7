// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageStatus indicates what happened to one source image during a bind run.
type PageStatus string

const (
	PageAdded   PageStatus = "added"
	PageSkipped PageStatus = "skipped"
)

// Outcome records the result of processing one source image.
type Outcome struct {
	// Name is the file name relative to the input directory.
	Name string `json:"name" yaml:"name"`

	// Status reports whether the image became a page.
	Status PageStatus `json:"status" yaml:"status"`

	// Mode is the source colour mode (e.g. "RGBA", "Gray"); empty when
	// the file could not be decoded.
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Flattened is set when translucent pixels were composited over white.
	Flattened bool `json:"flattened,omitempty" yaml:"flattened,omitempty"`

	// Err holds the decode failure for skipped images.
	Err error `json:"-" yaml:"-"`
}
