// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "image"

// Mode is the colour mode of a decoded source image.
type Mode int

const (
	ModeOther Mode = iota
	ModeRGB
	ModeRGBA
	ModeGray
	ModeCMYK
	ModeYCbCr
	ModePaletted
)

// String returns the conventional name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	case ModeGray:
		return "Gray"
	case ModeCMYK:
		return "CMYK"
	case ModeYCbCr:
		return "YCbCr"
	case ModePaletted:
		return "Paletted"
	default:
		return "Other"
	}
}

// ModeOf classifies the colour mode of img by its pixel layout. Whether the
// image actually carries translucent pixels is reported by Translucent.
func ModeOf(img image.Image) Mode {
	switch img.(type) {
	case *image.RGBA, *image.RGBA64:
		return ModeRGB
	case *image.NRGBA, *image.NRGBA64:
		return ModeRGBA
	case *image.Gray, *image.Gray16:
		return ModeGray
	case *image.CMYK:
		return ModeCMYK
	case *image.YCbCr, *image.NYCbCrA:
		return ModeYCbCr
	case *image.Paletted:
		return ModePaletted
	}
	return ModeOther
}

// Translucent reports whether img has any pixel that is not fully opaque.
// Image types without an Opaque method are assumed translucent;
// compositing an opaque source over white leaves it unchanged.
func Translucent(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}
