// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize decodes source images and converts them to opaque RGB.
//
// Images with an alpha channel are composited over a white canvas of the
// same size, since the target document has no transparency. Other non-RGB
// modes (grey, CMYK, YCbCr, paletted) are converted channel by channel.
// Opaque RGB images pass through unchanged.
package normalize

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// maxPixels bounds the total pixel count (about 179 MP) so a corrupt header
// cannot force a huge allocation. Width and height are not limited on their
// own.
const maxPixels int64 = 2 * (1 << 30 / 4 / 3)

// ErrDecode is matched by every DecodeError.
var ErrDecode = errors.New("cannot decode image")

// DecodeError reports a source file that could not be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) true for any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Image is a decoded source image.
type Image struct {
	// Path is the file the image was read from.
	Path string
	// Format is the registered decoder name ("png", "jpeg", "bmp", "tiff").
	Format string
	// Mode is the colour mode of Src.
	Mode Mode
	// Translucent is set when Src has pixels that are not fully opaque.
	// Such images are composited over white.
	Translucent bool
	// Src holds the decoded pixels.
	Src image.Image
}

// Decode reads and decodes the image at path. The header is checked
// against the pixel limit before the pixels are decoded.
func Decode(fsys afero.Fs, path string) (*Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if err := checkBounds(cfg.Width, cfg.Height); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &Image{
		Path:        path,
		Format:      format,
		Mode:        ModeOf(src),
		Translucent: Translucent(src),
		Src:         src,
	}, nil
}

func checkBounds(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image bounds invalid (%d x %d)", width, height)
	}
	if pixels := int64(width) * int64(height); pixels > maxPixels {
		return fmt.Errorf("image pixel count %d exceeds limit %d", pixels, maxPixels)
	}
	return nil
}

// RGB converts the image to an opaque RGB raster anchored at the origin.
func (img *Image) RGB() *RGB {
	return ToRGB(img.Src, img.Translucent)
}

// ToRGB converts src to an opaque RGB raster. A translucent src is
// composited over white first.
func ToRGB(src image.Image, translucent bool) *RGB {
	b := src.Bounds()
	dst := NewRGB(image.Rect(0, 0, b.Dx(), b.Dy()))

	if translucent {
		canvas := image.NewRGBA(dst.Rect)
		draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
		draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Over)
		copyRGBA(dst, canvas)
		return dst
	}

	if m, ok := src.(*image.RGBA); ok {
		copyRGBA(dst, m)
		return dst
	}

	for y := 0; y < b.Dy(); y++ {
		i := y * dst.Stride
		for x := 0; x < b.Dx(); x++ {
			c := color.RGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = c.R, c.G, c.B
			i += 3
		}
	}
	return dst
}

// copyRGBA drops the alpha byte of every pixel of an opaque src.
func copyRGBA(dst *RGB, src *image.RGBA) {
	b := src.Bounds()
	for y := 0; y < b.Dy(); y++ {
		s := src.PixOffset(b.Min.X, b.Min.Y+y)
		d := y * dst.Stride
		for x := 0; x < b.Dx(); x++ {
			dst.Pix[d], dst.Pix[d+1], dst.Pix[d+2] = src.Pix[s], src.Pix[s+1], src.Pix[s+2]
			s += 4
			d += 3
		}
	}
}
