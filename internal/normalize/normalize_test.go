// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func solid(r image.Rectangle, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeImage(t *testing.T, fsys afero.Fs, path string, data []byte) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, data, 0o644))
}

// blend is alpha compositing of one straight-alpha channel over white.
func blend(c, a uint8) uint8 {
	v := float64(c)*float64(a)/255 + 255*(1-float64(a)/255)
	return uint8(v + 0.5)
}

func assertNear(t *testing.T, want, got uint8, tolerance int, msgAndArgs ...interface{}) {
	t.Helper()
	d := int(want) - int(got)
	if d < 0 {
		d = -d
	}
	assert.LessOrEqual(t, d, tolerance, msgAndArgs...)
}

func rgbAt(p *RGB, x, y int) (uint8, uint8, uint8) {
	i := p.PixOffset(x, y)
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

func TestDecode_Modes(t *testing.T) {
	rect := image.Rect(0, 0, 4, 3)

	gray := image.NewGray(rect)
	for i := range gray.Pix {
		gray.Pix[i] = 90
	}

	palOpaque := image.NewPaletted(rect, color.Palette{color.RGBA{10, 20, 30, 255}, color.RGBA{200, 100, 50, 255}})
	palAlpha := image.NewPaletted(rect, color.Palette{color.NRGBA{10, 20, 30, 0}, color.NRGBA{200, 100, 50, 255}})

	tests := []struct {
		name            string
		data            func(t *testing.T) []byte
		wantMode        Mode
		wantTranslucent bool
	}{
		{
			name:     "opaque png",
			data:     func(t *testing.T) []byte { return encodePNG(t, solid(rect, color.NRGBA{1, 2, 3, 255})) },
			wantMode: ModeRGB,
		},
		{
			name:     "translucent png",
			data:     func(t *testing.T) []byte { return encodePNG(t, solid(rect, color.NRGBA{1, 2, 3, 128})) },
			wantMode: ModeRGBA,

			wantTranslucent: true,
		},
		{
			name:     "grayscale png",
			data:     func(t *testing.T) []byte { return encodePNG(t, gray) },
			wantMode: ModeGray,
		},
		{
			name:     "opaque paletted png",
			data:     func(t *testing.T) []byte { return encodePNG(t, palOpaque) },
			wantMode: ModePaletted,
		},
		{
			name:     "paletted png with transparent entry",
			data:     func(t *testing.T) []byte { return encodePNG(t, palAlpha) },
			wantMode: ModePaletted,

			wantTranslucent: true,
		},
		{
			name: "colour jpeg",
			data: func(t *testing.T) []byte {
				var buf bytes.Buffer
				require.NoError(t, jpeg.Encode(&buf, solid(rect, color.NRGBA{200, 30, 30, 255}), nil))
				return buf.Bytes()
			},
			wantMode: ModeYCbCr,
		},
		{
			name: "grayscale jpeg",
			data: func(t *testing.T) []byte {
				var buf bytes.Buffer
				require.NoError(t, jpeg.Encode(&buf, gray, nil))
				return buf.Bytes()
			},
			wantMode: ModeGray,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeImage(t, fsys, "img", tt.data(t))

			img, err := Decode(fsys, "img")
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, img.Mode, "mode %s", img.Mode)
			assert.Equal(t, tt.wantTranslucent, img.Translucent)
			assert.Equal(t, rect.Dx(), img.Src.Bounds().Dx())
			assert.Equal(t, rect.Dy(), img.Src.Bounds().Dy())
		})
	}
}

func TestDecode_BMPAndTIFF(t *testing.T) {
	src := solid(image.Rect(0, 0, 5, 2), color.NRGBA{12, 34, 56, 255})

	var bmpBuf, tiffBuf bytes.Buffer
	require.NoError(t, bmp.Encode(&bmpBuf, src))
	require.NoError(t, tiff.Encode(&tiffBuf, src, nil))

	for name, data := range map[string][]byte{"page.bmp": bmpBuf.Bytes(), "page.tiff": tiffBuf.Bytes()} {
		t.Run(name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeImage(t, fsys, name, data)

			img, err := Decode(fsys, name)
			require.NoError(t, err)
			assert.False(t, img.Translucent)

			out := img.RGB()
			require.Equal(t, 5, out.Width())
			require.Equal(t, 2, out.Height())
			for y := 0; y < 2; y++ {
				for x := 0; x < 5; x++ {
					r, g, b := rgbAt(out, x, y)
					assert.Equal(t, [3]uint8{12, 34, 56}, [3]uint8{r, g, b})
				}
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeImage(t, fsys, "bad.png", []byte("this is not an image"))
	writeImage(t, fsys, "truncated.png", encodePNG(t, solid(image.Rect(0, 0, 8, 8), color.White))[:40])

	tests := []struct {
		name    string
		path    string
		errText string
	}{
		{name: "corrupt bytes", path: "bad.png", errText: "bad.png"},
		{name: "truncated file", path: "truncated.png", errText: "truncated.png"},
		{name: "missing file", path: "nope.png", errText: "nope.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(fsys, tt.path)
			require.Error(t, err)
			assert.Nil(t, img)
			assert.ErrorIs(t, err, ErrDecode)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.path, de.Path)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestDecode_TallStrip(t *testing.T) {
	strip := image.NewGray(image.Rect(0, 0, 2, 40000))
	for i := range strip.Pix {
		strip.Pix[i] = uint8(i)
	}
	fsys := afero.NewMemMapFs()
	writeImage(t, fsys, "strip.png", encodePNG(t, strip))

	img, err := Decode(fsys, "strip.png")
	require.NoError(t, err)
	assert.Equal(t, ModeGray, img.Mode)

	out := img.RGB()
	assert.Equal(t, 2, out.Width())
	assert.Equal(t, 40000, out.Height())
	r, g, b := rgbAt(out, 1, 39999)
	v := strip.GrayAt(1, 39999).Y
	assert.Equal(t, [3]uint8{v, v, v}, [3]uint8{r, g, b})
}

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{name: "single pixel", width: 1, height: 1},
		{name: "long side beyond 32768", width: 2, height: 40000},
		{name: "100 MP photo", width: 12240, height: 8160},
		{name: "at the pixel limit", width: int(maxPixels), height: 1},
		{name: "over the pixel limit", width: 20000, height: 10000, wantErr: true},
		{name: "zero width", width: 0, height: 10, wantErr: true},
		{name: "negative height", width: 10, height: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkBounds(tt.width, tt.height)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToRGB_AlphaOverWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	pixels := []color.NRGBA{
		{255, 0, 0, 255},
		{255, 0, 0, 128},
		{0, 0, 255, 0},
		{40, 160, 220, 64},
	}
	for x, c := range pixels {
		src.SetNRGBA(x, 0, c)
	}

	require.True(t, Translucent(src))
	out := ToRGB(src, true)
	assert.True(t, out.Opaque())
	for x, c := range pixels {
		r, g, b := rgbAt(out, x, 0)
		assertNear(t, blend(c.R, c.A), r, 1, "pixel %d red", x)
		assertNear(t, blend(c.G, c.A), g, 1, "pixel %d green", x)
		assertNear(t, blend(c.B, c.A), b, 1, "pixel %d blue", x)
	}
}

func TestToRGB_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 12, 21))
	src.SetRGBA(10, 20, color.RGBA{1, 2, 3, 255})
	src.SetRGBA(11, 20, color.RGBA{4, 5, 6, 255})

	out := ToRGB(src, Translucent(src))
	assert.Equal(t, image.Rect(0, 0, 2, 1), out.Bounds())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, out.Pix)
}

func TestToRGB_Conversions(t *testing.T) {
	rect := image.Rect(0, 0, 2, 2)

	gray := image.NewGray(rect)
	gray.SetGray(0, 0, color.Gray{Y: 7})
	gray.SetGray(1, 1, color.Gray{Y: 250})

	cmyk := image.NewCMYK(rect)
	for i := 0; i < len(cmyk.Pix); i += 4 {
		copy(cmyk.Pix[i:i+4], []uint8{0, 255, 255, 0}) // pure red
	}

	opaque := solid(rect, color.NRGBA{9, 8, 7, 255})

	tests := []struct {
		name     string
		src      image.Image
		wantMode Mode
		want     func(x, y int) [3]uint8
	}{
		{
			name:     "gray replicated across channels",
			src:      gray,
			wantMode: ModeGray,
			want: func(x, y int) [3]uint8 {
				v := gray.GrayAt(x, y).Y
				return [3]uint8{v, v, v}
			},
		},
		{
			name:     "cmyk converted",
			src:      cmyk,
			wantMode: ModeCMYK,
			want:     func(x, y int) [3]uint8 { return [3]uint8{255, 0, 0} },
		},
		{
			name:     "opaque rgba unchanged",
			src:      opaque,
			wantMode: ModeRGBA,
			want:     func(x, y int) [3]uint8 { return [3]uint8{9, 8, 7} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantMode, ModeOf(tt.src))
			require.False(t, Translucent(tt.src))

			out := ToRGB(tt.src, false)
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					r, g, b := rgbAt(out, x, y)
					assert.Equal(t, tt.want(x, y), [3]uint8{r, g, b}, "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestRGB_Image(t *testing.T) {
	p := NewRGB(image.Rect(0, 0, 2, 1))
	copy(p.Pix, []byte{10, 20, 30, 40, 50, 60})

	assert.Equal(t, color.RGBA{10, 20, 30, 255}, p.At(0, 0))
	assert.Equal(t, color.RGBA{40, 50, 60, 255}, p.At(1, 0))
	assert.Equal(t, color.RGBA{}, p.At(2, 0))
	assert.Equal(t, 3, p.PixOffset(1, 0))
}

func TestModeOf_IndependentOfAlpha(t *testing.T) {
	rect := image.Rect(0, 0, 1, 1)
	pal := image.NewPaletted(rect, color.Palette{color.NRGBA{1, 2, 3, 0}})
	nycc := image.NewNYCbCrA(rect, image.YCbCrSubsampleRatio444)

	assert.Equal(t, ModePaletted, ModeOf(pal))
	assert.True(t, Translucent(pal))
	assert.Equal(t, ModeYCbCr, ModeOf(nycc))
	assert.True(t, Translucent(nycc), "zero alpha plane")
	assert.Equal(t, ModeRGB, ModeOf(image.NewRGBA(rect)))
	assert.Equal(t, ModeOther, ModeOf(image.NewAlpha(rect)))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "RGBA", ModeRGBA.String())
	assert.Equal(t, "Gray", ModeGray.String())
	assert.Equal(t, "Other", Mode(99).String())
}
