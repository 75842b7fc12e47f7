//go:build mage

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

// sampleImages describes the demo folder written by Sample.
var sampleImages = []struct {
	name  string
	color color.NRGBA
}{
	{"scan1.png", color.NRGBA{R: 220, G: 60, B: 60, A: 255}},
	{"scan2.jpg", color.NRGBA{R: 60, G: 160, B: 60, A: 255}},
	{"scan10.png", color.NRGBA{R: 60, G: 60, B: 220, A: 128}},
}

func writeSampleImages(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	for _, s := range sampleImages {
		img := image.NewNRGBA(image.Rect(0, 0, 400, 300))
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = s.color.R, s.color.G, s.color.B, s.color.A
		}

		path := filepath.Join(dir, s.name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if filepath.Ext(s.name) == ".jpg" {
			err = jpeg.Encode(f, img, nil)
		} else {
			err = png.Encode(f, img)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}

	corrupt := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(corrupt, []byte("not an image"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", corrupt, err)
	}
	fmt.Println("  ", corrupt)
	return nil
}
