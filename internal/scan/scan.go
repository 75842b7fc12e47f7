// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan lists the image files directly inside a folder.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrNotFound is returned when the input folder does not exist or is
	// not a directory.
	ErrNotFound = errors.New("folder does not exist")

	// ErrNoImages is returned when the folder holds no supported images.
	ErrNoImages = errors.New("no images found")
)

// Supported image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
}

// Supported reports whether name has a supported image extension,
// ignoring case.
func Supported(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// Images returns the names of the supported image files directly inside
// dir. Subdirectories are not descended into. The names are returned in
// directory order; callers sort them.
func Images(fsys afero.Fs, dir string) ([]string, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("reading folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, dir)
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if Supported(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	return names, nil
}
