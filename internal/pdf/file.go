// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrWrite is matched by every WriteError.
var ErrWrite = errors.New("cannot write PDF")

// WriteError reports a document that could not be saved to Path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrWrite) true for any WriteError.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// WriteFile saves doc to path. The document is written to a temporary file
// in the destination directory and renamed into place, so a failed write
// never leaves a partial file at path.
func WriteFile(fsys afero.Fs, path string, doc *Document) error {
	if doc.PageCount() == 0 {
		return &WriteError{Path: path, Err: ErrNoPages}
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fsys, dir, ".img2pdf-*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := doc.Output(tmp); err != nil {
		tmp.Close()
		fsys.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		fsys.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := fsys.Chmod(tmpName, 0o644); err != nil {
		fsys.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		fsys.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
