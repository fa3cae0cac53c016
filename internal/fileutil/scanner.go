// Package fileutil provides the filesystem plumbing the search command
// uses: UTF-8 text file reading and filtered recursive traversal.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrNotText is wrapped by ReadTextFile when a file is not valid UTF-8.
var ErrNotText = fmt.Errorf("not a UTF-8 text file")

// ReadTextFile reads path and returns its content as a string. Files whose
// bytes are not valid UTF-8 are rejected with ErrNotText so binary files
// are skipped rather than searched.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrNotText, path)
	}
	return string(data), nil
}

// VisitFiles walks the tree under dir and calls visit for every regular
// file. skip, if non-nil, is consulted with each path before it is visited
// or descended into; returning true prunes that path. Traversal order is
// the sorted directory order of filepath.WalkDir.
func VisitFiles(dir string, skip func(path string) bool, visit func(path string)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}
		if path != dir && skip != nil && skip(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && d.Type().IsRegular() {
			visit(path)
		}
		return nil
	})
}
