// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrOutsideRoot is returned when a scan directory escapes the photo root.
var ErrOutsideRoot = errors.New("directory is outside the photo root")

// DefaultExtensions are the photo file types the importer reads.
var DefaultExtensions = []string{".jpg", ".jpeg", ".tif", ".tiff"}

// Source is one photo offered for import.
type Source struct {
	Name    string
	Open    func() (io.ReadCloser, error)
	ModTime time.Time // used as the capture date when the photo has none
}

// FileSource returns a Source reading from path on disk.
func FileSource(path string) Source {
	src := Source{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path) //nolint:gosec // path is produced by ScanDirectory or the caller
		},
	}
	if info, err := os.Stat(path); err == nil {
		src.ModTime = info.ModTime()
	}
	return src
}

// BytesSource returns a Source over an in-memory photo.
func BytesSource(name string, data []byte) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// hasAllowedExtension reports whether name ends in one of exts, ignoring case.
func hasAllowedExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range exts {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// collectSources walks dir in lexical order and returns a Source for every
// regular file with an allowed extension. Hidden directories are skipped.
func collectSources(ctx context.Context, dir string, exts []string) ([]Source, error) {
	var sources []Source
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !hasAllowedExtension(d.Name(), exts) {
			return nil
		}

		src := FileSource(path)
		if rel, relErr := filepath.Rel(dir, path); relErr == nil {
			src.Name = filepath.ToSlash(rel)
		}
		sources = append(sources, src)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	return sources, nil
}

// ResolveScanDir joins dir onto root and rejects results that escape root.
// An empty dir scans the root itself.
func ResolveScanDir(root, dir string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("%w: no photo root configured", ErrOutsideRoot)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid photo root: %w", err)
	}

	target := filepath.Join(absRoot, filepath.Clean("/"+dir))
	rel, err := filepath.Rel(absRoot, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	return target, nil
}
