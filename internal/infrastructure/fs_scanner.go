// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package infrastructure

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

type FSScanner struct {
	excludes []string
}

// NewFSScanner validates the exclude patterns up front.
func NewFSScanner(excludes ...string) (*FSScanner, error) {
	if _, err := NewPathFilter(nil, excludes); err != nil {
		return nil, err
	}
	return &FSScanner{excludes: excludes}, nil
}

var _ ports.SourceFileScanner = (*FSScanner)(nil)
var _ ports.FileReader = (*FSScanner)(nil)

// Scan lists the files under root with one of includeExt. root may also be a
// single file, which is returned when it passes the filter.
func (s *FSScanner) Scan(ctx context.Context, root string, includeExt []string) ([]string, error) {
	filter, err := NewPathFilter(includeExt, s.excludes)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := relTo(root, path)
		if d.IsDir() {
			if path != root && filter.SkipDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if path == root {
			rel = filepath.Base(path)
		}
		if !filter.AcceptFile(rel) {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

func (s *FSScanner) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
