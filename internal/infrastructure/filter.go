// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package infrastructure

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Directories never scanned or watched.
var skippedDirs = map[string]struct{}{
	".git":         {},
	".stylerank":   {},
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
}

// PathFilter decides which files are analyzed. Exclude patterns use glob
// syntax with '/' as separator ("**/*.min.js", "legacy/**") and are matched
// against the slash-separated path relative to the scanned root and against
// the base name.
type PathFilter struct {
	exts     map[string]struct{}
	excludes []glob.Glob
}

func NewPathFilter(includeExt, excludes []string) (*PathFilter, error) {
	f := &PathFilter{exts: make(map[string]struct{}, len(includeExt))}
	for _, e := range includeExt {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		f.exts[e] = struct{}{}
	}
	for _, pattern := range excludes {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		f.excludes = append(f.excludes, g)
	}
	return f, nil
}

// SkipDir reports whether the directory at rel should not be descended into.
func (f *PathFilter) SkipDir(rel string) bool {
	if _, ok := skippedDirs[filepath.Base(rel)]; ok {
		return true
	}
	return f.excluded(rel)
}

// AcceptFile reports whether the file at rel should be analyzed.
func (f *PathFilter) AcceptFile(rel string) bool {
	if f != nil && len(f.exts) > 0 {
		if _, ok := f.exts[strings.ToLower(filepath.Ext(rel))]; !ok {
			return false
		}
	}
	return !f.excluded(rel)
}

func (f *PathFilter) excluded(rel string) bool {
	if f == nil || len(f.excludes) == 0 {
		return false
	}
	slashed := filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, g := range f.excludes {
		if g.Match(slashed) || g.Match(base) {
			return true
		}
	}
	return false
}

// relTo returns path relative to root when path is inside it, else path.
func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
