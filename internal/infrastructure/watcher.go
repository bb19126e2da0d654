// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

const DefaultDebounce = 300 * time.Millisecond

// FSWatcher reports saved source files in batches. Events for the same
// batch are coalesced until no new event arrived for the debounce period.
type FSWatcher struct {
	debounce time.Duration
	filter   *PathFilter
	logger   *slog.Logger
}

func NewFSWatcher(debounce time.Duration, filter *PathFilter, logger *slog.Logger) *FSWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FSWatcher{debounce: debounce, filter: filter, logger: logger}
}

var _ ports.ChangeWatcher = (*FSWatcher)(nil)

// Watch blocks until ctx is done. A root may be a directory, watched
// recursively, or a single file. onChange runs on the watching goroutine so
// batches never overlap.
func (w *FSWatcher) Watch(ctx context.Context, roots []string, onChange func(paths []string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	s := &watchSession{
		FSWatcher: w,
		fsw:       fsw,
		files:     make(map[string]struct{}),
		pending:   make(map[string]struct{}),
	}
	for _, root := range roots {
		if err := s.add(root); err != nil {
			return err
		}
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if s.handle(event) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		case <-timer.C:
			if batch := s.flush(); len(batch) > 0 {
				onChange(batch)
			}
		}
	}
}

type watchSession struct {
	*FSWatcher
	fsw *fsnotify.Watcher

	dirs    []string
	files   map[string]struct{}
	pending map[string]struct{}
}

func (s *watchSession) add(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	if !info.IsDir() {
		s.files[abs] = struct{}{}
		return s.fsw.Add(filepath.Dir(abs))
	}
	s.dirs = append(s.dirs, abs)
	return s.watchRecursive(abs, abs)
}

func (s *watchSession) watchRecursive(root, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && s.filter.SkipDir(relTo(root, path)) {
			return filepath.SkipDir
		}
		if err := s.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		s.logger.Debug("watching", "dir", path)
		return nil
	})
}

// handle records a relevant event and reports whether it is pending.
func (s *watchSession) handle(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	path := event.Name

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if root, ok := s.dirRoot(path); ok && !s.filter.SkipDir(relTo(root, path)) {
				if err := s.watchRecursive(root, path); err != nil {
					s.logger.Warn("watch new directory", "dir", path, "error", err)
				}
			}
			return false
		}
	}

	if !s.accepts(path) {
		return false
	}
	s.pending[path] = struct{}{}
	return true
}

func (s *watchSession) accepts(path string) bool {
	if _, ok := s.files[path]; ok {
		return true
	}
	root, ok := s.dirRoot(path)
	if !ok {
		return false
	}
	return s.filter.AcceptFile(relTo(root, path))
}

func (s *watchSession) dirRoot(path string) (string, bool) {
	for _, d := range s.dirs {
		if rel := relTo(d, path); rel != path {
			return d, true
		}
	}
	return "", false
}

func (s *watchSession) flush() []string {
	batch := make([]string, 0, len(s.pending))
	for p := range s.pending {
		batch = append(batch, p)
	}
	clear(s.pending)
	sort.Strings(batch)
	return batch
}
