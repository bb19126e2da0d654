// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestPathFilter(t *testing.T) {
	f, err := NewPathFilter([]string{"js", ".TSX"}, []string{"**/*.min.js", "legacy/**", "generated"})
	require.NoError(t, err)

	assert.True(t, f.AcceptFile("src/app.js"))
	assert.True(t, f.AcceptFile("src/View.tsx"))
	assert.False(t, f.AcceptFile("src/app.ts"))
	assert.False(t, f.AcceptFile("src/vendor.min.js"))
	assert.False(t, f.AcceptFile("legacy/old.js"))

	assert.True(t, f.SkipDir("node_modules"))
	assert.True(t, f.SkipDir("pkg/.git"))
	assert.True(t, f.SkipDir("src/generated"))
	assert.False(t, f.SkipDir("src"))

	_, err = NewPathFilter(nil, []string{"[unclosed"})
	assert.Error(t, err)
}

func TestFSScannerFiltersTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.js"), "x")
	writeFile(t, filepath.Join(root, "src", "b.ts"), "x")
	writeFile(t, filepath.Join(root, "src", "c.min.js"), "x")
	writeFile(t, filepath.Join(root, "src", "readme.md"), "x")
	writeFile(t, filepath.Join(root, "node_modules", "lib", "d.js"), "x")
	writeFile(t, filepath.Join(root, ".stylerank", "e.js"), "x")

	s, err := NewFSScanner("*.min.js")
	require.NoError(t, err)

	files, err := s.Scan(context.Background(), root, []string{".js", ".ts"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.js"),
		filepath.Join(root, "src", "b.ts"),
	}, files)
}

func TestFSScannerSingleFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "one.js")
	writeFile(t, path, "x")

	s, err := NewFSScanner()
	require.NoError(t, err)

	files, err := s.Scan(context.Background(), path, []string{".js"})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	data, err := s.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestFSScannerCanceled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.js"), "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := NewFSScanner()
	require.NoError(t, err)
	_, err = s.Scan(ctx, root, []string{".js"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStorageRoundTrip(t *testing.T) {
	root := t.TempDir()
	st := NewFileStorage()
	ctx := context.Background()

	_, err := st.Load(ctx, root)
	assert.ErrorIs(t, err, ErrNoReport)

	report := &model.Report{
		RootPath:    root,
		GeneratedAt: time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC),
		Results: []model.AnalysisResult{{
			FilePath:   filepath.Join(root, "a.js"),
			Rank:       model.RankA,
			Violations: []model.Violation{{Rule: model.RuleLooseEquality, Message: "m", Line: 3}},
		}},
	}
	require.NoError(t, st.Save(ctx, root, report))
	require.FileExists(t, ReportPath(root))

	got, err := st.Load(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, report.Results[0].Rank, got.Results[0].Rank)
	assert.Equal(t, report.Results[0].Violations, got.Results[0].Violations)
	assert.True(t, report.GeneratedAt.Equal(got.GeneratedAt))

	report.Results[0].Rank = model.RankB
	require.NoError(t, st.Save(ctx, root, report))
	got, err = st.Load(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, model.RankB, got.Results[0].Rank)

	entries, err := os.ReadDir(filepath.Join(root, reportDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFSWatcherBatchesSaves(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "a.js"), "x")

	filter, err := NewPathFilter([]string{".js"}, nil)
	require.NoError(t, err)
	w := NewFSWatcher(50*time.Millisecond, filter, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, []string{root}, func(paths []string) { batches <- paths })
	}()

	// give the watcher time to register directories
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(root, "src", "a.js"), "y")
	writeFile(t, filepath.Join(root, "src", "notes.md"), "ignored")
	writeFile(t, filepath.Join(root, "src", "b.js"), "z")

	select {
	case got := <-batches:
		assert.Subset(t, []string{filepath.Join(root, "src", "a.js"), filepath.Join(root, "src", "b.js")}, got)
		assert.NotContains(t, got, filepath.Join(root, "src", "notes.md"))
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestFSWatcherMissingRoot(t *testing.T) {
	w := NewFSWatcher(0, nil, nil)
	err := w.Watch(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, func([]string) {})
	assert.Error(t, err)
}
