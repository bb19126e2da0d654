// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package gitadapter

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePorcelain(t *testing.T) {
	out := []byte(" M src/app.js\n" +
		"A  src/new.ts\n" +
		"?? scratch/tmp.jsx\n" +
		" D src/gone.js\n" +
		"R  old.js -> lib/renamed.js\n" +
		"MM src/app.js\n" +
		"?? \"with space.js\"\n")

	got := parsePorcelain(out)

	assert.Equal(t, []string{
		"lib/renamed.js",
		"scratch/tmp.jsx",
		"src/app.js",
		"src/new.ts",
		"with space.js",
	}, got)
}

func TestParsePorcelainEmpty(t *testing.T) {
	assert.Empty(t, parsePorcelain(nil))
}

func TestChangedFilesInRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	root := t.TempDir()
	gitInit := exec.Command("git", "init", "-q", root)
	require.NoError(t, gitInit.Run())
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.js"), []byte("let a = 1;\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "web"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "web", "b.js"), []byte("let b = 2;\n"), 0o644))
	top, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	got, err := NewGitCLI().ChangedFiles(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(top, "a.js"), filepath.Join(top, "web", "b.js")}, got)

	got, err = NewGitCLI().ChangedFiles(context.Background(), filepath.Join(root, "web"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(top, "web", "b.js")}, got)
}

func TestChangedFilesOutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())

	_, err := NewGitCLI().ChangedFiles(context.Background(), t.TempDir())

	assert.Error(t, err)
}
