// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package gitadapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

type GitCLI struct{}

func NewGitCLI() *GitCLI {
	return &GitCLI{}
}

var _ ports.ChangedFilesLister = (*GitCLI)(nil)

// ChangedFiles lists files under root that are modified, added or untracked
// in its working tree. Deleted files are left out.
func (g *GitCLI) ChangedFiles(ctx context.Context, root string) ([]string, error) {
	top, err := g.run(ctx, root, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, err
	}
	toplevel := strings.TrimSpace(string(top))

	// porcelain paths are relative to the top level, whatever root is
	out, err := g.run(ctx, root, "status", "--porcelain", "--untracked-files=all", "--", ".")
	if err != nil {
		return nil, err
	}

	paths := parsePorcelain(out)
	for i, p := range paths {
		paths[i] = filepath.Join(toplevel, filepath.FromSlash(p))
	}
	return paths, nil
}

func (g *GitCLI) run(ctx context.Context, root string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", root}, args...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("git %s in %s: %s", args[0], root, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("git %s in %s: %w", args[0], root, err)
	}
	return out, nil
}

// parsePorcelain reads `git status --porcelain` v1 output.
func parsePorcelain(out []byte) []string {
	seen := make(map[string]struct{})
	var paths []string

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}
		status, path := line[:2], line[3:]
		if strings.Contains(status, "D") {
			continue
		}
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+len(" -> "):]
		}
		path = strings.Trim(path, `"`)
		if strings.HasSuffix(path, "/") {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
