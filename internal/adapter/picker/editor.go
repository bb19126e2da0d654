// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package picker

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const defaultEditor = "vi"

// editorFromEnv returns $VISUAL, then $EDITOR, then vi.
func editorFromEnv() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return defaultEditor
}

// editorArgs builds the argument list that opens file at line for the
// editors that understand a line position.
func editorArgs(editor, file string, line int) []string {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		parts = []string{defaultEditor}
	}
	args := append([]string(nil), parts[1:]...)
	if line <= 0 {
		return append(args, file)
	}

	switch filepath.Base(parts[0]) {
	case "vi", "vim", "nvim", "nano", "emacs", "emacsclient", "micro", "kak":
		return append(args, fmt.Sprintf("+%d", line), file)
	case "code", "code-insiders", "codium", "cursor":
		return append(args, "--goto", fmt.Sprintf("%s:%d", file, line))
	case "hx", "subl", "zed":
		return append(args, fmt.Sprintf("%s:%d", file, line))
	}
	return append(args, file)
}

func editorCommand(editor, file string, line int) *exec.Cmd {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		parts = []string{defaultEditor}
	}
	return exec.Command(parts[0], editorArgs(editor, file, line)...)
}
