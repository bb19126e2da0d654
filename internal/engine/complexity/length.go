// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package complexity

import (
	"fmt"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/traverse"
)

// LengthPolicy selects which spans feed the length penalty.
type LengthPolicy string

const (
	// LengthPerFunction measures every function on its own.
	LengthPerFunction LengthPolicy = "function"
	// LengthIncludeFile also measures the whole file as one unit.
	LengthIncludeFile LengthPolicy = "file"
)

// ParseLengthPolicy accepts "function", "file" or "" (function).
func ParseLengthPolicy(s string) (LengthPolicy, error) {
	switch LengthPolicy(s) {
	case "", LengthPerFunction:
		return LengthPerFunction, nil
	case LengthIncludeFile:
		return LengthIncludeFile, nil
	}
	return "", fmt.Errorf("unknown length policy %q (want %q or %q)", s, LengthPerFunction, LengthIncludeFile)
}

// penaltyFor returns floor((lines - 30) / 10), or 0 when within the limit.
func penaltyFor(lines int) int {
	if lines <= model.MaxFunctionLines {
		return 0
	}
	return (lines - model.MaxFunctionLines) / model.LinesPerPenaltyStep
}

var lengthKinds = []syntax.Kind{
	syntax.KindProgram,
	syntax.KindFunction,
	syntax.KindMarkup,
}

type lengthFrame struct {
	node   *syntax.Node
	markup bool
}

// length records functions over the limit. Any function whose subtree holds
// markup is exempt, and so are the functions enclosing it.
type length struct {
	policy    LengthPolicy
	anonymous string

	frames    []lengthFrame
	fileLines int
	seenRoot  bool

	penalty int
	long    []model.LongFunction
}

func (l *length) Enter(n *syntax.Node, _ *traverse.Scope) {
	switch n.Kind {
	case syntax.KindProgram:
		if !l.seenRoot {
			l.seenRoot = true
			l.fileLines = n.Span.Lines()
		}
	case syntax.KindFunction:
		l.frames = append(l.frames, lengthFrame{node: n})
	case syntax.KindMarkup:
		for i := range l.frames {
			l.frames[i].markup = true
		}
	}
}

func (l *length) Exit(n *syntax.Node, _ *traverse.Scope) {
	if n.Kind != syntax.KindFunction || len(l.frames) == 0 {
		return
	}
	f := l.frames[len(l.frames)-1]
	l.frames = l.frames[:len(l.frames)-1]
	if f.markup {
		return
	}

	lines := n.Span.Lines()
	if lines <= model.MaxFunctionLines {
		return
	}
	name := n.Name
	if name == "" {
		name = l.anonymous
	}
	l.long = append(l.long, model.LongFunction{
		Name:      name,
		StartLine: n.Span.StartLine,
		EndLine:   n.Span.EndLine,
		Length:    lines,
	})
	l.penalty = max(l.penalty, penaltyFor(lines))
}

func (l *length) result() int {
	if l.policy == LengthIncludeFile {
		return max(l.penalty, penaltyFor(l.fileLines))
	}
	return l.penalty
}
