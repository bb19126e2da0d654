// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package complexity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	s "github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
)

func fn(name string, start, end int, body ...*s.Node) *s.Node {
	return s.Function(name, s.Lines(start, end), nil, s.Block(s.Lines(start, end), body...))
}

func call(line int) *s.Node {
	return s.Stmt(s.Ident(line, "work"))
}

func ifThen(line int, body ...*s.Node) *s.Node {
	return s.If(s.At(line), s.Ident(line, "cond"), s.Block(s.At(line), body...), nil)
}

func TestNoControlFlow(t *testing.T) {
	root := s.Program(s.Lines(1, 3), fn("f", 1, 3, call(2)))

	got := Calculate(root, Options{})

	assert.Equal(t, 1, got.Cyclomatic)
	assert.Equal(t, 0, got.Cognitive)
	assert.Equal(t, 0, got.MaxNesting)
	assert.Equal(t, 0, got.LengthPenalty)
	assert.Zero(t, got.CompositeScore)
	assert.Empty(t, got.Hotspots)
}

func TestEarlyReturnIsFlat(t *testing.T) {
	guard := s.If(s.At(2), s.Ident(2, "x"), s.Return(2, nil), nil)
	inner := ifThen(3, call(4))
	root := s.Program(s.Lines(1, 5), fn("f", 1, 5, guard, inner))

	got := Calculate(root, Options{})

	// guard +1 flat, following if +1 at level 0
	assert.Equal(t, 2, got.Cognitive)
	assert.Equal(t, 3, got.Cyclomatic)
	assert.Equal(t, 1, got.MaxNesting)
}

func TestThreeNestedIfs(t *testing.T) {
	nested := ifThen(2, ifThen(3, ifThen(4, call(5))))
	root := s.Program(s.Lines(1, 8), fn("deep", 1, 8, nested))

	got := Calculate(root, Options{})

	assert.Equal(t, 6, got.Cognitive)
	assert.Equal(t, 4, got.Cyclomatic)
	assert.Equal(t, 3, got.MaxNesting)
	require.Len(t, got.Hotspots, 1)
	assert.Equal(t, model.Hotspot{Kind: s.KindIf, Line: 4, Nesting: 2, Function: "deep"}, got.Hotspots[0])
}

func TestNestingRestartsPerFunction(t *testing.T) {
	innerFn := fn("inner", 3, 6, ifThen(4, call(5)))
	outer := fn("outer", 1, 8, ifThen(2, s.Stmt(innerFn)))
	root := s.Program(s.Lines(1, 8), outer)

	got := Calculate(root, Options{})

	// both ifs at level 0 of their own function
	assert.Equal(t, 2, got.Cognitive)
	assert.Equal(t, 1, got.MaxNesting)
	assert.Empty(t, got.Hotspots)
}

func TestCyclomaticSkipsDefaultAndIteratorLoops(t *testing.T) {
	sw := s.New(s.KindOther, s.Lines(2, 6),
		s.Case(3, s.Number(3, 1), call(3)),
		s.Case(4, s.Number(4, 2), call(4)),
		s.Case(5, nil, call(5)),
	)
	forOf := s.Loop(s.KindForOf, s.Lines(7, 8), nil, s.Block(s.At(8), call(8)))
	coalesce := s.Stmt(s.Logical("??", s.Ident(9, "a"), s.Ident(9, "b")))
	and := s.Stmt(s.Logical("&&", s.Ident(10, "a"), s.Ident(10, "b")))
	root := s.Program(s.Lines(1, 11), fn("f", 1, 11, sw, forOf, coalesce, and))

	got := Calculate(root, Options{})

	assert.Equal(t, 4, got.Cyclomatic)
	// two cases +1 each, for-of +1, && +1
	assert.Equal(t, 4, got.Cognitive)
}

func TestLengthPenalty(t *testing.T) {
	tests := []struct {
		name        string
		lines       int
		wantPenalty int
		wantLong    int
	}{
		{"at limit", 30, 0, 0},
		{"just over", 31, 0, 1},
		{"one step", 40, 1, 1},
		{"two steps", 55, 2, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := s.Program(s.Lines(1, tc.lines), fn("long", 1, tc.lines, call(2)))
			got := Calculate(root, Options{})
			assert.Equal(t, tc.wantPenalty, got.LengthPenalty)
			assert.Len(t, got.LongFunctions, tc.wantLong)
		})
	}
}

func TestMarkupFunctionsAreExempt(t *testing.T) {
	view := fn("View", 1, 80, s.Return(79, s.Markup(s.Lines(79, 80))))
	root := s.Program(s.Lines(1, 80), view)

	got := Calculate(root, Options{})

	assert.Zero(t, got.LengthPenalty)
	assert.Empty(t, got.LongFunctions)
}

func TestLongFunctionsSortedAndNamed(t *testing.T) {
	second := fn("", 50, 95, call(51))
	first := fn("first", 1, 45, s.Stmt(second))
	root := s.Program(s.Lines(1, 100), first)

	got := Calculate(root, Options{AnonymousName: "anon"})

	require.Len(t, got.LongFunctions, 2)
	assert.Equal(t, "first", got.LongFunctions[0].Name)
	assert.Equal(t, "anon", got.LongFunctions[1].Name)
	assert.Equal(t, 46, got.LongFunctions[1].Length)
	assert.Equal(t, 1, got.LengthPenalty)
	assert.Equal(t, 0.5, got.CompositeScore)
}

func TestFileLengthPolicy(t *testing.T) {
	root := s.Program(s.Lines(1, 70), fn("short", 1, 5, call(2)))

	perFunc := Calculate(root, Options{LengthPolicy: LengthPerFunction})
	withFile := Calculate(root, Options{LengthPolicy: LengthIncludeFile})

	assert.Equal(t, 0, perFunc.LengthPenalty)
	assert.Equal(t, 4, withFile.LengthPenalty)
	assert.Equal(t, 2.0, withFile.CompositeScore)
}

func TestParseLengthPolicy(t *testing.T) {
	p, err := ParseLengthPolicy("")
	require.NoError(t, err)
	assert.Equal(t, LengthPerFunction, p)

	p, err = ParseLengthPolicy("file")
	require.NoError(t, err)
	assert.Equal(t, LengthIncludeFile, p)

	_, err = ParseLengthPolicy("module")
	assert.Error(t, err)
}
