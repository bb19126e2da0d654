// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/complexity"
	"github.com/rafaelvolkmer/stylerank/internal/engine/rules"
)

func parse(t *testing.T, path, src string) *syntax.Node {
	t.Helper()
	root, err := NewJSParser().Parse(context.Background(), path, []byte(src))
	require.NoError(t, err)
	require.NotNil(t, root)
	return root
}

func collect(root *syntax.Node, kind syntax.Kind) []*syntax.Node {
	var out []*syntax.Node
	root.Walk(func(n *syntax.Node) bool {
		if n.Kind == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

func TestSupportsFile(t *testing.T) {
	p := NewJSParser()
	for _, ext := range Extensions() {
		assert.True(t, p.SupportsFile("src/a"+ext), ext)
	}
	assert.True(t, p.SupportsFile("App.JSX"))
	assert.False(t, p.SupportsFile("main.go"))
	assert.False(t, p.SupportsFile("README"))
}

func TestUnsupportedExtension(t *testing.T) {
	_, err := NewJSParser().Parse(context.Background(), "main.go", []byte("package main"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSyntaxError(t *testing.T) {
	_, err := NewJSParser().Parse(context.Background(), "bad.js", []byte("function f( {\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewJSParser().Parse(ctx, "a.js", []byte("x = 1\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProgramSpanCoversFile(t *testing.T) {
	root := parse(t, "a.js", "// header\n\nconst a = 1;\n")
	assert.Equal(t, syntax.KindProgram, root.Kind)
	assert.Equal(t, syntax.Lines(1, 3), root.Span)
}

func TestEarlyReturnAndParenthesizedTest(t *testing.T) {
	src := `function guard(x) {
  if (!x) { return; }
  if ((x)) {
    go();
  }
}
`
	root := parse(t, "a.js", src)

	ifs := collect(root, syntax.KindIf)
	require.Len(t, ifs, 2)
	assert.True(t, ifs[0].IsEarlyReturn())
	assert.False(t, ifs[1].IsEarlyReturn())
	require.NotNil(t, ifs[1].Test)
	assert.Equal(t, syntax.KindIdentifier, ifs[1].Test.Kind)
	assert.Equal(t, "x", ifs[1].Test.Name)
	assert.Equal(t, 3, ifs[1].Line())
}

func TestElseIfChain(t *testing.T) {
	src := `function pick(a) {
  if (a > 2) {
    one();
  } else if (a < 0) {
    two();
  } else {
    three();
  }
}
`
	root := parse(t, "a.js", src)

	ifs := collect(root, syntax.KindIf)
	require.Len(t, ifs, 2)
	assert.Same(t, ifs[1], ifs[0].Alternate)
	require.NotNil(t, ifs[1].Alternate)
	assert.Equal(t, syntax.KindBlock, ifs[1].Alternate.Kind)
}

func TestLoopsAndLogicalOperators(t *testing.T) {
	src := `function loops(items, map) {
  for (const it of items) {}
  for (const k in map) {}
  for (let i = 0; i < 3; i++) {}
  while (ok && ready) {}
  do {} while (a ?? b);
}
`
	root := parse(t, "a.js", src)

	assert.Len(t, collect(root, syntax.KindForOf), 1)
	assert.Len(t, collect(root, syntax.KindForIn), 1)
	assert.Len(t, collect(root, syntax.KindFor), 1)
	assert.Len(t, collect(root, syntax.KindWhile), 1)
	assert.Len(t, collect(root, syntax.KindDoWhile), 1)

	logical := collect(root, syntax.KindLogical)
	require.Len(t, logical, 2)
	assert.Equal(t, "&&", logical[0].Operator)
	assert.Equal(t, "??", logical[1].Operator)

	binary := collect(root, syntax.KindBinary)
	require.Len(t, binary, 1)
	assert.Equal(t, "<", binary[0].Operator)
}

func TestSwitchCases(t *testing.T) {
	src := `switch (x) {
  case 1: a(); break;
  default: b();
}
`
	cases := collect(parse(t, "a.js", src), syntax.KindSwitchCase)
	require.Len(t, cases, 2)
	assert.False(t, cases[0].IsDefaultCase())
	assert.True(t, cases[1].IsDefaultCase())
}

func TestFunctionNamesAndParams(t *testing.T) {
	src := `function declared(a, b) {}
const arrow = x => x;
obj.handler = function () {};
const table = { run(a, b, c) {}, stop: () => {} };
class Widget { render() {} }
[1].map(function () {});
`
	fns := collect(parse(t, "a.js", src), syntax.KindFunction)

	var names []string
	for _, f := range fns {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"declared", "arrow", "obj.handler", "run", "stop", "render", ""}, names)

	require.Len(t, fns[0].Params, 2)
	assert.Equal(t, "a", fns[0].Params[0].Name)
	require.Len(t, fns[1].Params, 1)
	assert.Equal(t, "x", fns[1].Params[0].Name)
	assert.Len(t, fns[3].Params, 3)
}

func TestTypeScriptParameters(t *testing.T) {
	src := `function typed(a: number, b?: string, { c }: Opts): void {
  if (a) { run(); }
}
`
	root := parse(t, "a.ts", src)

	fns := collect(root, syntax.KindFunction)
	require.Len(t, fns, 1)
	require.Len(t, fns[0].Params, 3)
	assert.Equal(t, "a", fns[0].Params[0].Name)
	assert.Equal(t, "b", fns[0].Params[1].Name)
	assert.NotEqual(t, syntax.KindIdentifier, fns[0].Params[2].Kind)

	vs := rules.Check(root, nil)
	require.Len(t, vs, 1)
	assert.Equal(t, 2, vs[0].Line)
}

func TestMarkupExemptsLongComponent(t *testing.T) {
	src := "function View() {\n" + repeat("  work();\n", 40) + "  return (<div className=\"x\"><span/></div>);\n}\n"

	for _, path := range []string{"View.jsx", "View.tsx"} {
		root := parse(t, path, src)
		assert.NotEmpty(t, collect(root, syntax.KindMarkup), path)
		m := complexity.Calculate(root, complexity.Options{})
		assert.Zero(t, m.LengthPenalty, path)
		assert.Empty(t, m.LongFunctions, path)
	}
}

func TestLongFunctionSpan(t *testing.T) {
	src := "function long() {\n" + repeat("  work();\n", 40) + "}\n"

	m := complexity.Calculate(parse(t, "a.js", src), complexity.Options{})

	require.Len(t, m.LongFunctions, 1)
	assert.Equal(t, 42, m.LongFunctions[0].Length)
	assert.Equal(t, 1, m.LengthPenalty)
}

func TestMagicNumbersFromSource(t *testing.T) {
	src := `const a = 42;
const b = arr[42];
const c = [42];
const d = { key: 42 };
const e = -1 + 0 + 1;
`
	vs := rules.Check(parse(t, "a.js", src), nil)

	require.Len(t, vs, 1)
	assert.Equal(t, 1, vs[0].Line)
}

func TestParseNumber(t *testing.T) {
	tests := map[string]float64{
		"42":    42,
		"3.5":   3.5,
		".5":    0.5,
		"1e3":   1000,
		"0xff":  255,
		"0o17":  15,
		"0b101": 5,
		"1_000": 1000,
		"10n":   10,
	}
	for raw, want := range tests {
		assert.Equal(t, want, parseNumber(raw), raw)
	}
	assert.True(t, math.IsInf(parseNumber("0xZZ"), 1))
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
