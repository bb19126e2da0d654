// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package traverse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
)

type recorder struct {
	events []string
}

func (r *recorder) Enter(n *syntax.Node, sc *Scope) {
	r.events = append(r.events, fmt.Sprintf("enter %s@%d fn=%q", n.Kind, n.Line(), sc.FunctionName()))
}

func (r *recorder) Exit(n *syntax.Node, sc *Scope) {
	r.events = append(r.events, fmt.Sprintf("exit %s@%d", n.Kind, n.Line()))
}

type scopeRecorder struct {
	recorder
}

func (r *scopeRecorder) EnterScope(sc *Scope) {
	r.events = append(r.events, fmt.Sprintf("scope+ %q depth=%d", sc.FunctionName(), sc.Depth))
}

func (r *scopeRecorder) ExitScope(sc *Scope) {
	r.events = append(r.events, fmt.Sprintf("scope- %q", sc.FunctionName()))
}

func sampleTree() *syntax.Node {
	inner := syntax.If(syntax.Lines(3, 4), syntax.Ident(3, "x"), syntax.Block(syntax.At(4)), nil)
	fn := syntax.Function("f", syntax.Lines(2, 5), nil, syntax.Block(syntax.Lines(2, 5), inner))
	return syntax.Program(syntax.Lines(1, 6), fn, syntax.Stmt(syntax.Number(6, 7)))
}

func TestWalkVisitsEveryNodeOnce(t *testing.T) {
	root := sampleTree()

	total := 0
	root.Walk(func(*syntax.Node) bool { total++; return true })

	seen := map[*syntax.Node]int{}
	w := New()
	w.Register(Funcs{OnEnter: func(n *syntax.Node, _ *Scope) { seen[n]++ }})
	w.Walk(root)

	assert.Len(t, seen, total)
	for n, c := range seen {
		assert.Equal(t, 1, c, "node %s visited %d times", n.Kind, c)
	}
}

func TestWalkKindFilterAndScopes(t *testing.T) {
	rec := &scopeRecorder{}
	w := New()
	w.Register(rec, syntax.KindIf, syntax.KindFunction)
	w.Walk(sampleTree())

	require.Equal(t, []string{
		`scope+ "" depth=0`,
		`scope+ "f" depth=1`,
		`enter function@2 fn="f"`,
		`enter if@3 fn="f"`,
		`exit if@3`,
		`exit function@2`,
		`scope- "f"`,
		`scope- ""`,
	}, rec.events)
}

func TestWalkerIsReusable(t *testing.T) {
	rec := &recorder{}
	w := New()
	w.Register(rec, syntax.KindNumber)

	w.Walk(sampleTree())
	w.Walk(sampleTree())

	assert.Equal(t, []string{
		`enter number@6 fn=""`, `exit number@6`,
		`enter number@6 fn=""`, `exit number@6`,
	}, rec.events)
}

func TestWalkNilRoot(t *testing.T) {
	rec := &scopeRecorder{}
	w := New()
	w.Register(rec)
	w.Walk(nil)
	assert.Empty(t, rec.events)
}

func TestNestingResetsPerScope(t *testing.T) {
	var n Nesting
	n.Push()
	n.Inc()
	n.Inc()
	assert.Equal(t, 2, n.Level())

	n.Push()
	assert.Equal(t, 0, n.Level())
	n.Inc()
	n.Pop()

	assert.Equal(t, 2, n.Level())
	n.Dec()
	n.Dec()
	n.Dec()
	assert.Equal(t, 0, n.Level())
	assert.Equal(t, 2, n.Max())
}
