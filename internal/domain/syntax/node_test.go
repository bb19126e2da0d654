// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEarlyReturn(t *testing.T) {
	ret := func() *Node { return Return(2, Number(2, 1)) }

	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"bare return", If(Lines(1, 2), Ident(1, "a"), ret(), nil), true},
		{"block with single return", If(Lines(1, 3), Ident(1, "a"), Block(Lines(1, 3), ret()), nil), true},
		{"has else", If(Lines(1, 5), Ident(1, "a"), ret(), Block(At(4))), false},
		{"two statements", If(Lines(1, 4), Ident(1, "a"), Block(Lines(1, 4), Stmt(Ident(2, "x")), ret()), nil), false},
		{"expression body", If(Lines(1, 2), Ident(1, "a"), Stmt(Ident(2, "x")), nil), false},
		{"not an if", Block(At(1), ret()), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.node.IsEarlyReturn())
		})
	}
}

func TestNewSetsParent(t *testing.T) {
	lit := Number(3, 42)
	arr := Array(3, lit, nil)

	require.Len(t, arr.Children, 1)
	assert.Same(t, arr, lit.Parent)
	assert.Equal(t, KindArray, lit.ParentKind())
	assert.Equal(t, KindOther, arr.ParentKind())
}

func TestSpanLines(t *testing.T) {
	assert.Equal(t, 31, Lines(10, 40).Lines())
	assert.Equal(t, 1, At(7).Lines())
	assert.Equal(t, 0, Span{}.Lines())
	assert.Equal(t, 0, Lines(9, 3).Lines())
}

func TestKindText(t *testing.T) {
	for k := KindOther; k < kindCount; k++ {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back, "kind %s", text)
	}
	assert.True(t, KindForOf.IsLoop())
	assert.False(t, KindIf.IsLoop())
}

func TestShortCircuitAndDefaultCase(t *testing.T) {
	assert.True(t, Logical("&&", Ident(1, "a"), Ident(1, "b")).IsShortCircuit())
	assert.False(t, Logical("??", Ident(1, "a"), Ident(1, "b")).IsShortCircuit())
	assert.True(t, Case(4, nil).IsDefaultCase())
	assert.False(t, Case(4, Number(4, 2)).IsDefaultCase())
}
