// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package complexity

import (
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/traverse"
)

var nestingKinds = []syntax.Kind{
	syntax.KindIf,
	syntax.KindFor,
	syntax.KindForIn,
	syntax.KindForOf,
	syntax.KindWhile,
	syntax.KindDoWhile,
}

// nestingDepth tracks the deepest if/loop nesting. Early returns nest here.
type nestingDepth struct {
	nesting traverse.Nesting
}

func (d *nestingDepth) EnterScope(*traverse.Scope) { d.nesting.Push() }
func (d *nestingDepth) ExitScope(*traverse.Scope)  { d.nesting.Pop() }

func (d *nestingDepth) Enter(*syntax.Node, *traverse.Scope) { d.nesting.Inc() }
func (d *nestingDepth) Exit(*syntax.Node, *traverse.Scope)  { d.nesting.Dec() }

func (d *nestingDepth) max() int {
	return d.nesting.Max()
}
