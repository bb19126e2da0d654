// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package complexity

import (
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/traverse"
)

var cyclomaticKinds = []syntax.Kind{
	syntax.KindIf,
	syntax.KindConditional,
	syntax.KindLogical,
	syntax.KindSwitchCase,
	syntax.KindFor,
	syntax.KindWhile,
	syntax.KindCatch,
}

// cyclomatic counts decision points flatly, starting from the single
// baseline path. Do-while, for-in and for-of are not counted.
type cyclomatic struct {
	count int
}

func newCyclomatic() *cyclomatic {
	return &cyclomatic{count: 1}
}

func (c *cyclomatic) Enter(n *syntax.Node, _ *traverse.Scope) {
	switch n.Kind {
	case syntax.KindLogical:
		if n.IsShortCircuit() {
			c.count++
		}
	case syntax.KindSwitchCase:
		if !n.IsDefaultCase() {
			c.count++
		}
	default:
		c.count++
	}
}

func (c *cyclomatic) Exit(*syntax.Node, *traverse.Scope) {}
