// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package complexity

import (
	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/traverse"
)

var cognitiveKinds = []syntax.Kind{
	syntax.KindIf,
	syntax.KindConditional,
	syntax.KindLogical,
	syntax.KindSwitchCase,
	syntax.KindCatch,
	syntax.KindFor,
	syntax.KindForIn,
	syntax.KindForOf,
	syntax.KindWhile,
	syntax.KindDoWhile,
}

type cognitive struct {
	nesting  traverse.Nesting
	score    int
	hotspots []model.Hotspot
}

func (c *cognitive) EnterScope(*traverse.Scope) { c.nesting.Push() }
func (c *cognitive) ExitScope(*traverse.Scope)  { c.nesting.Pop() }

func (c *cognitive) Enter(n *syntax.Node, sc *traverse.Scope) {
	switch {
	case n.Kind == syntax.KindIf:
		if n.IsEarlyReturn() {
			c.score++
			return
		}
		c.structural(n, sc)
		c.nesting.Inc()
	case n.Kind.IsLoop():
		c.structural(n, sc)
		c.nesting.Inc()
	case n.Kind == syntax.KindLogical:
		if n.IsShortCircuit() {
			c.score++
		}
	case n.Kind == syntax.KindSwitchCase:
		if !n.IsDefaultCase() {
			c.structural(n, sc)
		}
	case n.Kind == syntax.KindConditional, n.Kind == syntax.KindCatch:
		c.structural(n, sc)
	}
}

func (c *cognitive) Exit(n *syntax.Node, _ *traverse.Scope) {
	if (n.Kind == syntax.KindIf && !n.IsEarlyReturn()) || n.Kind.IsLoop() {
		c.nesting.Dec()
	}
}

// structural adds the nesting-weighted increment and records a hotspot when
// the construct sits deep enough.
func (c *cognitive) structural(n *syntax.Node, sc *traverse.Scope) {
	level := c.nesting.Level()
	c.score += 1 + level
	if level >= model.HotspotNesting {
		c.hotspots = append(c.hotspots, model.Hotspot{
			Kind:     n.Kind,
			Line:     n.Line(),
			Nesting:  level,
			Function: sc.FunctionName(),
		})
	}
}
