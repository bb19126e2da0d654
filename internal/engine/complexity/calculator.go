// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package complexity computes the metrics bundle of a syntax tree: cyclomatic
// and cognitive complexity, nesting depth, hotspots and the length penalty.
package complexity

import (
	"sort"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/traverse"
)

const defaultAnonymousName = "<anonymous>"

type Options struct {
	LengthPolicy LengthPolicy
	// AnonymousName labels unnamed long functions.
	AnonymousName string
}

// Calculator holds the state of one walk. Build a new one per tree.
type Calculator struct {
	cyclo   *cyclomatic
	cog     *cognitive
	nesting *nestingDepth
	length  *length
}

func NewCalculator(opts Options) *Calculator {
	anon := opts.AnonymousName
	if anon == "" {
		anon = defaultAnonymousName
	}
	policy := opts.LengthPolicy
	if policy == "" {
		policy = LengthPerFunction
	}
	return &Calculator{
		cyclo:   newCyclomatic(),
		cog:     &cognitive{},
		nesting: &nestingDepth{},
		length:  &length{policy: policy, anonymous: anon},
	}
}

// Register attaches every metric handler to w.
func (c *Calculator) Register(w *traverse.Walker) {
	w.Register(c.cyclo, cyclomaticKinds...)
	w.Register(c.cog, cognitiveKinds...)
	w.Register(c.nesting, nestingKinds...)
	w.Register(c.length, lengthKinds...)
}

// Bundle returns the metrics collected by the walk.
func (c *Calculator) Bundle() model.MetricsBundle {
	long := append([]model.LongFunction(nil), c.length.long...)
	sort.SliceStable(long, func(i, j int) bool {
		return long[i].StartLine < long[j].StartLine
	})
	hotspots := append([]model.Hotspot(nil), c.cog.hotspots...)

	penalty := c.length.result()
	return model.MetricsBundle{
		Cyclomatic:     c.cyclo.count,
		Cognitive:      c.cog.score,
		MaxNesting:     c.nesting.max(),
		LengthPenalty:  penalty,
		CompositeScore: model.CompositeScoreOf(c.cog.score, penalty),
		Hotspots:       hotspots,
		LongFunctions:  long,
	}
}

// Calculate walks root once and returns its metrics.
func Calculate(root *syntax.Node, opts Options) model.MetricsBundle {
	c := NewCalculator(opts)
	w := traverse.New()
	c.Register(w)
	w.Walk(root)
	return c.Bundle()
}
