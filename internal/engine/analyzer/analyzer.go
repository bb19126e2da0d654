// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package analyzer ties the engine together: one traversal feeding every
// calculator and rule, then ranking and suggestions.
package analyzer

import (
	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/complexity"
	"github.com/rafaelvolkmer/stylerank/internal/engine/ranking"
	"github.com/rafaelvolkmer/stylerank/internal/engine/rules"
	"github.com/rafaelvolkmer/stylerank/internal/engine/suggest"
	"github.com/rafaelvolkmer/stylerank/internal/engine/traverse"
	"github.com/rafaelvolkmer/stylerank/internal/i18n"
)

type Options struct {
	LengthPolicy complexity.LengthPolicy
	HotspotLimit int
	Locale       string
}

// Analyzer is safe for concurrent use; every call builds its own walker,
// handlers and printer.
type Analyzer struct {
	opts Options
}

func New(opts Options) *Analyzer {
	return &Analyzer{opts: opts}
}

// Analyze computes the result for root. path is only used to label the
// result and to format locations in suggestions.
func (a *Analyzer) Analyze(root *syntax.Node, path string) model.AnalysisResult {
	p := i18n.NewPrinter(a.opts.Locale)

	calc := complexity.NewCalculator(complexity.Options{
		LengthPolicy:  a.opts.LengthPolicy,
		AnonymousName: p.Sprintf(i18n.MsgAnonymousFunction),
	})
	checker := rules.NewChecker(p)

	w := traverse.New()
	calc.Register(w)
	checker.Register(w)
	w.Walk(root)

	res := model.AnalysisResult{
		FilePath:      path,
		MetricsBundle: calc.Bundle(),
		Violations:    checker.Violations(),
	}
	res.ViolationCount = len(res.Violations)
	res.Rank = ranking.Assign(res.CompositeScore, res.ViolationCount)
	res.RankDescription = ranking.Describe(res.Rank, p)
	res.Suggestions = suggest.Generate(res, suggest.Options{
		HotspotLimit: a.opts.HotspotLimit,
		Printer:      p,
	})
	return res
}
