// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package rules holds the style-rule catalog. Every rule is a traversal
// handler; a Checker registers the whole catalog on one walker.
package rules

import (
	"golang.org/x/text/message"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/traverse"
	"github.com/rafaelvolkmer/stylerank/internal/i18n"
)

// Rule is one detector. Violations are reported in traversal order.
type Rule interface {
	traverse.Handler
	ID() model.RuleID
	Kinds() []syntax.Kind
	Violations() []model.Violation
}

// Checker runs the catalog over one tree. Build a new one per tree.
type Checker struct {
	rules []Rule
}

// NewChecker builds fresh rule instances in catalog order. A nil printer
// prints English.
func NewChecker(p *message.Printer) *Checker {
	if p == nil {
		p = i18n.NewPrinter("")
	}
	return &Checker{rules: []Rule{
		&looseEquality{p: p},
		newParameterFlag(p),
		&magicNumber{p: p},
		&maxParameters{p: p, anonymous: p.Sprintf(i18n.MsgAnonymousFunction)},
	}}
}

func (c *Checker) Register(w *traverse.Walker) {
	for _, r := range c.rules {
		w.Register(r, r.Kinds()...)
	}
}

// Violations concatenates each rule's findings in catalog order.
func (c *Checker) Violations() []model.Violation {
	out := []model.Violation{}
	for _, r := range c.rules {
		out = append(out, r.Violations()...)
	}
	return out
}

// Check walks root once with the whole catalog.
func Check(root *syntax.Node, p *message.Printer) []model.Violation {
	c := NewChecker(p)
	w := traverse.New()
	c.Register(w)
	w.Walk(root)
	return c.Violations()
}
