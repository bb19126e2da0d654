// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package rules

import (
	"golang.org/x/text/message"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/traverse"
	"github.com/rafaelvolkmer/stylerank/internal/i18n"
)

type maxParameters struct {
	p         *message.Printer
	anonymous string
	found     []model.Violation
}

func (r *maxParameters) ID() model.RuleID { return model.RuleMaxParameters }

func (r *maxParameters) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindFunction} }

func (r *maxParameters) Violations() []model.Violation { return r.found }

func (r *maxParameters) Enter(n *syntax.Node, _ *traverse.Scope) {
	count := len(n.Params)
	if count <= model.MaxParameters {
		return
	}
	name := n.Name
	if name == "" {
		name = r.anonymous
	}
	r.found = append(r.found, model.Violation{
		Rule:    model.RuleMaxParameters,
		Message: r.p.Sprintf(i18n.MsgMaxParameters, name, count, model.MaxParameters),
		Line:    n.Line(),
	})
}

func (r *maxParameters) Exit(*syntax.Node, *traverse.Scope) {}
