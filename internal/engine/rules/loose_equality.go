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

var strictOf = map[string]string{
	"==": "===",
	"!=": "!==",
}

type looseEquality struct {
	p     *message.Printer
	found []model.Violation
}

func (r *looseEquality) ID() model.RuleID { return model.RuleLooseEquality }

func (r *looseEquality) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindBinary} }

func (r *looseEquality) Violations() []model.Violation { return r.found }

func (r *looseEquality) Enter(n *syntax.Node, _ *traverse.Scope) {
	strict, ok := strictOf[n.Operator]
	if !ok {
		return
	}
	r.found = append(r.found, model.Violation{
		Rule:    model.RuleLooseEquality,
		Message: r.p.Sprintf(i18n.MsgLooseEquality, n.Operator, strict),
		Line:    n.Line(),
	})
}

func (r *looseEquality) Exit(*syntax.Node, *traverse.Scope) {}
