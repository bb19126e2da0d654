// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package rules

import (
	"strconv"

	"golang.org/x/text/message"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
	"github.com/rafaelvolkmer/stylerank/internal/engine/traverse"
	"github.com/rafaelvolkmer/stylerank/internal/i18n"
)

type magicNumber struct {
	p     *message.Printer
	found []model.Violation
}

func (r *magicNumber) ID() model.RuleID { return model.RuleMagicNumber }

func (r *magicNumber) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindNumber} }

func (r *magicNumber) Violations() []model.Violation { return r.found }

func (r *magicNumber) Enter(n *syntax.Node, _ *traverse.Scope) {
	if isTrivialNumber(n.Number) || isExemptPosition(n) {
		return
	}
	raw := n.Raw
	if raw == "" {
		raw = strconv.FormatFloat(n.Number, 'f', -1, 64)
	}
	r.found = append(r.found, model.Violation{
		Rule:    model.RuleMagicNumber,
		Message: r.p.Sprintf(i18n.MsgMagicNumber, raw),
		Line:    n.Line(),
	})
}

func (r *magicNumber) Exit(*syntax.Node, *traverse.Scope) {}

func isTrivialNumber(v float64) bool {
	return v == 0 || v == 1 || v == -1
}

// isExemptPosition covers indexes, array elements and object property values.
func isExemptPosition(n *syntax.Node) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}
	switch parent.Kind {
	case syntax.KindMember, syntax.KindArray:
		return true
	case syntax.KindProperty:
		return parent.Value == n
	}
	return false
}
