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

// parameterFlag flags `if (param)` where param is an identifier parameter of
// an enclosing function. Every enclosing function declaring the name reports
// it once. Findings are grouped per function, in the order functions are
// entered.
type parameterFlag struct {
	p       *message.Printer
	buckets [][]model.Violation
	index   map[*syntax.Node]int
}

func newParameterFlag(p *message.Printer) *parameterFlag {
	return &parameterFlag{p: p, index: make(map[*syntax.Node]int)}
}

func (r *parameterFlag) ID() model.RuleID { return model.RuleParameterAsFlag }

func (r *parameterFlag) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindIf} }

func (r *parameterFlag) EnterScope(sc *traverse.Scope) {
	if sc.IsFile() {
		return
	}
	r.index[sc.Node] = len(r.buckets)
	r.buckets = append(r.buckets, nil)
}

func (r *parameterFlag) ExitScope(*traverse.Scope) {}

func (r *parameterFlag) Enter(n *syntax.Node, sc *traverse.Scope) {
	test := n.Test
	if test == nil || test.Kind != syntax.KindIdentifier {
		return
	}
	for s := sc; !s.IsFile(); s = s.Parent {
		if !declaresParam(s.Node, test.Name) {
			continue
		}
		i := r.index[s.Node]
		r.buckets[i] = append(r.buckets[i], model.Violation{
			Rule:    model.RuleParameterAsFlag,
			Message: r.p.Sprintf(i18n.MsgParameterFlag, test.Name),
			Line:    n.Line(),
		})
	}
}

func (r *parameterFlag) Exit(*syntax.Node, *traverse.Scope) {}

func (r *parameterFlag) Violations() []model.Violation {
	var out []model.Violation
	for _, b := range r.buckets {
		out = append(out, b...)
	}
	return out
}

func declaresParam(fn *syntax.Node, name string) bool {
	for _, p := range fn.Params {
		if p != nil && p.Kind == syntax.KindIdentifier && p.Name == name {
			return true
		}
	}
	return false
}
