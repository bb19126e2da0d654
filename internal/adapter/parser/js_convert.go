// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

import (
	"math"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
)

var kindByType = map[string]syntax.Kind{
	"program":              syntax.KindProgram,
	"statement_block":      syntax.KindBlock,
	"expression_statement": syntax.KindStatement,
	"return_statement":     syntax.KindReturn,
	"if_statement":         syntax.KindIf,
	"ternary_expression":   syntax.KindConditional,
	"binary_expression":    syntax.KindBinary,
	"switch_case":          syntax.KindSwitchCase,
	"switch_default":       syntax.KindSwitchCase,
	"for_statement":        syntax.KindFor,
	"for_in_statement":     syntax.KindForIn,
	"while_statement":      syntax.KindWhile,
	"do_statement":         syntax.KindDoWhile,
	"catch_clause":         syntax.KindCatch,
	"number":               syntax.KindNumber,
	"identifier":           syntax.KindIdentifier,
	"member_expression":    syntax.KindMember,
	"subscript_expression": syntax.KindMember,
	"array":                syntax.KindArray,
	"pair":                 syntax.KindProperty,

	"function_declaration":           syntax.KindFunction,
	"generator_function_declaration": syntax.KindFunction,
	"function":                       syntax.KindFunction,
	"function_expression":            syntax.KindFunction,
	"generator_function":             syntax.KindFunction,
	"arrow_function":                 syntax.KindFunction,
	"method_definition":              syntax.KindFunction,

	"jsx_element":              syntax.KindMarkup,
	"jsx_self_closing_element": syntax.KindMarkup,
	"jsx_fragment":             syntax.KindMarkup,
}

var logicalOps = map[string]bool{"&&": true, "||": true, "??": true}

type converter struct {
	src []byte
}

type converted struct {
	src *sitter.Node
	dst *syntax.Node
}

func (c *converter) convert(n *sitter.Node) *syntax.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "comment", "html_comment":
		return nil
	case "parenthesized_expression", "else_clause":
		return c.convert(firstNamed(n))
	}

	out := &syntax.Node{
		Kind: kindByType[n.Type()],
		Type: n.Type(),
		Span: spanOf(n),
	}

	kids := make([]converted, 0, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		dst := c.convert(child)
		if dst == nil {
			continue
		}
		out.Append(dst)
		kids = append(kids, converted{src: child, dst: dst})
	}
	field := func(name string) *syntax.Node {
		f := n.ChildByFieldName(name)
		if f == nil {
			return nil
		}
		for _, k := range kids {
			if sameNode(k.src, f) {
				return k.dst
			}
		}
		return nil
	}

	switch out.Kind {
	case syntax.KindIf, syntax.KindConditional:
		out.Test = field("condition")
		out.Consequent = field("consequence")
		out.Alternate = field("alternative")
	case syntax.KindBinary:
		if op := n.ChildByFieldName("operator"); op != nil {
			out.Operator = op.Type()
		}
		if logicalOps[out.Operator] {
			out.Kind = syntax.KindLogical
		}
	case syntax.KindSwitchCase:
		out.Test = field("value")
	case syntax.KindForIn:
		if isForOf(n) {
			out.Kind = syntax.KindForOf
		}
		out.Body = field("body")
	case syntax.KindFor, syntax.KindWhile, syntax.KindDoWhile:
		out.Test = field("condition")
		out.Body = field("body")
	case syntax.KindCatch:
		out.Body = field("body")
	case syntax.KindFunction:
		out.Name = c.functionName(n)
		out.Params = params(field)
		out.Body = field("body")
	case syntax.KindNumber:
		out.Raw = n.Content(c.src)
		out.Number = parseNumber(out.Raw)
	case syntax.KindIdentifier:
		out.Name = n.Content(c.src)
	case syntax.KindProperty:
		out.Key = field("key")
		out.Value = field("value")
	}
	return out
}

func firstNamed(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "comment" {
			return child
		}
	}
	return nil
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// spanOf converts tree-sitter's 0-based rows. A node ending at column 0
// ends on the previous line.
func spanOf(n *sitter.Node) syntax.Span {
	start, end := n.StartPoint(), n.EndPoint()
	endLine := int(end.Row) + 1
	if end.Column == 0 && end.Row > start.Row {
		endLine--
	}
	return syntax.Lines(int(start.Row)+1, endLine)
}

func isForOf(n *sitter.Node) bool {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op.Type() == "of"
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); !child.IsNamed() && child.Type() == "of" {
			return true
		}
	}
	return false
}

// functionName prefers the declared name, then the binding the function is
// assigned to. Anonymous functions get "".
func (c *converter) functionName(n *sitter.Node) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return name.Content(c.src)
	}
	parent := n.Parent()
	if parent == nil {
		return ""
	}
	var binding *sitter.Node
	switch parent.Type() {
	case "variable_declarator":
		binding = parent.ChildByFieldName("name")
	case "assignment_expression":
		binding = parent.ChildByFieldName("left")
	case "pair":
		binding = parent.ChildByFieldName("key")
	case "public_field_definition":
		binding = parent.ChildByFieldName("name")
	case "field_definition":
		binding = parent.ChildByFieldName("property")
	}
	if binding == nil {
		return ""
	}
	switch binding.Type() {
	case "identifier", "property_identifier", "private_property_identifier",
		"member_expression", "string", "number":
		return strings.Trim(binding.Content(c.src), "\"'`")
	}
	return ""
}

// params returns one node per declared parameter. Typed parameters are
// unwrapped to their identifier; destructured ones stay as they are.
func params(field func(string) *syntax.Node) []*syntax.Node {
	if single := field("parameter"); single != nil {
		return []*syntax.Node{single}
	}
	list := field("parameters")
	if list == nil {
		return nil
	}
	out := make([]*syntax.Node, 0, len(list.Children))
	for _, p := range list.Children {
		switch p.Type {
		case "required_parameter", "optional_parameter":
			out = append(out, patternOf(p))
		default:
			out = append(out, p)
		}
	}
	return out
}

func patternOf(p *syntax.Node) *syntax.Node {
	for _, c := range p.Children {
		if c.Kind == syntax.KindIdentifier {
			return c
		}
	}
	return p
}

// parseNumber reads a JS numeric literal. Literals it cannot read are
// returned as +Inf so they never count as 0, 1 or -1.
func parseNumber(raw string) float64 {
	s := strings.ReplaceAll(raw, "_", "")
	s = strings.TrimSuffix(s, "n")
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		if v, err := strconv.ParseUint(s, 0, 64); err == nil {
			return float64(v)
		}
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}
