// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package syntax

import "strconv"

// The constructors below build well-formed nodes with their shortcut fields
// set. Front ends other than the tree-sitter one can use them directly.

func At(line int) Span {
	return Span{StartLine: line, EndLine: line}
}

func Lines(start, end int) Span {
	return Span{StartLine: start, EndLine: end}
}

func Program(span Span, body ...*Node) *Node {
	n := New(KindProgram, span, body...)
	n.Type = "program"
	return n
}

func Block(span Span, stmts ...*Node) *Node {
	n := New(KindBlock, span, stmts...)
	n.Type = "statement_block"
	return n
}

// Stmt wraps an expression in an expression statement.
func Stmt(expr *Node) *Node {
	n := New(KindStatement, expr.Span, expr)
	n.Type = "expression_statement"
	return n
}

func Return(line int, arg *Node) *Node {
	n := New(KindReturn, At(line), arg)
	n.Type = "return_statement"
	return n
}

func If(span Span, test, consequent, alternate *Node) *Node {
	n := New(KindIf, span, test, consequent, alternate)
	n.Type = "if_statement"
	n.Test = test
	n.Consequent = consequent
	n.Alternate = alternate
	return n
}

func Ternary(line int, test, consequent, alternate *Node) *Node {
	n := New(KindConditional, At(line), test, consequent, alternate)
	n.Type = "ternary_expression"
	n.Test = test
	n.Consequent = consequent
	n.Alternate = alternate
	return n
}

func Logical(op string, left, right *Node) *Node {
	n := New(KindLogical, spanOf(left, right), left, right)
	n.Type = "binary_expression"
	n.Operator = op
	return n
}

func Binary(op string, left, right *Node) *Node {
	n := New(KindBinary, spanOf(left, right), left, right)
	n.Type = "binary_expression"
	n.Operator = op
	return n
}

// Case builds a switch case; a nil test makes it the default case.
func Case(line int, test *Node, body ...*Node) *Node {
	n := New(KindSwitchCase, At(line), test)
	n.Append(body...)
	n.Type = "switch_case"
	if test == nil {
		n.Type = "switch_default"
	}
	n.Test = test
	return n
}

// Loop builds any loop kind. test may be nil.
func Loop(kind Kind, span Span, test, body *Node) *Node {
	n := New(kind, span, test, body)
	n.Type = kind.String()
	n.Test = test
	n.Body = body
	return n
}

func Catch(span Span, param, body *Node) *Node {
	n := New(KindCatch, span, param, body)
	n.Type = "catch_clause"
	n.Body = body
	return n
}

// Function builds a function-like construct. An empty name is anonymous.
func Function(name string, span Span, params []*Node, body *Node) *Node {
	n := New(KindFunction, span)
	n.Type = "function_declaration"
	n.Name = name
	n.Append(params...)
	n.Append(body)
	n.Params = params
	n.Body = body
	return n
}

func Number(line int, v float64) *Node {
	n := New(KindNumber, At(line))
	n.Type = "number"
	n.Number = v
	n.Raw = strconv.FormatFloat(v, 'f', -1, 64)
	return n
}

func Ident(line int, name string) *Node {
	n := New(KindIdentifier, At(line))
	n.Type = "identifier"
	n.Name = name
	return n
}

func Member(object, property *Node) *Node {
	n := New(KindMember, spanOf(object, property), object, property)
	n.Type = "member_expression"
	return n
}

func Array(line int, elems ...*Node) *Node {
	n := New(KindArray, At(line), elems...)
	n.Type = "array"
	return n
}

func Object(line int, props ...*Node) *Node {
	n := New(KindOther, At(line), props...)
	n.Type = "object"
	return n
}

func Property(key, value *Node) *Node {
	n := New(KindProperty, spanOf(key, value), key, value)
	n.Type = "pair"
	n.Key = key
	n.Value = value
	return n
}

func Markup(span Span, children ...*Node) *Node {
	n := New(KindMarkup, span, children...)
	n.Type = "jsx_element"
	return n
}

func spanOf(first, last *Node) Span {
	var s Span
	if first != nil {
		s.StartLine = first.Span.StartLine
		s.EndLine = first.Span.EndLine
	}
	if last != nil && last.Span.EndLine > s.EndLine {
		s.EndLine = last.Span.EndLine
	}
	return s
}
