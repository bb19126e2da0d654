// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package syntax defines the tree shape the analysis engine consumes.
//
// A front end (see internal/adapter/parser) normalizes a concrete grammar into
// these nodes. Only the kinds the engine reasons about are distinguished; every
// other construct is KindOther and is still walked.
package syntax

type Kind uint8

const (
	KindOther Kind = iota
	KindProgram
	KindBlock
	KindStatement
	KindReturn
	KindIf
	KindConditional
	KindLogical
	KindBinary
	KindSwitchCase
	KindFor
	KindForIn
	KindForOf
	KindWhile
	KindDoWhile
	KindCatch
	KindFunction
	KindNumber
	KindIdentifier
	KindMember
	KindArray
	KindProperty
	KindMarkup

	kindCount
)

var kindNames = [...]string{
	KindOther:       "other",
	KindProgram:     "program",
	KindBlock:       "block",
	KindStatement:   "statement",
	KindReturn:      "return",
	KindIf:          "if",
	KindConditional: "conditional",
	KindLogical:     "logical",
	KindBinary:      "binary",
	KindSwitchCase:  "switch-case",
	KindFor:         "for",
	KindForIn:       "for-in",
	KindForOf:       "for-of",
	KindWhile:       "while",
	KindDoWhile:     "do-while",
	KindCatch:       "catch",
	KindFunction:    "function",
	KindNumber:      "number",
	KindIdentifier:  "identifier",
	KindMember:      "member",
	KindArray:       "array",
	KindProperty:    "property",
	KindMarkup:      "markup",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "other"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	*k = KindOther
	return nil
}

// IsLoop reports whether k is one of the loop constructs.
func (k Kind) IsLoop() bool {
	switch k {
	case KindFor, KindForIn, KindForOf, KindWhile, KindDoWhile:
		return true
	}
	return false
}

// Span is the inclusive, 1-based line range of a node. Zero means unknown.
type Span struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

// Lines returns the number of lines covered, or 0 when the span is unknown.
func (s Span) Lines() int {
	if s.StartLine <= 0 || s.EndLine < s.StartLine {
		return 0
	}
	return s.EndLine - s.StartLine + 1
}

// Node is one syntax tree node.
//
// The kind-specific fields point at nodes that are also present in Children;
// they are shortcuts, not separate subtrees. Parent is a back-reference used
// for positional lookups only.
type Node struct {
	Kind Kind
	// Type is the grammar's own name for the construct, kept for diagnostics.
	Type string
	Span Span

	Operator string
	Name     string
	Number   float64
	Raw      string

	Test       *Node
	Consequent *Node
	Alternate  *Node
	Body       *Node
	Params     []*Node
	Key        *Node
	Value      *Node

	Children []*Node
	Parent   *Node
}

// New creates a node and adopts the non-nil children.
func New(kind Kind, span Span, children ...*Node) *Node {
	n := &Node{Kind: kind, Span: span}
	n.Append(children...)
	return n
}

// Append adds the non-nil children in order and sets their parent.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Parent = n
		n.Children = append(n.Children, c)
	}
}

func (n *Node) Line() int {
	if n == nil {
		return 0
	}
	return n.Span.StartLine
}

// ParentKind returns the kind of the parent, or KindOther at the root.
func (n *Node) ParentKind() Kind {
	if n == nil || n.Parent == nil {
		return KindOther
	}
	return n.Parent.Kind
}

// IsDefaultCase reports whether n is a switch case without a test.
func (n *Node) IsDefaultCase() bool {
	return n != nil && n.Kind == KindSwitchCase && n.Test == nil
}

// IsShortCircuit reports whether n is a logical AND/OR. Nullish coalescing
// is a logical node too but does not branch control flow here.
func (n *Node) IsShortCircuit() bool {
	return n != nil && n.Kind == KindLogical && (n.Operator == "&&" || n.Operator == "||")
}

// IsEarlyReturn reports whether n is an if-statement without else whose
// consequent is exactly one return statement, bare or wrapped in a block.
func (n *Node) IsEarlyReturn() bool {
	if n == nil || n.Kind != KindIf || n.Alternate != nil || n.Consequent == nil {
		return false
	}
	body := n.Consequent
	if body.Kind == KindReturn {
		return true
	}
	return body.Kind == KindBlock && len(body.Children) == 1 && body.Children[0].Kind == KindReturn
}

// Walk calls fn for n and its descendants in depth-first order until fn
// returns false for a subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
