// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package traverse walks a syntax tree once and dispatches every node to the
// handlers registered for its kind.
package traverse

import "github.com/rafaelvolkmer/stylerank/internal/domain/syntax"

const (
	stackInitCap = 64
)

// Handler receives a node before (Enter) and after (Exit) its children.
type Handler interface {
	Enter(n *syntax.Node, sc *Scope)
	Exit(n *syntax.Node, sc *Scope)
}

// ScopeHandler is implemented by handlers that keep per-function state.
// EnterScope runs before the function node's Enter, ExitScope after its Exit.
// The file scope is opened before the root and closed after it.
type ScopeHandler interface {
	EnterScope(sc *Scope)
	ExitScope(sc *Scope)
}

// Scope is one function (or the file) enclosing the current node.
type Scope struct {
	Node   *syntax.Node
	Parent *Scope
	Depth  int
}

// FunctionName returns the enclosing function's name, "" at file level or
// inside an anonymous function.
func (s *Scope) FunctionName() string {
	if s == nil || s.Node == nil {
		return ""
	}
	return s.Node.Name
}

// IsFile reports whether s is the file scope.
func (s *Scope) IsFile() bool {
	return s == nil || s.Node == nil
}

type entry struct {
	handler Handler
	scoped  ScopeHandler
	kinds   uint64
}

func (e entry) wants(k syntax.Kind) bool {
	return e.kinds == 0 || e.kinds&(1<<k) != 0
}

// Walker is a single-pass, multi-handler traversal. Handlers are dispatched in
// registration order. A Walker holds no per-walk state and may be reused.
type Walker struct {
	entries []entry
}

func New() *Walker {
	return &Walker{}
}

// Register adds h for the given kinds; no kinds means every node. If h also
// implements ScopeHandler it is told about every scope regardless of kinds.
func (w *Walker) Register(h Handler, kinds ...syntax.Kind) {
	var mask uint64
	for _, k := range kinds {
		mask |= 1 << k
	}
	e := entry{handler: h, kinds: mask}
	if sh, ok := h.(ScopeHandler); ok {
		e.scoped = sh
	}
	w.entries = append(w.entries, e)
}

type frame struct {
	node     *syntax.Node
	scope    *Scope
	childIdx int // -1 until Enter has fired
	opened   bool
}

// Walk visits every node of root exactly once, depth first, iteratively.
func (w *Walker) Walk(root *syntax.Node) {
	if root == nil || len(w.entries) == 0 {
		return
	}

	file := &Scope{}
	w.enterScope(file)

	stack := make([]frame, 0, stackInitCap)
	stack = append(stack, frame{node: root, scope: file, childIdx: -1})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.childIdx == -1 {
			if top.node.Kind == syntax.KindFunction {
				top.scope = &Scope{Node: top.node, Parent: top.scope, Depth: top.scope.Depth + 1}
				top.opened = true
				w.enterScope(top.scope)
			}
			w.enter(top.node, top.scope)
			top.childIdx = 0
		}

		if top.childIdx < len(top.node.Children) {
			child := top.node.Children[top.childIdx]
			top.childIdx++
			if child == nil {
				continue
			}
			stack = append(stack, frame{node: child, scope: top.scope, childIdx: -1})
			continue
		}

		w.exit(top.node, top.scope)
		if top.opened {
			w.exitScope(top.scope)
		}
		stack = stack[:len(stack)-1]
	}

	w.exitScope(file)
}

func (w *Walker) enter(n *syntax.Node, sc *Scope) {
	for _, e := range w.entries {
		if e.wants(n.Kind) {
			e.handler.Enter(n, sc)
		}
	}
}

func (w *Walker) exit(n *syntax.Node, sc *Scope) {
	for _, e := range w.entries {
		if e.wants(n.Kind) {
			e.handler.Exit(n, sc)
		}
	}
}

func (w *Walker) enterScope(sc *Scope) {
	for _, e := range w.entries {
		if e.scoped != nil {
			e.scoped.EnterScope(sc)
		}
	}
}

func (w *Walker) exitScope(sc *Scope) {
	for _, e := range w.entries {
		if e.scoped != nil {
			e.scoped.ExitScope(sc)
		}
	}
}

// Funcs adapts plain functions to Handler. Nil funcs are skipped.
type Funcs struct {
	OnEnter func(n *syntax.Node, sc *Scope)
	OnExit  func(n *syntax.Node, sc *Scope)
}

func (f Funcs) Enter(n *syntax.Node, sc *Scope) {
	if f.OnEnter != nil {
		f.OnEnter(n, sc)
	}
}

func (f Funcs) Exit(n *syntax.Node, sc *Scope) {
	if f.OnExit != nil {
		f.OnExit(n, sc)
	}
}
