// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
)

type grammar int

const (
	grammarJS grammar = iota
	grammarTS
	grammarTSX
)

var grammarByExt = map[string]grammar{
	".js":  grammarJS,
	".mjs": grammarJS,
	".cjs": grammarJS,
	".jsx": grammarJS,
	".ts":  grammarTS,
	".mts": grammarTS,
	".cts": grammarTS,
	".tsx": grammarTSX,
}

// Extensions lists every file extension the parser accepts.
func Extensions() []string {
	return []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".mts", ".cts", ".tsx"}
}

// JSParser turns JavaScript, TypeScript and their JSX variants into the
// engine's syntax tree.
type JSParser struct{}

func NewJSParser() *JSParser {
	return &JSParser{}
}

var _ ports.SyntaxParser = (*JSParser)(nil)

func (p *JSParser) Name() string {
	return "javascript"
}

func (p *JSParser) SupportsFile(path string) bool {
	_, ok := grammarByExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (p *JSParser) Parse(ctx context.Context, path string, src []byte) (*syntax.Node, error) {
	g, ok := grammarByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// sitter parsers are not safe for concurrent use; one per call
	sp := sitter.NewParser()
	defer sp.Close()
	sp.SetLanguage(languageFor(g))

	tree, err := sp.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%s: %w: empty tree", path, ErrSyntax)
	}
	if root.HasError() {
		return nil, fmt.Errorf("%s:%d: %w", path, firstErrorLine(root), ErrSyntax)
	}

	c := &converter{src: src}
	out := c.convert(root)
	if out == nil {
		out = syntax.Program(syntax.Span{})
	}
	// the root span covers the whole file, leading comments and blank lines included
	out.Span = syntax.Lines(1, lineCount(src))
	if len(src) == 0 {
		out.Span = syntax.Span{}
	}
	return out, nil
}

func languageFor(g grammar) *sitter.Language {
	switch g {
	case grammarTS:
		return typescript.GetLanguage()
	case grammarTSX:
		return tsx.GetLanguage()
	}
	return javascript.GetLanguage()
}

func lineCount(src []byte) int {
	if len(src) == 0 {
		return 0
	}
	n := bytes.Count(src, []byte{'\n'})
	if src[len(src)-1] != '\n' {
		n++
	}
	return n
}

func firstErrorLine(n *sitter.Node) int {
	if n.IsError() || n.IsMissing() {
		return int(n.StartPoint().Row) + 1
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if line := firstErrorLine(child); line > 0 {
			return line
		}
	}
	return int(n.StartPoint().Row) + 1
}
