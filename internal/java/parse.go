// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"context"
	"go/token"
	"iter"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// ErrSyntax is returned for sources that do not parse.
var ErrSyntax = errors.New("syntax error")

// Parser parses Java sources. A Parser must not be used concurrently.
type Parser struct {
	parser *sitter.Parser
	fset   *token.FileSet
}

// NewParser creates a [Parser] recording source positions in fset.
func NewParser(fset *token.FileSet) *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	return &Parser{parser: parser, fset: fset}
}

// Close releases the resources of the parser.
func (p *Parser) Close() {
	p.parser.Close()
}

// Parse parses a Java compilation unit.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*Source, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, errors.Wrapf(err, "can't parse %s", path)
	}

	file := p.fset.AddFile(path, -1, len(content))
	file.SetLinesForContent(content)

	src := &Source{content: content, file: file, tree: tree}

	if root := tree.RootNode(); root.HasError() {
		pos := src.Position(firstError(root))

		tree.Close()

		return nil, errors.Wrapf(ErrSyntax, "%s", pos)
	}

	return src, nil
}

// Source is a parsed Java compilation unit.
type Source struct {
	content []byte
	file    *token.File
	tree    *sitter.Tree
}

// Root returns the root node of the syntax tree.
func (s *Source) Root() *sitter.Node {
	return s.tree.RootNode()
}

// Close releases the syntax tree.
func (s *Source) Close() {
	s.tree.Close()
}

// Pos returns the position of a node's first byte.
func (s *Source) Pos(n *sitter.Node) token.Pos {
	return s.file.Pos(int(n.StartByte()))
}

// End returns the position immediately after a node.
func (s *Source) End(n *sitter.Node) token.Pos {
	return s.file.Pos(int(n.EndByte()))
}

// Position returns the file, line and column of a node.
func (s *Source) Position(n *sitter.Node) token.Position {
	return s.file.Position(s.Pos(n))
}

// Text returns the source text of a node.
func (s *Source) Text(n *sitter.Node) string {
	return n.Content(s.content)
}

// firstError returns the first node in document order that is an error or missing.
func firstError(root *sitter.Node) *sitter.Node {
	for n := range preorder(root, false) {
		if n.Type() == "ERROR" || n.IsMissing() {
			return n
		}
	}

	return root
}

// preorder yields n and its descendants in document order, optionally only named ones.
func preorder(n *sitter.Node, named bool) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		walk(n, named, yield)
	}
}

func walk(n *sitter.Node, named bool, yield func(*sitter.Node) bool) bool {
	if !yield(n) {
		return false
	}

	count := int(n.ChildCount())
	if named {
		count = int(n.NamedChildCount())
	}

	for i := range count {
		var c *sitter.Node
		if named {
			c = n.NamedChild(i)
		} else {
			c = n.Child(i)
		}

		if c != nil && !walk(c, named, yield) {
			return false
		}
	}

	return true
}

// children yields the named children of n that are not comments.
func children(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c == nil || isComment(c) {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment", "comment":
		return true

	default:
		return false
	}
}

// hasToken reports whether n has a direct anonymous child of the given type.
func hasToken(n *sitter.Node, typ string) bool {
	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c != nil && !c.IsNamed() && c.Type() == typ {
			return true
		}
	}

	return false
}
