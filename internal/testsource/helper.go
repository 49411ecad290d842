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

// Package testsource provides utilities for parsing and type-checking Go switch statements in tests.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is wrapped in a function body `func _(x int) { ... }`
// within a package `test`, so fragments can switch on x without declaring it.
//
// It returns the first switch statement of the fragment.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, stmt *ast.SwitchStmt) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, wrapSource(src), parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	stmt = firstSwitch(f)
	if stmt == nil {
		tb.Fatal("Can't find switch statement")
	}

	return fset, f, stmt
}

// Check type-checks the parsed file and returns the package and type information.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Clauses returns the case clauses of a switch statement.
func Clauses(stmt *ast.SwitchStmt) []*ast.CaseClause {
	clauses := make([]*ast.CaseClause, 0, len(stmt.Body.List))
	for _, s := range stmt.Body.List {
		clauses = append(clauses, s.(*ast.CaseClause))
	}

	return clauses
}

func wrapSource(src string) *bytes.Buffer {
	const (
		header     = "package " + testpkg + "\n\nfunc _(x int) {\n"
		suffix     = "\n}"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}

func firstSwitch(f *ast.File) *ast.SwitchStmt {
	for c := range inspector.New([]*ast.File{f}).Root().Preorder((*ast.SwitchStmt)(nil)) {
		return c.Node().(*ast.SwitchStmt)
	}

	return nil
}
