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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"iter"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/fallcheck/internal/astutil"
	"fillmore-labs.com/fallcheck/internal/casegroup"
	"fillmore-labs.com/fallcheck/internal/config"
	"fillmore-labs.com/fallcheck/internal/gocfg"
	"fillmore-labs.com/fallcheck/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the fallcheck analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("fallcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "FallCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		for stmt := range switches(f) {
			if currentFile.NoLintComment(stmt.Pos()) {
				continue
			}

			r.checkSwitch(ctx, p, currentFile, stmt)
		}
	}

	return nil, nil
}

// switches yields the switch statements of a file, skipping functions with a nolint comment.
func switches(f inspector.Cursor) iter.Seq[*ast.SwitchStmt] {
	return func(yield func(*ast.SwitchStmt) bool) {
		done := false

		f.Inspect([]ast.Node{(*ast.FuncDecl)(nil), (*ast.SwitchStmt)(nil)}, func(c inspector.Cursor) (descend bool) {
			if done {
				return false
			}

			switch n := c.Node().(type) {
			case *ast.FuncDecl:
				// Skip functions with nolint comment
				return n.Body != nil && !astutil.DocHasNoLint(n.Doc)

			case *ast.SwitchStmt:
				done = !yield(n)

				return !done

			default:
				return true
			}
		})
	}
}

// checkSwitch analyzes a single switch statement.
func (r *Options) checkSwitch(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, stmt *ast.SwitchStmt) {
	clauses := astutil.CaseClauses(stmt)

	// Go cases only fall through with an explicit statement
	if !astutil.HasFallthrough(clauses) {
		return
	}

	if len(clauses) != len(stmt.Body.List) {
		astutil.InternalError(p, stmt, "Switch with %d statements but %d case clauses", len(stmt.Body.List), len(clauses))

		return
	}

	g := gocfg.Build(ctx, p.TypesInfo, stmt)

	trivia := func(clause, next *ast.CaseClause) iter.Seq[string] {
		// the body of the falling case, including comments before the next label
		return currentFile.Comments(clause.Colon+1, next.Case)
	}

	pairs := casegroup.Check(g, clauses, trivia, r.Pattern)

	report.Switch(ctx, p, currentFile, pairs, r.Behavior)
}
