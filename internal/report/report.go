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

package report

import (
	"context"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/fallcheck/internal/astutil"
	"fillmore-labs.com/fallcheck/internal/casegroup"
	"fillmore-labs.com/fallcheck/internal/config"
)

// Message is the diagnostic message of a case falling through to the next case.
const Message = "End this switch case with an unconditional break, return or panic"

// FixComment is appended to the final statement of a case by the suggested fix.
const FixComment = " // falls through"

// Switch emits diagnostics for the case clauses of a switch statement falling through.
//
// Each diagnostic is anchored at the last label of the falling case and points to the next case.
// Cases consisting only of a fallthrough statement are reported when [config.ReportEmpty] is set.
func Switch(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile,
	pairs []casegroup.Pair[*ast.CaseClause], option config.Behavior,
) {
	if len(pairs) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	reportEmpty := option.Enabled(config.ReportEmpty)
	fix := !currentFile.Generated()

	for _, pair := range pairs {
		clause, next := pair.Group, pair.Next

		if !reportEmpty && astutil.OnlyFallthrough(clause) {
			continue
		}

		pos, end := Anchor(clause)

		diagnostic := analysis.Diagnostic{
			Pos:     pos,
			End:     end,
			Message: Message,
			Related: []analysis.RelatedInformation{{Pos: next.Case, Message: "Falls through to this case"}},
		}

		if fix {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   "Mark fall-through as intentional",
				TextEdits: []analysis.TextEdit{markEdit(clause)},
			}}
		}

		p.Report(diagnostic)
	}
}

// Anchor returns the range of the last label of a case clause.
// For the default case this is the default keyword.
func Anchor(clause *ast.CaseClause) (pos, end token.Pos) {
	if n := len(clause.List); n > 0 {
		last := clause.List[n-1]

		return last.Pos(), last.End()
	}

	return clause.Case, clause.Case + token.Pos(len(token.DEFAULT.String()))
}

func markEdit(clause *ast.CaseClause) analysis.TextEdit {
	pos := clause.Colon + 1
	if n := len(clause.Body); n > 0 {
		pos = clause.Body[n-1].End()
	}

	return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte(FixComment)}
}
