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

package astutil

import (
	"go/ast"
	"go/token"
)

// CaseClauses returns the case clauses of a switch statement in source order.
func CaseClauses(stmt *ast.SwitchStmt) []*ast.CaseClause {
	clauses := make([]*ast.CaseClause, 0, len(stmt.Body.List))
	for _, s := range stmt.Body.List {
		if clause, ok := s.(*ast.CaseClause); ok {
			clauses = append(clauses, clause)
		}
	}

	return clauses
}

// HasFallthrough reports whether any clause of the switch ends with a fallthrough statement.
func HasFallthrough(clauses []*ast.CaseClause) bool {
	for _, clause := range clauses {
		if EndsWithFallthrough(clause) {
			return true
		}
	}

	return false
}

// EndsWithFallthrough reports whether the final statement of the clause is a fallthrough statement.
func EndsWithFallthrough(clause *ast.CaseClause) bool {
	if len(clause.Body) == 0 {
		return false
	}

	return isFallthrough(clause.Body[len(clause.Body)-1])
}

// OnlyFallthrough reports whether the clause consists of nothing but a fallthrough statement.
func OnlyFallthrough(clause *ast.CaseClause) bool {
	return len(clause.Body) == 1 && isFallthrough(clause.Body[0])
}

func isFallthrough(stmt ast.Stmt) bool {
	for {
		switch s := stmt.(type) {
		case *ast.LabeledStmt:
			stmt = s.Stmt

		case *ast.BranchStmt:
			return s.Tok == token.FALLTHROUGH

		default:
			return false
		}
	}
}
