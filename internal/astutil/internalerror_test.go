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

package astutil_test

import (
	"go/ast"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/fallcheck/internal/astutil"
)

func TestInternalError(t *testing.T) {
	t.Parallel()

	var got []analysis.Diagnostic

	p := &analysis.Pass{Report: func(d analysis.Diagnostic) { got = append(got, d) }}
	node := &ast.Ident{NamePos: 10, Name: "sw"}

	InternalError(p, node, "Switch with %d statements but %d case clauses", 3, 2)

	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, expected 1", len(got))
	}

	d := got[0]
	if d.Pos != node.Pos() || d.End != node.End() {
		t.Errorf("Got range %d-%d, expected %d-%d", d.Pos, d.End, node.Pos(), node.End())
	}

	if d.Category != InternalCategory {
		t.Errorf("Got category %q, expected %q", d.Category, InternalCategory)
	}

	if want := "Internal Error: Switch with 3 statements but 2 case clauses"; d.Message != want {
		t.Errorf("Got message %q, expected %q", d.Message, want)
	}
}
