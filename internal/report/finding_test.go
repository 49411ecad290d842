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

package report_test

import (
	"bytes"
	"errors"
	"go/token"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/fallcheck/internal/report"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := NewPrinter(&buf, true)

	require.NoError(t, p.Print(Finding{
		Pos:     token.Position{Filename: "A.java", Line: 3, Column: 9},
		Next:    token.Position{Filename: "A.java", Line: 5, Column: 7},
		Message: "message",
	}))
	require.NoError(t, p.Error(errors.New("broken")))

	assert.Equal(t, "A.java:3:9: message\n\tA.java:5:7: falls through to this case\nerror: broken\n", buf.String())
}

func TestFindingCompare(t *testing.T) {
	t.Parallel()

	at := func(file string, line, column int) Finding {
		return Finding{Pos: token.Position{Filename: file, Line: line, Column: column}}
	}

	findings := []Finding{at("b", 1, 1), at("a", 2, 5), at("a", 2, 1), at("a", 1, 9)}
	slices.SortFunc(findings, Finding.Compare)

	assert.Equal(t, []Finding{at("a", 1, 9), at("a", 2, 1), at("a", 2, 5), at("b", 1, 1)}, findings)
}
