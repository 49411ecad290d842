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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/fallcheck/internal/run"
)

const (
	name = "fallcheck"
	doc  = `fallcheck reports unintentional switch case fall-through

A case ending in a reachable fallthrough statement is reported unless a
comment like "// falls through" in the case body or right before the next
case marks it as intended. Cases consisting of a single fallthrough are
accepted by default.`
	url = "https://pkg.go.dev/fillmore-labs.com/fallcheck"
)

// New returns a fall-through analyzer configured by opts. Flags registered on
// the analyzer start from the configured values.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer reports fall-through with the default settings.
var Analyzer = New()
