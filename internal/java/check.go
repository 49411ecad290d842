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
	"iter"
	"regexp"
	"runtime/trace"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/fallcheck/internal/casegroup"
	"fillmore-labs.com/fallcheck/internal/report"
)

// Message is the message of a case group falling through to the next group.
const Message = "End this switch case with an unconditional break, return or throw statement."

// Checker reports case groups falling through in Java sources.
type Checker struct {
	pattern *regexp.Regexp
}

// NewChecker creates a [Checker]. A nil pattern selects [casegroup.DefaultPattern].
func NewChecker(pattern *regexp.Regexp) *Checker {
	return &Checker{pattern: pattern}
}

// Check reports all case groups of src falling through to the next group, in source order.
func (c *Checker) Check(ctx context.Context, src *Source) []report.Finding {
	defer trace.StartRegion(ctx, "Check").End()

	root := src.Root()

	var (
		findings []report.Finding
		comments []*sitter.Node
	)

	for sw := range Switches(root) {
		if comments == nil {
			comments = collectComments(root)
		}

		g := Build(ctx, src, sw)

		trivia := func(group, next int) iter.Seq[string] {
			// comments after the last label of group and before the next group
			start, end := sw.Groups[group].LastLabel().EndByte(), sw.Groups[next].Labels[0].StartByte()

			return commentsBetween(src, comments, start, end)
		}

		ordinals := make([]int, len(sw.Groups))
		for i := range ordinals {
			ordinals[i] = i
		}

		for _, pair := range casegroup.Check(g, ordinals, trivia, c.pattern) {
			findings = append(findings, report.Finding{
				Pos:     src.Position(sw.Groups[pair.Group].LastLabel()),
				Next:    src.Position(sw.Groups[pair.Next].Labels[0]),
				Message: Message,
			})
		}
	}

	slices.SortStableFunc(findings, report.Finding.Compare)

	return findings
}

// collectComments returns all comment nodes in document order.
func collectComments(root *sitter.Node) []*sitter.Node {
	var comments []*sitter.Node

	for n := range preorder(root, true) {
		if isComment(n) {
			comments = append(comments, n)
		}
	}

	// ordered by offset for binary search
	slices.SortStableFunc(comments, func(a, b *sitter.Node) int { return int(a.StartByte()) - int(b.StartByte()) })

	return comments
}

// commentsBetween yields the text of comments starting in [start, end).
func commentsBetween(src *Source, comments []*sitter.Node, start, end uint32) iter.Seq[string] {
	return func(yield func(string) bool) {
		i, _ := slices.BinarySearchFunc(comments, start,
			func(n *sitter.Node, offset uint32) int { return int(n.StartByte()) - int(offset) })

		for _, n := range comments[i:] {
			if n.StartByte() >= end {
				return
			}

			if !yield(src.Text(n)) {
				return
			}
		}
	}
}
