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
	"iter"

	sitter "github.com/smacker/go-tree-sitter"
)

// Switch is a switch statement or expression with colon-style case groups.
type Switch struct {
	Node   *sitter.Node
	Groups []Group
}

// Group is a case group: one or more labels followed by the statements they select.
type Group struct {
	Node   *sitter.Node   // First switch_block_statement_group
	Labels []*sitter.Node // switch_label nodes, at least one
	Body   []*sitter.Node // Statements
}

// Default reports whether one of the labels is default.
func (g Group) Default() bool {
	for _, label := range g.Labels {
		if hasToken(label, "default") {
			return true
		}
	}

	return false
}

// LastLabel returns the final label of the group.
func (g Group) LastLabel() *sitter.Node {
	return g.Labels[len(g.Labels)-1]
}

func isSwitch(n *sitter.Node) bool {
	switch n.Type() {
	case "switch_expression", "switch_statement":
		return true

	default:
		return false
	}
}

// Switches yields all switches with case groups below root, outer switches first.
// Switches using arrow-style rules can't fall through and are skipped.
func Switches(root *sitter.Node) iter.Seq[Switch] {
	return func(yield func(Switch) bool) {
		for n := range preorder(root, true) {
			if !isSwitch(n) {
				continue
			}

			if sw, ok := newSwitch(n); ok && !yield(sw) {
				return
			}
		}
	}
}

// newSwitch collects the case groups of a switch node.
func newSwitch(n *sitter.Node) (Switch, bool) {
	groups := caseGroups(n)
	if len(groups) == 0 {
		return Switch{}, false
	}

	return Switch{Node: n, Groups: groups}, true
}

func caseGroups(n *sitter.Node) []Group {
	block := n.ChildByFieldName("body")
	if block == nil {
		return nil
	}

	var (
		groups []Group
		g      Group
	)

	for c := range children(block) {
		if c.Type() != "switch_block_statement_group" {
			continue
		}

		if g.Node == nil {
			g.Node = c
		}

		for s := range children(c) {
			if s.Type() == "switch_label" {
				g.Labels = append(g.Labels, s)
			} else {
				g.Body = append(g.Body, s)
			}
		}

		// labels without statements belong to the next group
		if len(g.Labels) > 0 && len(g.Body) > 0 {
			groups = append(groups, g)
			g = Group{}
		}
	}

	if len(g.Labels) > 0 {
		groups = append(groups, g)
	}

	return groups
}

// caseRules returns the arrow-style rules of a switch node.
func caseRules(n *sitter.Node) []*sitter.Node {
	block := n.ChildByFieldName("body")
	if block == nil {
		return nil
	}

	var rules []*sitter.Node

	for c := range children(block) {
		if c.Type() == "switch_rule" {
			rules = append(rules, c)
		}
	}

	return rules
}
