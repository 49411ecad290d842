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

package casegroup

// Index maps the case group entry blocks of a switch statement to the
// ordinals of their case groups.
//
// The ordinal of a case group is its position in the switch statement.
// Blocks entering the same case group share one entry.
type Index[B, G comparable] struct {
	groups  []G
	ordinal map[B]int
	entries []entry[B]
}

// entry lists all blocks entering the case group with the given ordinal.
type entry[B comparable] struct {
	ordinal int
	blocks  []B
}

// NewIndex builds an [Index] for the direct successors of g's entry block.
//
// Only successors entering one of groups are included. Blocks of case groups
// belonging to other constructs, like a nested switch sharing the entry
// block, are ignored.
func NewIndex[B, G comparable](g Graph[B, G], groups []G) *Index[B, G] {
	ordinals := make(map[G]int, len(groups))
	for i, group := range groups {
		if _, ok := ordinals[group]; !ok {
			ordinals[group] = i
		}
	}

	x := &Index[B, G]{
		groups:  groups,
		ordinal: make(map[B]int, len(groups)),
	}

	pos := make(map[int]int, len(groups)) // ordinal -> index into entries

	for b := range g.Successors(g.Entry()) {
		if _, ok := x.ordinal[b]; ok {
			continue
		}

		group, ok := g.CaseGroup(b)
		if !ok {
			continue
		}

		ord, ok := ordinals[group]
		if !ok {
			continue // not a case group of this switch
		}

		x.ordinal[b] = ord

		if i, ok := pos[ord]; ok {
			x.entries[i].blocks = append(x.entries[i].blocks, b)
			continue
		}

		pos[ord] = len(x.entries)
		x.entries = append(x.entries, entry[B]{ordinal: ord, blocks: []B{b}})
	}

	return x
}

// Len returns the number of distinct case groups in the index.
func (x *Index[B, G]) Len() int {
	return len(x.entries)
}

// Lookup returns the ordinal of the case group entered by b.
func (x *Index[B, G]) Lookup(b B) (ordinal int, ok bool) {
	ordinal, ok = x.ordinal[b]

	return ordinal, ok
}

// Group returns the case group with the given ordinal.
func (x *Index[B, G]) Group(ordinal int) G {
	return x.groups[ordinal]
}
