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

import (
	"cmp"
	"iter"
	"slices"
)

// Pair is a case group falling through into another case group.
type Pair[G comparable] struct {
	Group, Next G   // The case group falling through and the case group reached.
	From, To    int // Ordinals of Group and Next.
}

// Compare orders pairs by source position of the case groups.
func (p Pair[G]) Compare(o Pair[G]) int {
	if c := cmp.Compare(p.From, o.From); c != 0 {
		return c
	}

	return cmp.Compare(p.To, o.To)
}

// Violations yields every case group reaching the entry of another case group
// without passing through a terminating statement.
//
// For each case group in x, the predecessors of its entry blocks are searched
// backwards. A search path ends at the first block entering a case group, which
// becomes a candidate. Blocks not entering a case group are statements inside a
// case body and are skipped over. Each case group is yielded at most once per
// next case group, and never as its own successor.
//
// Pairs are yielded in the enumeration order of the entry block's successors,
// which need not be source order.
func Violations[B, G comparable](g Graph[B, G], x *Index[B, G]) iter.Seq[Pair[G]] {
	return func(yield func(Pair[G]) bool) {
		s := search[B, G]{
			graph: g,
			index: x,
			seen:  make(map[B]struct{}),
		}

		found := make([]bool, len(x.groups))

		for _, e := range x.entries {
			clear(s.seen) // fresh visited set for every query
			clear(found)

			for _, b := range e.blocks {
				for pred := range g.Predecessors(b) {
					from, ok := s.nearest(pred)
					if !ok || from == e.ordinal || found[from] {
						continue
					}
					found[from] = true

					pair := Pair[G]{
						Group: x.Group(from),
						Next:  x.Group(e.ordinal),
						From:  from,
						To:    e.ordinal,
					}

					if !yield(pair) {
						return
					}
				}
			}
		}
	}
}

// search finds the nearest case group ancestor of a block.
//
// The stack and visited set are reused between queries.
type search[B, G comparable] struct {
	graph Graph[B, G]
	index *Index[B, G]
	seen  map[B]struct{}
	stack []B
}

// nearest performs a depth-first search over the predecessors of start and
// returns the ordinal of the first case group entry found.
func (s *search[B, G]) nearest(start B) (ordinal int, ok bool) {
	s.stack = append(s.stack[:0], start)

	for len(s.stack) > 0 {
		n := len(s.stack) - 1
		b := s.stack[n]
		s.stack = s.stack[:n]

		if ordinal, ok := s.index.Lookup(b); ok {
			return ordinal, true
		}

		if _, ok := s.seen[b]; ok {
			continue
		}
		s.seen[b] = struct{}{}

		// Push in reverse, so predecessors are visited in enumeration order
		for pred := range s.graph.Predecessors(b) {
			s.stack = append(s.stack, pred)
		}
		slices.Reverse(s.stack[n:])
	}

	return 0, false
}
