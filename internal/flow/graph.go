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

package flow

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"fillmore-labs.com/fallcheck/internal/casegroup"
)

// Graph is the control-flow graph of a single switch statement.
//
// The successors of the entry block are the entries of the switch's case
// groups and, when there is no default case, the exit block.
type Graph[G comparable] struct {
	entry, exit *Block[G]
	blocks      []*Block[G]
}

var _ casegroup.Graph[*Block[int], int] = (*Graph[int])(nil)

// NewGraph creates a [Graph] from its entry and exit blocks and the list of all blocks.
func NewGraph[G comparable](entry, exit *Block[G], blocks []*Block[G]) *Graph[G] {
	return &Graph[G]{entry: entry, exit: exit, blocks: blocks}
}

// Entry returns the synthetic entry block of the switch statement.
func (g *Graph[G]) Entry() *Block[G] { return g.entry }

// Exit returns the block following the switch statement.
func (g *Graph[G]) Exit() *Block[G] { return g.exit }

// Blocks returns all blocks in creation order.
func (g *Graph[G]) Blocks() []*Block[G] { return g.blocks }

// Successors implements [casegroup.Graph].
func (*Graph[G]) Successors(b *Block[G]) iter.Seq[*Block[G]] { return slices.Values(b.Succs) }

// Predecessors implements [casegroup.Graph].
func (*Graph[G]) Predecessors(b *Block[G]) iter.Seq[*Block[G]] { return slices.Values(b.Preds) }

// CaseGroup implements [casegroup.Graph].
func (*Graph[G]) CaseGroup(b *Block[G]) (G, bool) { return b.CaseGroup() }

// String returns a textual representation of the graph for debugging.
func (g *Graph[G]) String() string {
	index := make(map[*Block[G]]int, len(g.blocks))
	for i, b := range g.blocks {
		index[b] = i
	}

	var sb strings.Builder

	for i, b := range g.blocks {
		switch b {
		case g.entry:
			sb.WriteString("entry ")

		case g.exit:
			sb.WriteString("exit ")
		}

		fmt.Fprintf(&sb, "%d", i)

		if _, ok := b.CaseGroup(); ok {
			sb.WriteString(" (case)")
		}

		sb.WriteString(" ->")

		for _, s := range b.Succs {
			fmt.Fprintf(&sb, " %d", index[s])
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
