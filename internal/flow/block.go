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
	"go/token"
	"slices"
)

// Block represents a [basic block] in the [control-flow graph] of a switch statement.
// It is a sequence of statements with a single entry and exit point.
//
// G is the type identifying case groups. A block entering a case group
// carries a back-reference to it.
//
// [basic block]: https://en.wikipedia.org/wiki/Basic_block
// [control-flow graph]: https://en.wikipedia.org/wiki/Control-flow_graph
type Block[G comparable] struct {
	Pos, End token.Pos // The beginning and end of the source range

	Succs, Preds []*Block[G] // Adjacent blocks in link order

	group G    // The case group entered by this block
	entry bool // Whether group is valid
}

// CaseGroup returns the case group this block enters, if any.
func (b *Block[G]) CaseGroup() (G, bool) {
	return b.group, b.entry
}

// SetCaseGroup marks this block as the entry of case group g.
func (b *Block[G]) SetCaseGroup(g G) {
	b.group, b.entry = g, true
}

// SetStart sets the start position of a block created without one.
func (b *Block[G]) SetStart(pos token.Pos) {
	if !b.Pos.IsValid() {
		b.Pos = pos
	}
}

// Node is a syntax node with a source range.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// AddNode appends a syntax node to the block, updating its source range to include the node's range.
func (b *Block[G]) AddNode(n Node) {
	b.Update(n.Pos(), n.End())
}

// Update extends the source range of the block.
func (b *Block[G]) Update(pos, end token.Pos) {
	if !b.Pos.IsValid() || pos < b.Pos {
		b.Pos = pos
	}

	if end > b.End {
		b.End = end
	}
}

// Link adds an edge from b to succ. Nil successors and duplicate edges are ignored.
func (b *Block[G]) Link(succ *Block[G]) {
	if b == nil || succ == nil || slices.Contains(b.Succs, succ) {
		return
	}

	b.Succs = append(b.Succs, succ)
	succ.Preds = append(succ.Preds, b)
}

// LinkBranch adds edges for a conditional branch.
func (b *Block[G]) LinkBranch(then, els *Block[G]) {
	b.Link(then)
	b.Link(els)
}
