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

import "go/token"

// Factory creates and manages [Block]s in a [slab list].
//
// [slab list]: https://en.wikipedia.org/wiki/Slab_allocation
type Factory[G comparable] struct {
	start, current *chunk[G]
	count, total   int
}

// chunk is a linked list of fixed-size arrays of Blocks.
type chunk[G comparable] struct {
	blocks [ChunkSize]Block[G]
	next   *chunk[G]
}

// ChunkSize defines the number of Blocks stored in a single chunk.
const ChunkSize = 63

// New creates and returns a new *[Block] and adds it to the list of existing blocks.
func (f *Factory[G]) New(pos token.Pos) *Block[G] {
	if f.count == ChunkSize {
		f.current.next = new(chunk[G])
		f.current = f.current.next
		f.count = 0
		f.total += ChunkSize
	} else if f.current == nil {
		f.current = new(chunk[G])
		f.start = f.current
	}

	f.count++

	block := &f.current.blocks[f.count-1]
	block.Pos = pos

	return block
}

// All retrieves all Blocks managed by the Factory in creation order.
func (f *Factory[G]) All() []*Block[G] {
	if f.current == nil {
		return nil
	}

	blocks := make([]*Block[G], 0, f.count+f.total)
	for next := f.start; next != nil; next = next.next {
		n := ChunkSize
		if next == f.current {
			n = f.count
		}

		for i := range n {
			blocks = append(blocks, &next.blocks[i])
		}
	}

	return blocks
}
