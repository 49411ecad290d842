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

import "fmt"

// Branch is the kind of an unconditional jump.
type Branch uint8

const (
	// Break leaves the innermost loop, switch or select, or the labeled statement.
	Break Branch = iota

	// Continue starts the next iteration of the innermost or labeled loop.
	Continue

	// Fallthrough transfers control to the next case body.
	Fallthrough

	// Goto jumps to a labeled statement.
	Goto

	// Yield leaves a switch expression with a value.
	Yield
)

func (k Branch) String() string {
	switch k {
	case Break:
		return "break"

	case Continue:
		return "continue"

	case Fallthrough:
		return "fallthrough"

	case Goto:
		return "goto"

	case Yield:
		return "yield"

	default:
		return fmt.Sprintf("branch(%d)", uint8(k))
	}
}

// Targets maintains the current branch targets representing nested
// control structures (loops, switches, selects).
//
// A nil target means the jump leaves the graph.
type Targets[G comparable] struct {
	current [Yield + 1]*Block[G]
}

// Target returns the block an unlabeled jump of the given kind transfers control to.
func (s *Targets[G]) Target(kind Branch) *Block[G] {
	if kind == Goto {
		panic("goto requires a label")
	}

	return s.current[kind]
}

// Push sets the current branch target for kind, returning the old.
func (s *Targets[G]) Push(kind Branch, b *Block[G]) (old *Block[G]) {
	old, s.current[kind] = s.current[kind], b

	return old
}

// Pop restores the previous branch target for kind.
func (s *Targets[G]) Pop(kind Branch, old *Block[G]) {
	s.current[kind] = old
}
