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

import "iter"

// Graph is a read-only view of the control-flow graph of a single switch statement.
//
// B is the block type and G the case group type. Both are compared by identity.
type Graph[B, G comparable] interface {
	// Entry returns the switch's entry block. Its successors are the case group entries.
	Entry() B

	// Successors yields the direct successors of b.
	Successors(b B) iter.Seq[B]

	// Predecessors yields the direct predecessors of b.
	Predecessors(b B) iter.Seq[B]

	// CaseGroup returns the case group b enters, if any.
	CaseGroup(b B) (G, bool)
}
