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

// LabelTarget represents the control flow targets for a labeled statement.
// A label can be the target of break, continue, or goto statements.
type LabelTarget[G comparable] struct {
	statement      *Block[G] // The labeled statement itself
	breakTarget    *Block[G] // Where to jump on 'break label'
	continueTarget *Block[G] // Where to jump on 'continue label'
}

// SetBreak sets the break target block for the labeled statement.
func (l *LabelTarget[G]) SetBreak(b *Block[G]) {
	if l != nil {
		l.breakTarget = b
	}
}

// SetContinue sets the continue target block for the labeled statement.
func (l *LabelTarget[G]) SetContinue(c *Block[G]) {
	if l != nil {
		l.continueTarget = c
	}
}

// Statement returns the block starting with the labeled statement.
func (l *LabelTarget[G]) Statement() *Block[G] {
	return l.statement
}

// Target returns the block that a labeled jump transfers control to.
// Labels of statements outside the graph have no break or continue target.
func (l *LabelTarget[G]) Target(kind Branch) *Block[G] {
	switch kind {
	case Break:
		return l.breakTarget

	case Continue:
		return l.continueTarget

	case Goto:
		return l.statement

	default:
		panic("unexpected labeled branch: " + kind.String())
	}
}

// Labels maps label names to their targets.
type Labels[G comparable] map[string]*LabelTarget[G]

// Lookup retrieves or creates a target for the given label.
// Labels referenced before their declaration get a placeholder statement block
// from newBlock, which stays without successors when the label is declared
// outside the graph.
func (ls Labels[G]) Lookup(name string, newBlock func() *Block[G]) *LabelTarget[G] {
	if target, ok := ls[name]; ok {
		return target
	}

	target := &LabelTarget[G]{statement: newBlock()}
	ls[name] = target

	return target
}
