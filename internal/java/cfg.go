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
	"go/token"
	"runtime/trace"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/fallcheck/internal/flow"
)

type (
	// Block is a basic block of a Java switch. Case group entries carry the group ordinal.
	Block = flow.Block[int]

	// Graph is the control-flow graph of a Java switch.
	Graph = flow.Graph[int]

	labelTarget = flow.LabelTarget[int]
)

// Build constructs the control-flow graph of a switch.
//
// The entry block branches to the body of every case group, the body of group i
// is marked with ordinal i. Nested switches get ordinals following the groups of sw.
func Build(ctx context.Context, src *Source, sw Switch) *Graph {
	defer trace.StartRegion(ctx, "Graph").End()

	b := builder{
		src:    src,
		labels: make(flow.Labels[int]),
		next:   len(sw.Groups),
	}

	entry := b.New(src.Pos(sw.Node))
	exit := b.New(src.End(sw.Node))

	// break and yield directly in the case groups end up in the exit block,
	// continue leaves the graph.
	b.targets.Push(flow.Break, exit)
	b.targets.Push(flow.Yield, exit)

	b.appendGroups(entry, sw.Groups, exit, 0)

	return flow.NewGraph(entry, exit, b.All())
}

// builder constructs the control flow graph of a switch over tree-sitter nodes.
//
// The append* methods return the next basic block where statements should be added.
type builder struct {
	flow.Factory[int]
	src      *Source
	labels   flow.Labels[int]
	targets  flow.Targets[int]
	handlers [][]*Block // Catch clause entries of enclosing try statements, innermost last
	next     int        // Next case group ordinal for nested switches
}

// appendGroups links dispatch to the bodies of colon-style case groups.
// The end of each body falls into the next body, the last into after.
func (b *builder) appendGroups(dispatch *Block, groups []Group, after *Block, base int) {
	bodies := make([]*Block, len(groups))
	for i, g := range groups {
		bodies[i] = b.New(b.src.Pos(g.Node)) // case group body
	}

	hasDefault := false

	for i, g := range groups {
		if g.Default() {
			hasDefault = true
		}

		body := bodies[i]
		body.SetCaseGroup(base + i)

		dispatch.Link(body)

		end := b.appendStmtList(body, g.Body)

		if i+1 < len(groups) {
			end.Link(bodies[i+1]) // fall through
		} else {
			end.Link(after)
		}
	}

	if !hasDefault {
		dispatch.Link(after) // no default, switch can be skipped
	}
}

func (b *builder) appendStmtList(current *Block, list []*sitter.Node) *Block {
	for _, s := range list {
		current = b.appendStmt(current, s, nil)
	}

	return current
}

// appendStmt appends a single statement to the current block.
// labeled is the label target of a labeled statement.
func (b *builder) appendStmt(current *Block, n *sitter.Node, labeled *labelTarget) *Block {
	switch n.Type() {
	case "block":
		return b.appendStmtList(current, slices.Collect(children(n)))

	case "break_statement":
		return b.appendJump(current, n, flow.Break)

	case "continue_statement":
		return b.appendJump(current, n, flow.Continue)

	case "do_statement":
		return b.appendDoStmt(current, n, labeled)

	case "enhanced_for_statement":
		return b.appendEnhancedForStmt(current, n, labeled)

	case "expression_statement":
		if e := n.NamedChild(0); e != nil && isSwitch(e) {
			return b.appendSwitch(current, e, labeled)
		}

		b.add(current, n)

		return current

	case "for_statement":
		return b.appendForStmt(current, n, labeled)

	case "if_statement":
		return b.appendIfStmt(current, n)

	case "labeled_statement":
		return b.appendLabeledStmt(current, n)

	case "return_statement":
		b.add(current, n)

		return b.New(b.src.End(n)) // unreachable after return

	case "switch_expression", "switch_statement":
		return b.appendSwitch(current, n, labeled)

	case "synchronized_statement":
		b.add(current, n.ChildByFieldName("lock"))

		return b.appendStmt(current, n.ChildByFieldName("body"), nil)

	case "throw_statement":
		b.add(current, n)

		if len(b.handlers) > 0 {
			for _, h := range b.handlers[len(b.handlers)-1] {
				current.Link(h)
			}
		}

		return b.New(b.src.End(n)) // unreachable after throw

	case "try_statement", "try_with_resources_statement":
		return b.appendTryStmt(current, n)

	case "while_statement":
		return b.appendWhileStmt(current, n, labeled)

	case "yield_statement":
		return b.appendJump(current, n, flow.Yield)

	default: // declarations, expressions, assertions, local classes
		b.add(current, n)

		return current
	}
}

func (b *builder) add(current *Block, n *sitter.Node) {
	if n == nil {
		return
	}

	current.Update(b.src.Pos(n), b.src.End(n))
}

// appendJump handles break, continue, and yield.
func (b *builder) appendJump(current *Block, n *sitter.Node, kind flow.Branch) *Block {
	b.add(current, n)

	var target *Block
	if label := b.jumpLabel(n, kind); label != "" {
		target = b.labelTarget(label).Target(kind)
	} else {
		target = b.targets.Target(kind)
	}

	current.Link(target) // no target leaves the graph

	return b.New(b.src.End(n)) // unreachable after break, continue, or yield
}

func (b *builder) jumpLabel(n *sitter.Node, kind flow.Branch) string {
	if kind == flow.Yield {
		return ""
	}

	for c := range children(n) {
		if c.Type() == "identifier" {
			return b.src.Text(c)
		}
	}

	return ""
}

// labelTarget retrieves or creates a target for the given label.
func (b *builder) labelTarget(name string) *labelTarget {
	return b.labels.Lookup(name, func() *Block { return nil }) // Java has no goto
}

// appendLabeledStmt handles labeled statements. Any labeled statement can be left with break.
func (b *builder) appendLabeledStmt(current *Block, n *sitter.Node) *Block {
	var (
		label string
		stmt  *sitter.Node
	)

	for c := range children(n) {
		if label == "" && c.Type() == "identifier" {
			label = b.src.Text(c)
		} else {
			stmt = c
		}
	}

	if stmt == nil {
		return current
	}

	labeled := b.labelTarget(label)

	after := b.New(b.src.End(n)) // after labeled statement
	labeled.SetBreak(after)

	end := b.appendStmt(current, stmt, labeled)
	end.Link(after)

	return after
}

// appendIfStmt handles if statements.
func (b *builder) appendIfStmt(current *Block, n *sitter.Node) *Block {
	b.add(current, n.ChildByFieldName("condition"))

	after := b.New(b.src.End(n)) // after if

	consequence := n.ChildByFieldName("consequence")
	then := b.New(b.src.Pos(consequence)) // then branch
	b.appendStmt(then, consequence, nil).Link(after)

	elseBranch := after
	if alternative := n.ChildByFieldName("alternative"); alternative != nil {
		elseBranch = b.New(b.src.Pos(alternative)) // else branch
		b.appendStmt(elseBranch, alternative, nil).Link(after)
	}

	current.LinkBranch(then, elseBranch)

	return after
}

// appendWhileStmt handles while loops. A constant true condition never exits the loop.
func (b *builder) appendWhileStmt(current *Block, n *sitter.Node, labeled *labelTarget) *Block {
	condition := n.ChildByFieldName("condition")

	cond := b.New(b.src.Pos(condition)) // loop condition
	b.add(cond, condition)

	body := b.New(b.fieldPos(n, "body"))                 // loop body
	after, old := b.newAfterBlock(labeled, b.src.End(n)) // after loop

	defer b.popAfterBreak(old)

	current.Link(cond)
	cond.Link(body)

	if !isTrue(condition) {
		cond.Link(after)
	}

	b.appendLoopBody(body, n.ChildByFieldName("body"), cond, labeled)

	return after
}

// appendDoStmt handles do-while loops.
func (b *builder) appendDoStmt(current *Block, n *sitter.Node, labeled *labelTarget) *Block {
	condition := n.ChildByFieldName("condition")

	body := b.New(b.fieldPos(n, "body"))                 // loop body
	cond := b.New(b.src.Pos(condition))                  // loop condition
	after, old := b.newAfterBlock(labeled, b.src.End(n)) // after loop

	defer b.popAfterBreak(old)

	current.Link(body)
	cond.Link(body)

	if !isTrue(condition) {
		cond.Link(after)
	}

	b.appendLoopBody(body, n.ChildByFieldName("body"), cond, labeled)

	return after
}

// appendForStmt handles basic for loops. A missing condition never exits the loop.
func (b *builder) appendForStmt(current *Block, n *sitter.Node, labeled *labelTarget) *Block {
	b.add(current, n.ChildByFieldName("init"))

	body := b.New(b.fieldPos(n, "body"))                 // loop body
	after, old := b.newAfterBlock(labeled, b.src.End(n)) // after loop

	defer b.popAfterBreak(old)

	cond := body
	if condition := n.ChildByFieldName("condition"); condition != nil {
		cond = b.New(b.src.Pos(condition)) // loop condition
		cond.Link(body)

		if !isTrue(condition) {
			cond.Link(after)
		}
	}

	current.Link(cond)

	post := cond
	if update := n.ChildByFieldName("update"); update != nil {
		post = b.New(b.src.Pos(update)) // update expressions
		post.Link(cond)
	}

	b.appendLoopBody(body, n.ChildByFieldName("body"), post, labeled)

	return after
}

// appendEnhancedForStmt handles for-each loops.
func (b *builder) appendEnhancedForStmt(current *Block, n *sitter.Node, labeled *labelTarget) *Block {
	b.add(current, n.ChildByFieldName("value"))

	head := b.New(b.src.Pos(n))                          // next element
	body := b.New(b.fieldPos(n, "body"))                 // loop body
	after, old := b.newAfterBlock(labeled, b.src.End(n)) // after loop

	defer b.popAfterBreak(old)

	current.Link(head)
	head.LinkBranch(body, after)

	b.appendLoopBody(body, n.ChildByFieldName("body"), head, labeled)

	return after
}

// appendLoopBody appends the loop body, continuing at next.
func (b *builder) appendLoopBody(body *Block, stmt *sitter.Node, next *Block, labeled *labelTarget) {
	labeled.SetContinue(next)

	oldc := b.targets.Push(flow.Continue, next)

	if stmt != nil {
		body = b.appendStmt(body, stmt, nil)
	}

	body.Link(next)

	b.targets.Pop(flow.Continue, oldc)
}

// appendSwitch handles switch statements and expressions nested in a case group.
func (b *builder) appendSwitch(current *Block, n *sitter.Node, labeled *labelTarget) *Block {
	b.add(current, n.ChildByFieldName("condition"))

	after, old := b.newAfterBlock(labeled, b.src.End(n)) // after switch
	defer b.popAfterBreak(old)

	oldy := b.targets.Push(flow.Yield, after)
	defer b.targets.Pop(flow.Yield, oldy)

	if groups := caseGroups(n); len(groups) > 0 {
		base := b.next
		b.next += len(groups)

		b.appendGroups(current, groups, after, base)

		return after
	}

	hasDefault := false

	for _, rule := range caseRules(n) {
		body := b.New(b.src.Pos(rule)) // rule body
		current.Link(body)

		end := body

		for c := range children(rule) {
			if c.Type() == "switch_label" {
				if hasToken(c, "default") {
					hasDefault = true
				}

				continue
			}

			end = b.appendStmt(end, c, nil)
		}

		end.Link(after)
	}

	if !hasDefault {
		current.Link(after)
	}

	return after
}

// appendTryStmt handles try statements.
//
// Entering the try block may branch to any catch clause, throw statements in the
// try block branch to the catch clauses. Normal completion of the try block and
// the catch clauses continues with the finally block.
func (b *builder) appendTryStmt(current *Block, n *sitter.Node) *Block {
	b.add(current, n.ChildByFieldName("resources"))

	var (
		catches []*sitter.Node
		finally *sitter.Node
	)

	for c := range children(n) {
		switch c.Type() {
		case "catch_clause":
			catches = append(catches, c)

		case "finally_clause":
			finally = c
		}
	}

	handlers := make([]*Block, len(catches))
	for i, c := range catches {
		handlers[i] = b.New(b.src.Pos(c)) // catch clause
		current.Link(handlers[i])
	}

	after := b.New(b.src.End(n)) // after try

	join := after
	if finally != nil {
		join = b.New(b.src.Pos(finally)) // finally block
	}

	body := b.New(b.fieldPos(n, "body")) // try block
	current.Link(body)

	if len(handlers) > 0 {
		b.handlers = append(b.handlers, handlers)
	}

	if stmt := n.ChildByFieldName("body"); stmt != nil {
		body = b.appendStmt(body, stmt, nil)
	}

	if len(handlers) > 0 {
		b.handlers = b.handlers[:len(b.handlers)-1]
	}

	body.Link(join)

	for i, c := range catches {
		end := handlers[i]
		if stmt := c.ChildByFieldName("body"); stmt != nil {
			end = b.appendStmt(end, stmt, nil)
		}

		end.Link(join)
	}

	if finally != nil {
		end := join
		for c := range children(finally) {
			end = b.appendStmt(end, c, nil)
		}

		end.Link(after)
	}

	return after
}

func (b *builder) newAfterBlock(labeled *labelTarget, pos token.Pos) (after, old *Block) {
	after = b.New(pos) // after

	labeled.SetBreak(after)

	old = b.targets.Push(flow.Break, after)

	return after, old
}

func (b *builder) popAfterBreak(old *Block) {
	b.targets.Pop(flow.Break, old)
}

// fieldPos returns the position of a field child, or of n when missing.
func (b *builder) fieldPos(n *sitter.Node, field string) token.Pos {
	if c := n.ChildByFieldName(field); c != nil {
		return b.src.Pos(c)
	}

	return b.src.Pos(n)
}

// isTrue reports whether a condition is the literal true.
func isTrue(condition *sitter.Node) bool {
	for condition != nil && condition.Type() == "parenthesized_expression" {
		condition = condition.NamedChild(0)
	}

	return condition != nil && condition.Type() == "true"
}
