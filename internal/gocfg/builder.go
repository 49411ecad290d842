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

package gocfg

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/fallcheck/internal/flow"
)

type (
	// Block is a basic block of a Go switch statement.
	Block = flow.Block[*ast.CaseClause]

	// Graph is the control-flow graph of a Go switch statement.
	Graph = flow.Graph[*ast.CaseClause]

	labelTarget = flow.LabelTarget[*ast.CaseClause]
)

// Build constructs the control-flow graph of a single switch statement.
//
// The graph starts with a synthetic entry block evaluating the init statement
// and tag, branching to every case body. Case bodies end in the exit block,
// unless they leave the switch otherwise or fall through into the next body.
func Build(ctx context.Context, info *types.Info, stmt *ast.SwitchStmt) *Graph {
	defer trace.StartRegion(ctx, "Graph").End()

	b := builder{
		labels:   make(flow.Labels[*ast.CaseClause]),
		noReturn: NewNoReturn(info),
	}

	entry := b.New(stmt.Pos())
	exit := b.New(stmt.End())

	if stmt.Init != nil {
		entry.AddNode(stmt.Init)
	}

	if stmt.Tag != nil {
		entry.AddNode(stmt.Tag)
	}

	// A break directly in the case bodies ends up in the exit block.
	// Continue and return leave the graph.
	b.targets.Push(flow.Break, exit)

	b.appendSwitchBody(entry, stmt.Body, exit, false)

	return flow.NewGraph(entry, exit, b.All())
}

// builder constructs the control flow graph.
// It traverses the AST and creates blocks and edges based on control flow semantics.
//
// The append* methods return the next basic block where statements should be added.
type builder struct {
	flow.Factory[*ast.CaseClause]                              // All blocks created during traversal
	labels                        flow.Labels[*ast.CaseClause] // Maps label names to their target blocks
	targets                       flow.Targets[*ast.CaseClause] // Current break/continue/fallthrough targets
	noReturn                      NoReturn
}

// appendStmtList appends a list of statements to the current block.
func (b *builder) appendStmtList(current *Block, list []ast.Stmt) *Block {
	for _, s := range list {
		current = b.appendStmt(current, s, nil)
	}

	return current
}

// appendStmt appends a single statement to the current block.
// labeled is the label target of a labeled statement (for break/continue/goto).
func (b *builder) appendStmt(current *Block, stmt ast.Stmt, labeled *labelTarget) *Block {
	switch stmt := stmt.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.AssignStmt, *ast.BadStmt, *ast.DeclStmt, *ast.DeferStmt, *ast.EmptyStmt,
		*ast.GoStmt, *ast.IncDecStmt, *ast.SendStmt:
		current.AddNode(stmt)
		return current

	case *ast.BlockStmt:
		return b.appendStmtList(current, stmt.List)

	case *ast.BranchStmt:
		return b.appendBranchStmt(current, stmt)

	case *ast.ExprStmt:
		current.AddNode(stmt)

		if call, ok := ast.Unparen(stmt.X).(*ast.CallExpr); ok && b.noReturn.Call(call) {
			return b.New(stmt.End()) // unreachable after non-returning call
		}

		return current

	case *ast.ForStmt:
		return b.appendForStmt(current, stmt, labeled)

	case *ast.IfStmt:
		return b.appendIfStmt(current, stmt)

	case *ast.LabeledStmt:
		return b.appendLabeledStmt(current, stmt)

	case *ast.RangeStmt:
		return b.appendRangeStmt(current, stmt, labeled)

	case *ast.ReturnStmt:
		current.AddNode(stmt)

		return b.New(stmt.End()) // unreachable after return

	case *ast.SelectStmt:
		return b.appendSelectStmt(current, stmt, labeled)

	case *ast.SwitchStmt:
		return b.appendNestedSwitch(current, stmt, labeled)

	case *ast.TypeSwitchStmt:
		return b.appendTypeSwitchStmt(current, stmt, labeled)

	default: // *ast.CaseClause and *ast.CommClause
		msg := fmt.Errorf("unexpected statement type: %T", stmt)
		panic(msg)
		// keep-sorted end
	}
}

// appendLabeledStmt handles labeled statements.
func (b *builder) appendLabeledStmt(current *Block, stmt *ast.LabeledStmt) *Block {
	labeled := b.labelTarget(stmt.Label)
	body := labeled.Statement()
	body.SetStart(stmt.Stmt.Pos())

	current.Link(body)

	return b.appendStmt(body, stmt.Stmt, labeled)
}

// appendBranchStmt handles break, continue, goto, and fallthrough.
func (b *builder) appendBranchStmt(current *Block, stmt *ast.BranchStmt) *Block {
	kind := branchKind(stmt.Tok)

	var target *Block
	if stmt.Label == nil {
		target = b.targets.Target(kind)
	} else {
		target = b.labelTarget(stmt.Label).Target(kind)
	}

	current.AddNode(stmt) // make current non-empty
	current.Link(target)  // no target leaves the graph

	return b.New(stmt.End()) // unreachable after break, continue, goto, or fallthrough
}

func branchKind(tok token.Token) flow.Branch {
	switch tok {
	case token.BREAK:
		return flow.Break

	case token.CONTINUE:
		return flow.Continue

	case token.FALLTHROUGH:
		return flow.Fallthrough

	case token.GOTO:
		return flow.Goto

	default:
		panic(fmt.Sprintf("unexpected branch token: %s", tok))
	}
}

// labelTarget retrieves or creates a target for the given label.
func (b *builder) labelTarget(label *ast.Ident) *labelTarget {
	return b.labels.Lookup(label.Name, func() *Block {
		return b.New(token.NoPos) // forward goto reference
	})
}

// appendIfStmt handles if statements.
func (b *builder) appendIfStmt(current *Block, stmt *ast.IfStmt) *Block {
	if stmt.Init != nil {
		current.AddNode(stmt.Init)
	}

	current.AddNode(stmt.Cond)

	after := b.New(stmt.End())     // after if
	body := b.New(stmt.Body.Pos()) // if body

	afterBody := b.appendStmtList(body, stmt.Body.List)
	afterBody.Link(after)

	elseBranch := after
	if stmt.Else != nil {
		elseBranch = b.New(stmt.Else.Pos()) // else branch

		afterElse := b.appendStmt(elseBranch, stmt.Else, nil)
		afterElse.Link(after)
	}

	current.LinkBranch(body, elseBranch)

	return after
}

// appendNestedSwitch handles expression switch statements inside a case body.
func (b *builder) appendNestedSwitch(current *Block, stmt *ast.SwitchStmt, labeled *labelTarget) *Block {
	if stmt.Init != nil {
		current.AddNode(stmt.Init)
	}

	if stmt.Tag != nil {
		current.AddNode(stmt.Tag)
	}

	after, old := b.newAfterBlock(labeled, stmt.End()) // after switch
	defer b.popAfterBreak(old)

	b.appendSwitchBody(current, stmt.Body, after, false)

	return after
}

// appendTypeSwitchStmt handles type switch statements.
func (b *builder) appendTypeSwitchStmt(current *Block, stmt *ast.TypeSwitchStmt, labeled *labelTarget) *Block {
	if stmt.Init != nil {
		current.AddNode(stmt.Init)
	}

	current.AddNode(stmt.Assign)

	after, old := b.newAfterBlock(labeled, stmt.End()) // after type switch
	defer b.popAfterBreak(old)

	b.appendSwitchBody(current, stmt.Body, after, true)

	return after
}

// appendSwitchBody handles the case clauses of a switch statement.
//
// The dispatch block branches to every case body, and to after when there
// is no default case. Case bodies are entries of their case clause.
func (b *builder) appendSwitchBody(dispatch *Block, cases *ast.BlockStmt, after *Block, typeSwitch bool) {
	numCases := len(cases.List)

	bodies := make([]*Block, numCases)
	for i := range bodies {
		bodies[i] = b.New(token.NoPos) // case body
	}

	hasDefault := false

	// See https://go.dev/ref/spec#Switch_statements
	for i, clause := range cases.List {
		clause := clause.(*ast.CaseClause)

		if clause.List == nil {
			hasDefault = true
		}

		body := bodies[i]
		body.SetStart(clause.Colon + 1)
		body.SetCaseGroup(clause)

		dispatch.Link(body)

		var fallthroughTarget *Block
		if i < numCases-1 && !typeSwitch {
			fallthroughTarget = bodies[i+1]
		}

		// While there can only be one fallthrough target, switches could be nested
		oldf := b.targets.Push(flow.Fallthrough, fallthroughTarget)

		end := b.appendStmtList(body, clause.Body)
		end.Link(after)

		b.targets.Pop(flow.Fallthrough, oldf)
	}

	if !hasDefault {
		dispatch.Link(after) // no default, switch can be skipped
	}
}

// appendSelectStmt handles select statements.
func (b *builder) appendSelectStmt(current *Block, stmt *ast.SelectStmt, labeled *labelTarget) *Block {
	after, old := b.newAfterBlock(labeled, stmt.End()) // after select
	defer b.popAfterBreak(old)

	// See https://go.dev/ref/spec#Select_statements
	for _, clause := range stmt.Body.List {
		clause := clause.(*ast.CommClause)

		if clause.Comm != nil {
			current.AddNode(clause.Comm)
		}

		body := b.New(clause.Colon + 1) // case body
		current.Link(body)

		end := b.appendStmtList(body, clause.Body)
		end.Link(after)
	}

	return after
}

// appendForStmt handles for loops.
func (b *builder) appendForStmt(current *Block, stmt *ast.ForStmt, labeled *labelTarget) *Block {
	if stmt.Init != nil {
		current.AddNode(stmt.Init)
	}

	body := b.New(stmt.Body.Lbrace + 1)                // for body
	after, old := b.newAfterBlock(labeled, stmt.End()) // after for

	defer b.popAfterBreak(old)

	cond := body
	if stmt.Cond != nil {
		cond = b.New(stmt.Cond.Pos()) // for condition
		cond.AddNode(stmt.Cond)
		cond.LinkBranch(body, after)
	}

	current.Link(cond)

	post := cond
	if stmt.Post != nil {
		post = b.New(stmt.Post.Pos()) // for post statement
		post.AddNode(stmt.Post)
		post.Link(cond)
	}

	labeled.SetContinue(post)

	oldc := b.targets.Push(flow.Continue, post)

	bodyEnd := b.appendStmtList(body, stmt.Body.List)
	bodyEnd.Link(post)

	b.targets.Pop(flow.Continue, oldc)

	return after
}

// appendRangeStmt handles range loops.
func (b *builder) appendRangeStmt(current *Block, stmt *ast.RangeStmt, labeled *labelTarget) *Block {
	current.AddNode(stmt.X)

	head := b.New(stmt.X.End())                        // next iteration
	body := b.New(stmt.Body.Lbrace + 1)                // range body
	after, old := b.newAfterBlock(labeled, stmt.End()) // after range

	defer b.popAfterBreak(old)

	current.Link(head)
	head.LinkBranch(body, after)

	labeled.SetContinue(head)

	oldc := b.targets.Push(flow.Continue, head)

	bodyEnd := b.appendStmtList(body, stmt.Body.List)
	bodyEnd.Link(head)

	b.targets.Pop(flow.Continue, oldc)

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
