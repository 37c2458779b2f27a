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

package graph

import (
	"fmt"

	"fillmore-labs.com/branchtree/internal/flow/cond"
	"fillmore-labs.com/branchtree/internal/flow/node"
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/symbols"
)

// builder constructs the control graph.
// It traverses the statements in reverse, so each statement knows its continuation.
//
// The append* methods return the node where control enters the statement,
// given the node where control continues after it.
type builder struct {
	factory      *node.Factory
	table        *symbols.Table
	diags        *report.Diagnostics
	targetScopes branchTargetScopes // Current break/continue/return targets
	loopDepth    int                // Number of enclosing loops
}

// appendStmtList prepends a list of statements to next.
func (b *builder) appendStmtList(list []ast.Stmt, next *node.Node) *node.Node {
	for i := len(list) - 1; i >= 0; i-- {
		next = b.appendStmt(list[i], next)
	}

	return next
}

// appendStmt prepends a single statement to next.
func (b *builder) appendStmt(stmt ast.Stmt, next *node.Node) *node.Node {
	switch stmt := stmt.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.AssemblyStmt, *ast.EmptyStmt:
		return next

	case *ast.BlockStmt:
		return b.appendStmtList(stmt.List, next)

	case *ast.BodyStmt:
		outer := b.table
		b.table = outer.Body()
		old := b.targetScopes.pushReturn(next)
		entry := b.appendStmtList(stmt.Body.List, next)
		b.targetScopes.popReturn(old)
		b.table = outer

		return entry

	case *ast.BranchStmt:
		if target := b.targetScopes.branchTarget(stmt.Tok); target != nil {
			return target
		}

		return next // not inside a loop

	case *ast.DoWhileStmt:
		b.checkCalls(stmt.Cond)

		return b.appendLoop(stmt.Body, next)

	case *ast.EmitStmt:
		b.checkCalls(stmt.Call)

		return next

	case *ast.ExprStmt:
		return b.appendExprStmt(stmt, next)

	case *ast.ForStmt:
		b.checkCalls(stmt.Cond)
		b.checkCalls(stmt.Post)

		if stmt.Init != nil {
			next = b.appendLoop(stmt.Body, next)

			return b.appendStmt(stmt.Init, next)
		}

		return b.appendLoop(stmt.Body, next)

	case *ast.IfStmt:
		return b.appendIfStmt(stmt, next)

	case *ast.PlaceholderStmt:
		panic(fmt.Sprintf("placeholder at %d outside of modifier expansion", stmt.Pos()))

	case *ast.ReturnStmt:
		b.checkCalls(stmt.Result)

		return b.targetScopes.currentReturn

	case *ast.RevertStmt:
		return b.factory.NewTerminal(stmt.Pos(), node.Revert)

	case *ast.TryStmt:
		return b.appendTryStmt(stmt, next)

	case *ast.VarDeclStmt:
		b.checkCalls(stmt.Value)

		return next

	case *ast.WhileStmt:
		b.checkCalls(stmt.Cond)

		return b.appendLoop(stmt.Body, next)

	default:
		msg := fmt.Errorf("unexpected statement type: %T", stmt)
		panic(msg)
		// keep-sorted end
	}
}

// appendIfStmt handles if statements. An if whose arms contain no guard, revert
// or return is transparent and adds no branch.
func (b *builder) appendIfStmt(stmt *ast.IfStmt, next *node.Node) *node.Node {
	then := b.appendStmt(stmt.Then, next)

	els := next
	if stmt.Else != nil {
		els = b.appendStmt(stmt.Else, next)
	}

	b.checkCalls(stmt.Cond)

	if then == next && els == next {
		return next
	}

	return b.factory.NewBranch(b.condition(stmt.Cond), then, els, false)
}

// appendLoop handles loop bodies: guards inside are tagged with the loop depth,
// and break, continue and the end of the body continue after the loop.
func (b *builder) appendLoop(body ast.Stmt, next *node.Node) *node.Node {
	b.loopDepth++
	oldb, oldc := b.targetScopes.pushLoop(next, next)

	entry := b.appendStmt(body, next)

	b.targetScopes.popLoop(oldb, oldc)
	b.loopDepth--

	return entry
}

// appendTryStmt handles try/catch: the call succeeding takes the try body, failing takes the first catch clause.
// The failing arm comes first.
func (b *builder) appendTryStmt(stmt *ast.TryStmt, next *node.Node) *node.Node {
	succeeds := b.appendStmt(stmt.Body, next)

	fails := next
	if len(stmt.Catches) > 0 {
		fails = b.appendStmt(stmt.Catches[0].Body, next)
	}

	b.checkCalls(stmt.Call)

	c := &cond.Condition{
		Pred:      cond.NewCallPredicate(stmt.Call, b.table),
		LoopDepth: b.loopDepth,
		Pos:       stmt.Call.Pos(),
	}

	return b.factory.NewBranch(c, succeeds, fails, true)
}

// appendExprStmt handles require and assert; other expressions are transparent.
func (b *builder) appendExprStmt(stmt *ast.ExprStmt, next *node.Node) *node.Node {
	b.checkCalls(stmt.X)

	call, ok := stmt.X.(*ast.CallExpr)
	if !ok || !b.isGuard(call) {
		return next
	}

	revert := b.factory.NewTerminal(stmt.Pos(), node.Revert)

	if len(call.Args) == 0 {
		return revert // malformed require()
	}

	// The failing arm comes first.
	return b.factory.NewBranch(b.condition(call.Args[0]), next, revert, true)
}

// isGuard reports whether the call is the built-in require or assert.
func (b *builder) isGuard(call *ast.CallExpr) bool {
	id, ok := call.Fun.(*ast.Ident)
	if !ok || id.Name != "require" && id.Name != "assert" {
		return false
	}

	return b.table.Kind(id.Name) == symbols.Unknown // not shadowed by a local or state variable
}

func (b *builder) condition(x ast.Expr) *cond.Condition {
	x = ast.Unparen(x)

	return &cond.Condition{
		Pred:      cond.NewPredicate(x, b.table),
		LoopDepth: b.loopDepth,
		Pos:       x.Pos(),
	}
}
