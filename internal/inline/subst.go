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

package inline

import (
	"errors"
	"fmt"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
)

var (
	errNoPlaceholder        = errors.New("no placeholder")
	errMultiplePlaceholders = errors.New("more than one placeholder")
)

// substituter copies a modifier body, replacing parameters by arguments
// and the placeholder by the wrapped body.
type substituter struct {
	params       map[string]ast.Expr
	body         ast.Stmt
	placeholders int
}

// operand wraps compound arguments in parentheses, so they keep their meaning in any operator context.
func operand(x ast.Expr) ast.Expr {
	switch x.(type) {
	case *ast.Ident, *ast.BasicLit, *ast.ParenExpr, *ast.MemberExpr, *ast.IndexExpr, *ast.CallExpr, *ast.TupleExpr:
		return x

	default:
		return &ast.ParenExpr{Lparen: x.Pos(), X: x, Rparen: x.End() - 1}
	}
}

func (s *substituter) block(b *ast.BlockStmt) *ast.BlockStmt {
	if b == nil {
		return nil
	}

	c := *b
	c.List = s.stmts(b.List)

	return &c
}

func (s *substituter) stmts(list []ast.Stmt) []ast.Stmt {
	if list == nil {
		return nil
	}

	result := make([]ast.Stmt, len(list))
	for i, stmt := range list {
		result[i] = s.stmt(stmt)
	}

	return result
}

//nolint:gocyclo,cyclop,funlen
func (s *substituter) stmt(stmt ast.Stmt) ast.Stmt {
	switch stmt := stmt.(type) {
	case nil:
		return nil

	case *ast.PlaceholderStmt:
		s.placeholders++

		return s.body

	case *ast.BlockStmt:
		return s.block(stmt)

	case *ast.EmptyStmt, *ast.BranchStmt, *ast.AssemblyStmt:
		return stmt

	case *ast.BodyStmt:
		return stmt // already expanded code of the wrapped function

	case *ast.ExprStmt:
		c := *stmt
		c.X = s.expr(stmt.X)

		return &c

	case *ast.VarDeclStmt:
		c := *stmt
		c.Value = s.expr(stmt.Value)

		return &c

	case *ast.IfStmt:
		c := *stmt
		c.Cond = s.expr(stmt.Cond)
		c.Then = s.stmt(stmt.Then)
		c.Else = s.stmt(stmt.Else)

		return &c

	case *ast.ForStmt:
		c := *stmt
		c.Init = s.stmt(stmt.Init)
		c.Cond = s.expr(stmt.Cond)
		c.Post = s.expr(stmt.Post)
		c.Body = s.stmt(stmt.Body)

		return &c

	case *ast.WhileStmt:
		c := *stmt
		c.Cond = s.expr(stmt.Cond)
		c.Body = s.stmt(stmt.Body)

		return &c

	case *ast.DoWhileStmt:
		c := *stmt
		c.Body = s.stmt(stmt.Body)
		c.Cond = s.expr(stmt.Cond)

		return &c

	case *ast.ReturnStmt:
		c := *stmt
		c.Result = s.expr(stmt.Result)

		return &c

	case *ast.EmitStmt:
		c := *stmt
		c.Call, _ = s.expr(stmt.Call).(*ast.CallExpr)

		return &c

	case *ast.RevertStmt:
		c := *stmt
		c.Args = s.exprs(stmt.Args)

		return &c

	case *ast.TryStmt:
		c := *stmt
		c.Call = s.expr(stmt.Call)
		c.Body = s.block(stmt.Body)
		c.Catches = make([]*ast.CatchClause, len(stmt.Catches))

		for i, cc := range stmt.Catches {
			ccc := *cc
			ccc.Body = s.block(cc.Body)
			c.Catches[i] = &ccc
		}

		return &c

	default:
		panic(fmt.Sprintf("unexpected statement type: %T", stmt))
	}
}

func (s *substituter) exprs(list []ast.Expr) []ast.Expr {
	if list == nil {
		return nil
	}

	result := make([]ast.Expr, len(list))
	for i, x := range list {
		result[i] = s.expr(x)
	}

	return result
}

//nolint:gocyclo,cyclop,funlen
func (s *substituter) expr(x ast.Expr) ast.Expr {
	switch x := x.(type) {
	case nil:
		return nil

	case *ast.Ident:
		if arg, ok := s.params[x.Name]; ok {
			return arg
		}

		return x

	case *ast.BasicLit, *ast.ElementaryType, *ast.MappingType, *ast.FunctionType:
		return x

	case *ast.ParenExpr:
		c := *x
		c.X = s.expr(x.X)

		return &c

	case *ast.TupleExpr:
		c := *x
		c.Elts = s.exprs(x.Elts)

		return &c

	case *ast.ArrayLit:
		c := *x
		c.Elts = s.exprs(x.Elts)

		return &c

	case *ast.MemberExpr:
		c := *x
		c.X = s.expr(x.X)

		return &c

	case *ast.IndexExpr:
		c := *x
		c.X = s.expr(x.X)
		c.Index = s.expr(x.Index)

		return &c

	case *ast.SliceExpr:
		c := *x
		c.X = s.expr(x.X)
		c.Low = s.expr(x.Low)
		c.High = s.expr(x.High)

		return &c

	case *ast.CallExpr:
		c := *x
		c.Fun = s.expr(x.Fun)
		c.Args = s.exprs(x.Args)

		return &c

	case *ast.CallOptions:
		c := *x
		c.X = s.expr(x.X)
		c.Values = s.exprs(x.Values)

		return &c

	case *ast.UnaryExpr:
		c := *x
		c.X = s.expr(x.X)

		return &c

	case *ast.BinaryExpr:
		c := *x
		c.X = s.expr(x.X)
		c.Y = s.expr(x.Y)

		return &c

	case *ast.AssignExpr:
		c := *x
		c.Lhs = s.expr(x.Lhs)
		c.Rhs = s.expr(x.Rhs)

		return &c

	case *ast.ConditionalExpr:
		c := *x
		c.Cond = s.expr(x.Cond)
		c.Then = s.expr(x.Then)
		c.Else = s.expr(x.Else)

		return &c

	case *ast.NewExpr:
		return x

	case *ast.DeleteExpr:
		c := *x
		c.X = s.expr(x.X)

		return &c

	default:
		panic(fmt.Sprintf("unexpected expression type: %T", x))
	}
}
