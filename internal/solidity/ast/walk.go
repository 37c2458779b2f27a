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

package ast

import "fmt"

// Inspect traverses an AST in depth-first order: It starts by calling f(node);
// node must not be nil. If f returns true, Inspect invokes f recursively for
// each of the non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	if !f(node) {
		return
	}

	walk(node, f)
}

func inspectExprs(list []Expr, f func(Node) bool) {
	for _, x := range list {
		if x != nil {
			Inspect(x, f)
		}
	}
}

func inspectStmts(list []Stmt, f func(Node) bool) {
	for _, s := range list {
		Inspect(s, f)
	}
}

func inspectIdents(list []*Ident, f func(Node) bool) {
	for _, x := range list {
		if x != nil {
			Inspect(x, f)
		}
	}
}

func inspectOpt[N Node](n N, f func(Node) bool) {
	if Node(n) != nil && !isNilNode(n) {
		Inspect(n, f)
	}
}

func isNilNode(n Node) bool {
	switch n := n.(type) {
	case *Ident:
		return n == nil
	case *ParamList:
		return n == nil
	case *BlockStmt:
		return n == nil
	case *CommentGroup:
		return n == nil
	case *CallExpr:
		return n == nil
	default:
		return false
	}
}

//nolint:gocyclo,cyclop,funlen
func walk(node Node, f func(Node) bool) {
	switch n := node.(type) {
	// Comments and leaves
	case *Comment, *Ident, *BasicLit, *ElementaryType, *EmptyStmt, *BranchStmt,
		*AssemblyStmt, *PlaceholderStmt, *PragmaDecl:
		// nothing to do

	case *CommentGroup:
		for _, c := range n.List {
			Inspect(c, f)
		}

	// Expressions
	case *ParenExpr:
		Inspect(n.X, f)

	case *TupleExpr:
		inspectExprs(n.Elts, f)

	case *ArrayLit:
		inspectExprs(n.Elts, f)

	case *MemberExpr:
		Inspect(n.X, f)
		Inspect(n.Sel, f)

	case *IndexExpr:
		Inspect(n.X, f)
		inspectOpt(n.Index, f)

	case *SliceExpr:
		Inspect(n.X, f)
		inspectOpt(n.Low, f)
		inspectOpt(n.High, f)

	case *CallExpr:
		Inspect(n.Fun, f)
		inspectIdents(n.Names, f)
		inspectExprs(n.Args, f)

	case *CallOptions:
		Inspect(n.X, f)
		inspectIdents(n.Names, f)
		inspectExprs(n.Values, f)

	case *UnaryExpr:
		Inspect(n.X, f)

	case *BinaryExpr:
		Inspect(n.X, f)
		Inspect(n.Y, f)

	case *AssignExpr:
		Inspect(n.Lhs, f)
		Inspect(n.Rhs, f)

	case *ConditionalExpr:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		Inspect(n.Else, f)

	case *NewExpr:
		Inspect(n.Type, f)

	case *DeleteExpr:
		Inspect(n.X, f)

	case *MappingType:
		Inspect(n.Key, f)
		inspectOpt(n.KeyName, f)
		Inspect(n.Value, f)
		inspectOpt(n.VName, f)

	case *FunctionType:
		inspectOpt(n.Params, f)
		inspectOpt(n.Returns, f)

	// Statements
	case *BlockStmt:
		inspectStmts(n.List, f)

	case *ExprStmt:
		Inspect(n.X, f)

	case *VarDeclStmt:
		for _, v := range n.Vars {
			if v != nil {
				Inspect(v, f)
			}
		}

		inspectOpt(n.Value, f)

	case *IfStmt:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		inspectOpt(n.Else, f)

	case *ForStmt:
		inspectOpt(n.Init, f)
		inspectOpt(n.Cond, f)
		inspectOpt(n.Post, f)
		Inspect(n.Body, f)

	case *WhileStmt:
		Inspect(n.Cond, f)
		Inspect(n.Body, f)

	case *DoWhileStmt:
		Inspect(n.Body, f)
		Inspect(n.Cond, f)

	case *ReturnStmt:
		inspectOpt(n.Result, f)

	case *EmitStmt:
		Inspect(n.Call, f)

	case *RevertStmt:
		inspectOpt(n.Error, f)
		inspectExprs(n.Args, f)

	case *TryStmt:
		Inspect(n.Call, f)
		inspectOpt(n.Returns, f)
		Inspect(n.Body, f)

		for _, c := range n.Catches {
			Inspect(c, f)
		}

	case *CatchClause:
		inspectOpt(n.Name, f)
		inspectOpt(n.Params, f)
		Inspect(n.Body, f)

	case *BodyStmt:
		Inspect(n.Body, f)

	// Declarations
	case *VarDecl:
		Inspect(n.Type, f)
		Inspect(n.Name, f)

	case *Param:
		Inspect(n.Type, f)
		inspectOpt(n.Name, f)

	case *ParamList:
		for _, p := range n.List {
			Inspect(p, f)
		}

	case *ImportDecl:
		for _, s := range n.Symbols {
			Inspect(s.Name, f)
			inspectOpt(s.Alias, f)
		}

	case *ContractDecl:
		inspectOpt(n.Doc, f)
		Inspect(n.Name, f)

		for _, b := range n.Bases {
			Inspect(b.Name, f)
			inspectExprs(b.Args, f)
		}

		for _, m := range n.Members {
			Inspect(m, f)
		}

	case *StateVarDecl:
		inspectOpt(n.Doc, f)
		Inspect(n.Type, f)
		Inspect(n.Name, f)
		inspectOpt(n.Value, f)

	case *FuncDecl:
		inspectOpt(n.Doc, f)
		inspectOpt(n.Name, f)
		Inspect(n.Params, f)

		for _, m := range n.Modifiers {
			Inspect(m, f)
		}

		inspectOpt(n.Returns, f)
		inspectOpt(n.Body, f)

	case *ModifierInvocation:
		Inspect(n.Name, f)
		inspectExprs(n.Args, f)

	case *StructDecl:
		Inspect(n.Name, f)

		for _, p := range n.Fields {
			Inspect(p, f)
		}

	case *EnumDecl:
		Inspect(n.Name, f)
		inspectIdents(n.Values, f)

	case *EventDecl:
		Inspect(n.Name, f)
		Inspect(n.Params, f)

	case *ErrorDecl:
		Inspect(n.Name, f)
		Inspect(n.Params, f)

	case *UsingDecl:
		inspectExprs(n.Library, f)
		inspectOpt(n.For, f)

	case *TypeDecl:
		Inspect(n.Name, f)
		Inspect(n.Underlying, f)

	case *File:
		for _, p := range n.Pragmas {
			Inspect(p, f)
		}

		for _, i := range n.Imports {
			Inspect(i, f)
		}

		for _, d := range n.Decls {
			Inspect(d, f)
		}

	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node type %T", n))
	}
}
