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

// Package ast declares the types used to represent syntax trees for Solidity source units.
//
// The statement and expression sets are closed: every node type implements
// an unexported marker method, so consumers can switch exhaustively over the
// concrete types and panic on anything else.
package ast

import (
	gotoken "go/token"

	"fillmore-labs.com/branchtree/internal/solidity/token"
)

// ----------------------------------------------------------------------------
// Interfaces

// Node is implemented by all syntax tree nodes.
type Node interface {
	Pos() gotoken.Pos // position of first character belonging to the node
	End() gotoken.Pos // position of first character immediately after the node
}

// Expr is implemented by all expression nodes, including type names.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is implemented by all declaration nodes.
type Decl interface {
	Node
	declNode()
}

// ----------------------------------------------------------------------------
// Comments

// A Comment node represents a single //-style or /*-style comment.
type Comment struct {
	Slash gotoken.Pos // position of "/" starting the comment
	Text  string      // comment text, including the comment markers
}

func (c *Comment) Pos() gotoken.Pos { return c.Slash }
func (c *Comment) End() gotoken.Pos { return gotoken.Pos(int(c.Slash) + len(c.Text)) }

// A CommentGroup represents a sequence of comments
// with no other tokens and no empty lines between.
type CommentGroup struct {
	List []*Comment // len(List) > 0
}

func (g *CommentGroup) Pos() gotoken.Pos { return g.List[0].Pos() }
func (g *CommentGroup) End() gotoken.Pos { return g.List[len(g.List)-1].End() }

// ----------------------------------------------------------------------------
// Expressions and types

type (
	// An Ident node represents an identifier.
	Ident struct {
		NamePos gotoken.Pos // identifier position
		Name    string      // identifier name
	}

	// A BasicLit node represents a literal of basic type.
	BasicLit struct {
		ValuePos gotoken.Pos // literal position
		Kind     token.Kind  // token.NUMBER, token.STRING, token.HEXSTRING, token.TRUE or token.FALSE
		Value    string      // literal string; e.g. 42, 0x7f, "foo", true
		Unit     string      // denomination following a number, e.g. ether, days
		EndPos   gotoken.Pos // position immediately after the literal (including the unit)
	}

	// A ParenExpr node represents a parenthesized expression.
	ParenExpr struct {
		Lparen gotoken.Pos // position of "("
		X      Expr        // parenthesized expression
		Rparen gotoken.Pos // position of ")"
	}

	// A TupleExpr node represents a tuple (a, b) with at least two slots.
	// Empty slots, as in (, b), are nil.
	TupleExpr struct {
		Lparen gotoken.Pos
		Elts   []Expr
		Rparen gotoken.Pos
	}

	// An ArrayLit node represents an inline array [a, b, c].
	ArrayLit struct {
		Lbrack gotoken.Pos
		Elts   []Expr
		Rbrack gotoken.Pos
	}

	// A MemberExpr node represents an expression followed by a member selector.
	MemberExpr struct {
		X   Expr   // expression
		Sel *Ident // member name
	}

	// An IndexExpr node represents an expression followed by an index.
	// Index is nil in type names like uint256[].
	IndexExpr struct {
		X      Expr
		Lbrack gotoken.Pos
		Index  Expr
		Rbrack gotoken.Pos
	}

	// A SliceExpr node represents a calldata slice x[low:high].
	SliceExpr struct {
		X      Expr
		Lbrack gotoken.Pos
		Low    Expr // may be nil
		High   Expr // may be nil
		Rbrack gotoken.Pos
	}

	// A CallExpr node represents a function call, type conversion, event emission or error construction.
	CallExpr struct {
		Fun    Expr        // function expression
		Lparen gotoken.Pos // position of "("
		Args   []Expr      // function arguments; or nil
		Names  []*Ident    // argument names for a {name: value} call; or nil
		Rparen gotoken.Pos // position of ")"
	}

	// A CallOptions node represents call options f{value: v, gas: g}.
	CallOptions struct {
		X      Expr
		Lbrace gotoken.Pos
		Names  []*Ident
		Values []Expr
		Rbrace gotoken.Pos
	}

	// A UnaryExpr node represents a prefix or postfix unary expression.
	UnaryExpr struct {
		OpPos   gotoken.Pos // position of Op
		Op      token.Kind  // operator
		X       Expr        // operand
		Postfix bool        // x++ or x--
	}

	// A BinaryExpr node represents a binary expression.
	BinaryExpr struct {
		X     Expr        // left operand
		OpPos gotoken.Pos // position of Op
		Op    token.Kind  // operator
		Y     Expr        // right operand
	}

	// An AssignExpr node represents a plain or compound assignment.
	AssignExpr struct {
		Lhs    Expr
		TokPos gotoken.Pos
		Tok    token.Kind // assignment token
		Rhs    Expr
	}

	// A ConditionalExpr node represents cond ? a : b.
	ConditionalExpr struct {
		Cond Expr
		Then Expr
		Else Expr
	}

	// A NewExpr node represents a new T expression.
	NewExpr struct {
		New  gotoken.Pos
		Type Expr
	}

	// A DeleteExpr node represents delete x.
	DeleteExpr struct {
		Delete gotoken.Pos
		X      Expr
	}

	// A MappingType node represents mapping(K => V).
	MappingType struct {
		Mapping gotoken.Pos
		Key     Expr
		KeyName *Ident // may be nil
		Value   Expr
		VName   *Ident // may be nil
		Rparen  gotoken.Pos
	}

	// A FunctionType node represents a function type name.
	FunctionType struct {
		Func       gotoken.Pos
		Params     *ParamList
		Visibility token.Kind
		Mutability token.Kind
		Returns    *ParamList // may be nil
		EndPos     gotoken.Pos
	}

	// An ElementaryType node represents an elementary type name
	// that is not a valid identifier expression, e.g. address payable.
	ElementaryType struct {
		NamePos gotoken.Pos
		Name    string
		Payable bool
		EndPos  gotoken.Pos
	}
)

func (x *Ident) Pos() gotoken.Pos           { return x.NamePos }
func (x *BasicLit) Pos() gotoken.Pos        { return x.ValuePos }
func (x *ParenExpr) Pos() gotoken.Pos       { return x.Lparen }
func (x *TupleExpr) Pos() gotoken.Pos       { return x.Lparen }
func (x *ArrayLit) Pos() gotoken.Pos        { return x.Lbrack }
func (x *MemberExpr) Pos() gotoken.Pos      { return x.X.Pos() }
func (x *IndexExpr) Pos() gotoken.Pos       { return x.X.Pos() }
func (x *SliceExpr) Pos() gotoken.Pos       { return x.X.Pos() }
func (x *CallExpr) Pos() gotoken.Pos        { return x.Fun.Pos() }
func (x *CallOptions) Pos() gotoken.Pos     { return x.X.Pos() }
func (x *BinaryExpr) Pos() gotoken.Pos      { return x.X.Pos() }
func (x *AssignExpr) Pos() gotoken.Pos      { return x.Lhs.Pos() }
func (x *ConditionalExpr) Pos() gotoken.Pos { return x.Cond.Pos() }
func (x *NewExpr) Pos() gotoken.Pos         { return x.New }
func (x *DeleteExpr) Pos() gotoken.Pos      { return x.Delete }
func (x *MappingType) Pos() gotoken.Pos     { return x.Mapping }
func (x *FunctionType) Pos() gotoken.Pos    { return x.Func }
func (x *ElementaryType) Pos() gotoken.Pos  { return x.NamePos }

func (x *UnaryExpr) Pos() gotoken.Pos {
	if x.Postfix {
		return x.X.Pos()
	}

	return x.OpPos
}

func (x *Ident) End() gotoken.Pos           { return gotoken.Pos(int(x.NamePos) + len(x.Name)) }
func (x *BasicLit) End() gotoken.Pos        { return x.EndPos }
func (x *ParenExpr) End() gotoken.Pos       { return x.Rparen + 1 }
func (x *TupleExpr) End() gotoken.Pos       { return x.Rparen + 1 }
func (x *ArrayLit) End() gotoken.Pos        { return x.Rbrack + 1 }
func (x *MemberExpr) End() gotoken.Pos      { return x.Sel.End() }
func (x *IndexExpr) End() gotoken.Pos       { return x.Rbrack + 1 }
func (x *SliceExpr) End() gotoken.Pos       { return x.Rbrack + 1 }
func (x *CallExpr) End() gotoken.Pos        { return x.Rparen + 1 }
func (x *CallOptions) End() gotoken.Pos     { return x.Rbrace + 1 }
func (x *BinaryExpr) End() gotoken.Pos      { return x.Y.End() }
func (x *AssignExpr) End() gotoken.Pos      { return x.Rhs.End() }
func (x *ConditionalExpr) End() gotoken.Pos { return x.Else.End() }
func (x *NewExpr) End() gotoken.Pos         { return x.Type.End() }
func (x *DeleteExpr) End() gotoken.Pos      { return x.X.End() }
func (x *MappingType) End() gotoken.Pos     { return x.Rparen + 1 }
func (x *FunctionType) End() gotoken.Pos    { return x.EndPos }
func (x *ElementaryType) End() gotoken.Pos  { return x.EndPos }

func (x *UnaryExpr) End() gotoken.Pos {
	if x.Postfix {
		return x.OpPos + 2
	}

	return x.X.End()
}

func (*Ident) exprNode()           {}
func (*BasicLit) exprNode()        {}
func (*ParenExpr) exprNode()       {}
func (*TupleExpr) exprNode()       {}
func (*ArrayLit) exprNode()        {}
func (*MemberExpr) exprNode()      {}
func (*IndexExpr) exprNode()       {}
func (*SliceExpr) exprNode()       {}
func (*CallExpr) exprNode()        {}
func (*CallOptions) exprNode()     {}
func (*UnaryExpr) exprNode()       {}
func (*BinaryExpr) exprNode()      {}
func (*AssignExpr) exprNode()      {}
func (*ConditionalExpr) exprNode() {}
func (*NewExpr) exprNode()         {}
func (*DeleteExpr) exprNode()      {}
func (*MappingType) exprNode()     {}
func (*FunctionType) exprNode()    {}
func (*ElementaryType) exprNode()  {}

// NewIdent creates a new [Ident] without position.
// Useful for ASTs generated by code other than the parser.
func NewIdent(name string) *Ident { return &Ident{gotoken.NoPos, name} }

// Unparen returns the expression with any enclosing parentheses removed.
func Unparen(e Expr) Expr {
	for {
		paren, ok := e.(*ParenExpr)
		if !ok {
			return e
		}

		e = paren.X
	}
}

// ----------------------------------------------------------------------------
// Statements

type (
	// A BlockStmt node represents a braced statement list.
	BlockStmt struct {
		Unchecked bool        // unchecked { ... }
		Lbrace    gotoken.Pos // position of "{"
		List      []Stmt
		Rbrace    gotoken.Pos // position of "}"
	}

	// An EmptyStmt node represents a lone semicolon.
	EmptyStmt struct {
		Semicolon gotoken.Pos
	}

	// An ExprStmt node represents an expression in a statement list.
	ExprStmt struct {
		X    Expr
		Semi gotoken.Pos
	}

	// A VarDeclStmt node represents a local variable declaration,
	// either a single variable or a tuple (a, , b) = f().
	VarDeclStmt struct {
		Vars  []*VarDecl // nil entries are skipped tuple slots
		Value Expr       // initial value; or nil
		Start gotoken.Pos
		Semi  gotoken.Pos
	}

	// An IfStmt node represents an if statement.
	IfStmt struct {
		If   gotoken.Pos
		Cond Expr
		Then Stmt
		Else Stmt // else branch; or nil
	}

	// A ForStmt node represents a for loop.
	ForStmt struct {
		For  gotoken.Pos
		Init Stmt // initialization statement; or nil
		Cond Expr // condition; or nil
		Post Expr // post iteration expression; or nil
		Body Stmt
	}

	// A WhileStmt node represents a while loop.
	WhileStmt struct {
		While gotoken.Pos
		Cond  Expr
		Body  Stmt
	}

	// A DoWhileStmt node represents a do { ... } while (cond); loop.
	DoWhileStmt struct {
		Do   gotoken.Pos
		Body Stmt
		Cond Expr
		Semi gotoken.Pos
	}

	// A ReturnStmt node represents a return statement.
	ReturnStmt struct {
		Return gotoken.Pos
		Result Expr // result expression; or nil
		Semi   gotoken.Pos
	}

	// A BranchStmt node represents a break or continue statement.
	BranchStmt struct {
		TokPos gotoken.Pos
		Tok    token.Kind // token.BREAK or token.CONTINUE
		Semi   gotoken.Pos
	}

	// An EmitStmt node represents an event emission.
	EmitStmt struct {
		Emit gotoken.Pos
		Call *CallExpr
		Semi gotoken.Pos
	}

	// A RevertStmt node represents revert(), revert("reason") and revert Error(args).
	RevertStmt struct {
		Revert gotoken.Pos
		Error  Expr   // custom error path; nil for the revert(...) function form
		Args   []Expr // arguments
		Semi   gotoken.Pos
	}

	// A TryStmt node represents try call returns (...) { ... } catch ... { ... }.
	TryStmt struct {
		Try     gotoken.Pos
		Call    Expr
		Returns *ParamList // may be nil
		Body    *BlockStmt
		Catches []*CatchClause
	}

	// A CatchClause node represents one catch clause of a try statement.
	CatchClause struct {
		Catch  gotoken.Pos
		Name   *Ident     // Error, Panic; or nil
		Params *ParamList // may be nil
		Body   *BlockStmt
	}

	// An AssemblyStmt node represents an inline assembly block, which is not analyzed.
	AssemblyStmt struct {
		Assembly gotoken.Pos
		Rbrace   gotoken.Pos
	}

	// A PlaceholderStmt node represents the modifier placeholder "_;".
	PlaceholderStmt struct {
		Underscore gotoken.Pos
		Semi       gotoken.Pos
	}

	// A BodyStmt node represents a function body substituted for a modifier placeholder.
	// A return inside Body leaves only Body, not the enclosing modifier.
	BodyStmt struct {
		Body *BlockStmt
	}
)

func (s *BlockStmt) Pos() gotoken.Pos       { return s.Lbrace }
func (s *EmptyStmt) Pos() gotoken.Pos       { return s.Semicolon }
func (s *ExprStmt) Pos() gotoken.Pos        { return s.X.Pos() }
func (s *VarDeclStmt) Pos() gotoken.Pos     { return s.Start }
func (s *IfStmt) Pos() gotoken.Pos          { return s.If }
func (s *ForStmt) Pos() gotoken.Pos         { return s.For }
func (s *WhileStmt) Pos() gotoken.Pos       { return s.While }
func (s *DoWhileStmt) Pos() gotoken.Pos     { return s.Do }
func (s *ReturnStmt) Pos() gotoken.Pos      { return s.Return }
func (s *BranchStmt) Pos() gotoken.Pos      { return s.TokPos }
func (s *EmitStmt) Pos() gotoken.Pos        { return s.Emit }
func (s *RevertStmt) Pos() gotoken.Pos      { return s.Revert }
func (s *TryStmt) Pos() gotoken.Pos         { return s.Try }
func (s *CatchClause) Pos() gotoken.Pos     { return s.Catch }
func (s *AssemblyStmt) Pos() gotoken.Pos    { return s.Assembly }
func (s *PlaceholderStmt) Pos() gotoken.Pos { return s.Underscore }
func (s *BodyStmt) Pos() gotoken.Pos        { return s.Body.Pos() }

func (s *BlockStmt) End() gotoken.Pos       { return s.Rbrace + 1 }
func (s *EmptyStmt) End() gotoken.Pos       { return s.Semicolon + 1 }
func (s *ExprStmt) End() gotoken.Pos        { return s.Semi + 1 }
func (s *VarDeclStmt) End() gotoken.Pos     { return s.Semi + 1 }
func (s *IfStmt) End() gotoken.Pos          { return endOf(s.Else, s.Then) }
func (s *ForStmt) End() gotoken.Pos         { return s.Body.End() }
func (s *WhileStmt) End() gotoken.Pos       { return s.Body.End() }
func (s *DoWhileStmt) End() gotoken.Pos     { return s.Semi + 1 }
func (s *ReturnStmt) End() gotoken.Pos      { return s.Semi + 1 }
func (s *BranchStmt) End() gotoken.Pos      { return s.Semi + 1 }
func (s *EmitStmt) End() gotoken.Pos        { return s.Semi + 1 }
func (s *RevertStmt) End() gotoken.Pos      { return s.Semi + 1 }
func (s *CatchClause) End() gotoken.Pos     { return s.Body.End() }
func (s *AssemblyStmt) End() gotoken.Pos    { return s.Rbrace + 1 }
func (s *PlaceholderStmt) End() gotoken.Pos { return s.Semi + 1 }
func (s *BodyStmt) End() gotoken.Pos        { return s.Body.End() }

func (s *TryStmt) End() gotoken.Pos {
	if n := len(s.Catches); n > 0 {
		return s.Catches[n-1].End()
	}

	return s.Body.End()
}

func endOf(preferred, fallback Stmt) gotoken.Pos {
	if preferred != nil {
		return preferred.End()
	}

	return fallback.End()
}

func (*BlockStmt) stmtNode()       {}
func (*EmptyStmt) stmtNode()       {}
func (*ExprStmt) stmtNode()        {}
func (*VarDeclStmt) stmtNode()     {}
func (*IfStmt) stmtNode()          {}
func (*ForStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()       {}
func (*DoWhileStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode()      {}
func (*BranchStmt) stmtNode()      {}
func (*EmitStmt) stmtNode()        {}
func (*RevertStmt) stmtNode()      {}
func (*TryStmt) stmtNode()         {}
func (*AssemblyStmt) stmtNode()    {}
func (*PlaceholderStmt) stmtNode() {}
func (*BodyStmt) stmtNode()        {}

// ----------------------------------------------------------------------------
// Declarations

type (
	// A VarDecl node represents one declared variable of a local declaration statement.
	VarDecl struct {
		Type     Expr
		Location token.Kind // token.MEMORY, token.STORAGE, token.CALLDATA; or token.ILLEGAL
		Name     *Ident
	}

	// A Param node represents a function, event, error or return parameter, or a struct field.
	Param struct {
		Type     Expr
		Location token.Kind // data location; or token.ILLEGAL
		Indexed  bool       // indexed event parameter
		Name     *Ident     // may be nil
	}

	// A ParamList represents a parenthesized parameter list.
	ParamList struct {
		Opening gotoken.Pos
		List    []*Param
		Closing gotoken.Pos
	}

	// A PragmaDecl node represents a pragma directive.
	PragmaDecl struct {
		Pragma gotoken.Pos
		Name   string // solidity, abicoder, experimental
		Value  string // e.g. ^0.8.20
		Semi   gotoken.Pos
	}

	// An ImportDecl node represents an import directive.
	ImportDecl struct {
		Import  gotoken.Pos
		Path    string          // unquoted import path
		Alias   string          // import "x" as y; or import * as y from "x"
		Symbols []*ImportSymbol // import {a as b} from "x"
		Semi    gotoken.Pos
	}

	// An ImportSymbol is one symbol of an import {a as b} directive.
	ImportSymbol struct {
		Name  *Ident
		Alias *Ident // may be nil
	}

	// A ContractDecl node represents a contract, abstract contract, interface or library.
	ContractDecl struct {
		Doc      *CommentGroup
		Abstract bool
		Kind     token.Kind // token.CONTRACT, token.INTERFACE or token.LIBRARY
		KindPos  gotoken.Pos
		Name     *Ident
		Bases    []*InheritanceSpec
		Members  []Decl
		Rbrace   gotoken.Pos
	}

	// An InheritanceSpec names a base contract and optional constructor arguments.
	InheritanceSpec struct {
		Name Expr // identifier path
		Args []Expr
	}

	// A StateVarDecl node represents a state variable or a file-level constant.
	StateVarDecl struct {
		Doc        *CommentGroup
		Type       Expr
		Visibility token.Kind // token.PUBLIC, token.INTERNAL, token.PRIVATE; or token.ILLEGAL
		Constant   bool
		Immutable  bool
		Name       *Ident
		Value      Expr // may be nil
		Semi       gotoken.Pos
	}

	// A FuncDecl node represents a function, constructor, modifier, fallback or receive declaration.
	FuncDecl struct {
		Doc        *CommentGroup
		Kind       FuncKind
		KindPos    gotoken.Pos
		Name       *Ident // nil for constructor, fallback and receive
		Params     *ParamList
		Visibility token.Kind // token.EXTERNAL, token.PUBLIC, token.INTERNAL, token.PRIVATE; or token.ILLEGAL
		Mutability token.Kind // token.PURE, token.VIEW, token.PAYABLE; or token.ILLEGAL
		Modifiers  []*ModifierInvocation
		Virtual    bool
		Override   bool
		Returns    *ParamList // may be nil
		Body       *BlockStmt // nil for declarations without implementation
		EndPos     gotoken.Pos
	}

	// A ModifierInvocation node represents a modifier attached to a function header.
	ModifierInvocation struct {
		Name    Expr   // identifier path
		Args    []Expr // arguments
		HasArgs bool   // parentheses present
		EndPos  gotoken.Pos
	}

	// A StructDecl node represents a struct definition.
	StructDecl struct {
		Struct gotoken.Pos
		Name   *Ident
		Fields []*Param
		Rbrace gotoken.Pos
	}

	// An EnumDecl node represents an enum definition.
	EnumDecl struct {
		Enum   gotoken.Pos
		Name   *Ident
		Values []*Ident
		Rbrace gotoken.Pos
	}

	// An EventDecl node represents an event definition.
	EventDecl struct {
		Event     gotoken.Pos
		Name      *Ident
		Params    *ParamList
		Anonymous bool
		Semi      gotoken.Pos
	}

	// An ErrorDecl node represents a custom error definition.
	ErrorDecl struct {
		Error  gotoken.Pos
		Name   *Ident
		Params *ParamList
		Semi   gotoken.Pos
	}

	// A UsingDecl node represents a using ... for ... directive.
	UsingDecl struct {
		Using   gotoken.Pos
		Library []Expr // library or function paths
		For     Expr   // nil for *
		Global  bool
		Semi    gotoken.Pos
	}

	// A TypeDecl node represents a user-defined value type: type T is uint256;.
	TypeDecl struct {
		Type       gotoken.Pos
		Name       *Ident
		Underlying Expr
		Semi       gotoken.Pos
	}
)

func (d *VarDecl) Pos() gotoken.Pos            { return d.Type.Pos() }
func (d *Param) Pos() gotoken.Pos              { return d.Type.Pos() }
func (d *ParamList) Pos() gotoken.Pos          { return d.Opening }
func (d *PragmaDecl) Pos() gotoken.Pos         { return d.Pragma }
func (d *ImportDecl) Pos() gotoken.Pos         { return d.Import }
func (d *ContractDecl) Pos() gotoken.Pos       { return d.KindPos }
func (d *StateVarDecl) Pos() gotoken.Pos       { return d.Type.Pos() }
func (d *FuncDecl) Pos() gotoken.Pos           { return d.KindPos }
func (d *ModifierInvocation) Pos() gotoken.Pos { return d.Name.Pos() }
func (d *StructDecl) Pos() gotoken.Pos         { return d.Struct }
func (d *EnumDecl) Pos() gotoken.Pos           { return d.Enum }
func (d *EventDecl) Pos() gotoken.Pos          { return d.Event }
func (d *ErrorDecl) Pos() gotoken.Pos          { return d.Error }
func (d *UsingDecl) Pos() gotoken.Pos          { return d.Using }
func (d *TypeDecl) Pos() gotoken.Pos           { return d.Type }

func (d *VarDecl) End() gotoken.Pos            { return d.Name.End() }
func (d *ParamList) End() gotoken.Pos          { return d.Closing + 1 }
func (d *PragmaDecl) End() gotoken.Pos         { return d.Semi + 1 }
func (d *ImportDecl) End() gotoken.Pos         { return d.Semi + 1 }
func (d *ContractDecl) End() gotoken.Pos       { return d.Rbrace + 1 }
func (d *StateVarDecl) End() gotoken.Pos       { return d.Semi + 1 }
func (d *FuncDecl) End() gotoken.Pos           { return d.EndPos }
func (d *ModifierInvocation) End() gotoken.Pos { return d.EndPos }
func (d *StructDecl) End() gotoken.Pos         { return d.Rbrace + 1 }
func (d *EnumDecl) End() gotoken.Pos           { return d.Rbrace + 1 }
func (d *EventDecl) End() gotoken.Pos          { return d.Semi + 1 }
func (d *ErrorDecl) End() gotoken.Pos          { return d.Semi + 1 }
func (d *UsingDecl) End() gotoken.Pos          { return d.Semi + 1 }
func (d *TypeDecl) End() gotoken.Pos           { return d.Semi + 1 }

func (d *Param) End() gotoken.Pos {
	if d.Name != nil {
		return d.Name.End()
	}

	return d.Type.End()
}

func (*PragmaDecl) declNode()   {}
func (*ImportDecl) declNode()   {}
func (*ContractDecl) declNode() {}
func (*StateVarDecl) declNode() {}
func (*FuncDecl) declNode()     {}
func (*StructDecl) declNode()   {}
func (*EnumDecl) declNode()     {}
func (*EventDecl) declNode()    {}
func (*ErrorDecl) declNode()    {}
func (*UsingDecl) declNode()    {}
func (*TypeDecl) declNode()     {}

// FuncKind distinguishes the callable declarations sharing the [FuncDecl] node.
type FuncKind uint8

//go:generate go tool stringer -type FuncKind -linecomment
const (
	Function    FuncKind = iota // function
	Constructor                 // constructor
	Modifier                    // modifier
	Fallback                    // fallback
	Receive                     // receive
)

// DisplayName returns the function name, or the kind for unnamed callables.
func (d *FuncDecl) DisplayName() string {
	if d.Name != nil {
		return d.Name.Name
	}

	return d.Kind.String()
}

// ExternallyVisible reports whether the function can be called from outside the contract.
// Functions without explicit visibility default to public.
func (d *FuncDecl) ExternallyVisible() bool {
	switch d.Visibility {
	case token.EXTERNAL, token.PUBLIC, token.ILLEGAL:
		return d.Kind == Function || d.Kind == Fallback || d.Kind == Receive

	default:
		return false
	}
}

// ----------------------------------------------------------------------------
// Files

// A File node represents a Solidity source unit.
type File struct {
	Name     string          // file name
	FileBeg  gotoken.Pos     // start of the source
	FileEnd  gotoken.Pos     // end of the source
	Pragmas  []*PragmaDecl   // pragma directives
	Imports  []*ImportDecl   // import directives
	Decls    []Decl          // top-level declarations except pragmas and imports
	Comments []*CommentGroup // list of all comments in the source file
}

func (f *File) Pos() gotoken.Pos { return f.FileBeg }
func (f *File) End() gotoken.Pos { return f.FileEnd }

// Contracts yields the contract, interface and library declarations of the file in source order.
func (f *File) Contracts() []*ContractDecl {
	var contracts []*ContractDecl

	for _, d := range f.Decls {
		if c, ok := d.(*ContractDecl); ok {
			contracts = append(contracts, c)
		}
	}

	return contracts
}

// Contract returns the contract with the given name, or nil.
func (f *File) Contract(name string) *ContractDecl {
	for _, d := range f.Decls {
		if c, ok := d.(*ContractDecl); ok && c.Name.Name == name {
			return c
		}
	}

	return nil
}

// Functions returns the function declarations of the contract in source order.
func (c *ContractDecl) Functions() []*FuncDecl {
	var funcs []*FuncDecl

	for _, m := range c.Members {
		if fn, ok := m.(*FuncDecl); ok && fn.Kind != Modifier {
			funcs = append(funcs, fn)
		}
	}

	return funcs
}

// Modifier returns the modifier declaration with the given name, or nil.
func (c *ContractDecl) Modifier(name string) *FuncDecl {
	for _, m := range c.Members {
		if fn, ok := m.(*FuncDecl); ok && fn.Kind == Modifier && fn.Name != nil && fn.Name.Name == name {
			return fn
		}
	}

	return nil
}
