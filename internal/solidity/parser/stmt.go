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

package parser

import (
	gotoken "go/token"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/solidity/token"
)

func (p *parser) parseBlock() *ast.BlockStmt {
	b := &ast.BlockStmt{Lbrace: p.expect(token.LBRACE)}

	for p.tok.kind != token.RBRACE && p.tok.kind != token.EOF {
		start := p.index

		var s ast.Stmt
		if p.guard(func() { s = p.parseStmt() }) {
			b.List = append(b.List, s)

			continue
		}

		if err := p.sync(start); err != nil {
			break
		}

		if p.index == start {
			p.next()
		}
	}

	b.Rbrace = p.expect(token.RBRACE)

	return b
}

//nolint:gocyclo,cyclop,funlen
func (p *parser) parseStmt() ast.Stmt {
	switch p.tok.kind {
	case token.LBRACE:
		return p.parseBlock()

	case token.UNCHECKED:
		p.next()
		b := p.parseBlock()
		b.Unchecked = true

		return b

	case token.SEMICOLON:
		s := &ast.EmptyStmt{Semicolon: p.tok.pos}
		p.next()

		return s

	case token.IF:
		return p.parseIf()

	case token.FOR:
		return p.parseFor()

	case token.WHILE:
		s := &ast.WhileStmt{While: p.expect(token.WHILE)}
		p.expect(token.LPAREN)
		s.Cond = p.parseExpr()
		p.expect(token.RPAREN)
		s.Body = p.parseStmt()

		return s

	case token.DO:
		s := &ast.DoWhileStmt{Do: p.expect(token.DO)}
		s.Body = p.parseStmt()

		if p.tok.kind != token.WHILE {
			p.fail("'while'")
		}

		p.next()
		p.expect(token.LPAREN)
		s.Cond = p.parseExpr()
		p.expect(token.RPAREN)
		s.Semi = p.expect(token.SEMICOLON)

		return s

	case token.RETURN:
		s := &ast.ReturnStmt{Return: p.expect(token.RETURN)}
		if p.tok.kind != token.SEMICOLON {
			s.Result = p.parseExpr()
		}

		s.Semi = p.expect(token.SEMICOLON)

		return s

	case token.BREAK, token.CONTINUE:
		s := &ast.BranchStmt{TokPos: p.tok.pos, Tok: p.tok.kind}
		p.next()
		s.Semi = p.expect(token.SEMICOLON)

		return s

	case token.EMIT:
		s := &ast.EmitStmt{Emit: p.expect(token.EMIT)}

		call, ok := p.parseExpr().(*ast.CallExpr)
		if !ok {
			p.fail("event call")
		}

		s.Call = call
		s.Semi = p.expect(token.SEMICOLON)

		return s

	case token.TRY:
		return p.parseTry()

	case token.ASSEMBLY:
		return p.parseAssembly()

	case token.IDENT:
		switch {
		case p.tok.lit == "_" && p.peek(1).kind == token.SEMICOLON:
			s := &ast.PlaceholderStmt{Underscore: p.tok.pos}
			p.next()
			s.Semi = p.expect(token.SEMICOLON)

			return s

		case p.tok.lit == "revert" && (p.peek(1).kind == token.LPAREN || p.peek(1).kind == token.IDENT):
			return p.parseRevert()

		default:
		}

	default:
	}

	return p.parseSimpleStmt()
}

func (p *parser) parseIf() *ast.IfStmt {
	s := &ast.IfStmt{If: p.expect(token.IF)}
	p.expect(token.LPAREN)
	s.Cond = p.parseExpr()
	p.expect(token.RPAREN)
	s.Then = p.parseStmt()

	if p.got(token.ELSE) {
		s.Else = p.parseStmt()
	}

	return s
}

func (p *parser) parseFor() *ast.ForStmt {
	s := &ast.ForStmt{For: p.expect(token.FOR)}
	p.expect(token.LPAREN)

	if !p.got(token.SEMICOLON) {
		s.Init = p.parseSimpleStmt() // consumes ';'
	}

	if p.tok.kind != token.SEMICOLON {
		s.Cond = p.parseExpr()
	}

	p.expect(token.SEMICOLON)

	if p.tok.kind != token.RPAREN {
		s.Post = p.parseExpr()
	}

	p.expect(token.RPAREN)
	s.Body = p.parseStmt()

	return s
}

// parseRevert parses revert(...) and revert Error(...).
func (p *parser) parseRevert() *ast.RevertStmt {
	s := &ast.RevertStmt{Revert: p.tok.pos}
	p.next()

	if p.tok.kind == token.IDENT {
		s.Error = p.parsePath()
	}

	if p.tok.kind == token.LPAREN && p.peek(1).kind == token.LBRACE {
		p.next()
		_, s.Args = p.parseNamedArgs()
		p.expect(token.RPAREN)
	} else {
		s.Args, _ = p.parseCallArgs()
	}

	s.Semi = p.expect(token.SEMICOLON)

	return s
}

func (p *parser) parseTry() *ast.TryStmt {
	s := &ast.TryStmt{Try: p.expect(token.TRY)}
	s.Call = p.parseExpr()

	if p.got(token.RETURNS) {
		s.Returns = p.parseParams()
	}

	s.Body = p.parseBlock()

	for p.tok.kind == token.CATCH {
		c := &ast.CatchClause{Catch: p.tok.pos}
		p.next()

		if p.tok.kind == token.IDENT {
			c.Name = p.parseIdent()
		}

		if p.tok.kind == token.LPAREN {
			c.Params = p.parseParams()
		}

		c.Body = p.parseBlock()
		s.Catches = append(s.Catches, c)
	}

	if len(s.Catches) == 0 {
		p.fail("'catch'")
	}

	return s
}

// parseAssembly skips an inline assembly block; its contents are not analyzed.
func (p *parser) parseAssembly() *ast.AssemblyStmt {
	s := &ast.AssemblyStmt{Assembly: p.expect(token.ASSEMBLY)}

	if p.tok.kind == token.STRING { // dialect
		p.next()
	}

	if p.tok.kind == token.LPAREN { // flags
		p.skipBalanced(token.LPAREN, token.RPAREN)
	}

	s.Rbrace = p.skipBalanced(token.LBRACE, token.RBRACE)

	return s
}

// skipBalanced skips a delimited token sequence and returns the position of the closing delimiter.
func (p *parser) skipBalanced(open, closing token.Kind) gotoken.Pos {
	p.expect(open)

	for depth := 1; ; {
		switch p.tok.kind {
		case token.EOF:
			p.fail("'" + closing.String() + "'")

		case open:
			depth++

		case closing:
			depth--
			if depth == 0 {
				pos := p.tok.pos
				p.next()

				return pos
			}

		default:
		}

		p.next()
	}
}

// parseSimpleStmt parses a variable declaration or an expression statement, including the ';'.
func (p *parser) parseSimpleStmt() ast.Stmt {
	var decl *ast.VarDeclStmt
	if p.try(func() { decl = p.parseVarDecl() }) {
		return decl
	}

	x := p.parseExpr()

	return &ast.ExprStmt{X: x, Semi: p.expect(token.SEMICOLON)}
}

// parseVarDecl parses a local declaration; it fails on anything that is not one.
func (p *parser) parseVarDecl() *ast.VarDeclStmt {
	s := &ast.VarDeclStmt{Start: p.tok.pos}

	if p.tok.kind == token.LPAREN {
		p.next()

		for {
			var v *ast.VarDecl
			if p.tok.kind != token.COMMA && p.tok.kind != token.RPAREN {
				v = p.parseVar()
			}

			s.Vars = append(s.Vars, v)

			if !p.got(token.COMMA) {
				break
			}
		}

		p.expect(token.RPAREN)
		p.expect(token.ASSIGN)
		s.Value = p.parseExpr()
	} else {
		s.Vars = []*ast.VarDecl{p.parseVar()}

		if p.got(token.ASSIGN) {
			s.Value = p.parseExpr()
		}
	}

	s.Semi = p.expect(token.SEMICOLON)

	return s
}

func (p *parser) parseVar() *ast.VarDecl {
	switch p.tok.kind {
	case token.IDENT, token.MAPPING, token.FUNCTION:
	default:
		p.fail("type name")
	}

	return &ast.VarDecl{Type: p.parseTypeName(), Location: p.parseLocation(), Name: p.parseIdent()}
}
