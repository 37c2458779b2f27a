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

// units are the denominations that may follow a number literal.
var units = map[string]struct{}{
	"wei": {}, "gwei": {}, "ether": {},
	"seconds": {}, "minutes": {}, "hours": {}, "days": {}, "weeks": {}, "years": {},
}

// parseExpr parses an expression including assignments, which are right-associative.
func (p *parser) parseExpr() ast.Expr {
	x := p.parseTernary()

	if p.tok.kind.IsAssign() {
		pos, tok := p.tok.pos, p.tok.kind
		p.next()

		return &ast.AssignExpr{Lhs: x, TokPos: pos, Tok: tok, Rhs: p.parseExpr()}
	}

	return x
}

func (p *parser) parseTernary() ast.Expr {
	cond := p.parseBinaryExpr(token.LowestPrec + 1)

	if !p.got(token.QUESTION) {
		return cond
	}

	then := p.parseTernary()
	p.expect(token.COLON)
	els := p.parseTernary()

	return &ast.ConditionalExpr{Cond: cond, Then: then, Else: els}
}

func (p *parser) parseBinaryExpr(prec1 int) ast.Expr {
	x := p.parseUnaryExpr()

	for {
		op := p.tok.kind

		oprec := op.Precedence()
		if oprec < prec1 {
			return x
		}

		pos := p.tok.pos
		p.next()

		rprec := oprec + 1
		if op == token.EXP { // right-associative
			rprec = oprec
		}

		y := p.parseBinaryExpr(rprec)
		x = &ast.BinaryExpr{X: x, OpPos: pos, Op: op, Y: y}
	}
}

func (p *parser) parseUnaryExpr() ast.Expr {
	switch op := p.tok.kind; op {
	case token.NOT, token.SUB, token.ADD, token.INV, token.INC, token.DEC:
		pos := p.tok.pos
		p.next()

		return &ast.UnaryExpr{OpPos: pos, Op: op, X: p.parseUnaryExpr()}

	case token.DELETE:
		pos := p.tok.pos
		p.next()

		return &ast.DeleteExpr{Delete: pos, X: p.parseUnaryExpr()}

	default:
		return p.parsePostfixExpr(p.parsePrimaryExpr())
	}
}

//nolint:gocyclo,cyclop,funlen
func (p *parser) parsePostfixExpr(x ast.Expr) ast.Expr {
	for {
		switch p.tok.kind {
		case token.PERIOD:
			p.next()

			if p.tok.kind != token.IDENT && !p.tok.kind.IsKeyword() {
				p.fail("member name")
			}

			x = &ast.MemberExpr{X: x, Sel: &ast.Ident{NamePos: p.tok.pos, Name: p.tok.lit}}
			p.next()

		case token.LBRACK:
			lbrack := p.tok.pos
			p.next()

			var index, high ast.Expr
			if p.tok.kind != token.RBRACK && p.tok.kind != token.COLON {
				index = p.parseExpr()
			}

			if p.got(token.COLON) {
				if p.tok.kind != token.RBRACK {
					high = p.parseExpr()
				}

				x = &ast.SliceExpr{X: x, Lbrack: lbrack, Low: index, High: high, Rbrack: p.expect(token.RBRACK)}

				continue
			}

			x = &ast.IndexExpr{X: x, Lbrack: lbrack, Index: index, Rbrack: p.expect(token.RBRACK)}

		case token.LPAREN:
			call := &ast.CallExpr{Fun: x, Lparen: p.tok.pos}

			if p.peek(1).kind == token.LBRACE {
				p.next()
				call.Names, call.Args = p.parseNamedArgs()
				call.Rparen = p.expect(token.RPAREN)
			} else {
				call.Args, call.Rparen = p.parseCallArgs()
			}

			x = call

		case token.LBRACE:
			// call options f{value: v}(...) only directly follow a callee
			if _, isCall := x.(*ast.CallExpr); isCall ||
				p.peek(1).kind != token.IDENT || p.peek(2).kind != token.COLON {
				return x
			}

			lbrace := p.tok.pos
			p.next()

			names, values := p.parseNamedList()
			x = &ast.CallOptions{X: x, Lbrace: lbrace, Names: names, Values: values, Rbrace: p.expect(token.RBRACE)}

		case token.INC, token.DEC:
			x = &ast.UnaryExpr{OpPos: p.tok.pos, Op: p.tok.kind, X: x, Postfix: true}
			p.next()

		default:
			return x
		}
	}
}

// parseNamedArgs parses {name: value, ...} at the current '{' and returns names and values.
func (p *parser) parseNamedArgs() ([]*ast.Ident, []ast.Expr) {
	p.expect(token.LBRACE)
	names, values := p.parseNamedList()
	p.expect(token.RBRACE)

	if names == nil {
		names = []*ast.Ident{}
	}

	return names, values
}

func (p *parser) parseNamedList() (names []*ast.Ident, values []ast.Expr) {
	for p.tok.kind != token.RBRACE {
		names = append(names, p.parseIdent())
		p.expect(token.COLON)
		values = append(values, p.parseExpr())

		if !p.got(token.COMMA) {
			break
		}
	}

	return names, values
}

//nolint:gocyclo,cyclop,funlen
func (p *parser) parsePrimaryExpr() ast.Expr {
	switch p.tok.kind {
	case token.IDENT:
		if p.tok.lit == "address" && p.peek(1).kind == token.PAYABLE {
			return p.parseTypeName()
		}

		x := &ast.Ident{NamePos: p.tok.pos, Name: p.tok.lit}
		p.next()

		return x

	case token.PAYABLE, token.TYPE:
		x := &ast.Ident{NamePos: p.tok.pos, Name: p.tok.lit}
		p.next()

		return x

	case token.NUMBER:
		lit := &ast.BasicLit{ValuePos: p.tok.pos, Kind: token.NUMBER, Value: p.tok.lit}
		lit.EndPos = p.tok.pos + gotoken.Pos(len(p.tok.lit))
		p.next()

		if _, ok := units[p.tok.lit]; ok && p.tok.kind == token.IDENT {
			lit.Unit = p.tok.lit
			lit.EndPos = p.tok.pos + gotoken.Pos(len(p.tok.lit))
			p.next()
		}

		return lit

	case token.STRING, token.HEXSTRING:
		kind := p.tok.kind
		lit := &ast.BasicLit{ValuePos: p.tok.pos, Kind: kind, Value: p.tok.lit}
		lit.EndPos = p.tok.pos + gotoken.Pos(len(p.tok.lit))
		p.next()

		for p.tok.kind == kind { // adjacent literals concatenate
			lit.Value += " " + p.tok.lit
			lit.EndPos = p.tok.pos + gotoken.Pos(len(p.tok.lit))
			p.next()
		}

		return lit

	case token.TRUE, token.FALSE:
		lit := &ast.BasicLit{ValuePos: p.tok.pos, Kind: p.tok.kind, Value: p.tok.lit}
		lit.EndPos = p.tok.pos + gotoken.Pos(len(p.tok.lit))
		p.next()

		return lit

	case token.LPAREN:
		lparen := p.tok.pos
		p.next()

		var (
			elts  []ast.Expr
			comma bool
		)

		for p.tok.kind != token.RPAREN {
			var x ast.Expr
			if p.tok.kind != token.COMMA {
				x = p.parseExpr()
			}

			elts = append(elts, x)

			if !p.got(token.COMMA) {
				break
			}

			comma = true
			if p.tok.kind == token.RPAREN {
				elts = append(elts, nil)
			}
		}

		rparen := p.expect(token.RPAREN)

		if !comma && len(elts) == 1 {
			return &ast.ParenExpr{Lparen: lparen, X: elts[0], Rparen: rparen}
		}

		return &ast.TupleExpr{Lparen: lparen, Elts: elts, Rparen: rparen}

	case token.LBRACK:
		lit := &ast.ArrayLit{Lbrack: p.tok.pos}
		p.next()

		for p.tok.kind != token.RBRACK {
			lit.Elts = append(lit.Elts, p.parseExpr())

			if !p.got(token.COMMA) {
				break
			}
		}

		lit.Rbrack = p.expect(token.RBRACK)

		return lit

	case token.NEW:
		pos := p.tok.pos
		p.next()

		return &ast.NewExpr{New: pos, Type: p.parseTypeName()}

	case token.MAPPING, token.FUNCTION:
		return p.parseTypeName()

	default:
		p.fail("expression")

		return nil
	}
}

// parseTypeName parses an elementary or user-defined type, a mapping or a function type,
// followed by any number of array suffixes.
func (p *parser) parseTypeName() ast.Expr {
	var typ ast.Expr

	switch p.tok.kind {
	case token.MAPPING:
		typ = p.parseMappingType()

	case token.FUNCTION:
		typ = p.parseFunctionType()

	case token.IDENT:
		if p.tok.lit == "address" && p.peek(1).kind == token.PAYABLE {
			typ = &ast.ElementaryType{NamePos: p.tok.pos, Name: "address", Payable: true, EndPos: p.peek(1).pos + 7}
			p.next()
			p.next()

			break
		}

		typ = p.parsePath()

	default:
		p.fail("type name")
	}

	for p.tok.kind == token.LBRACK {
		lbrack := p.tok.pos
		p.next()

		var length ast.Expr
		if p.tok.kind != token.RBRACK {
			length = p.parseExpr()
		}

		typ = &ast.IndexExpr{X: typ, Lbrack: lbrack, Index: length, Rbrack: p.expect(token.RBRACK)}
	}

	return typ
}

func (p *parser) parseMappingType() *ast.MappingType {
	m := &ast.MappingType{Mapping: p.expect(token.MAPPING)}
	p.expect(token.LPAREN)

	m.Key = p.parseTypeName()
	if p.tok.kind == token.IDENT {
		m.KeyName = p.parseIdent()
	}

	p.expect(token.ARROW)

	m.Value = p.parseTypeName()
	if p.tok.kind == token.IDENT {
		m.VName = p.parseIdent()
	}

	m.Rparen = p.expect(token.RPAREN)

	return m
}

func (p *parser) parseFunctionType() *ast.FunctionType {
	f := &ast.FunctionType{Func: p.expect(token.FUNCTION), Visibility: token.ILLEGAL, Mutability: token.ILLEGAL}
	f.Params = p.parseParams()
	f.EndPos = f.Params.End()

	for {
		switch p.tok.kind {
		case token.EXTERNAL, token.INTERNAL:
			f.Visibility = p.tok.kind
			f.EndPos = p.tok.pos + gotoken.Pos(len(p.tok.lit))
			p.next()

		case token.PURE, token.VIEW, token.PAYABLE:
			f.Mutability = p.tok.kind
			f.EndPos = p.tok.pos + gotoken.Pos(len(p.tok.lit))
			p.next()

		case token.RETURNS:
			p.next()
			f.Returns = p.parseParams()
			f.EndPos = f.Returns.End()

			return f

		default:
			return f
		}
	}
}
