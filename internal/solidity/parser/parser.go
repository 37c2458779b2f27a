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

// Package parser implements a parser for Solidity source units.
//
// The parser covers the declaration and statement forms needed to analyze
// function bodies. Inline assembly is skipped as an opaque block.
package parser

import (
	"errors"
	"fmt"
	gotoken "go/token"
	"strings"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/solidity/scanner"
	"fillmore-labs.com/branchtree/internal/solidity/token"
)

// ParseFile parses the source code of a single Solidity source file and returns the corresponding [ast.File].
//
// If the source couldn't be read or contains syntax errors, the returned AST is
// partial and the error is a [scanner.ErrorList] sorted by source position.
func ParseFile(fset *gotoken.FileSet, filename string, src []byte) (*ast.File, error) {
	file := fset.AddFile(filename, -1, len(src))

	var p parser
	p.init(file, src)

	f := p.parseFile()
	f.Name = filename

	p.errors.Sort()

	return f, p.errors.Err()
}

// ParseExpr parses a single Solidity expression.
func ParseExpr(src string) (ast.Expr, error) {
	fset := gotoken.NewFileSet()
	file := fset.AddFile("", -1, len(src))

	var p parser
	p.init(file, []byte(src))

	var x ast.Expr

	p.guard(func() {
		x = p.parseExpr()
		if p.tok.kind != token.EOF {
			p.errorExpected(p.tok.pos, "end of expression")
		}
	})

	return x, p.errors.Err()
}

// item is a pre-scanned token.
type item struct {
	pos  gotoken.Pos
	kind token.Kind
	lit  string
	lead *ast.CommentGroup // doc comment immediately preceding the token; or nil
}

type parser struct {
	file     *gotoken.File
	errors   scanner.ErrorList
	comments []*ast.CommentGroup

	items []item
	index int
	tok   item // current token
}

// bailout is raised to abandon the current declaration after a syntax error.
type bailout struct{}

func (p *parser) init(file *gotoken.File, src []byte) {
	p.file = file

	var s scanner.Scanner
	s.Init(file, src, func(pos gotoken.Position, msg string) { p.errors.Add(pos, msg) })

	var (
		pending     []*ast.Comment
		pendingEnd  int  // line of the end of the last pending comment
		leadable    bool // first pending comment starts on a line after the previous token
		prevTokLine int
	)

	flush := func() *ast.CommentGroup {
		if len(pending) == 0 {
			return nil
		}

		g := &ast.CommentGroup{List: pending}
		p.comments = append(p.comments, g)
		pending = nil

		return g
	}

	for {
		pos, kind, lit := s.Scan()

		if kind == token.COMMENT {
			line := file.Line(pos)
			if len(pending) > 0 && line > pendingEnd+1 {
				flush()
			}

			if len(pending) == 0 {
				leadable = line > prevTokLine
			}

			pending = append(pending, &ast.Comment{Slash: pos, Text: lit})
			pendingEnd = line + strings.Count(lit, "\n")

			continue
		}

		line := file.Line(pos)

		var lead *ast.CommentGroup
		if g := flush(); g != nil && leadable && pendingEnd+1 >= line {
			lead = g
		}

		p.items = append(p.items, item{pos: pos, kind: kind, lit: lit, lead: lead})
		prevTokLine = line

		if kind == token.EOF {
			break
		}
	}

	p.tok = p.items[0]
}

// ----------------------------------------------------------------------------
// Token handling

func (p *parser) next() {
	if p.index < len(p.items)-1 {
		p.index++
	}

	p.tok = p.items[p.index]
}

// peek returns the token n positions ahead of the current one.
func (p *parser) peek(n int) item {
	if i := p.index + n; i < len(p.items) {
		return p.items[i]
	}

	return p.items[len(p.items)-1]
}

func (p *parser) reset(index int) {
	p.index = index
	p.tok = p.items[index]
}

func (p *parser) error(pos gotoken.Pos, msg string) {
	p.errors.Add(p.file.Position(pos), msg)
}

func (p *parser) errorExpected(pos gotoken.Pos, msg string) {
	found := p.tok.kind.String()
	if p.tok.lit != "" && p.tok.kind != token.EOF {
		found = fmt.Sprintf("%q", p.tok.lit)
	}

	p.error(pos, "expected "+msg+", found "+found)
}

// fail records an error and abandons the current construct.
func (p *parser) fail(msg string) {
	p.errorExpected(p.tok.pos, msg)
	panic(bailout{})
}

func (p *parser) expect(kind token.Kind) gotoken.Pos {
	pos := p.tok.pos
	if p.tok.kind != kind {
		p.fail("'" + kind.String() + "'")
	}

	p.next()

	return pos
}

func (p *parser) got(kind token.Kind) bool {
	if p.tok.kind != kind {
		return false
	}

	p.next()

	return true
}

// isWord reports whether the current token is the contextual keyword word.
func (p *parser) isWord(word string) bool {
	return p.tok.kind == token.IDENT && p.tok.lit == word
}

// guard runs f, recovering from a bailout.
func (p *parser) guard(f func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isBailout := r.(bailout); !isBailout {
				panic(r)
			}

			ok = false
		}
	}()

	f()

	return true
}

// try runs f speculatively: on a bailout the token position and errors are restored.
func (p *parser) try(f func()) bool {
	index, errs := p.index, len(p.errors)

	if p.guard(f) {
		return true
	}

	p.reset(index)
	p.errors = p.errors[:errs]

	return false
}

var errSync = errors.New("synchronize")

// sync skips from the start index to the end of the broken member:
// the first ';' or balanced '}' at nesting depth zero. The closing brace
// of an enclosing block is not consumed.
func (p *parser) sync(start int) error {
	p.reset(start)

	depth := 0

	for {
		switch p.tok.kind {
		case token.EOF:
			return errSync

		case token.LBRACE, token.LPAREN, token.LBRACK:
			depth++

		case token.RBRACE, token.RPAREN, token.RBRACK:
			depth--
			if depth < 0 {
				return nil
			}

			if depth == 0 && p.tok.kind == token.RBRACE {
				p.next()

				return nil
			}

		case token.SEMICOLON:
			if depth == 0 {
				p.next()

				return nil
			}

		default:
		}

		p.next()
	}
}

// ----------------------------------------------------------------------------
// Source units

func (p *parser) parseFile() *ast.File {
	f := &ast.File{FileBeg: gotoken.Pos(p.file.Base())}

	for p.tok.kind != token.EOF {
		start := p.index
		if p.guard(func() { p.parseSourceUnitItem(f) }) && p.index > start {
			continue
		}

		if err := p.sync(start); err != nil {
			break
		}

		if p.index == start {
			p.next() // stray closing delimiter
		}
	}

	f.FileEnd = gotoken.Pos(p.file.Base() + p.file.Size())
	f.Comments = p.comments

	return f
}

func (p *parser) parseSourceUnitItem(f *ast.File) {
	switch p.tok.kind {
	case token.PRAGMA:
		f.Pragmas = append(f.Pragmas, p.parsePragma())

	case token.IMPORT:
		f.Imports = append(f.Imports, p.parseImport())

	case token.ABSTRACT, token.CONTRACT, token.INTERFACE, token.LIBRARY:
		f.Decls = append(f.Decls, p.parseContract())

	default:
		f.Decls = append(f.Decls, p.parseMember())
	}
}

func (p *parser) parsePragma() *ast.PragmaDecl {
	pos := p.expect(token.PRAGMA)

	directive := ""
	if p.tok.kind == token.DIRECTIVE {
		directive = p.tok.lit
		p.next()
	}

	semi := p.expect(token.SEMICOLON)

	name, value, _ := strings.Cut(directive, " ")

	return &ast.PragmaDecl{Pragma: pos, Name: name, Value: strings.TrimSpace(value), Semi: semi}
}

func (p *parser) parseImport() *ast.ImportDecl {
	decl := &ast.ImportDecl{Import: p.expect(token.IMPORT)}

	switch p.tok.kind {
	case token.STRING:
		decl.Path = p.parseImportPath()

		if p.isWord("as") {
			p.next()
			decl.Alias = p.parseIdent().Name
		}

	case token.MUL:
		p.next()

		if !p.isWord("as") {
			p.fail("'as'")
		}

		p.next()
		decl.Alias = p.parseIdent().Name
		p.expectWord("from")
		decl.Path = p.parseImportPath()

	case token.LBRACE:
		p.next()

		for p.tok.kind != token.RBRACE {
			sym := &ast.ImportSymbol{Name: p.parseIdent()}
			if p.isWord("as") {
				p.next()
				sym.Alias = p.parseIdent()
			}

			decl.Symbols = append(decl.Symbols, sym)

			if !p.got(token.COMMA) {
				break
			}
		}

		p.expect(token.RBRACE)
		p.expectWord("from")
		decl.Path = p.parseImportPath()

	default:
		p.fail("import path")
	}

	decl.Semi = p.expect(token.SEMICOLON)

	return decl
}

func (p *parser) expectWord(word string) {
	if !p.isWord(word) {
		p.fail("'" + word + "'")
	}

	p.next()
}

func (p *parser) parseImportPath() string {
	if p.tok.kind != token.STRING {
		p.fail("import path")
	}

	path := unquote(p.tok.lit)
	p.next()

	return path
}

// unquote strips the quotes of a string literal; escapes in import paths are not interpreted.
func unquote(lit string) string {
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}

	return lit
}

func (p *parser) parseIdent() *ast.Ident {
	pos, name := p.tok.pos, p.tok.lit
	if p.tok.kind != token.IDENT {
		p.fail("identifier")
	}

	p.next()

	return &ast.Ident{NamePos: pos, Name: name}
}

// parsePath parses an identifier path a.b.c.
func (p *parser) parsePath() ast.Expr {
	var x ast.Expr = p.parseIdent()
	for p.tok.kind == token.PERIOD {
		p.next()
		x = &ast.MemberExpr{X: x, Sel: p.parseIdent()}
	}

	return x
}

// ----------------------------------------------------------------------------
// Contracts

func (p *parser) parseContract() *ast.ContractDecl {
	c := &ast.ContractDecl{Doc: p.tok.lead}

	if p.tok.kind == token.ABSTRACT {
		c.Abstract = true
		p.next()
	}

	switch p.tok.kind {
	case token.CONTRACT, token.INTERFACE, token.LIBRARY:
		c.Kind, c.KindPos = p.tok.kind, p.tok.pos
		p.next()

	default:
		p.fail("contract, interface or library")
	}

	c.Name = p.parseIdent()

	if p.got(token.IS) {
		for {
			base := &ast.InheritanceSpec{Name: p.parsePath()}
			if p.tok.kind == token.LPAREN {
				base.Args, _ = p.parseCallArgs()
			}

			c.Bases = append(c.Bases, base)

			if !p.got(token.COMMA) {
				break
			}
		}
	}

	p.expect(token.LBRACE)

	for p.tok.kind != token.RBRACE && p.tok.kind != token.EOF {
		start := p.index

		var member ast.Decl
		if p.guard(func() { member = p.parseMember() }) {
			c.Members = append(c.Members, member)

			continue
		}

		if err := p.sync(start); err != nil {
			break
		}

		if p.index == start {
			p.next()
		}
	}

	c.Rbrace = p.expect(token.RBRACE)

	return c
}

func (p *parser) parseMember() ast.Decl {
	doc := p.tok.lead

	switch p.tok.kind {
	case token.FUNCTION:
		if p.peek(1).kind == token.LPAREN && p.isFunctionTypeVar() {
			return p.parseStateVar(doc)
		}

		return p.parseFunction(doc, ast.Function)

	case token.CONSTRUCTOR:
		return p.parseFunction(doc, ast.Constructor)

	case token.MODIFIER:
		return p.parseFunction(doc, ast.Modifier)

	case token.STRUCT:
		return p.parseStruct()

	case token.ENUM:
		return p.parseEnum()

	case token.EVENT:
		return p.parseEvent()

	case token.USING:
		return p.parseUsing()

	case token.TYPE:
		if p.peek(1).kind == token.IDENT && p.peek(2).kind == token.IS {
			return p.parseTypeDecl()
		}

	case token.IDENT:
		switch {
		case (p.tok.lit == "fallback" || p.tok.lit == "receive") && p.peek(1).kind == token.LPAREN:
			kind := ast.Fallback
			if p.tok.lit == "receive" {
				kind = ast.Receive
			}

			return p.parseFunction(doc, kind)

		case p.tok.lit == "error" && p.peek(1).kind == token.IDENT && p.peek(2).kind == token.LPAREN:
			return p.parseError()

		default:
		}

	default:
	}

	return p.parseStateVar(doc)
}

// isFunctionTypeVar distinguishes a function-typed state variable from a legacy unnamed fallback.
func (p *parser) isFunctionTypeVar() bool {
	start := p.index
	defer p.reset(start)

	return p.try(func() {
		p.parseTypeName()

		for p.tok.kind == token.PUBLIC || p.tok.kind == token.INTERNAL || p.tok.kind == token.PRIVATE ||
			p.tok.kind == token.CONSTANT || p.tok.kind == token.IMMUTABLE {
			p.next()
		}

		p.parseIdent()
	})
}

func (p *parser) parseFunction(doc *ast.CommentGroup, kind ast.FuncKind) *ast.FuncDecl {
	fn := &ast.FuncDecl{
		Doc:        doc,
		Kind:       kind,
		KindPos:    p.tok.pos,
		Visibility: token.ILLEGAL,
		Mutability: token.ILLEGAL,
	}
	p.next()

	switch kind {
	case ast.Function:
		if p.tok.kind == token.IDENT {
			fn.Name = p.parseIdent()
		} else {
			fn.Kind = ast.Fallback // pre-0.6 unnamed fallback
		}

	case ast.Modifier:
		fn.Name = p.parseIdent()

	default:
	}

	if kind != ast.Modifier || p.tok.kind == token.LPAREN {
		fn.Params = p.parseParams()
	} else {
		fn.Params = &ast.ParamList{Opening: p.tok.pos, Closing: p.tok.pos}
	}

	p.parseFunctionAttributes(fn)

	switch p.tok.kind {
	case token.LBRACE:
		fn.Body = p.parseBlock()
		fn.EndPos = fn.Body.End()

	case token.SEMICOLON:
		fn.EndPos = p.tok.pos + 1
		p.next()

	default:
		p.fail("function body")
	}

	return fn
}

func (p *parser) parseFunctionAttributes(fn *ast.FuncDecl) {
	for {
		switch p.tok.kind {
		case token.EXTERNAL, token.PUBLIC, token.INTERNAL, token.PRIVATE:
			fn.Visibility = p.tok.kind
			p.next()

		case token.PURE, token.VIEW, token.PAYABLE:
			fn.Mutability = p.tok.kind
			p.next()

		case token.CONSTANT: // legacy view
			fn.Mutability = token.VIEW
			p.next()

		case token.VIRTUAL:
			fn.Virtual = true
			p.next()

		case token.OVERRIDE:
			fn.Override = true
			p.parseOverride()

		case token.RETURNS:
			p.next()
			fn.Returns = p.parseParams()

		case token.IDENT:
			fn.Modifiers = append(fn.Modifiers, p.parseModifierInvocation())

		default:
			return
		}
	}
}

func (p *parser) parseOverride() {
	p.expect(token.OVERRIDE)

	if !p.got(token.LPAREN) {
		return
	}

	for p.tok.kind != token.RPAREN {
		p.parsePath()

		if !p.got(token.COMMA) {
			break
		}
	}

	p.expect(token.RPAREN)
}

func (p *parser) parseModifierInvocation() *ast.ModifierInvocation {
	m := &ast.ModifierInvocation{Name: p.parsePath()}
	m.EndPos = m.Name.End()

	if p.tok.kind == token.LPAREN {
		var rparen gotoken.Pos

		m.HasArgs = true
		m.Args, rparen = p.parseCallArgs()
		m.EndPos = rparen + 1
	}

	return m
}

// parseCallArgs parses a positional argument list (a, b, c).
func (p *parser) parseCallArgs() (args []ast.Expr, rparen gotoken.Pos) {
	p.expect(token.LPAREN)

	for p.tok.kind != token.RPAREN {
		args = append(args, p.parseExpr())

		if !p.got(token.COMMA) {
			break
		}
	}

	return args, p.expect(token.RPAREN)
}

func (p *parser) parseParams() *ast.ParamList {
	list := &ast.ParamList{Opening: p.expect(token.LPAREN)}

	for p.tok.kind != token.RPAREN {
		list.List = append(list.List, p.parseParam())

		if !p.got(token.COMMA) {
			break
		}
	}

	list.Closing = p.expect(token.RPAREN)

	return list
}

func (p *parser) parseParam() *ast.Param {
	param := &ast.Param{Type: p.parseTypeName(), Location: p.parseLocation()}

	if p.got(token.INDEXED) {
		param.Indexed = true
	}

	if p.tok.kind == token.IDENT {
		param.Name = p.parseIdent()
	}

	return param
}

func (p *parser) parseLocation() token.Kind {
	switch kind := p.tok.kind; kind {
	case token.MEMORY, token.STORAGE, token.CALLDATA:
		p.next()

		return kind

	default:
		return token.ILLEGAL
	}
}

func (p *parser) parseStateVar(doc *ast.CommentGroup) *ast.StateVarDecl {
	v := &ast.StateVarDecl{Doc: doc, Type: p.parseTypeName(), Visibility: token.ILLEGAL}

loop:
	for {
		switch p.tok.kind {
		case token.PUBLIC, token.INTERNAL, token.PRIVATE:
			v.Visibility = p.tok.kind
			p.next()

		case token.CONSTANT:
			v.Constant = true
			p.next()

		case token.IMMUTABLE:
			v.Immutable = true
			p.next()

		case token.OVERRIDE:
			p.parseOverride()

		case token.IDENT:
			if p.tok.lit != "transient" || p.peek(1).kind != token.IDENT {
				break loop
			}

			p.next()

		default:
			break loop
		}
	}

	v.Name = p.parseIdent()

	if p.got(token.ASSIGN) {
		v.Value = p.parseExpr()
	}

	v.Semi = p.expect(token.SEMICOLON)

	return v
}

func (p *parser) parseStruct() *ast.StructDecl {
	s := &ast.StructDecl{Struct: p.expect(token.STRUCT), Name: p.parseIdent()}
	p.expect(token.LBRACE)

	for p.tok.kind != token.RBRACE && p.tok.kind != token.EOF {
		field := &ast.Param{Type: p.parseTypeName(), Location: token.ILLEGAL, Name: p.parseIdent()}
		p.expect(token.SEMICOLON)
		s.Fields = append(s.Fields, field)
	}

	s.Rbrace = p.expect(token.RBRACE)

	return s
}

func (p *parser) parseEnum() *ast.EnumDecl {
	e := &ast.EnumDecl{Enum: p.expect(token.ENUM), Name: p.parseIdent()}
	p.expect(token.LBRACE)

	for p.tok.kind != token.RBRACE {
		e.Values = append(e.Values, p.parseIdent())

		if !p.got(token.COMMA) {
			break
		}
	}

	e.Rbrace = p.expect(token.RBRACE)

	return e
}

func (p *parser) parseEvent() *ast.EventDecl {
	e := &ast.EventDecl{Event: p.expect(token.EVENT), Name: p.parseIdent(), Params: p.parseParams()}
	e.Anonymous = p.got(token.ANONYMOUS)
	e.Semi = p.expect(token.SEMICOLON)

	return e
}

func (p *parser) parseError() *ast.ErrorDecl {
	e := &ast.ErrorDecl{Error: p.tok.pos}
	p.next()
	e.Name = p.parseIdent()
	e.Params = p.parseParams()
	e.Semi = p.expect(token.SEMICOLON)

	return e
}

func (p *parser) parseUsing() *ast.UsingDecl {
	u := &ast.UsingDecl{Using: p.expect(token.USING)}

	if p.got(token.LBRACE) {
		for p.tok.kind != token.RBRACE {
			u.Library = append(u.Library, p.parsePath())

			if p.isWord("as") { // user-defined operator binding
				p.next()
				p.next()
			}

			if !p.got(token.COMMA) {
				break
			}
		}

		p.expect(token.RBRACE)
	} else {
		u.Library = append(u.Library, p.parsePath())
	}

	if p.tok.kind != token.FOR {
		p.fail("'for'")
	}

	p.next()

	if !p.got(token.MUL) {
		u.For = p.parseTypeName()
	}

	if p.isWord("global") {
		u.Global = true
		p.next()
	}

	u.Semi = p.expect(token.SEMICOLON)

	return u
}

func (p *parser) parseTypeDecl() *ast.TypeDecl {
	t := &ast.TypeDecl{Type: p.expect(token.TYPE), Name: p.parseIdent()}
	p.expect(token.IS)
	t.Underlying = p.parseTypeName()
	t.Semi = p.expect(token.SEMICOLON)

	return t
}
