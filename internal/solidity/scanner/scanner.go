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

// Package scanner implements a scanner for Solidity source text.
// It takes a []byte as source which can then be tokenized
// through repeated calls to the Scan method.
package scanner

import (
	"fmt"
	gotoken "go/token"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/branchtree/internal/solidity/token"
)

// An ErrorHandler may be provided to [Scanner.Init]. If a syntax error is
// encountered and a handler was installed, the handler is called with a
// position and an error message.
type ErrorHandler func(pos gotoken.Position, msg string)

// A Scanner holds the scanner's internal state while processing
// a given text. It can be allocated as part of another data
// structure but must be initialized via [Scanner.Init] before use.
type Scanner struct {
	// immutable state
	file *gotoken.File // source file handle
	src  []byte        // source
	err  ErrorHandler  // error reporting; or nil

	// scanning state
	ch         rune // current character
	offset     int  // character offset
	rdOffset   int  // reading offset (position after current character)
	lineOffset int  // current line offset
	pragma     bool // scanning a pragma directive body

	// public state - ok to modify
	ErrorCount int // number of errors encountered
}

const (
	bom = 0xFEFF // byte order mark, only permitted as very first character
	eof = -1     // end of file
)

// next reads the next Unicode char into s.ch.
// s.ch < 0 means end-of-file.
func (s *Scanner) next() {
	if s.rdOffset >= len(s.src) {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.lineOffset = s.offset
			s.file.AddLine(s.offset)
		}

		s.ch = eof

		return
	}

	s.offset = s.rdOffset
	if s.ch == '\n' {
		s.lineOffset = s.offset
		s.file.AddLine(s.offset)
	}

	r, w := rune(s.src[s.rdOffset]), 1

	switch {
	case r == 0:
		s.error(s.offset, "illegal character NUL")

	case r >= utf8.RuneSelf:
		// not ASCII
		r, w = utf8.DecodeRune(s.src[s.rdOffset:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.offset, "illegal UTF-8 encoding")
		} else if r == bom && s.offset > 0 {
			s.error(s.offset, "illegal byte order mark")
		}
	}

	s.rdOffset += w
	s.ch = r
}

// peek returns the byte following the most recently read character without
// advancing the scanner. If the scanner is at EOF, peek returns 0.
func (s *Scanner) peek() byte {
	if s.rdOffset < len(s.src) {
		return s.src[s.rdOffset]
	}

	return 0
}

// Init prepares the scanner s to tokenize the text src by setting the
// scanner at the beginning of src. The scanner uses the file set file
// for position information and it adds line information for each line.
//
// Init causes a panic if the file size does not match the src size.
func (s *Scanner) Init(file *gotoken.File, src []byte, err ErrorHandler) {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}

	s.file = file
	s.src = src
	s.err = err

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.lineOffset = 0
	s.pragma = false
	s.ErrorCount = 0

	s.next()

	if s.ch == bom {
		s.next() // ignore BOM at file beginning
	}
}

func (s *Scanner) error(offs int, msg string) {
	if s.err != nil {
		s.err(s.file.Position(s.file.Pos(offs)), msg)
	}

	s.ErrorCount++
}

func (s *Scanner) errorf(offs int, format string, args ...any) {
	s.error(offs, fmt.Sprintf(format, args...))
}

// scanComment returns the text of the comment, including the comment markers.
func (s *Scanner) scanComment() string {
	// initial '/' already consumed; s.ch == '/' || s.ch == '*'
	offs := s.offset - 1 // position of initial '/'

	if s.ch == '/' {
		//-style comment
		s.next()

		for s.ch != '\n' && s.ch >= 0 {
			s.next()
		}

		return string(s.src[offs:s.offset])
	}

	/*-style comment */
	s.next()

	for s.ch >= 0 {
		ch := s.ch
		s.next()

		if ch == '*' && s.ch == '/' {
			s.next()

			return string(s.src[offs:s.offset])
		}
	}

	s.error(offs, "comment not terminated")

	return string(s.src[offs:s.offset])
}

func isLetter(ch rune) bool {
	return 'a' <= lower(ch) && lower(ch) <= 'z' || ch == '_' || ch == '$' || ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9' || ch >= utf8.RuneSelf && unicode.IsDigit(ch)
}

func lower(ch rune) rune     { return ('a' - 'A') | ch }
func isDecimal(ch rune) bool { return '0' <= ch && ch <= '9' }
func isHex(ch rune) bool     { return '0' <= ch && ch <= '9' || 'a' <= lower(ch) && lower(ch) <= 'f' }

func (s *Scanner) scanIdentifier() string {
	offs := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.next()
	}

	return string(s.src[offs:s.offset])
}

// scanNumber scans decimal, hexadecimal and scientific literals.
// Digit separators '_' are accepted and kept in the literal.
func (s *Scanner) scanNumber() string {
	offs := s.offset

	if s.ch == '0' && lower(rune(s.peek())) == 'x' {
		s.next()
		s.next()

		if !isHex(s.ch) {
			s.error(s.offset, "hexadecimal literal has no digits")
		}

		for isHex(s.ch) || s.ch == '_' {
			s.next()
		}

		return string(s.src[offs:s.offset])
	}

	for isDecimal(s.ch) || s.ch == '_' {
		s.next()
	}

	if s.ch == '.' && isDecimal(rune(s.peek())) {
		s.next()

		for isDecimal(s.ch) || s.ch == '_' {
			s.next()
		}
	}

	if lower(s.ch) == 'e' {
		s.next()

		if s.ch == '-' {
			s.next()
		}

		if !isDecimal(s.ch) {
			s.error(s.offset, "exponent has no digits")
		}

		for isDecimal(s.ch) || s.ch == '_' {
			s.next()
		}
	}

	return string(s.src[offs:s.offset])
}

// scanString scans a string literal delimited by quote, which has already been consumed.
func (s *Scanner) scanString(offs int, quote rune) string {
	for {
		ch := s.ch
		if ch == '\n' || ch < 0 {
			s.error(offs, "string literal not terminated")

			break
		}

		s.next()

		if ch == quote {
			break
		}

		if ch == '\\' {
			s.next() // skip escaped character; escapes are validated by the compiler
		}
	}

	return string(s.src[offs:s.offset])
}

// scanDirective scans the raw pragma body up to, but not including, the terminating ';'.
func (s *Scanner) scanDirective() string {
	offs := s.offset
	for s.ch != ';' && s.ch >= 0 {
		s.next()
	}

	end := s.offset
	for end > offs && (s.src[end-1] == ' ' || s.src[end-1] == '\t' || s.src[end-1] == '\n' || s.src[end-1] == '\r') {
		end--
	}

	return string(s.src[offs:end])
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.next()
	}
}

// Helper functions for scanning multi-byte tokens such as >> += >>= .
// Different routines recognize different length tok_i based on matches
// of ch_i. If a token ends in '=', the result is tok1 or tok3
// respectively. Otherwise, the result is tok0 if there was no other
// matching character, or tok2 if the matching character was ch2.

func (s *Scanner) switch2(tok0, tok1 token.Kind) token.Kind {
	if s.ch == '=' {
		s.next()

		return tok1
	}

	return tok0
}

func (s *Scanner) switch3(tok0, tok1 token.Kind, ch2 rune, tok2 token.Kind) token.Kind {
	if s.ch == '=' {
		s.next()

		return tok1
	}

	if s.ch == ch2 {
		s.next()

		return tok2
	}

	return tok0
}

func (s *Scanner) switch4(tok0, tok1 token.Kind, ch2 rune, tok2, tok3 token.Kind) token.Kind {
	if s.ch == '=' {
		s.next()

		return tok1
	}

	if s.ch == ch2 {
		s.next()

		if s.ch == '=' {
			s.next()

			return tok3
		}

		return tok2
	}

	return tok0
}

// Scan scans the next token and returns the token position, the token,
// and its literal string if applicable. The source end is indicated by
// [token.EOF].
//
// If the returned token is a literal ([token.IDENT], [token.NUMBER],
// [token.STRING], [token.HEXSTRING], [token.DIRECTIVE]) or
// [token.COMMENT], the literal string has the corresponding value.
//
// If the returned token is a keyword, the literal string is the keyword.
//
// If the returned token is [token.ILLEGAL], the literal string is the
// offending character.
//
// In all other cases, Scan returns an empty literal string.
func (s *Scanner) Scan() (pos gotoken.Pos, tok token.Kind, lit string) {
	s.skipWhitespace()

	// current token start
	pos = s.file.Pos(s.offset)

	if s.pragma && s.ch != ';' && s.ch >= 0 {
		s.pragma = false

		return pos, token.DIRECTIVE, s.scanDirective()
	}

	s.pragma = false

	// determine token value
	switch ch := s.ch; {
	case isLetter(ch):
		lit = s.scanIdentifier()
		if (lit == "hex" || lit == "unicode") && (s.ch == '"' || s.ch == '\'') {
			offs := s.offset - len(lit)
			quote := s.ch
			s.next()
			str := s.scanString(offs, quote)

			if lit == "hex" {
				return pos, token.HEXSTRING, str
			}

			return pos, token.STRING, str
		}

		tok = token.Lookup(lit)
		if tok == token.PRAGMA {
			s.pragma = true
		}

	case isDecimal(ch) || ch == '.' && isDecimal(rune(s.peek())):
		tok = token.NUMBER
		lit = s.scanNumber()

	default:
		s.next() // always make progress

		switch ch {
		case eof:
			tok = token.EOF

		case '"', '\'':
			tok = token.STRING
			lit = s.scanString(s.offset-1, ch)

		case '.':
			tok = token.PERIOD

		case ',':
			tok = token.COMMA

		case ';':
			tok = token.SEMICOLON

		case ':':
			tok = token.COLON

		case '?':
			tok = token.QUESTION

		case '(':
			tok = token.LPAREN

		case ')':
			tok = token.RPAREN

		case '[':
			tok = token.LBRACK

		case ']':
			tok = token.RBRACK

		case '{':
			tok = token.LBRACE

		case '}':
			tok = token.RBRACE

		case '+':
			tok = s.switch3(token.ADD, token.ADD_ASSIGN, '+', token.INC)

		case '-':
			if s.ch == '>' {
				s.next()
				tok = token.RARROW

				break
			}

			tok = s.switch3(token.SUB, token.SUB_ASSIGN, '-', token.DEC)

		case '*':
			tok = s.switch3(token.MUL, token.MUL_ASSIGN, '*', token.EXP)

		case '/':
			if s.ch == '/' || s.ch == '*' {
				return pos, token.COMMENT, s.scanComment()
			}

			tok = s.switch2(token.QUO, token.QUO_ASSIGN)

		case '%':
			tok = s.switch2(token.REM, token.REM_ASSIGN)

		case '^':
			tok = s.switch2(token.XOR, token.XOR_ASSIGN)

		case '~':
			tok = token.INV

		case '<':
			tok = s.switch4(token.LSS, token.LEQ, '<', token.SHL, token.SHL_ASSIGN)

		case '>':
			tok = s.switch4(token.GTR, token.GEQ, '>', token.SHR, token.SHR_ASSIGN)
			if tok == token.SHR && s.ch == '>' {
				s.next()
				tok = s.switch2(token.SAR, token.SAR_ASSIGN)
			}

		case '=':
			if s.ch == '>' {
				s.next()
				tok = token.ARROW

				break
			}

			tok = s.switch2(token.ASSIGN, token.EQL)

		case '!':
			tok = s.switch2(token.NOT, token.NEQ)

		case '&':
			tok = s.switch3(token.AND, token.AND_ASSIGN, '&', token.LAND)

		case '|':
			tok = s.switch3(token.OR, token.OR_ASSIGN, '|', token.LOR)

		default:
			s.errorf(s.file.Offset(pos), "illegal character %#U", ch)
			tok = token.ILLEGAL
			lit = string(ch)
		}
	}

	return pos, tok, lit
}
