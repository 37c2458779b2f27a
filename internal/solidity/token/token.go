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

// Package token defines the lexical tokens of the Solidity subset understood by branchtree.
//
// Source positions are [go/token.Pos] values relative to a [go/token.FileSet],
// so the front end shares position handling with the Go toolchain.
package token

import "strconv"

// Kind is the set of lexical tokens.
type Kind int

// The list of tokens.
const (
	// Special tokens
	ILLEGAL Kind = iota
	EOF
	COMMENT

	literalBeg
	IDENT     // owner
	NUMBER    // 1e18, 0xff, 1_000
	STRING    // "abc", 'abc', unicode"abc"
	HEXSTRING // hex"00ff"
	DIRECTIVE // raw text after pragma, up to ';'
	literalEnd

	operatorBeg
	ADD // +
	SUB // -
	MUL // *
	QUO // /
	REM // %
	EXP // **

	AND // &
	OR  // |
	XOR // ^
	SHL // <<
	SHR // >>
	SAR // >>>
	INV // ~

	ADD_ASSIGN // +=
	SUB_ASSIGN // -=
	MUL_ASSIGN // *=
	QUO_ASSIGN // /=
	REM_ASSIGN // %=
	AND_ASSIGN // &=
	OR_ASSIGN  // |=
	XOR_ASSIGN // ^=
	SHL_ASSIGN // <<=
	SHR_ASSIGN // >>=
	SAR_ASSIGN // >>>=

	LAND // &&
	LOR  // ||
	INC  // ++
	DEC  // --

	EQL    // ==
	LSS    // <
	GTR    // >
	ASSIGN // =
	NOT    // !

	NEQ    // !=
	LEQ    // <=
	GEQ    // >=
	ARROW  // =>
	RARROW // ->

	LPAREN // (
	LBRACK // [
	LBRACE // {
	COMMA  // ,
	PERIOD // .

	RPAREN    // )
	RBRACK    // ]
	RBRACE    // }
	SEMICOLON // ;
	COLON     // :
	QUESTION  // ?
	operatorEnd

	keywordBeg
	ABSTRACT
	ANONYMOUS
	ASSEMBLY
	BREAK
	CALLDATA
	CATCH
	CONSTANT
	CONSTRUCTOR
	CONTINUE
	CONTRACT
	DELETE
	DO
	ELSE
	EMIT
	ENUM
	EVENT
	EXTERNAL
	FALSE
	FOR
	FUNCTION
	IF
	IMMUTABLE
	IMPORT
	INDEXED
	INTERFACE
	INTERNAL
	IS
	LIBRARY
	MAPPING
	MEMORY
	MODIFIER
	NEW
	OVERRIDE
	PAYABLE
	PRAGMA
	PRIVATE
	PUBLIC
	PURE
	RETURN
	RETURNS
	STORAGE
	STRUCT
	TRUE
	TRY
	TYPE
	UNCHECKED
	USING
	VIEW
	VIRTUAL
	WHILE
	keywordEnd
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",

	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:     "IDENT",
	NUMBER:    "NUMBER",
	STRING:    "STRING",
	HEXSTRING: "HEXSTRING",
	DIRECTIVE: "DIRECTIVE",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	QUO: "/",
	REM: "%",
	EXP: "**",

	AND: "&",
	OR:  "|",
	XOR: "^",
	SHL: "<<",
	SHR: ">>",
	SAR: ">>>",
	INV: "~",

	ADD_ASSIGN: "+=",
	SUB_ASSIGN: "-=",
	MUL_ASSIGN: "*=",
	QUO_ASSIGN: "/=",
	REM_ASSIGN: "%=",
	AND_ASSIGN: "&=",
	OR_ASSIGN:  "|=",
	XOR_ASSIGN: "^=",
	SHL_ASSIGN: "<<=",
	SHR_ASSIGN: ">>=",
	SAR_ASSIGN: ">>>=",

	LAND: "&&",
	LOR:  "||",
	INC:  "++",
	DEC:  "--",

	EQL:    "==",
	LSS:    "<",
	GTR:    ">",
	ASSIGN: "=",
	NOT:    "!",

	NEQ:    "!=",
	LEQ:    "<=",
	GEQ:    ">=",
	ARROW:  "=>",
	RARROW: "->",

	LPAREN: "(",
	LBRACK: "[",
	LBRACE: "{",
	COMMA:  ",",
	PERIOD: ".",

	RPAREN:    ")",
	RBRACK:    "]",
	RBRACE:    "}",
	SEMICOLON: ";",
	COLON:     ":",
	QUESTION:  "?",

	ABSTRACT:    "abstract",
	ANONYMOUS:   "anonymous",
	ASSEMBLY:    "assembly",
	BREAK:       "break",
	CALLDATA:    "calldata",
	CATCH:       "catch",
	CONSTANT:    "constant",
	CONSTRUCTOR: "constructor",
	CONTINUE:    "continue",
	CONTRACT:    "contract",
	DELETE:      "delete",
	DO:          "do",
	ELSE:        "else",
	EMIT:        "emit",
	ENUM:        "enum",
	EVENT:       "event",
	EXTERNAL:    "external",
	FALSE:       "false",
	FOR:         "for",
	FUNCTION:    "function",
	IF:          "if",
	IMMUTABLE:   "immutable",
	IMPORT:      "import",
	INDEXED:     "indexed",
	INTERFACE:   "interface",
	INTERNAL:    "internal",
	IS:          "is",
	LIBRARY:     "library",
	MAPPING:     "mapping",
	MEMORY:      "memory",
	MODIFIER:    "modifier",
	NEW:         "new",
	OVERRIDE:    "override",
	PAYABLE:     "payable",
	PRAGMA:      "pragma",
	PRIVATE:     "private",
	PUBLIC:      "public",
	PURE:        "pure",
	RETURN:      "return",
	RETURNS:     "returns",
	STORAGE:     "storage",
	STRUCT:      "struct",
	TRUE:        "true",
	TRY:         "try",
	TYPE:        "type",
	UNCHECKED:   "unchecked",
	USING:       "using",
	VIEW:        "view",
	VIRTUAL:     "virtual",
	WHILE:       "while",
}

// String returns the string corresponding to the token kind.
// For operators, delimiters, and keywords the string is the actual
// token character sequence (e.g., for the token [ADD], the string is
// "+"). For all other tokens the string corresponds to the token
// constant name (e.g. for the token [IDENT], the string is "IDENT").
func (k Kind) String() string {
	s := ""
	if 0 <= k && k < Kind(len(tokens)) {
		s = tokens[k]
	}

	if s == "" {
		s = "token(" + strconv.Itoa(int(k)) + ")"
	}

	return s
}

// A set of constants for precedence-based expression parsing.
// Non-operators have lowest precedence, followed by operators
// starting with precedence 1 up to unary operators.
const (
	LowestPrec  = 0 // non-operators
	UnaryPrec   = 14
	HighestPrec = 15
)

// Precedence returns the operator precedence of the binary
// operator k. If k is not a binary operator, the result
// is LowestPrec.
//
// Assignment (1) and the conditional operator (2) are handled by the parser.
func (k Kind) Precedence() int {
	switch k {
	case LOR:
		return 3
	case LAND:
		return 4
	case EQL, NEQ:
		return 5
	case LSS, LEQ, GTR, GEQ:
		return 6
	case OR:
		return 7
	case XOR:
		return 8
	case AND:
		return 9
	case SHL, SHR, SAR:
		return 10
	case ADD, SUB:
		return 11
	case MUL, QUO, REM:
		return 12
	case EXP:
		return 13
	}

	return LowestPrec
}

// IsAssign reports whether k is a plain or compound assignment operator.
func (k Kind) IsAssign() bool {
	return k == ASSIGN || ADD_ASSIGN <= k && k <= SAR_ASSIGN
}

var keywords map[string]Kind

func init() {
	keywords = make(map[string]Kind, keywordEnd-(keywordBeg+1))
	for i := keywordBeg + 1; i < keywordEnd; i++ {
		keywords[tokens[i]] = i
	}
}

// Lookup maps an identifier to its keyword token or [IDENT] (if not a keyword).
func Lookup(ident string) Kind {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}

	return IDENT
}

// IsLiteral returns true for tokens corresponding to identifiers
// and basic type literals; it returns false otherwise.
func (k Kind) IsLiteral() bool { return literalBeg < k && k < literalEnd }

// IsOperator returns true for tokens corresponding to operators and
// delimiters; it returns false otherwise.
func (k Kind) IsOperator() bool { return operatorBeg < k && k < operatorEnd }

// IsKeyword returns true for tokens corresponding to keywords;
// it returns false otherwise.
func (k Kind) IsKeyword() bool { return keywordBeg < k && k < keywordEnd }
