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

package scanner_test

import (
	gotoken "go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/branchtree/internal/solidity/scanner"
	"fillmore-labs.com/branchtree/internal/solidity/token"
)

type elt struct {
	tok token.Kind
	lit string
}

func scan(t *testing.T, src string) ([]elt, ErrorList) {
	t.Helper()

	fset := gotoken.NewFileSet()
	file := fset.AddFile("test.sol", -1, len(src))

	var (
		s    Scanner
		errs ErrorList
	)

	s.Init(file, []byte(src), errs.Add)

	var elts []elt

	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		elts = append(elts, elt{tok, lit})
	}

	return elts, errs
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []elt
	}{
		{
			name: "pragma",
			src:  "pragma solidity ^0.8.20 ;",
			want: []elt{{token.PRAGMA, "pragma"}, {token.DIRECTIVE, "solidity ^0.8.20"}, {token.SEMICOLON, ""}},
		},
		{
			name: "numbers",
			src:  "1_000 0xFF 1e18 2.5 .5 1 ether",
			want: []elt{
				{token.NUMBER, "1_000"}, {token.NUMBER, "0xFF"}, {token.NUMBER, "1e18"},
				{token.NUMBER, "2.5"}, {token.NUMBER, ".5"}, {token.NUMBER, "1"}, {token.IDENT, "ether"},
			},
		},
		{
			name: "strings",
			src:  `"a\"b" 'c' hex"00ff" unicode"é"`,
			want: []elt{
				{token.STRING, `"a\"b"`}, {token.STRING, "'c'"},
				{token.HEXSTRING, `hex"00ff"`}, {token.STRING, `unicode"é"`},
			},
		},
		{
			name: "shifts",
			src:  ">> >>= >>> >>>= << <<= ** =>  ->",
			want: []elt{
				{token.SHR, ""}, {token.SHR_ASSIGN, ""}, {token.SAR, ""}, {token.SAR_ASSIGN, ""},
				{token.SHL, ""}, {token.SHL_ASSIGN, ""}, {token.EXP, ""}, {token.ARROW, ""}, {token.RARROW, ""},
			},
		},
		{
			name: "comparison",
			src:  "a >= b && c != d || !e",
			want: []elt{
				{token.IDENT, "a"}, {token.GEQ, ""}, {token.IDENT, "b"}, {token.LAND, ""},
				{token.IDENT, "c"}, {token.NEQ, ""}, {token.IDENT, "d"}, {token.LOR, ""},
				{token.NOT, ""}, {token.IDENT, "e"},
			},
		},
		{
			name: "keywords",
			src:  "function f() external returns (uint256) { _; }",
			want: []elt{
				{token.FUNCTION, "function"}, {token.IDENT, "f"}, {token.LPAREN, ""}, {token.RPAREN, ""},
				{token.EXTERNAL, "external"}, {token.RETURNS, "returns"}, {token.LPAREN, ""},
				{token.IDENT, "uint256"}, {token.RPAREN, ""}, {token.LBRACE, ""}, {token.IDENT, "_"},
				{token.SEMICOLON, ""}, {token.RBRACE, ""},
			},
		},
		{
			name: "comments",
			src:  "x // line\n/* block */ $y",
			want: []elt{
				{token.IDENT, "x"}, {token.COMMENT, "// line"}, {token.COMMENT, "/* block */"}, {token.IDENT, "$y"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, errs := scan(t, tt.src)
			if errs.Len() > 0 {
				t.Fatalf("Unexpected errors: %v", errs)
			}

			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(elt{})); diff != "" {
				t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unterminated string", `"abc`, "test.sol:1:1: string literal not terminated"},
		{"unterminated comment", "/* abc", "test.sol:1:1: comment not terminated"},
		{"illegal character", "a # b", "test.sol:1:3: illegal character U+0023 '#'"},
		{"hex without digits", "0x", "test.sol:1:3: hexadecimal literal has no digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, errs := scan(t, tt.src)
			if errs.Len() != 1 {
				t.Fatalf("Got %d errors, want 1: %v", errs.Len(), errs)
			}

			if got := errs[0].Error(); got != tt.want {
				t.Errorf("Got error %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	t.Parallel()

	const src = "a\n  b"

	fset := gotoken.NewFileSet()
	file := fset.AddFile("test.sol", -1, len(src))

	var s Scanner
	s.Init(file, []byte(src), nil)

	s.Scan()
	pos, _, lit := s.Scan()

	if got, want := fset.Position(pos).String(), "test.sol:2:3"; got != want || lit != "b" {
		t.Errorf("Got %s %q, want %s \"b\"", got, lit, want)
	}
}
