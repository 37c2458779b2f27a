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

package phrase_test

import (
	gotoken "go/token"
	"testing"

	"fillmore-labs.com/branchtree/internal/flow/cond"
	. "fillmore-labs.com/branchtree/internal/phrase"
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/solidity/parser"
	"fillmore-labs.com/branchtree/internal/symbols"
	"fillmore-labs.com/branchtree/internal/testsource"
)

func mustParse(t *testing.T, src string) ast.Expr {
	t.Helper()

	x, err := parser.ParseExpr(src)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", src, err)
	}

	return x
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src         string
		holds, fail string
	}{
		{"amount > 0", "amount is greater than zero", "amount is zero"},
		{"amount > limit", "amount is greater than limit", "amount is at most limit"},
		{"amount >= 1 ether", "amount is at least 1 ether", "amount is less than 1 ether"},
		{"amount < cap", "amount is less than cap", "amount is at least cap"},
		{"amount <= cap", "amount is at most cap", "amount is greater than cap"},
		{"msg.sender == owner", "msg.sender is owner", "msg.sender is not owner"},
		{"to != address(0)", "to is not zero address", "to is zero address"},
		{"amount != 0", "amount is not zero", "amount is zero"},
		{"x < type(uint128).max", "x is less than max uint128", "x is at least max uint128"},
		{"paused", "paused is true", "paused is false"},
		{"!paused", "paused is false", "paused is true"},
		{"(((paused)))", "paused is true", "paused is false"},
		{"whitelist[msg.sender]", "whitelist[msg.sender] is true", "whitelist[msg.sender] is false"},
		{
			"a > 0 && b == c",
			"a is greater than zero and b is c",
			"a is zero or b is not c",
		},
		{
			"a || !b",
			"a is true or b is false",
			"a is false and b is true",
		},
		{
			"!(a == b && c)",
			"a is not b or c is false",
			"a is b and c is true",
		},
		{"isValid(x)", "isValid(x) is true", "isValid(x) is false"},
		{"check({x: a})", "check({x: a}) is true", "check({x: a}) is false"},
		{"a + b > c * 2", "a + b is greater than c * 2", "a + b is at most c * 2"},
		{"true", "true", "false"},
	}

	r := New(nil)

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			holds, fails := r.Render(mustParse(t, tt.src))

			if holds != tt.holds {
				t.Errorf("Got %q, want %q", holds, tt.holds)
			}

			if fails != tt.fail {
				t.Errorf("Got negation %q, want %q", fails, tt.fail)
			}
		})
	}
}

func TestTerms(t *testing.T) {
	t.Parallel()

	r := New(map[string]string{"type(uint256).max": "the maximum value", "0": "nothing"})

	holds, fails := r.Render(mustParse(t, "allowance == type(uint256).max"))

	if want := "allowance is the maximum value"; holds != want {
		t.Errorf("Got %q, want %q", holds, want)
	}

	if want := "allowance is not the maximum value"; fails != want {
		t.Errorf("Got %q, want %q", fails, want)
	}

	if got, want := r.Operand(mustParse(t, "0")), "nothing"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestStrategy(t *testing.T) {
	t.Parallel()

	custom := StrategyFunc(func(_ *Phraser, x ast.Expr) (string, string, bool) {
		if ast.Format(x) == "paused" {
			return "the contract is paused", "the contract is active", true
		}

		return "", "", false
	})

	r := New(nil, custom)

	holds, fails := r.Render(mustParse(t, "!paused && open"))

	if want := "the contract is active and open is true"; holds != want {
		t.Errorf("Got %q, want %q", holds, want)
	}

	if want := "the contract is paused or open is false"; fails != want {
		t.Errorf("Got %q, want %q", fails, want)
	}
}

func TestPhrase(t *testing.T) {
	t.Parallel()

	const members = `
address owner;
mapping(address => uint256) balances;
`

	fset, f, fn := testsource.ParseFunc(t, members, "function test(uint256 amount) external", "")
	_, table := testsource.Check(t, f, fn)

	tests := []struct {
		name      string
		src       string
		loopDepth int
		call      bool
		label     Label
		line      string
		negated   string
		diags     int
	}{
		{"parameter", "amount > 0", 0, false, When, "when amount is greater than zero", "when amount is zero", 0},
		{"storage", "balances[msg.sender] >= amount", 0, false, Given,
			"given balances[msg.sender] is at least amount", "given balances[msg.sender] is less than amount", 0},
		{"storage dominates context", "msg.sender == owner", 0, false, Given,
			"given msg.sender is owner", "given msg.sender is not owner", 0},
		{"context", "block.timestamp < 100", 0, false, When,
			"when block.timestamp is less than 100", "when block.timestamp is at least 100", 0},
		{"no symbols", "1 < 2", 0, false, When, "when 1 is less than 2", "when 1 is at least 2", 0},
		{"loop", "amount != 0", 1, false, When, "when any amount is not zero", "when any amount is zero", 0},
		{"call", "owner.code()", 0, true, When, "when owner.code() succeeds", "when owner.code() fails", 0},
		{"unrecognized", "amount > 0 ? true : false", 0, false, When,
			"when amount > 0 ? true : false holds", "when amount > 0 ? true : false does not hold", 1},
	}

	r := New(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			x := mustParse(t, tt.src)

			pred := cond.NewPredicate(x, table)
			if tt.call {
				pred = cond.NewCallPredicate(x, table)
			}

			c := &cond.Condition{Pred: pred, LoopDepth: tt.loopDepth, Pos: gotoken.NoPos}

			diags := report.NewDiagnostics(fset, "Test.test")
			p := r.Phrase(c, diags)

			if p.Label != tt.label {
				t.Errorf("Got label %v, want %v", p.Label, tt.label)
			}

			if got := p.Line(true); got != tt.line {
				t.Errorf("Got %q, want %q", got, tt.line)
			}

			if got := p.Line(false); got != tt.negated {
				t.Errorf("Got %q, want %q", got, tt.negated)
			}

			if got := diags.Len(); got != tt.diags {
				t.Errorf("Got %d diagnostics, want %d", got, tt.diags)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	storage := symbols.Symbol{Name: "owner", Kind: symbols.Storage}
	context := symbols.Symbol{Name: "msg", Kind: symbols.ExternalContext}

	tests := []struct {
		name string
		pred *cond.Predicate
		want Label
	}{
		{"empty", &cond.Predicate{}, When},
		{"storage", &cond.Predicate{Symbols: []symbols.Symbol{storage}}, Given},
		{"mixed", &cond.Predicate{Symbols: []symbols.Symbol{context, storage}}, Given},
		{"context", &cond.Predicate{Symbols: []symbols.Symbol{context}}, When},
		{"call", &cond.Predicate{Symbols: []symbols.Symbol{storage}, Call: true}, When},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.pred); got != tt.want {
				t.Errorf("Got %v, want %v", got, tt.want)
			}
		})
	}
}
