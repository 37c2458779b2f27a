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

package cond_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/branchtree/internal/flow/cond"
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

func names(syms []symbols.Symbol) []string {
	result := make([]string, 0, len(syms))
	for _, s := range syms {
		result = append(result, s.Name)
	}

	return result
}

func TestReferenced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"sorted unique", "c > b && c < a", []string{"a", "b", "c"}},
		{"member", "msg.sender == owner", []string{"msg", "owner"}},
		{"nested member", "s.inner.field > 0", []string{"s"}},
		{"index", "balances[msg.sender] >= amount", []string{"amount", "balances", "msg"}},
		{"named arguments", "check({x: a, y: b})", []string{"a", "b", "check"}},
		{"call options", `to.call{value: v, gas: g}("")`, []string{"g", "to", "v"}},
		{"conversion", "to != address(0)", []string{"address", "to"}},
		{"literal", "true", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := names(Referenced(mustParse(t, tt.src), nil))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Symbols mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReferencedKinds(t *testing.T) {
	t.Parallel()

	_, f, fn := testsource.ParseFunc(t, "address owner;", "function test(uint256 amount) external", "")
	_, table := testsource.Check(t, f, fn)

	p := NewPredicate(mustParse(t, "msg.sender == owner && amount > 0"), table)

	want := []symbols.Symbol{
		{Name: "amount", Kind: symbols.Parameter},
		{Name: "msg", Kind: symbols.ExternalContext},
		{Name: "owner", Kind: symbols.Storage},
	}

	if diff := cmp.Diff(want, p.Symbols, cmp.Comparer(func(a, b symbols.Symbol) bool {
		return a.Name == b.Name && a.Kind == b.Kind
	})); diff != "" {
		t.Errorf("Symbols mismatch (-want +got):\n%s", diff)
	}

	if !p.Has(symbols.Storage) || p.Has(symbols.Unknown) {
		t.Errorf("Got kinds %v, want storage and no unknown symbols", p.Symbols)
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	pred := NewPredicate(mustParse(t, "amount > 0"), nil)
	call := NewCallPredicate(mustParse(t, "oracle.price()"), nil)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"predicate", pred.Key(), "amount > 0|amount"},
		{"call", call.Key(), "call:oracle.price()|oracle"},
		{"condition", (&Condition{Pred: pred}).Key(), "amount > 0|amount"},
		{"loop", (&Condition{Pred: pred, LoopDepth: 2}).Key(), "any:amount > 0|amount"},
		{"holds", Step{Cond: &Condition{Pred: pred}, Polarity: true}.Key(), "+amount > 0|amount"},
		{"fails", Step{Cond: &Condition{Pred: call}}.Key(), "-call:oracle.price()|oracle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.got != tt.want {
				t.Errorf("Got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
