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

package tree_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/branchtree/internal/flow/graph"
	"fillmore-labs.com/branchtree/internal/inline"
	"fillmore-labs.com/branchtree/internal/paths"
	"fillmore-labs.com/branchtree/internal/phrase"
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/testsource"
	. "fillmore-labs.com/branchtree/internal/tree"
)

// outline lists the lines of the tree indented by depth.
func outline(t *Tree) string {
	var b strings.Builder

	b.WriteString(t.Name)
	b.WriteByte('\n')

	var visit func(nodes []*Node, depth int)
	visit = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			b.WriteString(strings.Repeat("  ", depth))
			b.WriteString(n.Line())
			b.WriteByte('\n')
			visit(n.Children, depth+1)
		}
	}

	visit(t.Children, 1)

	return b.String()
}

func build(t *testing.T, members, header, body string) (*Tree, *report.Diagnostics) {
	t.Helper()

	ctx := context.Background()

	fset, f, fn := testsource.ParseFunc(t, members, header, body)
	_, table := testsource.Check(t, f, fn)

	diags := report.NewDiagnostics(fset, "Test."+fn.Name.Name)

	inlined, table, err := inline.Inline(ctx, fn, table, diags)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	g := graph.Build(ctx, inlined, table, diags)

	return Build(ctx, fn.Name.Name, paths.Enumerate(g.Root), phrase.New(nil), diags), diags
}

func TestBuild(t *testing.T) {
	t.Parallel()

	const members = `
address owner;
uint256 totalSupply;
uint256 maxSupply;
mapping(address => uint256) balances;
error InvalidAmount();
error MaxSupplyReached();
modifier onlyOwner() { require(msg.sender == owner); _; }
`

	tests := []struct {
		name   string
		header string
		body   string
		want   string
		leaves int
	}{
		{
			"single require",
			"function deposit(uint256 amount) external",
			`require(amount > 0);`,
			`deposit
  when amount is zero
    it should revert
  when amount is greater than zero
    it should succeed
`,
			2,
		},
		{
			"modifier and nested requires",
			"function withdraw(uint256 amount) external onlyOwner",
			`require(amount > 0); require(balances[msg.sender] >= amount); balances[msg.sender] -= amount;`,
			`withdraw
  given msg.sender is not owner
    it should revert
  given msg.sender is owner
    when amount is zero
      it should revert
    when amount is greater than zero
      given balances[msg.sender] is less than amount
        it should revert
      given balances[msg.sender] is at least amount
        it should succeed
`,
			4,
		},
		{
			"if revert custom errors",
			"function mint(uint256 amount) external",
			`if (amount == 0) revert InvalidAmount(); if (totalSupply + amount > maxSupply) revert MaxSupplyReached(); totalSupply += amount;`,
			`mint
  when amount is zero
    it should revert
  when amount is not zero
    given totalSupply + amount is greater than maxSupply
      it should revert
    given totalSupply + amount is at most maxSupply
      it should succeed
`,
			3,
		},
		{
			"early return",
			"function f(uint256 amount) external",
			`if (amount > 10) return; require(amount != 5);`,
			`f
  when amount is greater than 10
    it should succeed
  when amount is at most 10
    when amount is 5
      it should revert
    when amount is not 5
      it should succeed
`,
			3,
		},
		{
			"loop",
			"function batch(uint256[] calldata amounts) external",
			`for (uint256 i = 0; i < amounts.length; i++) { require(amounts[i] > 0); }`,
			`batch
  when any amounts[i] is zero
    it should revert
  when any amounts[i] is greater than zero
    it should succeed
`,
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr, _ := build(t, members, tt.header, tt.body)

			if diff := cmp.Diff(tt.want, outline(tr)); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}

			if got := tr.Leaves(); got != tt.leaves {
				t.Errorf("Got %d leaves, want %d", got, tt.leaves)
			}
		})
	}
}

func TestBuildReportsOnce(t *testing.T) {
	t.Parallel()

	// the unrecognized condition is reached on two routes
	const body = `
if (flag) { require(y); }
require(x > 0 ? y : z);
`

	tr, diags := build(t, "uint256 x; bool y; bool z;", "function f(bool flag) external", body)

	if got := diags.Len(); got != 1 {
		t.Errorf("Got %d diagnostics, want 1: %v", got, diags.All())
	}

	if got, want := tr.Leaves(), 5; got != want {
		t.Errorf("Got %d leaves, want %d", got, want)
	}
}
