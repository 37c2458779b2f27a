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

package graph_test

import (
	"context"
	gotoken "go/token"
	"strings"
	"testing"

	. "fillmore-labs.com/branchtree/internal/flow/graph"
	"fillmore-labs.com/branchtree/internal/flow/node"
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/symbols"
	"fillmore-labs.com/branchtree/internal/testsource"
)

// describe renders the graph reachable from n as a nested expression.
func describe(n *node.Node) string {
	var b strings.Builder

	var visit func(n *node.Node)
	visit = func(n *node.Node) {
		switch n.Kind {
		case node.Terminal:
			b.WriteString(n.Outcome.String())

		case node.Branch:
			b.WriteString(n.Cond.Key())
			b.WriteString(" ? ")
			visit(n.Then)
			b.WriteString(" : ")
			visit(n.Else)
			b.WriteString(";")
		}
	}

	visit(n)

	return b.String()
}

func TestBuild(t *testing.T) {
	t.Parallel()

	const members = `
uint256 public total;
mapping(address => uint256) balances;
error Insufficient();
`

	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", ``, "succeed"},
		{"require", `require(amount > 0, "zero");`, "amount > 0|amount ? succeed : revert;"},
		{"assert", `assert(total >= amount);`, "total >= amount|amount,total ? succeed : revert;"},
		{
			"if revert",
			`if (balances[msg.sender] < amount) revert Insufficient();`,
			"balances[msg.sender] < amount|amount,balances,msg ? revert : succeed;",
		},
		{
			"if revert block",
			`if (amount == 0) { revert(); } total += amount;`,
			"amount == 0|amount ? revert : succeed;",
		},
		{
			"sequence",
			`require(amount > 0); require(to != address(0));`,
			"amount > 0|amount ? to != address(0)|address,to ? succeed : revert; : revert;",
		},
		{
			"transparent if",
			`if (amount > 10) { total += 1; } else { total += 2; }`,
			"succeed",
		},
		{
			"if else guards",
			`if (amount > 10) { require(to != address(0)); } else { revert(); }`,
			"amount > 10|amount ? to != address(0)|address,to ? succeed : revert; : revert;",
		},
		{
			"early return",
			`if (amount == 0) return; require(total > 0);`,
			"amount == 0|amount ? succeed : total > 0|total ? succeed : revert;;",
		},
		{
			"loop",
			`for (uint256 i = 0; i < 3; i++) { require(amount > i); }`,
			"any:amount > i|amount,i ? succeed : revert;",
		},
		{
			"loop break",
			`while (true) { if (amount > 0) break; revert(); }`,
			"any:amount > 0|amount ? succeed : revert;",
		},
		{
			"nested loops",
			`for (uint256 i; i < 2; i++) { do { require(total != i); } while (false); } require(amount < 5);`,
			"any:total != i|i,total ? amount < 5|amount ? succeed : revert; : revert;",
		},
		{
			"revert",
			`revert("always");`,
			"revert",
		},
		{
			"statements after revert",
			`revert(); require(amount > 0);`,
			"revert",
		},
		{
			"unchecked block",
			`unchecked { require(amount != 1); }`,
			"amount != 1|amount ? succeed : revert;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, f, fn := testsource.ParseFunc(t, members, "function test(uint256 amount, address to) external", tt.body)
			_, table := testsource.Check(t, f, fn)

			g := Build(context.Background(), fn.Body, table, nil)

			if got := describe(g.Root); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodes(t *testing.T) {
	t.Parallel()

	const body = `
require(amount > 0);
if (to == address(0)) revert();
`

	_, f, fn := testsource.ParseFunc(t, "", "function test(uint256 amount, address to) external", body)
	_, table := testsource.Check(t, f, fn)

	g := Build(context.Background(), fn.Body, table, nil)

	nodes := g.Nodes()

	want := []node.Kind{node.Terminal, node.Branch, node.Branch, node.Terminal, node.Terminal}
	if len(nodes) != len(want) {
		t.Fatalf("Got %d nodes, want %d", len(nodes), len(want))
	}

	for i, n := range nodes {
		if n.Kind != want[i] {
			t.Errorf("Got kind %v for node %d, want %v", n.Kind, i, want[i])
		}
	}

	if g.Root != nodes[1] {
		t.Error("Expected the require guard as root")
	}

	if got, want := nodes[0].Outcome, node.Revert; got != want {
		t.Errorf("Got outcome %v for the require failure, want %v", got, want)
	}

	if got, want := nodes[4].Outcome, node.Succeed; got != want {
		t.Errorf("Got outcome %v at the end of the body, want %v", got, want)
	}
}

// parseWith parses a test function of contract Test, preceded by file-level declarations.
func parseWith(t *testing.T, prelude, members, header, body string) (*gotoken.FileSet, *ast.FuncDecl, *symbols.Table) {
	t.Helper()

	src := "pragma solidity ^0.8.20;\n" + prelude + "\ncontract Test {\n" + members + "\n" + header + " {\n" + body + "\n}\n}\n"

	fset, f := testsource.ParseFile(t, src)

	fns := f.Contract("Test").Functions()
	fn := fns[len(fns)-1]

	_, table := testsource.Check(t, f, fn)

	return fset, fn, table
}

func TestBuildTry(t *testing.T) {
	t.Parallel()

	const (
		prelude = `interface IOracle { function price() external returns (uint256); }`
		members = `IOracle oracle;`
	)

	const body = `
try oracle.price() returns (uint256 p) {
	require(p > 0);
} catch {
	revert();
}
`

	fset, fn, table := parseWith(t, prelude, members, "function test() external", body)

	diags := report.NewDiagnostics(fset, "Test.test")

	g := Build(context.Background(), fn.Body, table, diags)

	const want = "call:oracle.price()|oracle ? p > 0|p ? succeed : revert; : revert;"
	if got := describe(g.Root); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if !g.Root.ElseFirst {
		t.Error("Expected failure arm first")
	}

	all := diags.All()
	if len(all) != 1 {
		t.Fatalf("Got %d diagnostics, want 1: %v", len(all), all)
	}

	if got, want := all[0].Kind, report.CrossContractCallIgnored; got != want {
		t.Errorf("Got kind %v, want %v", got, want)
	}
}

func TestCrossContractCalls(t *testing.T) {
	t.Parallel()

	const prelude = `
interface IERC20 { function transfer(address to, uint256 amount) external returns (bool); }
library Math { function max(uint256 a, uint256 b) internal pure returns (uint256) { return a; } }
`

	const members = `
IERC20 token;
IERC20[] tokens;
mapping(uint256 => IERC20) byId;
function helper() internal returns (uint256) { return 1; }
function total() internal {}
`

	tests := []struct {
		name string
		body string
		want int
	}{
		{"none", `total();`, 0},
		{"internal", `helper();`, 0},
		{"library", `Math.max(1, 2);`, 0},
		{"low level", `(bool ok, ) = to.call{value: 1}(""); require(ok);`, 1},
		{"transfer", `payable(to).transfer(1);`, 1},
		{"contract variable", `token.transfer(to, 1);`, 1},
		{"array element", `tokens[0].transfer(to, 1);`, 1},
		{"mapping value", `byId[1].transfer(to, 1);`, 1},
		{"cast", `IERC20(to).transfer(to, 1);`, 1},
		{"in guard", `require(token.transfer(to, 1));`, 1},
		{"in condition", `if (!token.transfer(to, 1)) revert();`, 1},
		{"two calls", `token.transfer(to, 1); token.transfer(to, 2);`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, fn, table := parseWith(t, prelude, members, "function test(address to) external", tt.body)

			diags := report.NewDiagnostics(fset, "Test.test")

			_ = Build(context.Background(), fn.Body, table, diags)

			if got := diags.Len(); got != tt.want {
				t.Errorf("Got %d diagnostics, want %d: %v", got, tt.want, diags.All())
			}

			for _, d := range diags.All() {
				if d.Kind != report.CrossContractCallIgnored {
					t.Errorf("Got kind %v, want %v", d.Kind, report.CrossContractCallIgnored)
				}
			}
		})
	}
}

func TestBuildPlaceholderPanics(t *testing.T) {
	t.Parallel()

	_, f := testsource.ParseFile(t, `
contract Test {
	modifier guarded() { _; }
}
`)

	mod := f.Contract("Test").Modifier("guarded")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on placeholder")
		}
	}()

	_ = Build(context.Background(), mod.Body, nil, nil)
}
