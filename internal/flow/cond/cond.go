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

// Package cond defines predicates and guard conditions of the control graph.
package cond

import (
	"cmp"
	gotoken "go/token"
	"slices"
	"strings"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/symbols"
)

// Predicate is a boolean expression together with the symbols it references.
type Predicate struct {
	Expr    ast.Expr         // the boolean expression, or the call of a try statement
	Text    string           // canonical source text of Expr
	Symbols []symbols.Symbol // referenced symbols, sorted by name, without duplicates
	Call    bool             // the predicate is "Expr succeeds" rather than a boolean value
}

// NewPredicate creates a predicate for a boolean expression, resolving its identifiers through table.
func NewPredicate(x ast.Expr, table *symbols.Table) *Predicate {
	return &Predicate{Expr: x, Text: ast.Format(x), Symbols: Referenced(x, table)}
}

// NewCallPredicate creates the predicate "call succeeds" for a try statement.
func NewCallPredicate(call ast.Expr, table *symbols.Table) *Predicate {
	p := NewPredicate(call, table)
	p.Call = true

	return p
}

// Key returns the structural identity of the predicate: the normalized text and the referenced symbol set.
func (p *Predicate) Key() string {
	var b strings.Builder

	if p.Call {
		b.WriteString("call:")
	}

	b.WriteString(p.Text)
	b.WriteByte('|')

	for i, s := range p.Symbols {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(s.Name)
	}

	return b.String()
}

// Has reports whether any referenced symbol is of the given kind.
func (p *Predicate) Has(kind symbols.Kind) bool {
	return slices.ContainsFunc(p.Symbols, func(s symbols.Symbol) bool { return s.Kind == kind })
}

// Referenced returns the symbols referenced by an expression, sorted by name.
// Member names, named argument names and call option names are not references.
func Referenced(x ast.Expr, table *symbols.Table) []symbols.Symbol {
	seen := make(map[string]struct{})

	var result []symbols.Symbol

	var visit func(n ast.Node) bool
	visit = func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			if _, ok := seen[n.Name]; ok {
				break
			}

			seen[n.Name] = struct{}{}

			sym := symbols.Symbol{Name: n.Name, Kind: symbols.Unknown}
			if table != nil {
				sym, _ = table.Lookup(n.Name)
			}

			result = append(result, sym)

		case *ast.MemberExpr:
			ast.Inspect(n.X, visit)

			return false

		case *ast.CallExpr:
			ast.Inspect(n.Fun, visit)

			for _, arg := range n.Args {
				ast.Inspect(arg, visit)
			}

			return false

		case *ast.CallOptions:
			ast.Inspect(n.X, visit)

			for _, v := range n.Values {
				ast.Inspect(v, visit)
			}

			return false

		default:
		}

		return true
	}

	if x != nil {
		ast.Inspect(x, visit)
	}

	slices.SortFunc(result, func(a, b symbols.Symbol) int { return cmp.Compare(a.Name, b.Name) })

	return result
}

// Condition is a guard condition: a predicate at a loop nesting depth.
type Condition struct {
	Pred      *Predicate
	LoopDepth int         // number of enclosing loops; 0 outside any loop
	Pos       gotoken.Pos // position of the guard in the (inlined) source
}

// InLoop reports whether the condition is evaluated inside a loop.
func (c *Condition) InLoop() bool { return c.LoopDepth > 0 }

// Key returns the structural identity of the condition.
func (c *Condition) Key() string {
	if c.InLoop() {
		return "any:" + c.Pred.Key()
	}

	return c.Pred.Key()
}

// Step is a decision on a path: the condition and the branch taken.
type Step struct {
	Cond     *Condition
	Polarity bool // true if the predicate held
}

// Key returns the structural identity of the step.
func (s Step) Key() string {
	if s.Polarity {
		return "+" + s.Cond.Key()
	}

	return "-" + s.Cond.Key()
}
