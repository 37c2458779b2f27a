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

// Package inline expands the modifiers attached to a function into a single body.
package inline

import (
	"context"
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/symbols"
)

// Inline returns the body of fn with its modifiers expanded in attachment order,
// together with the symbol table of the outermost modifier. Entering an [ast.BodyStmt]
// switches to the table returned by [symbols.Table.Body], so the locals of a modifier
// are only visible to its own statements.
//
// The placeholder of each modifier is replaced by the wrapped code, held in an
// [ast.BodyStmt] so that return statements leave only the wrapped body. Modifier
// parameters are replaced by the invocation arguments.
//
// A modifier that cannot be expanded is reported to diags and the function is
// skipped with an error wrapping [report.ErrUnresolvedModifier].
func Inline(ctx context.Context, fn *ast.FuncDecl, table *symbols.Table, diags *report.Diagnostics) (*ast.BlockStmt, *symbols.Table, error) {
	defer trace.StartRegion(ctx, "Inline").End()

	mods, err := resolve(fn, table, diags)
	if err != nil {
		return nil, nil, err
	}

	if len(mods) == 0 {
		return fn.Body, table, nil
	}

	body := fn.Body
	for i := len(mods) - 1; i >= 0; i-- {
		m := mods[i]

		expanded, err := expand(m, body)
		if err != nil {
			diags.Reportf(m.inv.Pos(), report.UnresolvedModifier, "modifier %s: %v", m.name, err)

			return nil, nil, fmt.Errorf("%w %s: %w", report.ErrUnresolvedModifier, m.name, err)
		}

		decl := *m.decl
		decl.Params = nil // parameters are substituted away

		body = expanded
		table = table.WithModifier(&decl)
	}

	return body, table, nil
}

// modifier is a resolved modifier invocation.
type modifier struct {
	name string
	inv  *ast.ModifierInvocation
	decl *ast.FuncDecl
}

// resolve looks up the modifiers invoked by fn. Base constructor invocations are skipped.
func resolve(fn *ast.FuncDecl, table *symbols.Table, diags *report.Diagnostics) ([]modifier, error) {
	mods := make([]modifier, 0, len(fn.Modifiers))

	for _, inv := range fn.Modifiers {
		name := invocationName(inv)

		decl, ok := table.Modifier(name)
		if !ok {
			if _, isContract := table.Scope().Contract(name); isContract {
				continue // base constructor arguments
			}

			diags.Reportf(inv.Pos(), report.UnresolvedModifier, "modifier %s is not declared", name)

			return nil, fmt.Errorf("%w %s: not declared", report.ErrUnresolvedModifier, name)
		}

		if decl.Body == nil {
			diags.Reportf(inv.Pos(), report.UnresolvedModifier, "modifier %s has no implementation", name)

			return nil, fmt.Errorf("%w %s: no implementation", report.ErrUnresolvedModifier, name)
		}

		if n, p := len(inv.Args), paramCount(decl); n != p {
			diags.Reportf(inv.Pos(), report.UnresolvedModifier, "modifier %s expects %d arguments, got %d", name, p, n)

			return nil, fmt.Errorf("%w %s: argument count mismatch", report.ErrUnresolvedModifier, name)
		}

		if table.Scope().Complete() {
			if id := unresolved(decl, table); id != nil {
				diags.Reportf(id.Pos(), report.UnresolvedModifier, "modifier %s references undeclared %s", name, id.Name)

				return nil, fmt.Errorf("%w %s: undeclared identifier %s", report.ErrUnresolvedModifier, name, id.Name)
			}
		}

		mods = append(mods, modifier{name: name, inv: inv, decl: decl})
	}

	return mods, nil
}

// invocationName returns the last component of the invoked name.
func invocationName(inv *ast.ModifierInvocation) string {
	switch n := inv.Name.(type) {
	case *ast.Ident:
		return n.Name

	case *ast.MemberExpr:
		return n.Sel.Name

	default:
		return ast.Format(n)
	}
}

func paramCount(decl *ast.FuncDecl) int {
	if decl.Params == nil {
		return 0
	}

	return len(decl.Params.List)
}

// expand substitutes body for the placeholder of m.
func expand(m modifier, body *ast.BlockStmt) (*ast.BlockStmt, error) {
	s := substituter{
		params: make(map[string]ast.Expr),
		body:   &ast.BodyStmt{Body: body},
	}

	if m.decl.Params != nil {
		for i, p := range m.decl.Params.List {
			if p.Name != nil {
				s.params[p.Name.Name] = operand(m.inv.Args[i])
			}
		}
	}

	expanded := s.block(m.decl.Body)

	switch s.placeholders {
	case 1:
		return expanded, nil

	case 0:
		return nil, errNoPlaceholder

	default:
		return nil, fmt.Errorf("%w (found %d)", errMultiplePlaceholders, s.placeholders)
	}
}
