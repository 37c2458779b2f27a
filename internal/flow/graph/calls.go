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

package graph

import (
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/symbols"
)

// lowLevelCalls are the address members transferring control to another account.
var lowLevelCalls = map[string]struct{}{
	"call": {}, "delegatecall": {}, "staticcall": {}, "transfer": {}, "send": {},
}

// checkCalls reports calls into other contracts within x. Their outcome does not
// contribute branches, so the tree is incomplete with respect to them.
func (b *builder) checkCalls(x ast.Expr) {
	if x == nil || b.diags == nil {
		return
	}

	ast.Inspect(x, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		if target, ok := b.externalTarget(call); ok {
			b.diags.Reportf(call.Pos(), report.CrossContractCallIgnored,
				"outcome of external call %s is not analyzed", target)
		}

		return true
	})
}

// externalTarget reports whether call invokes code of another contract, returning the called expression.
func (b *builder) externalTarget(call *ast.CallExpr) (string, bool) {
	fun := call.Fun
	if opts, ok := fun.(*ast.CallOptions); ok { // addr.call{value: v}(...)
		fun = opts.X
	}

	sel, ok := fun.(*ast.MemberExpr)
	if !ok {
		return "", false
	}

	if _, ok := lowLevelCalls[sel.Sel.Name]; ok && !b.isLibraryOrSelf(sel.X) {
		return ast.Format(fun), true
	}

	switch x := ast.Unparen(sel.X).(type) {
	case *ast.CallExpr: // IERC20(token).transferFrom(...)
		if id, ok := x.Fun.(*ast.Ident); ok && b.table.IsContractName(id.Name) {
			return ast.Format(fun), true
		}

	default:
		root := symbols.Root(x)
		if root == nil || root != x && !isIndexed(x) {
			return "", false
		}

		sym, _ := b.table.Lookup(root.Name)
		if sym.Type != nil && b.table.IsContractType(elementType(sym.Type)) {
			return ast.Format(fun), true
		}
	}

	return "", false
}

// isLibraryOrSelf reports whether x refers to a library or the analyzed contract by name,
// where members like transfer are ordinary internal functions.
func (b *builder) isLibraryOrSelf(x ast.Expr) bool {
	id, ok := ast.Unparen(x).(*ast.Ident)
	if !ok {
		return false
	}

	sym, declared := b.table.Lookup(id.Name)

	return declared && sym.Kind == symbols.Unknown && !symbols.IsBuiltin(id.Name) && !b.table.IsContractName(id.Name)
}

// isIndexed reports whether x is an identifier indexed one or more times, like tokens[i].
func isIndexed(x ast.Expr) bool {
	for {
		switch e := x.(type) {
		case *ast.Ident:
			return true

		case *ast.IndexExpr:
			x = e.X

		default:
			return false
		}
	}
}

// elementType strips mapping and array levels from a declared type.
func elementType(typ ast.Expr) ast.Expr {
	for {
		switch t := typ.(type) {
		case *ast.MappingType:
			typ = t.Value

		case *ast.IndexExpr:
			typ = t.X

		default:
			return typ
		}
	}
}
