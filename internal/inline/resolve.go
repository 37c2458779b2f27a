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

package inline

import (
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/symbols"
)

// unresolved returns the first identifier in the body of the modifier that is not declared in scope.
func unresolved(decl *ast.FuncDecl, table *symbols.Table) *ast.Ident {
	table = table.WithModifier(decl)

	var found *ast.Ident

	var visit func(n ast.Node) bool
	visit = func(n ast.Node) bool {
		if found != nil {
			return false
		}

		switch n := n.(type) {
		case *ast.Ident:
			if _, ok := table.Lookup(n.Name); !ok {
				found = n
			}

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

		case *ast.VarDecl:
			ast.Inspect(n.Type, visit)

			return false

		case *ast.Param:
			ast.Inspect(n.Type, visit)

			return false

		case *ast.CatchClause:
			if n.Params != nil {
				ast.Inspect(n.Params, visit)
			}

			ast.Inspect(n.Body, visit)

			return false

		case *ast.MappingType:
			ast.Inspect(n.Key, visit)
			ast.Inspect(n.Value, visit)

			return false

		default:
		}

		return true
	}

	ast.Inspect(decl.Body, visit)

	return found
}
