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

package symbols

import (
	"regexp"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
)

// contextNames are the globals carrying transaction and block context.
var contextNames = map[string]struct{}{
	"msg": {}, "block": {}, "tx": {}, "this": {}, "now": {},
	"gasleft": {}, "blockhash": {}, "blobhash": {},
}

// builtinNames are globally available functions and namespaces.
var builtinNames = map[string]struct{}{
	"require": {}, "assert": {}, "revert": {},
	"abi": {}, "type": {}, "super": {}, "payable": {},
	"keccak256": {}, "sha256": {}, "ripemd160": {}, "ecrecover": {},
	"addmod": {}, "mulmod": {}, "selfdestruct": {}, "suicide": {}, "sha3": {},
	"address": {}, "bool": {}, "string": {}, "bytes": {}, "byte": {},
	"int": {}, "uint": {}, "fixed": {}, "ufixed": {},
}

var elementaryPattern = regexp.MustCompile(`^(u?int(8|16|24|32|40|48|56|64|72|80|88|96|104|112|120|128|136|144|152|160|168|176|184|192|200|208|216|224|232|240|248|256)|bytes([1-9]|[12][0-9]|3[0-2])|u?fixed\d+x\d+)$`)

// IsContext reports whether name is a transaction or block context global.
func IsContext(name string) bool {
	_, ok := contextNames[name]

	return ok
}

// IsBuiltin reports whether name is a built-in function, namespace or elementary type.
func IsBuiltin(name string) bool {
	if _, ok := builtinNames[name]; ok {
		return true
	}

	return elementaryPattern.MatchString(name)
}

// Root returns the identifier an expression is ultimately rooted at: msg for msg.sender,
// balances for balances[a][b]. It returns nil for expressions without a single root.
func Root(x ast.Expr) *ast.Ident {
	for {
		switch e := x.(type) {
		case *ast.Ident:
			return e

		case *ast.MemberExpr:
			x = e.X

		case *ast.IndexExpr:
			x = e.X

		case *ast.SliceExpr:
			x = e.X

		case *ast.ParenExpr:
			x = e.X

		default:
			return nil
		}
	}
}
