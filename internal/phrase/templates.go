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

package phrase

import (
	"strings"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/solidity/token"
)

var defaultStrategies = []Strategy{
	StrategyFunc(negation),
	StrategyFunc(logical),
	StrategyFunc(comparison),
	StrategyFunc(boolean),
}

// comparison renders relational operators, one negation template per operator.
func comparison(r *Phraser, x ast.Expr) (holds, fails string, ok bool) {
	b, ok := x.(*ast.BinaryExpr)
	if !ok {
		return "", "", false
	}

	left, right := r.Operand(b.X), r.Operand(b.Y)

	var is, isNot string

	switch b.Op {
	case token.EQL:
		is, isNot = "is", "is not"

	case token.NEQ:
		is, isNot = "is not", "is"

	case token.GTR:
		is, isNot = "is greater than", "is at most"
		if isZero(b.Y) {
			return left + " is greater than " + right, left + " is " + right, true
		}

	case token.GEQ:
		is, isNot = "is at least", "is less than"

	case token.LSS:
		is, isNot = "is less than", "is at least"

	case token.LEQ:
		is, isNot = "is at most", "is greater than"

	default:
		return "", "", false
	}

	return left + " " + is + " " + right, left + " " + isNot + " " + right, true
}

// logical renders && and || with De Morgan negation.
func logical(r *Phraser, x ast.Expr) (holds, fails string, ok bool) {
	b, ok := x.(*ast.BinaryExpr)
	if !ok {
		return "", "", false
	}

	var and, or string

	switch b.Op {
	case token.LAND:
		and, or = " and ", " or "

	case token.LOR:
		and, or = " or ", " and "

	default:
		return "", "", false
	}

	lh, lf, lok := r.render(b.X)
	rh, rf, rok := r.render(b.Y)

	return lh + and + rh, lf + or + rf, lok && rok
}

// negation renders !x by swapping the phrases of x.
func negation(r *Phraser, x ast.Expr) (holds, fails string, ok bool) {
	u, ok := x.(*ast.UnaryExpr)
	if !ok || u.Op != token.NOT {
		return "", "", false
	}

	fails, holds, ok = r.render(u.X)

	return holds, fails, ok
}

// boolean renders boolean-valued operands: flags, mappings, members and function results.
func boolean(r *Phraser, x ast.Expr) (holds, fails string, ok bool) {
	switch x := x.(type) {
	case *ast.Ident, *ast.MemberExpr, *ast.IndexExpr, *ast.CallExpr:
		operand := r.Operand(x)

		return operand + " is true", operand + " is false", true

	case *ast.BasicLit:
		switch x.Kind {
		case token.TRUE:
			return "true", "false", true

		case token.FALSE:
			return "false", "true", true

		default:
			return "", "", false
		}

	default:
		return "", "", false
	}
}

// Operand renders an operand, replacing well-known values by words.
func (r *Phraser) Operand(x ast.Expr) string {
	text := ast.Format(x)

	if term, ok := r.terms[text]; ok {
		return term
	}

	if isZero(x) {
		return "zero"
	}

	switch x := ast.Unparen(x).(type) {
	case *ast.CallExpr: // address(0)
		if id, ok := x.Fun.(*ast.Ident); ok && id.Name == "address" && len(x.Args) == 1 && isZero(x.Args[0]) {
			return "zero address"
		}

	case *ast.MemberExpr: // type(uint256).max
		if call, ok := x.X.(*ast.CallExpr); ok && (x.Sel.Name == "max" || x.Sel.Name == "min") {
			if id, ok := call.Fun.(*ast.Ident); ok && id.Name == "type" && len(call.Args) == 1 {
				return x.Sel.Name + " " + ast.Format(call.Args[0])
			}
		}

	default:
	}

	return text
}

// isZero reports whether x is a zero number literal without unit.
func isZero(x ast.Expr) bool {
	lit, ok := ast.Unparen(x).(*ast.BasicLit)
	if !ok || lit.Kind != token.NUMBER || lit.Unit != "" {
		return false
	}

	v := strings.ReplaceAll(lit.Value, "_", "")
	v = strings.TrimPrefix(strings.TrimPrefix(v, "0x"), "0X")

	return strings.Trim(v, "0") == "" && v != ""
}
