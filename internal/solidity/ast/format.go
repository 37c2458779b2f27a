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

package ast

import (
	"fmt"
	"strings"

	"fillmore-labs.com/branchtree/internal/solidity/token"
)

// Format returns the canonical source text of an expression: single spaces
// around binary operators, none inside brackets, ", " between list elements.
// Two structurally equal expressions always format to the same string.
func Format(x Expr) string {
	var p printer
	p.expr(x)

	return p.String()
}

type printer struct {
	strings.Builder
}

//nolint:gocyclo,cyclop,funlen
func (p *printer) expr(x Expr) {
	switch x := x.(type) {
	case nil:
		// empty tuple slot

	case *Ident:
		p.WriteString(x.Name)

	case *BasicLit:
		p.WriteString(x.Value)

		if x.Unit != "" {
			p.WriteByte(' ')
			p.WriteString(x.Unit)
		}

	case *ElementaryType:
		p.WriteString(x.Name)

		if x.Payable {
			p.WriteString(" payable")
		}

	case *ParenExpr:
		p.WriteByte('(')
		p.expr(x.X)
		p.WriteByte(')')

	case *TupleExpr:
		p.WriteByte('(')
		p.list(x.Elts)
		p.WriteByte(')')

	case *ArrayLit:
		p.WriteByte('[')
		p.list(x.Elts)
		p.WriteByte(']')

	case *MemberExpr:
		p.expr(x.X)
		p.WriteByte('.')
		p.WriteString(x.Sel.Name)

	case *IndexExpr:
		p.expr(x.X)
		p.WriteByte('[')
		p.expr(x.Index)
		p.WriteByte(']')

	case *SliceExpr:
		p.expr(x.X)
		p.WriteByte('[')
		p.expr(x.Low)
		p.WriteByte(':')
		p.expr(x.High)
		p.WriteByte(']')

	case *CallExpr:
		p.expr(x.Fun)
		p.WriteByte('(')

		if x.Names != nil {
			p.WriteByte('{')
			p.named(x.Names, x.Args)
			p.WriteByte('}')
		} else {
			p.list(x.Args)
		}

		p.WriteByte(')')

	case *CallOptions:
		p.expr(x.X)
		p.WriteByte('{')
		p.named(x.Names, x.Values)
		p.WriteByte('}')

	case *UnaryExpr:
		if x.Postfix {
			p.expr(x.X)
			p.WriteString(x.Op.String())

			break
		}

		p.WriteString(x.Op.String())
		p.expr(x.X)

	case *BinaryExpr:
		p.expr(x.X)
		p.WriteByte(' ')
		p.WriteString(x.Op.String())
		p.WriteByte(' ')
		p.expr(x.Y)

	case *AssignExpr:
		p.expr(x.Lhs)
		p.WriteByte(' ')
		p.WriteString(x.Tok.String())
		p.WriteByte(' ')
		p.expr(x.Rhs)

	case *ConditionalExpr:
		p.expr(x.Cond)
		p.WriteString(" ? ")
		p.expr(x.Then)
		p.WriteString(" : ")
		p.expr(x.Else)

	case *NewExpr:
		p.WriteString("new ")
		p.expr(x.Type)

	case *DeleteExpr:
		p.WriteString("delete ")
		p.expr(x.X)

	case *MappingType:
		p.WriteString("mapping(")
		p.expr(x.Key)
		p.WriteString(" => ")
		p.expr(x.Value)
		p.WriteByte(')')

	case *FunctionType:
		p.WriteString("function(")
		p.params(x.Params)
		p.WriteByte(')')

		if x.Visibility != token.ILLEGAL {
			p.WriteByte(' ')
			p.WriteString(x.Visibility.String())
		}

		if x.Mutability != token.ILLEGAL {
			p.WriteByte(' ')
			p.WriteString(x.Mutability.String())
		}

		if x.Returns != nil {
			p.WriteString(" returns (")
			p.params(x.Returns)
			p.WriteByte(')')
		}

	default:
		panic(fmt.Sprintf("ast.Format: unexpected expression type %T", x))
	}
}

func (p *printer) list(list []Expr) {
	for i, e := range list {
		if i > 0 {
			p.WriteString(", ")
		}

		p.expr(e)
	}
}

func (p *printer) named(names []*Ident, values []Expr) {
	for i, name := range names {
		if i > 0 {
			p.WriteString(", ")
		}

		p.WriteString(name.Name)
		p.WriteString(": ")

		if i < len(values) {
			p.expr(values[i])
		}
	}
}

func (p *printer) params(list *ParamList) {
	if list == nil {
		return
	}

	for i, param := range list.List {
		if i > 0 {
			p.WriteString(", ")
		}

		p.expr(param.Type)
	}
}

// TypeString returns the canonical type name of a parameter as used in function signatures,
// e.g. uint256, address, bytes32[], mapping(address => uint256).
func TypeString(typ Expr) string {
	if e, ok := typ.(*ElementaryType); ok && e.Payable {
		return e.Name // address payable is address in signatures
	}

	return Format(typ)
}

// Signature returns the parameter type list of the function, e.g. "address,uint256".
func (d *FuncDecl) Signature() string {
	if d.Params == nil {
		return ""
	}

	types := make([]string, 0, len(d.Params.List))
	for _, param := range d.Params.List {
		types = append(types, strings.ReplaceAll(TypeString(param.Type), " ", ""))
	}

	return strings.Join(types, ",")
}
