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
	"maps"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/solidity/token"
)

// Symbol is a resolved identifier.
type Symbol struct {
	Name string
	Kind Kind
	Type ast.Expr // declared type; nil for globals and unknown symbols
}

// Table is the immutable symbol context of one analyzed function.
// It is shared read-only by all pipeline stages.
type Table struct {
	scope     *Scope
	contract  *ast.ContractDecl
	linear    []*ast.ContractDecl // most derived first
	storage   map[string]*ast.StateVarDecl
	members   map[string]struct{} // functions, events, errors, structs, enums, types
	modifiers map[string]*ast.FuncDecl
	locals    map[string]ast.Expr
	params    map[string]ast.Expr // parameters and return values of the analyzed function
	body      *Table              // table of the code substituted for a modifier placeholder
}

// NewTable creates the symbol table for a function of a contract, using the contract's linearization.
func NewTable(scope *Scope, linear []*ast.ContractDecl, fn *ast.FuncDecl) *Table {
	t := &Table{
		scope:     scope,
		linear:    linear,
		storage:   make(map[string]*ast.StateVarDecl),
		members:   make(map[string]struct{}),
		modifiers: make(map[string]*ast.FuncDecl),
		locals:    make(map[string]ast.Expr),
		params:    make(map[string]ast.Expr),
	}

	if len(linear) > 0 {
		t.contract = linear[0]
	}

	for _, c := range linear {
		t.members[c.Name.Name] = struct{}{}

		for _, m := range c.Members {
			t.declare(m)
		}
	}

	if fn != nil {
		t.addLocals(fn)
		addParams(t.params, fn)
	}

	return t
}

// declare adds a contract member unless a more derived contract already declared it.
func (t *Table) declare(m ast.Decl) {
	switch m := m.(type) {
	case *ast.StateVarDecl:
		if _, ok := t.storage[m.Name.Name]; !ok {
			t.storage[m.Name.Name] = m
		}

	case *ast.FuncDecl:
		switch {
		case m.Name == nil:
		case m.Kind == ast.Modifier:
			if _, ok := t.modifiers[m.Name.Name]; !ok {
				t.modifiers[m.Name.Name] = m
			}
		default:
			t.members[m.Name.Name] = struct{}{}
		}

	case *ast.StructDecl:
		t.members[m.Name.Name] = struct{}{}

	case *ast.EnumDecl:
		t.members[m.Name.Name] = struct{}{}

	case *ast.EventDecl:
		t.members[m.Name.Name] = struct{}{}

	case *ast.ErrorDecl:
		t.members[m.Name.Name] = struct{}{}

	case *ast.TypeDecl:
		t.members[m.Name.Name] = struct{}{}

	default:
	}
}

// addParams records the named parameters and return values of fn in m.
func addParams(m map[string]ast.Expr, fn *ast.FuncDecl) {
	for _, list := range []*ast.ParamList{fn.Params, fn.Returns} {
		if list == nil {
			continue
		}

		for _, p := range list.List {
			if p.Name != nil {
				m[p.Name.Name] = p.Type
			}
		}
	}
}

// addLocals records parameters, return values and declared locals of a function or modifier.
func (t *Table) addLocals(fn *ast.FuncDecl) {
	addParams(t.locals, fn)

	if fn.Body == nil {
		return
	}

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.VarDecl:
			t.locals[n.Name.Name] = n.Type

		case *ast.Param:
			if n.Name != nil { // try returns and catch parameters
				t.locals[n.Name.Name] = n.Type
			}

		default:
		}

		return true
	})
}

// WithModifier returns the table for the statements of modifier m, which wraps the code resolved by t.
//
// The locals of m are visible in the modifier only. Parameters of the analyzed function stay
// visible, since invocation arguments substituted into the modifier refer to them.
// The receiver is not modified.
func (t *Table) WithModifier(m *ast.FuncDecl) *Table {
	c := *t
	c.locals = maps.Clone(t.params)
	c.addLocals(m)
	c.body = t

	return &c
}

// Body returns the table for the code substituted for the placeholder of the modifier t was created for
// by [Table.WithModifier], or t itself for the table of a function body.
func (t *Table) Body() *Table {
	if t.body == nil {
		return t
	}

	return t.body
}

// Contract returns the analyzed contract.
func (t *Table) Contract() *ast.ContractDecl { return t.contract }

// Scope returns the scope the table was built from.
func (t *Table) Scope() *Scope { return t.scope }

// Modifier returns the modifier visible under name, searching the linearization.
func (t *Table) Modifier(name string) (*ast.FuncDecl, bool) {
	m, ok := t.modifiers[name]

	return m, ok
}

// Lookup resolves an identifier. Locals shadow state variables.
// ok is false for names that are not declared anywhere in scope.
func (t *Table) Lookup(name string) (sym Symbol, ok bool) {
	if typ, isLocal := t.locals[name]; isLocal {
		return Symbol{Name: name, Kind: Parameter, Type: typ}, true
	}

	if v, isState := t.storage[name]; isState {
		return Symbol{Name: name, Kind: Storage, Type: v.Type}, true
	}

	if IsContext(name) {
		return Symbol{Name: name, Kind: ExternalContext}, true
	}

	if t.scope != nil {
		if v, isGlobal := t.scope.globals[name]; isGlobal {
			return Symbol{Name: name, Kind: Storage, Type: v.Type}, true // file-level constant
		}
	}

	if t.known(name) {
		return Symbol{Name: name, Kind: Unknown}, true
	}

	return Symbol{Name: name, Kind: Unknown}, false
}

func (t *Table) known(name string) bool {
	if _, ok := t.members[name]; ok {
		return true
	}

	if _, ok := t.modifiers[name]; ok {
		return true
	}

	if IsBuiltin(name) {
		return true
	}

	if t.scope == nil {
		return false
	}

	if _, ok := t.scope.contracts[name]; ok {
		return true
	}

	_, ok := t.scope.names[name]

	return ok
}

// Kind classifies an identifier; unresolved identifiers are [Unknown].
func (t *Table) Kind(name string) Kind {
	sym, _ := t.Lookup(name)

	return sym.Kind
}

// IsContractType reports whether a type expression names an address or a contract.
func (t *Table) IsContractType(typ ast.Expr) bool {
	switch typ := typ.(type) {
	case *ast.ElementaryType:
		return typ.Name == "address"

	case *ast.Ident:
		if typ.Name == "address" {
			return true
		}

		if t.scope == nil {
			return false
		}

		_, ok := t.scope.contracts[typ.Name]

		return ok

	case *ast.MemberExpr:
		return t.IsContractType(typ.Sel)

	default:
		return false
	}
}

// IsContractName reports whether the name is a contract or interface in scope other than the analyzed contract.
func (t *Table) IsContractName(name string) bool {
	if t.scope == nil {
		return false
	}

	c, ok := t.scope.contracts[name]

	return ok && c != t.contract && c.Kind != token.LIBRARY
}
