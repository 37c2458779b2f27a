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
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
)

// ErrInconsistentInheritance is returned when no C3 linearization of a contract exists.
var ErrInconsistentInheritance = errors.New("linearization of inheritance graph impossible")

// Scope holds the declarations visible to a source unit: its own and those of resolved imports.
// A Scope is immutable after construction and safe for concurrent use.
type Scope struct {
	contracts map[string]*ast.ContractDecl
	globals   map[string]*ast.StateVarDecl // file-level constants
	names     map[string]struct{}          // other top-level names
	complete  bool
}

// NewScope creates a [Scope] from parsed files. complete reports whether every
// import of the analyzed unit was resolved and parsed.
func NewScope(complete bool, files ...*ast.File) *Scope {
	s := &Scope{
		contracts: make(map[string]*ast.ContractDecl),
		globals:   make(map[string]*ast.StateVarDecl),
		names:     make(map[string]struct{}),
		complete:  complete,
	}

	for _, f := range files {
		for _, imp := range f.Imports {
			if imp.Alias != "" {
				s.names[imp.Alias] = struct{}{}
			}

			for _, sym := range imp.Symbols {
				if sym.Alias != nil {
					s.names[sym.Alias.Name] = struct{}{}
				}
			}
		}

		for _, d := range f.Decls {
			s.declare(d)
		}
	}

	return s
}

func (s *Scope) declare(d ast.Decl) {
	switch d := d.(type) {
	case *ast.ContractDecl:
		if _, ok := s.contracts[d.Name.Name]; !ok {
			s.contracts[d.Name.Name] = d
		}

	case *ast.StateVarDecl:
		if _, ok := s.globals[d.Name.Name]; !ok {
			s.globals[d.Name.Name] = d
		}

	case *ast.FuncDecl:
		if d.Name != nil {
			s.names[d.Name.Name] = struct{}{}
		}

	case *ast.StructDecl:
		s.names[d.Name.Name] = struct{}{}

	case *ast.EnumDecl:
		s.names[d.Name.Name] = struct{}{}

	case *ast.EventDecl:
		s.names[d.Name.Name] = struct{}{}

	case *ast.ErrorDecl:
		s.names[d.Name.Name] = struct{}{}

	case *ast.TypeDecl:
		s.names[d.Name.Name] = struct{}{}

	case *ast.UsingDecl, *ast.PragmaDecl, *ast.ImportDecl:

	default:
		panic(fmt.Sprintf("unexpected declaration type %T", d))
	}
}

// Complete reports whether all imports were resolved.
func (s *Scope) Complete() bool { return s != nil && s.complete }

// Contract returns the contract, interface or library with the given name.
// A nil scope knows no contracts.
func (s *Scope) Contract(name string) (*ast.ContractDecl, bool) {
	if s == nil {
		return nil, false
	}

	c, ok := s.contracts[name]

	return c, ok
}

// Linearize returns the C3 linearization of the contract's inheritance graph, most derived first.
// Bases that cannot be found in the scope are returned as missing.
func (s *Scope) Linearize(c *ast.ContractDecl) (linear []*ast.ContractDecl, missing []string, err error) {
	memo := make(map[*ast.ContractDecl][]*ast.ContractDecl)
	seen := make(map[string]struct{})

	linear, err = s.linearize(c, memo, nil, func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			missing = append(missing, name)
		}
	})

	return linear, missing, err
}

func (s *Scope) linearize(c *ast.ContractDecl, memo map[*ast.ContractDecl][]*ast.ContractDecl,
	visiting []*ast.ContractDecl, missing func(string),
) ([]*ast.ContractDecl, error) {
	if l, ok := memo[c]; ok {
		return l, nil
	}

	if slices.Contains(visiting, c) {
		return nil, fmt.Errorf("%w: %s inherits from itself", ErrInconsistentInheritance, c.Name.Name)
	}

	visiting = append(visiting, c)

	// Solidity lists bases from "most base-like" to "most derived"; C3 merges them right to left.
	var (
		lists [][]*ast.ContractDecl
		bases []*ast.ContractDecl
	)

	for _, spec := range slices.Backward(c.Bases) {
		name := baseName(spec.Name)

		base, ok := s.contracts[name]
		if !ok {
			missing(name)

			continue
		}

		l, err := s.linearize(base, memo, visiting, missing)
		if err != nil {
			return nil, err
		}

		lists = append(lists, slices.Clone(l))
		bases = append(bases, base)
	}

	lists = append(lists, bases)

	merged, err := merge(lists)
	if err != nil {
		return nil, fmt.Errorf("%w of %s", err, c.Name.Name)
	}

	result := append([]*ast.ContractDecl{c}, merged...)
	memo[c] = result

	return result, nil
}

// baseName returns the last component of an inheritance path like Lib.Base.
func baseName(x ast.Expr) string {
	switch x := x.(type) {
	case *ast.Ident:
		return x.Name

	case *ast.MemberExpr:
		return x.Sel.Name

	default:
		return ast.Format(x)
	}
}

func merge(lists [][]*ast.ContractDecl) ([]*ast.ContractDecl, error) {
	var result []*ast.ContractDecl

	for {
		lists = slices.DeleteFunc(lists, func(l []*ast.ContractDecl) bool { return len(l) == 0 })
		if len(lists) == 0 {
			return result, nil
		}

		var head *ast.ContractDecl

		for _, l := range lists {
			candidate := l[0]
			if !inAnyTail(lists, candidate) {
				head = candidate

				break
			}
		}

		if head == nil {
			return nil, ErrInconsistentInheritance
		}

		result = append(result, head)

		for i, l := range lists {
			if l[0] == head {
				lists[i] = l[1:]
			}
		}
	}
}

func inAnyTail(lists [][]*ast.ContractDecl, c *ast.ContractDecl) bool {
	for _, l := range lists {
		if slices.Contains(l[1:], c) {
			return true
		}
	}

	return false
}
