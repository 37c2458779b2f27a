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

package generator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidTarget is returned for malformed targets.
var ErrInvalidTarget = errors.New("invalid target")

// TargetKind distinguishes the scopes of a [Target].
type TargetKind uint8

const (
	// ProjectTarget selects all contracts of the project.
	ProjectTarget TargetKind = iota
	// ContractTarget selects all functions of one contract.
	ContractTarget
	// FunctionTarget selects one function.
	FunctionTarget
)

// Target names the functions to generate trees for.
type Target struct {
	Contract     string
	Function     string
	Signature    string // parameter types without spaces, e.g. "address,uint256"
	HasSignature bool   // Signature was given, possibly empty
}

// ParseTarget parses "", "Contract", "Contract::function" or "Contract::function(type,...)".
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Target{}, nil
	}

	contract, function, qualified := strings.Cut(s, "::")
	if !isIdentifier(contract) {
		return Target{}, fmt.Errorf("%w %q: bad contract name", ErrInvalidTarget, s)
	}

	if !qualified {
		return Target{Contract: contract}, nil
	}

	t := Target{Contract: contract, Function: function}

	if open := strings.IndexByte(function, '('); open >= 0 {
		if !strings.HasSuffix(function, ")") {
			return Target{}, fmt.Errorf("%w %q: unbalanced parentheses", ErrInvalidTarget, s)
		}

		t.Function = function[:open]
		t.Signature = normalizeSignature(function[open+1 : len(function)-1])
		t.HasSignature = true
	}

	if !isIdentifier(t.Function) {
		return Target{}, fmt.Errorf("%w %q: bad function name", ErrInvalidTarget, s)
	}

	return t, nil
}

// Kind returns the scope of the target.
func (t Target) Kind() TargetKind {
	switch {
	case t.Contract == "":
		return ProjectTarget

	case t.Function == "":
		return ContractTarget

	default:
		return FunctionTarget
	}
}

// String returns the target in command line syntax.
func (t Target) String() string {
	switch t.Kind() {
	case ProjectTarget:
		return "<all>"

	case ContractTarget:
		return t.Contract

	default:
		if t.HasSignature {
			return t.Contract + "::" + t.Function + "(" + t.Signature + ")"
		}

		return t.Contract + "::" + t.Function
	}
}

// normalizeSignature removes white space from a parameter type list.
func normalizeSignature(sig string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, sig)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '$' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}

	return true
}
