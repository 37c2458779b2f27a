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

// Package testsource provides utilities for parsing and resolving Solidity source code in tests.
//
// It is designed to simplify testing of the pipeline stages by handling common
// boilerplate code for parsing and symbol resolution of Solidity fragments.
package testsource

import (
	"bytes"
	gotoken "go/token"
	"testing"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/solidity/parser"
	"fillmore-labs.com/branchtree/internal/symbols"
)

const (
	testcontract = "Test"
	testfunc     = "test"
)

// Parse parses a Solidity source fragment into an AST.
// The provided body `src` is automatically wrapped in a function `function test() external { ... }`
// within a contract `Test`, preceded by the contract members `members`. This allows testing
// statement-level code fragments without manually constructing the surrounding contract.
//
// Call [Check] on the result when symbol information is needed.
//
// Returns:
//   - *gotoken.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
func Parse(tb testing.TB, members, src string) (fset *gotoken.FileSet, f *ast.File, fn *ast.FuncDecl) {
	tb.Helper()

	return ParseFunc(tb, members, "function "+testfunc+"() external", src)
}

// ParseFunc is like [Parse], with an explicit function header such as
// "function withdraw(uint256 amount) external onlyOwner".
func ParseFunc(tb testing.TB, members, header, src string) (fset *gotoken.FileSet, f *ast.File, fn *ast.FuncDecl) {
	tb.Helper()

	fset, f = ParseFile(tb, wrapSource(members, header, src).String())

	c := f.Contract(testcontract)
	if c == nil {
		tb.Fatal("Can't find contract")
	}

	for _, candidate := range c.Functions() {
		fn = candidate
	}

	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn
}

// ParseFile parses a complete Solidity source unit.
func ParseFile(tb testing.TB, src string) (*gotoken.FileSet, *ast.File) {
	tb.Helper()

	const filename = "Test.sol"

	fset := gotoken.NewFileSet()

	f, err := parser.ParseFile(fset, filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check resolves the symbols of a function declared in the file.
// It creates and returns the file's [symbols.Scope] and the function's [symbols.Table].
// Use this helper when testing components that require symbol kinds.
func Check(tb testing.TB, f *ast.File, fn *ast.FuncDecl) (*symbols.Scope, *symbols.Table) {
	tb.Helper()

	scope := symbols.NewScope(true, f)

	var owner *ast.ContractDecl

	for _, c := range f.Contracts() {
		for _, m := range c.Members {
			if m == ast.Decl(fn) {
				owner = c
			}
		}
	}

	if owner == nil {
		tb.Fatal("Can't find contract declaring function")
	}

	linear, missing, err := scope.Linearize(owner)
	if err != nil {
		tb.Fatalf("Failed to linearize %s: %v", owner.Name.Name, err)
	}

	if len(missing) > 0 {
		tb.Fatalf("Missing base contracts %v", missing)
	}

	return scope, symbols.NewTable(scope, linear, fn)
}

func wrapSource(members, header, src string) *bytes.Buffer {
	const (
		prefix = "pragma solidity ^0.8.20;\n\ncontract " + testcontract + " {\n"
		suffix = "\n}\n}\n"
	)

	var srcFile bytes.Buffer
	srcFile.Grow(len(prefix) + len(members) + len(header) + len(src) + len(suffix) + 4)

	srcFile.WriteString(prefix)  // ignore error
	srcFile.WriteString(members) // ignore error
	srcFile.WriteString("\n")    // ignore error
	srcFile.WriteString(header)  // ignore error
	srcFile.WriteString(" {\n")  // ignore error
	srcFile.WriteString(src)     // ignore error
	srcFile.WriteString(suffix)  // ignore error

	return &srcFile
}
