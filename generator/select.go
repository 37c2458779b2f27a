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
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	"go.uber.org/zap"

	"fillmore-labs.com/branchtree/internal/config"
	"fillmore-labs.com/branchtree/internal/project"
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/run"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/solidity/scanner"
	"fillmore-labs.com/branchtree/internal/solidity/token"
	"fillmore-labs.com/branchtree/internal/solidity/version"
	"fillmore-labs.com/branchtree/internal/symbols"
)

// selector resolves a [Target] to the functions to analyze.
type selector struct {
	proj     *project.Project
	behavior config.Behaviors
	logger   *zap.Logger
}

// functions returns the functions selected by t in source order.
func (s *selector) functions(ctx context.Context, t Target) ([]run.Func, error) {
	defer trace.StartRegion(ctx, "Select").End()

	switch t.Kind() {
	case ProjectTarget:
		return s.all(ctx)

	case ContractTarget:
		c, scope, linear, err := s.contract(ctx, t.Contract)
		if err != nil {
			return nil, err
		}

		return s.contractFuncs(c, scope, linear), nil

	default:
		return s.function(ctx, t)
	}
}

// all selects the functions of every contract below the project's source directory.
// Files and contracts that cannot be analyzed are skipped with a warning.
func (s *selector) all(ctx context.Context) ([]run.Func, error) {
	files, err := s.proj.Sources()
	if err != nil {
		return nil, err
	}

	var funcs []run.Func

	for _, path := range files {
		u, scope, err := s.load(ctx, path)
		if err != nil {
			s.logger.Warn("Skipping file", zap.String("file", path), zap.Error(err))

			continue
		}

		for _, c := range u.File.Contracts() {
			if c.Kind == token.INTERFACE {
				continue
			}

			linear, err := s.linearize(scope, c)
			if err != nil {
				s.logger.Warn("Skipping contract", zap.String("contract", c.Name.Name), zap.Error(err))

				continue
			}

			funcs = append(funcs, s.contractFuncs(c, scope, linear)...)
		}
	}

	return funcs, nil
}

// contract loads the named contract together with its scope and linearization.
func (s *selector) contract(ctx context.Context, name string) (*ast.ContractDecl, *symbols.Scope, []*ast.ContractDecl, error) {
	path, err := s.proj.FindContract(name)
	if err != nil {
		return nil, nil, nil, err
	}

	u, scope, err := s.load(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}

	c := u.File.Contract(name)
	if c == nil {
		return nil, nil, nil, fmt.Errorf("%w: %s is not declared in %s", report.ErrContractNotFound, name, path)
	}

	linear, err := s.linearize(scope, c)
	if err != nil {
		return nil, nil, nil, err
	}

	return c, scope, linear, nil
}

// function selects the single function named by t.
func (s *selector) function(ctx context.Context, t Target) ([]run.Func, error) {
	c, scope, linear, err := s.contract(ctx, t.Contract)
	if err != nil {
		return nil, err
	}

	var candidates []*ast.FuncDecl

	for _, fn := range c.Functions() {
		if fn.DisplayName() != t.Function || t.HasSignature && fn.Signature() != t.Signature {
			continue
		}

		candidates = append(candidates, fn)
	}

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: %s", report.ErrFunctionNotFound, t)

	case 1:

	default:
		signatures := make([]string, 0, len(candidates))
		for _, fn := range candidates {
			signatures = append(signatures, fn.DisplayName()+"("+fn.Signature()+")")
		}

		return nil, fmt.Errorf("%w: %s resolves to %s", report.ErrOverloadAmbiguous, t, report.ConcatNames(signatures))
	}

	fn := candidates[0]

	if !fn.ExternallyVisible() {
		return nil, fmt.Errorf("%w: %s is %s", report.ErrFunctionNotVisible, t, fn.Visibility)
	}

	if fn.Body == nil {
		return nil, fmt.Errorf("%w: %s has no implementation", report.ErrFunctionNotFound, t)
	}

	return []run.Func{{Contract: c, Decl: fn, Scope: scope, Linear: linear, Qualified: t.HasSignature}}, nil
}

// contractFuncs selects the eligible functions declared in c. Overloaded names are qualified by signature.
func (s *selector) contractFuncs(c *ast.ContractDecl, scope *symbols.Scope, linear []*ast.ContractDecl) []run.Func {
	var eligible []*ast.FuncDecl

	count := make(map[string]int)

	for _, fn := range c.Functions() {
		if !s.eligible(c, fn) {
			continue
		}

		eligible = append(eligible, fn)
		count[fn.DisplayName()]++
	}

	funcs := make([]run.Func, 0, len(eligible))
	for _, fn := range eligible {
		funcs = append(funcs, run.Func{
			Contract:  c,
			Decl:      fn,
			Scope:     scope,
			Linear:    linear,
			Qualified: count[fn.DisplayName()] > 1,
		})
	}

	return funcs
}

// eligible reports whether a function takes part in a contract-wide run.
func (s *selector) eligible(c *ast.ContractDecl, fn *ast.FuncDecl) bool {
	switch {
	case fn.Body == nil, !fn.ExternallyVisible():
		return false

	case s.behavior.Enabled(config.SkipView) && (fn.Mutability == token.VIEW || fn.Mutability == token.PURE):
		s.logger.Debug("Skipping read-only function", zap.String("function", c.Name.Name+"."+fn.DisplayName()))

		return false

	case !s.behavior.Enabled(config.IncludeNoLint) && ast.NoLint(fn.Doc):
		s.logger.Debug("Skipping function with nolint directive", zap.String("function", c.Name.Name+"."+fn.DisplayName()))

		return false

	default:
		return true
	}
}

// load parses the file at path with its imports, reporting syntax errors and pragma issues.
func (s *selector) load(ctx context.Context, path string) (*project.Unit, *symbols.Scope, error) {
	u, err := s.proj.Unit(path)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) {
			diags := make([]report.Diagnostic, 0, len(list))
			for _, e := range list {
				diags = append(diags, report.Diagnostic{Pos: e.Pos, Kind: report.SyntaxError, Message: e.Msg})
			}

			report.ProcessDiagnostics(ctx, s.logger, diags)
		}

		return nil, nil, err
	}

	for _, missing := range u.Missing {
		s.logger.Debug("Unresolved import", zap.String("file", u.File.Name), zap.String("import", missing))
	}

	diags := report.NewDiagnostics(s.proj.FileSet(), "")
	checkPragmas(u.File, diags)
	report.ProcessDiagnostics(ctx, s.logger, diags.All())

	return u, u.Scope(), nil
}

// linearize returns the inheritance chain of c. Bases missing from the scope are logged
// and contribute no symbols.
func (s *selector) linearize(scope *symbols.Scope, c *ast.ContractDecl) ([]*ast.ContractDecl, error) {
	linear, missing, err := scope.Linearize(c)
	if err != nil {
		return nil, err
	}

	if len(missing) > 0 {
		s.logger.Debug("Unresolved base contracts", zap.String("contract", c.Name.Name), zap.Strings("bases", missing))
	}

	return linear, nil
}

// checkPragmas reports solidity version constraints the analysis can't fully handle.
func checkPragmas(f *ast.File, diags *report.Diagnostics) {
	for _, p := range f.Pragmas {
		if p.Name != "solidity" {
			continue
		}

		c, err := version.Parse(p.Value)
		if err != nil {
			diags.Reportf(p.Pos(), report.UnsupportedPragma, "%v", err)

			continue
		}

		if !c.Supports(version.TryCatch) {
			diags.Reportf(p.Pos(), report.UnsupportedPragma,
				"pragma solidity %s predates %s, guards may be missed", c, version.TryCatch)

			continue
		}

		if declaresErrors(f) && !c.Supports(version.CustomErrors) {
			diags.Reportf(p.Pos(), report.UnsupportedPragma,
				"custom errors require %s, pragma solidity %s excludes it", version.CustomErrors, c)
		}
	}
}

// declaresErrors reports whether the file declares custom errors.
func declaresErrors(f *ast.File) bool {
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.ErrorDecl:
			return true

		case *ast.ContractDecl:
			for _, m := range d.Members {
				if _, ok := m.(*ast.ErrorDecl); ok {
					return true
				}
			}

		default:
		}
	}

	return false
}
