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

// Package run drives the per-function tree generation pipeline.
package run

import (
	"context"
	gotoken "go/token"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/branchtree/internal/flow/graph"
	"fillmore-labs.com/branchtree/internal/inline"
	"fillmore-labs.com/branchtree/internal/paths"
	"fillmore-labs.com/branchtree/internal/render"
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/symbols"
	"fillmore-labs.com/branchtree/internal/tree"
)

// Func is one function selected for tree generation.
type Func struct {
	Contract  *ast.ContractDecl
	Decl      *ast.FuncDecl
	Scope     *symbols.Scope
	Linear    []*ast.ContractDecl // linearized inheritance chain of Contract, most derived first
	Qualified bool                // name the artifact with the parameter signature
}

// Name returns "Contract.function".
func (f Func) Name() string {
	return f.Contract.Name.Name + "." + f.Decl.DisplayName()
}

// FileName returns the name of the .tree artifact of the function.
func (f Func) FileName() string {
	return render.FileName(f.Contract.Name.Name, f.Decl.DisplayName(), f.Decl.Signature(), f.Qualified)
}

// Result is the outcome of analyzing one function.
type Result struct {
	Func        Func
	Tree        *tree.Tree // nil when Err is set
	Text        string     // rendered tree
	Diagnostics []report.Diagnostic
	Err         error // the function was skipped, e.g. for an unresolved modifier
}

// Analyze executes the pipeline for a single function.
func (o *Options) Analyze(ctx context.Context, fset *gotoken.FileSet, f Func) Result {
	ctx, task := trace.NewTask(ctx, "BranchTree")
	defer task.End()

	trace.Log(ctx, "function", f.Name())

	diags := report.NewDiagnostics(fset, f.Name())

	table := symbols.NewTable(f.Scope, f.Linear, f.Decl)

	// Stage 1: Expand modifiers into a single body
	body, table, err := inline.Inline(ctx, f.Decl, table, diags)
	if err != nil {
		return Result{Func: f, Diagnostics: diags.All(), Err: err}
	}

	// Stage 2: Extract guards into the control graph
	g := graph.Build(ctx, body, table, diags)

	// Stage 3: Enumerate paths, classify and phrase their conditions and merge shared prefixes
	t := tree.Build(ctx, f.Decl.DisplayName(), paths.Enumerate(g.Root), o.Phraser, diags)

	// Stage 4: Render
	text := func() string {
		defer trace.StartRegion(ctx, "Render").End()

		return render.String(t)
	}()

	return Result{Func: f, Tree: t, Text: text, Diagnostics: diags.All()}
}

// AnalyzeAll analyzes the functions concurrently and returns the results in input order.
// Functions are independent; the only shared inputs are the read-only scopes and fset.
func (o *Options) AnalyzeAll(ctx context.Context, fset *gotoken.FileSet, funcs []Func) ([]Result, error) {
	results := make([]Result, len(funcs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.Parallelism, 1))

	for i, f := range funcs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = o.Analyze(ctx, fset, f)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
