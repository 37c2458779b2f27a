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

// Package graph extracts the guard structure of a function body into a control graph.
package graph

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/branchtree/internal/flow/node"
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/symbols"
)

// Graph is the control graph of one function.
type Graph struct {
	Root  *node.Node
	nodes node.Factory
}

// Nodes returns all nodes of the graph in source order.
func (g *Graph) Nodes() []*node.Node {
	return g.nodes.All()
}

// Build constructs the control graph of a modifier-inlined function body.
//
// Guards inside the body become branch nodes, reverts become revert terminals,
// and the end of the body is the succeed terminal. Diagnostics for calls into
// other contracts are reported to diags.
func Build(ctx context.Context, body *ast.BlockStmt, table *symbols.Table, diags *report.Diagnostics) *Graph {
	defer trace.StartRegion(ctx, "Graph").End()

	g := &Graph{}

	b := builder{
		factory: &g.nodes,
		table:   table,
		diags:   diags,
	}

	succeed := b.factory.NewTerminal(body.End(), node.Succeed)
	b.targetScopes.pushReturn(succeed)

	g.Root = b.appendStmtList(body.List, succeed)

	return g
}
