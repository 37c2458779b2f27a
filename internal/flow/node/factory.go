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

package node

import (
	gotoken "go/token"
	"slices"

	"fillmore-labs.com/branchtree/internal/flow/cond"
)

// Factory creates and manages [Node]s in a [slab list].
//
// [slab list]: https://en.wikipedia.org/wiki/Slab_allocation
type Factory struct {
	start, current *chunk
	count, total   int
}

// chunk is a linked list of fixed-size arrays of Nodes.
type chunk struct {
	nodes [chunkSize]Node
	next  *chunk
}

// chunkSize defines the number of Nodes stored in a single chunk.
const chunkSize = 127

// New creates and returns a new *[Node] and adds it to the list of existing nodes.
func (f *Factory) New(kind Kind, pos gotoken.Pos) *Node {
	if f.count == chunkSize {
		f.current.next = new(chunk)
		f.current = f.current.next
		f.count = 0
		f.total += chunkSize
	} else if f.current == nil {
		f.current = new(chunk)
		f.start = f.current
	}

	f.count++

	n := &f.current.nodes[f.count-1]
	n.Kind, n.Pos = kind, pos

	return n
}

// NewBranch creates a branch on c.
func (f *Factory) NewBranch(c *cond.Condition, then, els *Node, elseFirst bool) *Node {
	n := f.New(Branch, c.Pos)
	n.Cond, n.Then, n.Else, n.ElseFirst = c, then, els, elseFirst

	return n
}

// NewTerminal creates a terminal with the given outcome.
func (f *Factory) NewTerminal(pos gotoken.Pos, outcome Outcome) *Node {
	n := f.New(Terminal, pos)
	n.Outcome = outcome

	return n
}

// Len returns the number of allocated nodes.
func (f *Factory) Len() int {
	return f.total + f.count
}

// All retrieves all Nodes managed by the Factory in source order.
func (f *Factory) All() []*Node {
	if f.count == 0 {
		return nil
	}

	nodes := make([]*Node, 0, f.count+f.total)
	for next := f.start; next != nil; next = next.next {
		n := chunkSize
		if next == f.current {
			n = f.count
		}

		for i := range n {
			nodes = append(nodes, &next.nodes[i])
		}
	}

	// Sort by source order
	slices.SortStableFunc(nodes, (*Node).cmp)

	return nodes
}
