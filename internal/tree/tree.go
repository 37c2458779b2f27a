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

// Package tree folds enumerated paths into a BTT decision tree.
package tree

import (
	"context"
	"iter"
	"runtime/trace"

	"fillmore-labs.com/branchtree/internal/flow/cond"
	"fillmore-labs.com/branchtree/internal/flow/node"
	"fillmore-labs.com/branchtree/internal/paths"
	"fillmore-labs.com/branchtree/internal/phrase"
	"fillmore-labs.com/branchtree/internal/report"
)

// Tree is the decision tree of one function.
type Tree struct {
	Name     string  // root line, usually the function name
	Children []*Node // top-level conditions and outcomes
}

// Node is a branch with a condition or a leaf with an outcome.
type Node struct {
	Leaf     bool
	Outcome  node.Outcome // leaf outcome
	Label    phrase.Label // branch label
	Any      bool         // the branch condition is evaluated inside a loop
	Text     string       // branch phrase without label
	Children []*Node      // in first-observed order

	key string
}

// Line returns the rendered line of the node, e.g. "given balance is zero" or "it should revert".
func (n *Node) Line() string {
	if n.Leaf {
		return "it should " + n.Outcome.String()
	}

	if n.Any {
		return n.Label.String() + " any " + n.Text
	}

	return n.Label.String() + " " + n.Text
}

// Build merges paths sharing a prefix of structurally equal steps into one tree.
// Siblings appear in the order they are first observed.
func Build(ctx context.Context, name string, ps iter.Seq[paths.Path], r *phrase.Phraser, diags *report.Diagnostics) *Tree {
	defer trace.StartRegion(ctx, "Tree").End()

	b := builder{phraser: r, diags: diags, phrases: make(map[string]phrase.Phrase)}

	root := &Node{}
	for p := range ps {
		b.insert(root, p)
	}

	return &Tree{Name: name, Children: root.Children}
}

type builder struct {
	phraser *phrase.Phraser
	diags   *report.Diagnostics
	phrases map[string]phrase.Phrase // condition key → phrase
}

func (b *builder) insert(n *Node, p paths.Path) {
	for _, s := range p.Steps {
		n = b.child(n, s)
	}

	key := "=" + p.Outcome.String()
	for _, c := range n.Children {
		if c.key == key {
			return
		}
	}

	n.Children = append(n.Children, &Node{Leaf: true, Outcome: p.Outcome, key: key})
}

// child returns the branch child of n for step s, creating it when first observed.
func (b *builder) child(n *Node, s cond.Step) *Node {
	key := s.Key()
	for _, c := range n.Children {
		if c.key == key {
			return c
		}
	}

	ph := b.phrase(s.Cond)

	text := ph.Fails
	if s.Polarity {
		text = ph.Holds
	}

	c := &Node{Label: ph.Label, Any: ph.Any, Text: text, key: key}
	n.Children = append(n.Children, c)

	return c
}

func (b *builder) phrase(c *cond.Condition) phrase.Phrase {
	key := c.Key()
	if ph, ok := b.phrases[key]; ok {
		return ph
	}

	ph := b.phraser.Phrase(c, b.diags)
	b.phrases[key] = ph

	return ph
}

// Leaves counts the leaves of the tree.
func (t *Tree) Leaves() int {
	count := 0

	var visit func(nodes []*Node)
	visit = func(nodes []*Node) {
		for _, n := range nodes {
			if n.Leaf {
				count++
			}

			visit(n.Children)
		}
	}

	visit(t.Children)

	return count
}
