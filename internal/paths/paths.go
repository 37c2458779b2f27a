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

// Package paths enumerates the routes through a control graph.
package paths

import (
	"fmt"
	"iter"
	"slices"

	"fillmore-labs.com/branchtree/internal/flow/cond"
	"fillmore-labs.com/branchtree/internal/flow/node"
)

// Path is one route from the root of a control graph to a terminal.
type Path struct {
	Steps   []cond.Step  // decisions in route order
	Outcome node.Outcome // outcome of the terminal reached
}

// Enumerate returns all paths through the graph rooted at root, depth-first,
// visiting the arms of each branch in their enumeration order.
//
// A condition already decided on the current route is not decided again:
// enumeration follows the arm consistent with the earlier decision and records
// no step, so routes never contradict themselves.
func Enumerate(root *node.Node) iter.Seq[Path] {
	return func(yield func(Path) bool) {
		if root == nil {
			return
		}

		e := enumerator{decided: make(map[string]bool), yield: yield}
		e.visit(root)
	}
}

type enumerator struct {
	steps   []cond.Step
	decided map[string]bool // condition key → polarity on the current route
	yield   func(Path) bool
	stopped bool
}

func (e *enumerator) visit(n *node.Node) {
	for !e.stopped {
		switch n.Kind {
		case node.Terminal:
			p := Path{Steps: slices.Clone(e.steps), Outcome: n.Outcome}
			if !e.yield(p) {
				e.stopped = true
			}

			return

		case node.Branch:
			key := n.Cond.Key()

			if polarity, ok := e.decided[key]; ok {
				if polarity {
					n = n.Then
				} else {
					n = n.Else
				}

				continue
			}

			for _, arm := range n.Arms() {
				if e.stopped {
					break
				}

				e.decided[key] = arm.Polarity
				e.steps = append(e.steps, cond.Step{Cond: n.Cond, Polarity: arm.Polarity})

				e.visit(arm.Target)

				e.steps = e.steps[:len(e.steps)-1]
			}

			delete(e.decided, key)

			return

		default:
			panic(fmt.Sprintf("unexpected node kind: %v", n.Kind))
		}
	}
}
