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

// Package node defines the nodes of the control graph and their allocation.
package node

import (
	gotoken "go/token"

	"fillmore-labs.com/branchtree/internal/flow/cond"
)

// Kind is the variant of a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind,Outcome -linecomment
const (
	Branch   Kind = iota // branch
	Terminal             // terminal
)

// Outcome is the result of a path through the function.
type Outcome uint8

const (
	Revert  Outcome = iota // revert
	Succeed                // succeed
)

// Node is a node of the control graph.
//
// A Branch has a condition and two arms: Then is taken when the predicate holds,
// Else when it does not. A Terminal ends a path with an Outcome.
//
// Arms may share their continuation, so the graph is acyclic but not
// necessarily a tree; enumerating it visits shared nodes once per route.
type Node struct {
	Kind Kind
	Pos  gotoken.Pos // position of the originating statement

	// Branch
	Cond       *cond.Condition
	Then, Else *Node
	ElseFirst  bool // enumerate the Else arm before the Then arm

	// Terminal
	Outcome Outcome
}

// Arms returns the arms of a branch in enumeration order, paired with their polarity.
func (n *Node) Arms() [2]Arm {
	then, els := Arm{Polarity: true, Target: n.Then}, Arm{Polarity: false, Target: n.Else}
	if n.ElseFirst {
		return [2]Arm{els, then}
	}

	return [2]Arm{then, els}
}

// Arm is one outgoing edge of a branch.
type Arm struct {
	Polarity bool
	Target   *Node
}

func (n *Node) cmp(m *Node) int {
	return int(n.Pos - m.Pos)
}
