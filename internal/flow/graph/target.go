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

package graph

import (
	"fmt"

	"fillmore-labs.com/branchtree/internal/flow/node"
	"fillmore-labs.com/branchtree/internal/solidity/token"
)

// branchTargetScopes maintains the current branch targets representing nested
// control structures (loops and inlined function bodies).
type branchTargetScopes struct {
	currentBreak *node.Node

	currentContinue *node.Node

	currentReturn *node.Node
}

func (s *branchTargetScopes) branchTarget(tok token.Kind) *node.Node {
	switch tok {
	case token.BREAK:
		return s.currentBreak

	case token.CONTINUE:
		return s.currentContinue

	default:
		panic(fmt.Sprintf("unexpected branch token: %s", tok))
	}
}

// pushLoop sets the current "break" and "continue" branch target scopes, returning the old.
func (s *branchTargetScopes) pushLoop(brk, cont *node.Node) (oldBreak, oldContinue *node.Node) {
	oldBreak, s.currentBreak = s.currentBreak, brk
	oldContinue, s.currentContinue = s.currentContinue, cont

	return oldBreak, oldContinue
}

// popLoop restores the previous "break" and "continue" branch target scopes.
func (s *branchTargetScopes) popLoop(oldBreak, oldContinue *node.Node) {
	s.currentBreak, s.currentContinue = oldBreak, oldContinue
}

// pushReturn sets the current "return" branch target scope, returning the old.
func (s *branchTargetScopes) pushReturn(n *node.Node) (old *node.Node) {
	old, s.currentReturn = s.currentReturn, n

	return old
}

// popReturn restores the previous "return" branch target scope.
func (s *branchTargetScopes) popReturn(old *node.Node) {
	s.currentReturn = old
}
