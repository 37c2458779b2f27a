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

// Package generator derives Branching Tree Technique (BTT) test trees from Solidity functions.
//
// # Overview
//
// For every externally visible function the generator inlines the attached
// modifiers, extracts the guards (require, assert, if-revert, if/else and
// try/catch) into a control graph, enumerates its paths and merges them into
// a tree of "given" and "when" conditions ending in "it should revert" or
// "it should succeed".
//
// # Example
//
// The function
//
//	function withdraw(uint256 amount) external onlyOwner {
//	    require(amount > 0);
//	    require(balances[msg.sender] >= amount);
//	    balances[msg.sender] -= amount;
//	}
//
// is rendered to Vault.withdraw.tree as
//
//	withdraw
//	├── given msg.sender is not owner
//	│   └── it should revert
//	└── given msg.sender is owner
//	    ├── when amount is zero
//	    │   └── it should revert
//	    └── when amount is greater than zero
//	        ├── given balances[msg.sender] is less than amount
//	        │   └── it should revert
//	        └── given balances[msg.sender] is at least amount
//	            └── it should succeed
//
// Conditions on contract storage are labeled "given", conditions on
// parameters and the call context "when". Guards inside loops carry an
// "any" qualifier.
//
// # Configuration
//
// Settings are layered: built-in defaults, the optional .branchtree.yaml in
// the project root (see [Settings]) and finally explicit [Option] values,
// usually derived from command line flags with [RegisterFlags].
package generator
