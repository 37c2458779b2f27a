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

// Package config holds the behavioral settings of tree generation.
package config

// Behavior represents flags controlling how generated trees are emitted.
type Behavior uint8

const (
	// Overwrite replaces existing tree files.
	Overwrite Behavior = 1 << iota

	// SkipView excludes view and pure functions from contract-wide runs.
	SkipView

	// Stdout prints rendered trees instead of writing files.
	Stdout

	// IncludeNoLint generates trees for functions opted out by a nolint comment.
	IncludeNoLint
)

// Behaviors is the set of enabled [Behavior] flags.
type Behaviors = BitMask[Behavior]

// DefaultBehavior returns the flags enabled without explicit configuration.
func DefaultBehavior() Behaviors {
	return NewBitMask(Overwrite)
}
