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

// Package phrase classifies guard conditions and renders them as natural language.
package phrase

import (
	"fillmore-labs.com/branchtree/internal/flow/cond"
	"fillmore-labs.com/branchtree/internal/symbols"
)

// Label is the BTT keyword introducing a condition.
type Label uint8

//go:generate go tool stringer -type Label -linecomment
const (
	Given Label = iota // given
	When               // when
)

// Classify labels a predicate: conditions on contract storage are Given,
// everything else (parameters, call context, unclassified symbols) is When.
// The outcome of an external call is always When.
func Classify(p *cond.Predicate) Label {
	if !p.Call && p.Has(symbols.Storage) {
		return Given
	}

	return When
}
