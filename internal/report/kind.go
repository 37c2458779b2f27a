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

package report

// Kind classifies a diagnostic.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	UnresolvedModifier         Kind = iota // unresolved-modifier
	UnrecognizedPredicateShape             // unrecognized-predicate
	CrossContractCallIgnored               // cross-contract-call
	UnsupportedPragma                      // unsupported-pragma
	SyntaxError                            // syntax-error
)

// Severity of a diagnostic.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	Info    Severity = iota // info
	Warning                 // warning
)

// Severity returns the default severity of diagnostics of this kind.
func (k Kind) Severity() Severity {
	switch k {
	case UnresolvedModifier, UnsupportedPragma, SyntaxError:
		return Warning

	default:
		return Info
	}
}
