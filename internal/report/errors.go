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

// Package report defines the diagnostics and error kinds of tree generation.
package report

import "errors"

// Structural errors abort the analysis of the requested function.
var (
	// ErrProjectNotFound is returned when no foundry.toml is found.
	ErrProjectNotFound = errors.New("foundry project not found")
	// ErrContractNotFound is returned when no source file declares the requested contract.
	ErrContractNotFound = errors.New("contract not found")
	// ErrFunctionNotFound is returned when the contract has no function with the requested name.
	ErrFunctionNotFound = errors.New("function not found")
	// ErrFunctionNotVisible is returned when an internal or private function is requested.
	ErrFunctionNotVisible = errors.New("function is not externally visible")
	// ErrOverloadAmbiguous is returned when a requested name resolves to more than one signature.
	ErrOverloadAmbiguous = errors.New("overloaded function name is ambiguous")
	// ErrUnresolvedModifier is returned when a modifier cannot be inlined.
	ErrUnresolvedModifier = errors.New("unresolved modifier")
	// ErrParse is returned for source files with syntax errors.
	ErrParse = errors.New("syntax error")
)
