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

import (
	"fmt"
	gotoken "go/token"
)

// Diagnostic is a non-fatal finding of one pipeline stage.
type Diagnostic struct {
	Pos      gotoken.Position
	Kind     Kind
	Function string // Contract.function the diagnostic belongs to; empty for file-level findings
	Message  string
}

// Severity returns the severity of the diagnostic.
func (d Diagnostic) Severity() Severity { return d.Kind.Severity() }

// String formats the diagnostic as "file:line:col: message (kind)".
func (d Diagnostic) String() string {
	if d.Pos.IsValid() || d.Pos.Filename != "" {
		return fmt.Sprintf("%s: %s (%s)", d.Pos, d.Message, d.Kind)
	}

	return fmt.Sprintf("%s (%s)", d.Message, d.Kind)
}

// Diagnostics collects the diagnostics of one analyzed function.
// The zero value is ready to use. A Diagnostics is not safe for concurrent use;
// each function analysis owns its own collector.
type Diagnostics struct {
	fset     *gotoken.FileSet
	function string
	list     []Diagnostic
}

// NewDiagnostics creates a collector resolving positions through fset.
func NewDiagnostics(fset *gotoken.FileSet, function string) *Diagnostics {
	return &Diagnostics{fset: fset, function: function}
}

// Reportf adds a diagnostic at pos. Reporting to a nil collector discards the diagnostic.
func (d *Diagnostics) Reportf(pos gotoken.Pos, kind Kind, format string, args ...any) {
	if d == nil {
		return
	}

	var position gotoken.Position
	if d.fset != nil && pos.IsValid() {
		position = d.fset.Position(pos)
	}

	d.list = append(d.list, Diagnostic{
		Pos:      position,
		Kind:     kind,
		Function: d.function,
		Message:  fmt.Sprintf(format, args...),
	})
}

// All returns the collected diagnostics in report order.
func (d *Diagnostics) All() []Diagnostic {
	if d == nil {
		return nil
	}

	return d.list
}

// Len returns the number of collected diagnostics.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}

	return len(d.list)
}
