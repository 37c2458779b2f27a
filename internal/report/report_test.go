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

package report_test

import (
	gotoken "go/token"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	. "fillmore-labs.com/branchtree/internal/report"
)

func TestConcatNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"Empty", nil, ""},
		{"Single", []string{"f(uint256)"}, "'f(uint256)'"},
		{"Two", []string{"a", "b"}, "'a' and 'b'"},
		{"Three", []string{"a", "b", "c"}, "'a', 'b' and 'c'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConcatNames(tt.names); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessDiagnostics(t *testing.T) {
	t.Parallel()

	fset := gotoken.NewFileSet()
	file := fset.AddFile("Vault.sol", -1, 100)
	file.SetLinesForContent([]byte("line one\nline two\n"))

	d := NewDiagnostics(fset, "Vault.withdraw")
	d.Reportf(file.Pos(9), UnresolvedModifier, "modifier %s has no placeholder", "onlyOwner")
	d.Reportf(gotoken.NoPos, CrossContractCallIgnored, "call not followed")

	core, logs := observer.New(zapcore.InfoLevel)
	ProcessDiagnostics(t.Context(), zap.New(core), d.All())

	entries := logs.All()
	if got, want := len(entries), 1; got != want {
		t.Fatalf("Got %d log entries, want %d", got, want)
	}

	entry := entries[0]
	if got, want := entry.Level, zapcore.WarnLevel; got != want {
		t.Errorf("Got level %v, want %v", got, want)
	}

	fields := entry.ContextMap()
	if got, want := fields["pos"], "Vault.sol:2:1"; got != want {
		t.Errorf("Got pos %v, want %v", got, want)
	}

	if got, want := fields["function"], "Vault.withdraw"; got != want {
		t.Errorf("Got function %v, want %v", got, want)
	}
}

func TestSeverity(t *testing.T) {
	t.Parallel()

	if got, want := UnresolvedModifier.Severity(), Warning; got != want {
		t.Errorf("Got %v, want %v", got, want)
	}

	if got, want := UnrecognizedPredicateShape.Severity(), Info; got != want {
		t.Errorf("Got %v, want %v", got, want)
	}
}
