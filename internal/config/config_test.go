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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "fillmore-labs.com/branchtree/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if !b.Enabled(Overwrite) {
		t.Error("Expected Overwrite enabled by default")
	}

	b.Set(SkipView, true)
	b.Set(Overwrite, false)

	if got, want := b.Enabled(SkipView), true; got != want {
		t.Errorf("Got SkipView %t, want %t", got, want)
	}

	if got, want := b.Enabled(Overwrite), false; got != want {
		t.Errorf("Got Overwrite %t, want %t", got, want)
	}

	if b.Enabled(Stdout | IncludeNoLint) {
		t.Error("Expected Stdout and IncludeNoLint disabled")
	}
}

type settings struct {
	Output    *string           `yaml:"output"`
	Overwrite *bool             `yaml:"overwrite"`
	Terms     map[string]string `yaml:"terms"`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string // empty for no file
		found   bool
		wantErr bool
	}{
		{"missing", "", false, false},
		{"empty", "# nothing\n", true, false},
		{"values", "output: out\noverwrite: false\nterms:\n  type(uint256).max: the maximum\n", true, false},
		{"unknown key", "outptu: out\n", true, true},
		{"malformed", "output: [\n", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), FileName)
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			var s settings

			found, err := Load(path, &s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Got error %v, want error %t", err, tt.wantErr)
			}

			if found != tt.found {
				t.Errorf("Got found %t, want %t", found, tt.found)
			}
		})
	}
}

func TestLoadValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)

	const content = `
output: test/btt
overwrite: false
terms:
  type(uint256).max: the maximum
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var s settings
	if _, err := Load(path, &s); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Output == nil || *s.Output != "test/btt" {
		t.Errorf("Got output %v, want %q", s.Output, "test/btt")
	}

	if s.Overwrite == nil || *s.Overwrite {
		t.Errorf("Got overwrite %v, want false", s.Overwrite)
	}

	if got, want := s.Terms["type(uint256).max"], "the maximum"; got != want {
		t.Errorf("Got term %q, want %q", got, want)
	}
}
