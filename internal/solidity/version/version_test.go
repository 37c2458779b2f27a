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

package version_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/branchtree/internal/solidity/version"
)

func TestAllows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		constraint string
		version    string
		want       bool
	}{
		{"^0.8.20", "0.8.20", true},
		{"^0.8.20", "0.8.30", true},
		{"^0.8.20", "0.8.19", false},
		{"^0.8.20", "0.9.0", false},
		{">=0.8.0 <0.9.0", "0.8.4", true},
		{">= 0.8.0 < 0.9.0", "0.9.0", false},
		{"0.7.6", "0.7.6", true},
		{"0.7.6", "0.7.5", false},
		{"~0.6.2", "0.6.12", true},
		{"~0.6.2", "0.7.0", false},
		{"0.5.17 || ^0.8.0", "0.8.1", true},
		{"0.5.17 || ^0.8.0", "0.6.0", false},
		{"0.8", "0.8.9", true},
		{"*", "0.4.11", true},
	}

	for _, tt := range tests {
		t.Run(tt.constraint+"@"+tt.version, func(t *testing.T) {
			t.Parallel()

			c, err := Parse(tt.constraint)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.constraint, err)
			}

			if got := c.Allows(tt.version); got != tt.want {
				t.Errorf("Got %v for %s in %s, want %v", got, tt.version, tt.constraint, tt.want)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	t.Parallel()

	tests := []struct {
		constraint string
		minimum    string
		want       bool
	}{
		{"^0.8.0", CustomErrors, true},
		{"0.8.3", CustomErrors, false},
		{"^0.5.0", TryCatch, false},
		{">=0.4.22 <0.9.0", TryCatch, true},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			t.Parallel()

			c, err := Parse(tt.constraint)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.constraint, err)
			}

			if got := c.Supports(tt.minimum); got != tt.want {
				t.Errorf("Got %v for %s supporting %s, want %v", got, tt.constraint, tt.minimum, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "^abc", "0.8.1.2", ">> 0.8.0"} {
		if _, err := Parse(text); !errors.Is(err, ErrInvalidConstraint) {
			t.Errorf("Parse(%q) = %v, want %v", text, err, ErrInvalidConstraint)
		}
	}
}
