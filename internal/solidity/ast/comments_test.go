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

package ast_test

import (
	"testing"

	. "fillmore-labs.com/branchtree/internal/solidity/ast"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"branchtree", "// nolint:branchtree", true},
		{"no space", "//nolint:branchtree", true},
		{"all", "//nolint:all", true},
		{"list", "//nolint:solhint,branchtree", true},
		{"upper", "//nolint:BranchTree", true},
		{"other", "//nolint:solhint", false},
		{"plain", "// a comment", false},
		{"block", "/* nolint:branchtree */", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(&Comment{Text: tt.text}); got != tt.want {
				t.Errorf("CommentHasNoLint(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNoLint(t *testing.T) {
	t.Parallel()

	if NoLint(nil) {
		t.Error("Expected no directive on nil doc")
	}

	doc := &CommentGroup{List: []*Comment{{Text: "/// @notice Transfer tokens"}, {Text: "// nolint:branchtree"}}}
	if !NoLint(doc) {
		t.Error("Expected directive in second doc line")
	}
}
