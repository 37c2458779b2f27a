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

// Package render serializes decision trees to the .tree text format.
package render

import (
	"io"
	"strings"

	"fillmore-labs.com/branchtree/internal/tree"
)

const (
	branchConnector = "├── "
	lastConnector   = "└── "
	branchIndent    = "│   "
	lastIndent      = "    "
)

// Render writes the tree: the root name on the first line, then one line per node,
// connected with box-drawing characters, followed by a trailing newline.
func Render(w io.Writer, t *tree.Tree) error {
	_, err := io.WriteString(w, String(t))

	return err
}

// String returns the rendered tree.
func String(t *tree.Tree) string {
	var b strings.Builder

	b.WriteString(t.Name)
	b.WriteByte('\n')

	writeChildren(&b, t.Children, "")

	return b.String()
}

func writeChildren(b *strings.Builder, children []*tree.Node, indent string) {
	for i, n := range children {
		connector, childIndent := branchConnector, branchIndent
		if i == len(children)-1 {
			connector, childIndent = lastConnector, lastIndent
		}

		b.WriteString(indent)
		b.WriteString(connector)
		b.WriteString(n.Line())
		b.WriteByte('\n')

		writeChildren(b, n.Children, indent+childIndent)
	}
}
