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

package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/symbols"
)

// Unit is a parsed source file together with the files it imports, transitively.
type Unit struct {
	Path    string      // absolute path of the source file
	File    *ast.File   // the parsed source file
	Imports []*ast.File // imported files in discovery order
	Missing []string    // import paths that could not be resolved or parsed
}

// Scope creates the symbol scope of the unit. It is complete when every import was loaded.
func (u *Unit) Scope() *symbols.Scope {
	files := make([]*ast.File, 0, 1+len(u.Imports))
	files = append(files, u.File)
	files = append(files, u.Imports...)

	return symbols.NewScope(len(u.Missing) == 0, files...)
}

// Unit parses the file at path and resolves its imports. Syntax errors in the file itself
// are returned wrapping [report.ErrParse]; unloadable imports are recorded in Missing.
func (p *Project) Unit(path string) (*Unit, error) {
	f, err := p.Parse(path)
	if err != nil {
		return nil, err
	}

	u := &Unit{Path: path, File: f}

	seen := map[string]struct{}{path: {}}
	queue := []queued{{path: path, file: f}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, imp := range current.file.Imports {
			resolved, ok := p.Resolve(current.path, imp.Path)
			if !ok {
				u.Missing = append(u.Missing, imp.Path)

				continue
			}

			if _, ok := seen[resolved]; ok {
				continue
			}

			seen[resolved] = struct{}{}

			imported, err := p.Parse(resolved)
			if err != nil {
				if imported == nil || !errors.Is(err, report.ErrParse) {
					u.Missing = append(u.Missing, imp.Path)

					continue
				}

				u.Missing = append(u.Missing, imp.Path) // partially parsed
			}

			u.Imports = append(u.Imports, imported)
			queue = append(queue, queued{path: resolved, file: imported})
		}
	}

	return u, nil
}

type queued struct {
	path string
	file *ast.File
}

// Resolve maps an import path of the file at from to an existing file.
// Relative paths are resolved against the importing file, others through the
// remappings, the project root and the library directories.
func (p *Project) Resolve(from, importPath string) (string, bool) {
	if strings.HasPrefix(importPath, "./") || strings.HasPrefix(importPath, "../") {
		return exists(filepath.Join(filepath.Dir(from), filepath.FromSlash(importPath)))
	}

	rel := p.relative(from)

	for _, r := range p.remappings {
		if r.Context != "" && !strings.HasPrefix(filepath.ToSlash(rel), r.Context) {
			continue
		}

		if rest, ok := strings.CutPrefix(importPath, r.Prefix); ok {
			if path, ok := exists(filepath.Join(p.Root, filepath.FromSlash(r.Target), filepath.FromSlash(rest))); ok {
				return path, true
			}
		}
	}

	if path, ok := exists(filepath.Join(p.Root, filepath.FromSlash(importPath))); ok {
		return path, true
	}

	// Foundry's automatic remappings: "<lib>/..." resolves to lib/<lib>/src/... or lib/<lib>/...
	first, rest, _ := strings.Cut(importPath, "/")
	for _, lib := range p.Profile.Libs {
		dir := filepath.Join(p.Root, lib, first)

		for _, candidate := range []string{
			filepath.Join(dir, "src", filepath.FromSlash(rest)),
			filepath.Join(dir, filepath.FromSlash(rest)),
			filepath.Join(p.Root, lib, filepath.FromSlash(importPath)),
		} {
			if path, ok := exists(candidate); ok {
				return path, true
			}
		}
	}

	return "", false
}

func exists(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}

	return filepath.Clean(path), true
}
