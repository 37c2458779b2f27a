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

// Package project locates Foundry projects, their contracts and imports.
package project

import (
	"bufio"
	"bytes"
	"cmp"
	"errors"
	"fmt"
	gotoken "go/token"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
	"fillmore-labs.com/branchtree/internal/solidity/parser"
)

// Project is a Foundry project rooted at the directory containing foundry.toml.
type Project struct {
	Root       string
	Profile    Profile
	remappings []Remapping

	fset  *gotoken.FileSet
	mu    sync.Mutex
	files map[string]*parsed // absolute path → parse result
}

type parsed struct {
	file *ast.File
	err  error
}

// Find walks up from dir to the nearest directory containing foundry.toml and loads the project.
func Find(dir, profile string) (*Project, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
			return Load(dir, profile)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w: no %s in any parent directory", report.ErrProjectNotFound, ConfigFile)
		}

		dir = parent
	}
}

// Load loads the project rooted at root. An empty profile selects the default profile.
func Load(root, profile string) (*Project, error) {
	if profile == "" {
		profile = defaultProfile
	}

	p, err := loadProfile(filepath.Join(root, ConfigFile), profile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", report.ErrProjectNotFound, err)
		}

		return nil, fmt.Errorf("can't read %s: %w", ConfigFile, err)
	}

	remappings := parseRemappings(p.Remappings)

	if txt, err := readRemappingsFile(filepath.Join(root, "remappings.txt")); err == nil {
		remappings = append(remappings, txt...)
	}

	// Longest prefix first.
	slices.SortStableFunc(remappings, func(a, b Remapping) int { return cmp.Compare(len(b.Prefix), len(a.Prefix)) })

	return &Project{
		Root:       root,
		Profile:    p,
		remappings: remappings,
		fset:       gotoken.NewFileSet(),
		files:      make(map[string]*parsed),
	}, nil
}

// FileSet returns the file set positions of all parsed sources refer to.
func (p *Project) FileSet() *gotoken.FileSet { return p.fset }

// SourceDir returns the absolute path of the contract sources.
func (p *Project) SourceDir() string { return filepath.Join(p.Root, p.Profile.Src) }

// OutputDir returns the default directory for generated trees.
func (p *Project) OutputDir() string { return filepath.Join(p.Root, p.Profile.Test, "trees") }

// Sources returns the Solidity files below the source directory in lexical order.
func (p *Project) Sources() ([]string, error) {
	var files []string

	err := filepath.WalkDir(p.SourceDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && filepath.Ext(path) == ".sol" {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't list sources: %w", err)
	}

	return files, nil
}

// FindContract returns the source file declaring the named contract: <name>.sol when it exists,
// otherwise the first source containing a declaration of name.
func (p *Project) FindContract(name string) (string, error) {
	files, err := p.Sources()
	if err != nil {
		return "", err
	}

	want := name + ".sol"
	for _, f := range files {
		if filepath.Base(f) == want {
			return f, nil
		}
	}

	decl := regexp.MustCompile(`\b(?:contract|library|interface)\s+` + regexp.QuoteMeta(name) + `\b`)
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			continue
		}

		if decl.Match(src) {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %s", report.ErrContractNotFound, name)
}

// Parse parses the file at path, caching the result.
// On syntax errors the partial AST is returned together with an error wrapping [report.ErrParse].
func (p *Project) Parse(path string) (*ast.File, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r, ok := p.files[path]; ok {
		return r.file, r.err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		p.files[path] = &parsed{err: err}

		return nil, err
	}

	f, err := parser.ParseFile(p.fset, p.relative(path), src)
	if err != nil {
		err = fmt.Errorf("%w: %w", report.ErrParse, err)
	}

	p.files[path] = &parsed{file: f, err: err}

	return f, err
}

func (p *Project) relative(path string) string {
	if rel, err := filepath.Rel(p.Root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}

	return path
}

// Remapping maps an import prefix to a directory, as in "@openzeppelin/=lib/openzeppelin-contracts/".
type Remapping struct {
	Context string // importing file prefix the remapping is restricted to; empty for all
	Prefix  string
	Target  string
}

func parseRemappings(lines []string) []Remapping {
	var rs []Remapping

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var r Remapping

		if i := strings.Index(line, ":"); i >= 0 && i < strings.Index(line, "=") {
			r.Context, line = line[:i], line[i+1:]
		}

		prefix, target, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		r.Prefix, r.Target = prefix, target
		rs = append(rs, r)
	}

	return rs
}

func readRemappingsFile(path string) ([]Remapping, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string

	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	return parseRemappings(lines), sc.Err()
}
