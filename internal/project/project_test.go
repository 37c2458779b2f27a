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

package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/branchtree/internal/project"
	"fillmore-labs.com/branchtree/internal/report"
)

const foundryToml = `
[profile.default]
src = "contracts"
out = "out"
libs = ["lib", "node_modules"]
remappings = ["@oz/=lib/openzeppelin/contracts/"]
optimizer_runs = 200

[profile.ci]
test = "tests"

[fmt]
line_length = 120
`

// writeFiles creates files below dir from a path → content map.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Can't create directory: %v", err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Can't write %s: %v", name, err)
		}
	}
}

func newProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	writeFiles(t, root, map[string]string{
		"foundry.toml":    foundryToml,
		"remappings.txt":  "solmate/=lib/solmate/src/\n",
		"contracts/A.sol": "pragma solidity ^0.8.0;\nimport \"./lib/Base.sol\";\nimport \"@oz/Ownable.sol\";\ncontract A is Base, Ownable {}\n",
		"contracts/lib/Base.sol":                 "pragma solidity ^0.8.0;\nimport {Auth} from \"solmate/Auth.sol\";\ncontract Base is Auth {}\n",
		"contracts/tokens/Tokens.sol":            "pragma solidity ^0.8.0;\nimport \"forge-std/Test.sol\";\ncontract Coin {}\ninterface ICoin {}\n",
		"contracts/Broken.sol":                   "pragma solidity ^0.8.0;\nimport \"missing/Nope.sol\";\ncontract Broken {}\n",
		"lib/openzeppelin/contracts/Ownable.sol": "pragma solidity ^0.8.0;\ncontract Ownable {}\n",
		"lib/solmate/src/Auth.sol":               "pragma solidity ^0.8.0;\nabstract contract Auth {}\n",
		"lib/forge-std/src/Test.sol":             "pragma solidity ^0.8.0;\nimport \"./Base.sol\";\ncontract Test is TestBase {}\n",
		"lib/forge-std/src/Base.sol":             "pragma solidity ^0.8.0;\ncontract TestBase {}\n",
	})

	return root
}

func TestFind(t *testing.T) {
	t.Parallel()

	root := newProject(t)

	p, err := Find(filepath.Join(root, "contracts", "tokens"), "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if p.Root != root {
		t.Errorf("Got root %q, want %q", p.Root, root)
	}

	want := Profile{
		Src:        "contracts",
		Test:       "test",
		Libs:       []string{"lib", "node_modules"},
		Remappings: []string{"@oz/=lib/openzeppelin/contracts/"},
	}

	if diff := cmp.Diff(want, p.Profile); diff != "" {
		t.Errorf("Profile mismatch (-want +got):\n%s", diff)
	}

	if got, want := p.OutputDir(), filepath.Join(root, "test", "trees"); got != want {
		t.Errorf("Got output %q, want %q", got, want)
	}
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	root := newProject(t)

	p, err := Load(root, "ci")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got, want := p.Profile.Test, "tests"; got != want {
		t.Errorf("Got test dir %q, want %q", got, want)
	}

	if got, want := p.Profile.Src, "contracts"; got != want {
		t.Errorf("Got src %q, want %q (inherited from default)", got, want)
	}
}

func TestFindNoProject(t *testing.T) {
	t.Parallel()

	if _, err := Find(t.TempDir(), ""); !errors.Is(err, report.ErrProjectNotFound) {
		t.Errorf("Got error %v, want %v", err, report.ErrProjectNotFound)
	}
}

func TestFindContract(t *testing.T) {
	t.Parallel()

	root := newProject(t)

	p, err := Load(root, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name string
		want string
		err  error
	}{
		{"A", "contracts/A.sol", nil},
		{"Coin", "contracts/tokens/Tokens.sol", nil},
		{"ICoin", "contracts/tokens/Tokens.sol", nil},
		{"Base", "contracts/lib/Base.sol", nil},
		{"Missing", "", report.ErrContractNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.FindContract(tt.name)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, want %v", err, tt.err)
			}

			if tt.err != nil {
				return
			}

			if want := filepath.Join(root, filepath.FromSlash(tt.want)); got != want {
				t.Errorf("Got %q, want %q", got, want)
			}
		})
	}
}

func TestUnit(t *testing.T) {
	t.Parallel()

	root := newProject(t)

	p, err := Load(root, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		file      string
		imports   []string
		missing   []string
		contracts []string
	}{
		{
			"contracts/A.sol",
			[]string{"contracts/lib/Base.sol", "lib/openzeppelin/contracts/Ownable.sol", "lib/solmate/src/Auth.sol"},
			nil,
			[]string{"A", "Base", "Ownable", "Auth"},
		},
		{
			"contracts/tokens/Tokens.sol",
			[]string{"lib/forge-std/src/Test.sol", "lib/forge-std/src/Base.sol"},
			nil,
			[]string{"Coin", "ICoin", "Test", "TestBase"},
		},
		{
			"contracts/Broken.sol",
			nil,
			[]string{"missing/Nope.sol"},
			[]string{"Broken"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			u, err := p.Unit(filepath.Join(root, filepath.FromSlash(tt.file)))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			var imports []string
			for _, f := range u.Imports {
				imports = append(imports, filepath.ToSlash(f.Name))
			}

			if diff := cmp.Diff(tt.imports, imports); diff != "" {
				t.Errorf("Imports mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.missing, u.Missing); diff != "" {
				t.Errorf("Missing mismatch (-want +got):\n%s", diff)
			}

			scope := u.Scope()

			if got, want := scope.Complete(), len(tt.missing) == 0; got != want {
				t.Errorf("Got complete %t, want %t", got, want)
			}

			for _, name := range tt.contracts {
				if _, ok := scope.Contract(name); !ok {
					t.Errorf("Contract %s not in scope", name)
				}
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"foundry.toml":  "",
		"src/Bad.sol":   "contract Bad { function f( }\n",
		"src/Other.sol": "contract Other {}\n",
	})

	p, err := Load(root, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := p.Unit(filepath.Join(root, "src", "Bad.sol")); !errors.Is(err, report.ErrParse) {
		t.Errorf("Got error %v, want %v", err, report.ErrParse)
	}

	files, err := p.Sources()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got, want := len(files), 2; got != want {
		t.Errorf("Got %d sources, want %d", got, want)
	}
}
