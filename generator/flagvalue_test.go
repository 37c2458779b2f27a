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

package generator_test

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"

	. "fillmore-labs.com/branchtree/generator"
	"fillmore-labs.com/branchtree/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Behavior
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.Stdout,
			args:    []string{"--skip-view"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.SkipView,
			args:    []string{"--skip-view=false"},
			want:    false,
		},
		{
			name:    "Keep",
			initial: config.SkipView,
			args:    nil,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Behaviors
			flags.Set(tt.initial, true)

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)

			const value = config.SkipView
			fv := NewBehaviorValue(&flags, value)
			fs.VarPF(fv, "skip-view", "", "skip view functions").NoOptDefVal = "true"

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("SkipView enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if flags.Enabled(tt.initial) != (tt.initial != value || tt.want) {
				t.Errorf("Unrelated flag %v changed", tt.initial)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Behaviors

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&flags, config.Stdout), "stdout", "print trees")

	if err := fs.Parse([]string{"--stdout=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	usage := fs.FlagUsages()

	for _, want := range []string{
		"replace existing tree files (default true)",
		"--skip-view",
		"-o, --output string",
	} {
		if !strings.Contains(usage, want) {
			t.Errorf("Usage() = %q, want it to contain %q", usage, want)
		}
	}

	if strings.Contains(usage, "--stdout[=true]") {
		t.Errorf("Usage() = %q, want boolean flags without value hint", usage)
	}
}

func TestFlagsOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		behavior   config.Behaviors
		wantOutput string
	}{
		{
			name:     "defaults",
			behavior: config.DefaultBehavior(),
		},
		{
			name:       "changed",
			args:       []string{"--skip-view", "--overwrite=false", "-o", "out"},
			behavior:   config.NewBitMask(config.SkipView),
			wantOutput: "out",
		},
		{
			name:     "stdout",
			args:     []string{"--stdout", "--include-nolint"},
			behavior: config.NewBitMask(config.Overwrite, config.Stdout, config.IncludeNoLint),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags := RegisterFlags(fs)

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			behavior, output := Resolved(flags.Options())

			if behavior != tt.behavior {
				t.Errorf("Got behavior %v, want %v", behavior, tt.behavior)
			}

			if output != tt.wantOutput {
				t.Errorf("Got output %q, want %q", output, tt.wantOutput)
			}
		})
	}
}
