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

package generator

// Settings represents the contents of a .branchtree.yaml project settings file.
type Settings struct {
	// Output is the directory trees are written to, relative to the project root.
	Output *string `yaml:"output,omitempty"`
	// Overwrite replaces existing tree files.
	Overwrite *bool `yaml:"overwrite,omitempty"`
	// SkipView excludes view and pure functions from contract-wide runs.
	SkipView *bool `yaml:"skip-view,omitempty"`
	// Stdout prints trees instead of writing files.
	Stdout *bool `yaml:"stdout,omitempty"`
	// IncludeNoLint generates trees for functions marked with nolint:branchtree.
	IncludeNoLint *bool `yaml:"include-nolint,omitempty"`
	// Parallelism limits the number of functions analyzed concurrently.
	Parallelism *int `yaml:"parallelism,omitempty"`
	// Terms maps operands to phrases, e.g. "type(uint256).max": "the maximum".
	Terms map[string]string `yaml:"terms,omitempty"`
}

// Options converts [Settings] into a list of [Option].
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []Option {
	var opts []Option

	opts = appendOption(opts, s.Output, WithOutput)
	opts = appendOption(opts, s.Overwrite, WithOverwrite)
	opts = appendOption(opts, s.SkipView, WithSkipView)
	opts = appendOption(opts, s.Stdout, WithStdout)
	opts = appendOption(opts, s.IncludeNoLint, WithIncludeNoLint)
	opts = appendOption(opts, s.Parallelism, WithParallelism)

	if s.Terms != nil {
		opts = append(opts, WithTerms(s.Terms))
	}

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts []Option, value *T, constructor func(T) Option) []Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
