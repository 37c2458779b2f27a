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

import (
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"

	"fillmore-labs.com/branchtree/internal/config"
)

// runOptions represent the configuration of one generator run.
type runOptions struct {
	// behavior holds output and selection flags.
	behavior config.Behaviors

	// output is the directory trees are written to, relative to the project root.
	// Empty selects the project's test directory.
	output string

	// dir is the directory project discovery starts from.
	dir string

	// profile selects the Foundry profile.
	profile string

	// parallelism limits the number of functions analyzed concurrently.
	parallelism int

	// terms extends the phrases of well-known operands.
	terms map[string]string

	logger *zap.Logger
	stdout io.Writer
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior:    config.DefaultBehavior(),
		dir:         ".",
		parallelism: runtime.GOMAXPROCS(0),
		logger:      zap.NewNop(),
		stdout:      os.Stdout,
	}
}
