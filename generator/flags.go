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
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"fillmore-labs.com/branchtree/internal/config"
)

// Flags holds the command line values of generator options.
type Flags struct {
	set *pflag.FlagSet

	behavior    config.Behaviors
	output      string
	dir         string
	profile     string
	parallelism int
}

// RegisterFlags binds generator options to command line flags of flags.
func RegisterFlags(flags *pflag.FlagSet) *Flags {
	f := &Flags{
		set:         flags,
		behavior:    config.DefaultBehavior(),
		output:      "test/trees",
		parallelism: runtime.GOMAXPROCS(0),
	}

	flags.StringVarP(&f.output, "output", "o", f.output, "output directory, relative to the project root")
	flags.StringVarP(&f.dir, "dir", "C", ".", "directory to start the search for foundry.toml from")
	flags.StringVar(&f.profile, "profile", "", "foundry profile (default $FOUNDRY_PROFILE or \"default\")")
	flags.IntVarP(&f.parallelism, "parallelism", "j", f.parallelism, "maximum number of functions analyzed concurrently")

	for _, b := range behaviorFlags {
		flag := flags.VarPF(newBehaviorValue(&f.behavior, b.value), b.name, "", b.usage)
		flag.NoOptDefVal = "true"
	}

	return f
}

// behaviorFlags are the boolean flags backed by [config.Behavior] bits.
var behaviorFlags = [...]struct {
	name   string
	value  config.Behavior
	option func(bool) Option
	usage  string
}{
	{"overwrite", config.Overwrite, WithOverwrite, "replace existing tree files"},
	{"skip-view", config.SkipView, WithSkipView, "skip view and pure functions"},
	{"stdout", config.Stdout, WithStdout, "print trees instead of writing files"},
	{"include-nolint", config.IncludeNoLint, WithIncludeNoLint, "include functions marked nolint:branchtree"},
}

// Options returns the [Option] values of flags set on the command line,
// so that unset flags don't override project settings.
func (f *Flags) Options() Options {
	var opts Options

	if f.set.Changed("output") {
		opts = append(opts, WithOutput(f.output))
	}

	if f.set.Changed("dir") {
		opts = append(opts, WithDir(f.dir))
	}

	if f.set.Changed("profile") {
		opts = append(opts, WithProfile(f.profile))
	} else if profile := os.Getenv("FOUNDRY_PROFILE"); profile != "" {
		opts = append(opts, WithProfile(profile))
	}

	if f.set.Changed("parallelism") {
		opts = append(opts, WithParallelism(f.parallelism))
	}

	for _, b := range behaviorFlags {
		if f.set.Changed(b.name) {
			opts = append(opts, b.option(f.behavior.Enabled(b.value)))
		}
	}

	return opts
}
