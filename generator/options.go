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
	"fmt"
	"io"
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fillmore-labs.com/branchtree/internal/config"
)

// Option configures specific behavior of a [New] generator.
type Option interface {
	apply(r *runOptions)
	LogField() zap.Field
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// MarshalLogArray implements [zapcore.ArrayMarshaler].
func (o Options) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			enc.AppendString("<nil>")

		case Options:
			if err := opt.MarshalLogArray(enc); err != nil {
				return err
			}

		default:
			field := opt.LogField()
			if err := enc.AppendObject(zapcore.ObjectMarshalerFunc(func(oe zapcore.ObjectEncoder) error {
				field.AddTo(oe)

				return nil
			})); err != nil {
				return err
			}
		}
	}

	return nil
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogField is for logging with [zap.Logger].
func (o Options) LogField() zap.Field {
	return zap.Array("options", o)
}

// WithOutput is an [Option] to configure the output directory, relative to the project root.
func WithOutput(dir string) Option { return outputOption{dir: dir} }

type outputOption struct{ dir string }

func (o outputOption) apply(r *runOptions) {
	r.output = o.dir
}

func (o outputOption) LogField() zap.Field {
	return zap.String("output", o.dir)
}

// WithOverwrite is an [Option] to configure whether existing tree files are replaced.
func WithOverwrite(overwrite bool) Option { return overwriteOption{overwrite: overwrite} }

type overwriteOption struct{ overwrite bool }

func (o overwriteOption) apply(r *runOptions) {
	r.behavior.Set(config.Overwrite, o.overwrite)
}

func (o overwriteOption) LogField() zap.Field {
	return zap.Bool("overwrite", o.overwrite)
}

// WithSkipView is an [Option] to exclude view and pure functions from contract-wide runs.
func WithSkipView(skip bool) Option { return skipViewOption{skip: skip} }

type skipViewOption struct{ skip bool }

func (o skipViewOption) apply(r *runOptions) {
	r.behavior.Set(config.SkipView, o.skip)
}

func (o skipViewOption) LogField() zap.Field {
	return zap.Bool("skip-view", o.skip)
}

// WithStdout is an [Option] to print trees instead of writing files.
func WithStdout(stdout bool) Option { return stdoutOption{stdout: stdout} }

type stdoutOption struct{ stdout bool }

func (o stdoutOption) apply(r *runOptions) {
	r.behavior.Set(config.Stdout, o.stdout)
}

func (o stdoutOption) LogField() zap.Field {
	return zap.Bool("stdout", o.stdout)
}

// WithIncludeNoLint is an [Option] to generate trees for functions marked with a nolint:branchtree comment.
func WithIncludeNoLint(include bool) Option { return includeNoLintOption{include: include} }

type includeNoLintOption struct{ include bool }

func (o includeNoLintOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeNoLint, o.include)
}

func (o includeNoLintOption) LogField() zap.Field {
	return zap.Bool("include-nolint", o.include)
}

// WithParallelism is an [Option] to limit the number of functions analyzed concurrently.
func WithParallelism(n int) Option { return parallelismOption{n: n} }

type parallelismOption struct{ n int }

func (o parallelismOption) apply(r *runOptions) {
	if o.n > 0 {
		r.parallelism = o.n
	}
}

func (o parallelismOption) LogField() zap.Field {
	return zap.Int("parallelism", o.n)
}

// WithTerms is an [Option] adding phrases for operands, like "type(uint256).max" → "the maximum".
// Terms of later options extend and override earlier ones.
func WithTerms(terms map[string]string) Option { return termsOption{terms: terms} }

type termsOption struct{ terms map[string]string }

func (o termsOption) apply(r *runOptions) {
	if len(o.terms) == 0 {
		return
	}

	merged := make(map[string]string, len(r.terms)+len(o.terms))
	maps.Copy(merged, r.terms)
	maps.Copy(merged, o.terms)

	r.terms = merged
}

func (o termsOption) LogField() zap.Field {
	return zap.Strings("terms", slices.Sorted(maps.Keys(o.terms)))
}

// WithDir is an [Option] to set the directory the search for foundry.toml starts from.
func WithDir(dir string) Option { return dirOption{dir: dir} }

type dirOption struct{ dir string }

func (o dirOption) apply(r *runOptions) {
	r.dir = o.dir
}

func (o dirOption) LogField() zap.Field {
	return zap.String("dir", o.dir)
}

// WithProfile is an [Option] to select the Foundry profile.
func WithProfile(profile string) Option { return profileOption{profile: profile} }

type profileOption struct{ profile string }

func (o profileOption) apply(r *runOptions) {
	r.profile = o.profile
}

func (o profileOption) LogField() zap.Field {
	return zap.String("profile", o.profile)
}

// WithLogger is an [Option] to set the logger receiving progress and diagnostics.
func WithLogger(logger *zap.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *zap.Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger != nil {
		r.logger = o.logger
	}
}

func (o loggerOption) LogField() zap.Field {
	return zap.Bool("logger", o.logger != nil)
}

// WithWriter is an [Option] to set the destination of printed trees.
func WithWriter(w io.Writer) Option { return writerOption{w: w} }

type writerOption struct{ w io.Writer }

func (o writerOption) apply(r *runOptions) {
	if o.w != nil {
		r.stdout = o.w
	}
}

func (o writerOption) LogField() zap.Field {
	return zap.String("writer", fmt.Sprintf("%T", o.w))
}
