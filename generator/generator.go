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
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime/trace"

	"go.uber.org/zap"

	"fillmore-labs.com/branchtree/internal/config"
	"fillmore-labs.com/branchtree/internal/phrase"
	"fillmore-labs.com/branchtree/internal/project"
	"fillmore-labs.com/branchtree/internal/render"
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/run"
)

// Generator creates BTT trees for the functions of a Foundry project.
// A Generator is safe for concurrent use.
type Generator struct {
	opts Options
}

// New creates a new [Generator].
// Options override the settings of the project's .branchtree.yaml.
func New(opts ...Option) *Generator {
	return &Generator{opts: Options(opts)}
}

// Summary lists the results of a [Generator.Generate] run.
type Summary struct {
	Generated []string // written paths, or artifact names when printing
	Skipped   []string // functions skipped with a warning, as Contract.function
}

// Generate creates the trees for target, which is empty for all contracts of the project,
// "Contract", "Contract::function" or "Contract::function(type,...)".
//
// It fails when the requested function does not exist, is not externally visible, is an
// ambiguous overloaded name or cannot be analyzed. In contract- and project-wide runs
// functions that cannot be analyzed are skipped with a warning.
func (g *Generator) Generate(ctx context.Context, target string) (*Summary, error) {
	t, err := ParseTarget(target)
	if err != nil {
		return nil, err
	}

	ctx, task := trace.NewTask(ctx, "Generate")
	defer task.End()

	r := makeRunOptions(g.opts)

	proj, err := project.Find(r.dir, r.profile)
	if err != nil {
		return nil, err
	}

	opts := g.opts

	var settings Settings

	found, err := config.Load(filepath.Join(proj.Root, config.FileName), &settings)
	if err != nil {
		return nil, err
	}

	if found {
		opts = Options{Options(settings.Options()), g.opts}
		r = makeRunOptions(opts)
	}

	logger := r.logger
	logger.Debug("Generating trees",
		zap.String("project", proj.Root),
		zap.Stringer("target", t),
		zap.Bool("settings", found),
		opts.LogField(),
	)

	s := selector{proj: proj, behavior: r.behavior, logger: logger}

	funcs, err := s.functions(ctx, t)
	if err != nil {
		return nil, err
	}

	pipeline := run.Options{Phraser: phrase.New(r.terms), Parallelism: r.parallelism}

	results, err := pipeline.AnalyzeAll(ctx, proj.FileSet(), funcs)
	if err != nil {
		return nil, err
	}

	return r.emit(ctx, r.outputDir(proj), t, results)
}

// emit reports the diagnostics of each result and writes or prints the trees.
func (r *runOptions) emit(ctx context.Context, dir string, t Target, results []run.Result) (*Summary, error) {
	summary := &Summary{}

	for _, res := range results {
		report.ProcessDiagnostics(ctx, r.logger, res.Diagnostics)

		name := res.Func.Name()

		if res.Err != nil {
			if t.Kind() == FunctionTarget {
				return summary, fmt.Errorf("%s: %w", name, res.Err)
			}

			r.logger.Warn("Skipping function", zap.String("function", name), zap.Error(res.Err))
			summary.Skipped = append(summary.Skipped, name)

			continue
		}

		if r.behavior.Enabled(config.Stdout) {
			if len(summary.Generated) > 0 {
				if _, err := io.WriteString(r.stdout, "\n"); err != nil {
					return summary, err
				}
			}

			if _, err := io.WriteString(r.stdout, res.Text); err != nil {
				return summary, err
			}

			summary.Generated = append(summary.Generated, res.Func.FileName())

			continue
		}

		path, err := render.WriteFile(dir, res.Func.FileName(), []byte(res.Text), r.behavior.Enabled(config.Overwrite))
		if err != nil {
			if errors.Is(err, render.ErrExists) {
				r.logger.Warn("Tree exists, not overwriting", zap.String("function", name), zap.String("path", path))
				summary.Skipped = append(summary.Skipped, name)

				continue
			}

			return summary, err
		}

		r.logger.Info("Generated tree", zap.String("function", name), zap.String("path", path))
		summary.Generated = append(summary.Generated, path)
	}

	return summary, nil
}

// outputDir returns the directory trees are written to.
func (r *runOptions) outputDir(proj *project.Project) string {
	switch {
	case r.output == "":
		return proj.OutputDir()

	case filepath.IsAbs(r.output):
		return r.output

	default:
		return filepath.Join(proj.Root, r.output)
	}
}
