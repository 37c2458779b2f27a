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

package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fillmore-labs.com/branchtree/generator"
)

// cli holds the state shared by the subcommands.
type cli struct {
	stdout, stderr io.Writer

	verbose bool
	logger  *zap.Logger
}

// newRootCommand returns the branchtree command tree writing to stdout and stderr.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "branchtree",
		Short: "Generate Branching Tree Technique specifications for Solidity functions",
		Long: `branchtree derives a .tree specification from the guards, modifiers and branches
of Solidity functions in a Foundry project. The trees are the input of "bulloak scaffold".`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: c.teardown,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(c.generateCommand())

	return root
}

func (c *cli) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [Contract[::function[(types)]]]",
		Short: "Generate trees for a function, a contract or the whole project",
		Example: `  branchtree generate Vault::withdraw
  branchtree generate 'Token::transfer(address,uint256)' --stdout
  branchtree generate Vault --overwrite=false`,
		Args: cobra.MaximumNArgs(1),
	}

	flags := generator.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var target string
		if len(args) > 0 {
			target = args[0]
		}

		g := generator.New(
			generator.WithLogger(c.logger),
			generator.WithWriter(c.stdout),
			flags.Options(),
		)

		summary, err := g.Generate(cmd.Context(), target)
		if err != nil {
			c.logger.Error("Generation failed", zap.String("target", target), zap.Error(err))

			return err
		}

		c.logger.Debug("Generation finished",
			zap.Int("generated", len(summary.Generated)),
			zap.Strings("skipped", summary.Skipped),
		)

		return nil
	}

	return cmd
}

// setup creates the logger.
func (c *cli) setup(_ *cobra.Command, _ []string) error {
	level := zapcore.InfoLevel
	if c.verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(c.stderr), level)
	c.logger = zap.New(core)

	return nil
}

func (c *cli) teardown(_ *cobra.Command, _ []string) {
	_ = c.logger.Sync() // ignore error, stderr can't be synced on some platforms
}
