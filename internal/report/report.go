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

package report

import (
	"context"
	"runtime/trace"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProcessDiagnostics emits diagnostics to the logger.
//
// This is the final phase of the generator. Warnings are logged at warn level,
// informational diagnostics at debug level, so they are visible with --verbose only.
func ProcessDiagnostics(ctx context.Context, logger *zap.Logger, diagnostics []Diagnostic) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, d := range diagnostics {
		level := zapcore.DebugLevel
		if d.Severity() == Warning {
			level = zapcore.WarnLevel
		}

		ce := logger.Check(level, d.Message)
		if ce == nil {
			continue
		}

		fields := []zap.Field{zap.Stringer("kind", d.Kind)}
		if d.Function != "" {
			fields = append(fields, zap.String("function", d.Function))
		}

		if d.Pos.IsValid() || d.Pos.Filename != "" {
			fields = append(fields, zap.String("pos", d.Pos.String()))
		}

		ce.Write(fields...)
	}
}

// ConcatNames formats a list of names into a human-readable string (e.g., "'a', 'b' and 'c'").
func ConcatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
