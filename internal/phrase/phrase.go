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

package phrase

import (
	"fillmore-labs.com/branchtree/internal/flow/cond"
	"fillmore-labs.com/branchtree/internal/report"
	"fillmore-labs.com/branchtree/internal/solidity/ast"
)

// Phrase is the rendering of a guard condition for both arms of its branch.
type Phrase struct {
	Label Label
	Any   bool   // the condition is evaluated inside a loop
	Holds string // the predicate holds
	Fails string // the predicate does not hold
}

// Line returns the tree line for the arm with the given polarity, e.g. "when any amount is zero".
func (p Phrase) Line(polarity bool) string {
	text := p.Fails
	if polarity {
		text = p.Holds
	}

	if p.Any {
		return p.Label.String() + " any " + text
	}

	return p.Label.String() + " " + text
}

// Strategy renders one predicate shape.
//
// Phrase returns the text for the predicate holding and failing. ok is false when
// the strategy does not apply to x. Strategies use r to render sub-expressions.
type Strategy interface {
	Phrase(r *Phraser, x ast.Expr) (holds, fails string, ok bool)
}

// StrategyFunc adapts a function to a [Strategy].
type StrategyFunc func(r *Phraser, x ast.Expr) (holds, fails string, ok bool)

// Phrase calls f(r, x).
func (f StrategyFunc) Phrase(r *Phraser, x ast.Expr) (holds, fails string, ok bool) {
	return f(r, x)
}

// Phraser renders guard conditions through a chain of strategies. It is immutable after construction.
type Phraser struct {
	strategies []Strategy
	terms      map[string]string
}

// New creates a [Phraser]. terms maps canonical operand text to a phrase and takes precedence
// over the built-in terms. Additional strategies are tried before the built-in templates.
func New(terms map[string]string, strategies ...Strategy) *Phraser {
	all := make([]Strategy, 0, len(strategies)+len(defaultStrategies))
	all = append(all, strategies...)
	all = append(all, defaultStrategies...)

	return &Phraser{strategies: all, terms: terms}
}

// Phrase classifies and renders a guard condition. Predicates of no known shape are
// rendered literally and reported as [report.UnrecognizedPredicateShape].
func (r *Phraser) Phrase(c *cond.Condition, diags *report.Diagnostics) Phrase {
	p := Phrase{Label: Classify(c.Pred), Any: c.InLoop()}

	if c.Pred.Call {
		operand := r.Operand(c.Pred.Expr)
		p.Holds, p.Fails = operand+" succeeds", operand+" fails"

		return p
	}

	var ok bool
	if p.Holds, p.Fails, ok = r.render(c.Pred.Expr); !ok {
		diags.Reportf(c.Pos, report.UnrecognizedPredicateShape, "no template for condition %s", c.Pred.Text)
	}

	return p
}

// Render returns the phrases of a boolean expression. Unrecognized shapes render literally.
func (r *Phraser) Render(x ast.Expr) (holds, fails string) {
	holds, fails, _ = r.render(x)

	return holds, fails
}

func (r *Phraser) render(x ast.Expr) (holds, fails string, ok bool) {
	x = ast.Unparen(x)

	for _, s := range r.strategies {
		if holds, fails, ok := s.Phrase(r, x); ok {
			return holds, fails, true
		}
	}

	text := ast.Format(x)

	return text + " holds", text + " does not hold", false
}
