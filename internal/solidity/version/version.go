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

// Package version evaluates `pragma solidity` version constraints.
package version

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidConstraint is returned for constraints that cannot be parsed.
var ErrInvalidConstraint = errors.New("invalid version constraint")

// Minimum compiler versions of syntax features the analysis relies on.
const (
	// TryCatch is the first release with fallback/receive and try/catch.
	TryCatch = "v0.6.0"
	// CustomErrors is the first release with revert CustomError().
	CustomErrors = "v0.8.4"
)

// latestPatch lists the last patch release of each 0.x minor line.
var latestPatch = [...]int{4: 26, 5: 17, 6: 12, 7: 6, 8: 30}

// Releases yields known compiler releases in ascending order, in canonical semver form.
func Releases() iter.Seq[string] {
	return func(yield func(string) bool) {
		for minor, last := range latestPatch {
			if last == 0 {
				continue
			}

			for patch := 0; patch <= last; patch++ {
				if !yield(fmt.Sprintf("v0.%d.%d", minor, patch)) {
					return
				}
			}
		}
	}
}

type comparator struct {
	op      string // one of "<", "<=", ">", ">=", "="
	version string // canonical semver
}

func (c comparator) allows(v string) bool {
	cmp := semver.Compare(v, c.version)

	switch c.op {
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	default:
		return cmp == 0
	}
}

// Constraint is a parsed version constraint: a disjunction of comparator sets.
type Constraint struct {
	text string
	sets [][]comparator
}

// String returns the constraint as written.
func (c Constraint) String() string { return c.text }

// Parse parses a constraint such as "^0.8.20", ">=0.8.0 <0.9.0" or "0.7.6 || ^0.8.0".
func Parse(text string) (Constraint, error) {
	c := Constraint{text: text}

	for alt := range strings.SplitSeq(text, "||") {
		var set []comparator

		fields := strings.Fields(alt)
		for i := 0; i < len(fields); i++ {
			field := fields[i]

			// operator separated from its version, as in ">= 0.8.0"
			if strings.Trim(field, "<>=^~") == "" && i+1 < len(fields) {
				field += fields[i+1]
				i++
			}

			cs, err := parseComparator(field)
			if err != nil {
				return Constraint{}, fmt.Errorf("%w %q: %w", ErrInvalidConstraint, text, err)
			}

			set = append(set, cs...)
		}

		if len(set) == 0 {
			return Constraint{}, fmt.Errorf("%w %q: empty alternative", ErrInvalidConstraint, text)
		}

		c.sets = append(c.sets, set)
	}

	return c, nil
}

func parseComparator(field string) ([]comparator, error) {
	op := strings.TrimRight(field[:len(field)-len(strings.TrimLeft(field, "<>=^~"))], " ")
	raw := field[len(op):]

	if raw == "*" || raw == "x" || raw == "X" {
		return []comparator{{">=", "v0.0.0"}}, nil
	}

	parts := strings.Split(raw, ".")
	if len(parts) > 3 {
		return nil, fmt.Errorf("malformed version %q", raw)
	}

	nums := make([]int, 0, 3)

	for _, part := range parts {
		if part == "*" || part == "x" || part == "X" {
			break
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("malformed version %q", raw)
		}

		nums = append(nums, n)
	}

	if len(nums) == 0 {
		return nil, fmt.Errorf("malformed version %q", raw)
	}

	lower := canonical(nums)

	switch op {
	case "^":
		return []comparator{{">=", lower}, {"<", caretUpper(nums)}}, nil

	case "~":
		return []comparator{{">=", lower}, {"<", tildeUpper(nums)}}, nil

	case "", "=":
		if len(nums) < 3 {
			return []comparator{{">=", lower}, {"<", bump(nums, len(nums)-1)}}, nil
		}

		return []comparator{{"=", lower}}, nil

	case "<", "<=", ">", ">=":
		return []comparator{{op, lower}}, nil

	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}
}

func canonical(nums []int) string {
	v := [3]int{}
	copy(v[:], nums)

	return fmt.Sprintf("v%d.%d.%d", v[0], v[1], v[2])
}

// bump increments the component at index i and zeroes the rest.
func bump(nums []int, i int) string {
	v := [3]int{}
	copy(v[:], nums[:i+1])
	v[i]++

	return canonical(v[:i+1])
}

// caretUpper is the exclusive bound of ^: the left-most non-zero component is kept.
func caretUpper(nums []int) string {
	for i, n := range nums {
		if n != 0 || i == len(nums)-1 {
			return bump(nums, i)
		}
	}

	return bump(nums, 0)
}

// tildeUpper is the exclusive bound of ~: patch-level changes are allowed.
func tildeUpper(nums []int) string {
	if len(nums) == 1 {
		return bump(nums, 0)
	}

	return bump(nums, 1)
}

// Allows reports whether the version satisfies the constraint.
func (c Constraint) Allows(v string) bool {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return false
	}

	for _, set := range c.sets {
		ok := true

		for _, cmp := range set {
			if !cmp.allows(v) {
				ok = false

				break
			}
		}

		if ok {
			return true
		}
	}

	return false
}

// Highest returns the newest known release satisfying the constraint, or "" if none does.
func (c Constraint) Highest() string {
	highest := ""

	for v := range Releases() {
		if c.Allows(v) {
			highest = v
		}
	}

	return highest
}

// Supports reports whether any known release at or above minimum satisfies the constraint.
func (c Constraint) Supports(minimum string) bool {
	highest := c.Highest()

	return highest != "" && semver.Compare(highest, minimum) >= 0
}
