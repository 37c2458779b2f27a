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

import "fillmore-labs.com/branchtree/internal/config"

var NewBehaviorValue = newBehaviorValue

// Resolved returns the behavior and output directory resulting from opts.
func Resolved(opts ...Option) (config.Behaviors, string) {
	r := makeRunOptions(opts)

	return r.behavior, r.output
}
