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

package casegroup

import (
	"regexp"
	"slices"
)

// Check returns the case groups of a switch statement falling through into
// another case group without a comment marking the fall-through as intended.
//
// groups are the case groups of the switch in source order. A nil trivia
// function disables suppression. The result is sorted by source order, so
// repeated runs on the same input produce identical results.
func Check[B, G comparable](g Graph[B, G], groups []G, trivia Trivia[G], pattern *regexp.Regexp) []Pair[G] {
	x := NewIndex(g, groups)
	if x.Len() == 0 {
		return nil
	}

	var pairs []Pair[G]

	for pair := range Violations(g, x) {
		if trivia != nil && Intentional(pattern, trivia(pair.Group, pair.Next)) {
			continue
		}

		pairs = append(pairs, pair)
	}

	slices.SortFunc(pairs, Pair[G].Compare)

	return pairs
}
