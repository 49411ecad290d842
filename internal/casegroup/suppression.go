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
	"iter"
	"regexp"
)

// DefaultPattern recognizes common spellings of "falls through" in comments,
// like "fall through", "falls-thru" or "FALLTHROUGH".
var DefaultPattern = regexp.MustCompile(`(?i)falls?[-\s]?thro?u[gh]?`)

// Trivia yields, in document order, the comments inside the body of group and
// those attached before the first token of next.
type Trivia[G comparable] func(group, next G) iter.Seq[string]

// Intentional reports whether one of the comments matches pattern.
// A nil pattern means [DefaultPattern].
//
// The scan stops at the first match.
func Intentional(pattern *regexp.Regexp, comments iter.Seq[string]) bool {
	if pattern == nil {
		pattern = DefaultPattern
	}

	for text := range comments {
		if pattern.MatchString(text) {
			return true
		}
	}

	return false
}
