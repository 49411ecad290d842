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

package gclplugin

import (
	"fmt"
	"regexp"

	fallcheck "fillmore-labs.com/fallcheck/analyzer"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Empty reports cases consisting only of a fallthrough statement.
	Empty *bool `json:"empty,omitzero"`
	// Pattern replaces the comment pattern marking an intentional fall-through.
	Pattern *string `json:"pattern,omitzero"`
}

// Options converts [Settings] into a list of [fallcheck.Option] for the fallcheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]fallcheck.Option, error) {
	var opts []fallcheck.Option

	opts = appendOption(opts, s.Empty, fallcheck.WithEmpty)

	if s.Pattern != nil {
		re, err := regexp.Compile(*s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("fallcheck: invalid pattern setting: %w", err)
		}

		opts = append(opts, fallcheck.WithPattern(re))
	}

	return opts, nil
}

// appendOption appends a non-nil setting to a [fallcheck.Option] list.
func appendOption[T any](opts []fallcheck.Option, value *T, constructor func(T) fallcheck.Option) []fallcheck.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
