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

package analyzer_test

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	. "fillmore-labs.com/fallcheck/analyzer"
)

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithGenerated(true),
		Options{WithEmpty(false), nil},
		WithPattern(regexp.MustCompile(`intended`)),
		WithPattern(nil),
	}

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.LogAttrs(t.Context(), slog.LevelInfo, "test", opts.LogAttr())

	got := buf.String()
	for _, want := range [...]string{
		"options.generated=true",
		"options.empty=false",
		"options.nil=<nil>",
		"options.pattern=intended",
		"options.pattern=<default>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Got %q, want to contain %q", got, want)
		}
	}
}
