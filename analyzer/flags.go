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

package analyzer

import (
	"flag"
	"regexp"

	"fillmore-labs.com/fallcheck/internal/config"
	"fillmore-labs.com/fallcheck/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(fs *flag.FlagSet, r *run.Options) {
	if fs == nil {
		fs = flag.CommandLine
	}

	fs.Var(boolValue[config.Config, *config.Behavior]{&r.Behavior, config.IncludeGenerated},
		"generated", "check generated files")
	fs.Var(boolValue[config.Config, *config.Behavior]{&r.Behavior, config.ReportEmpty},
		"empty", "report cases consisting only of a fallthrough statement")
	fs.Var(patternValue{&r.Pattern}, "pattern", "regular expression matching comments that mark an intentional fall-through")
}

// patternValue is a [flag.Value] for a regular expression.
type patternValue struct{ pattern **regexp.Regexp }

// Set implements [flag.Value].
func (v patternValue) Set(s string) error {
	re, err := config.CompilePattern(s)
	if err != nil {
		return err
	}

	if re != nil {
		*v.pattern = re
	}

	return nil
}

// String implements [flag.Value].
func (v patternValue) String() string {
	if v.pattern == nil || *v.pattern == nil {
		return ""
	}

	return (*v.pattern).String()
}

// Get implements [flag.Getter].
func (v patternValue) Get() any {
	if v.pattern == nil {
		return (*regexp.Regexp)(nil)
	}

	return *v.pattern
}
