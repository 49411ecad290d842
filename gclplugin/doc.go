// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

/*
Package gclplugin registers the [fallcheck] fall-through analyzer as a
golangci-lint module plugin.

# Settings

	empty    report cases consisting only of a fallthrough statement (default false)
	pattern  regular expression for comments marking intentional fall-through
	         (default "(?i)falls?[-\\s]?thro?u[gh]?")

Generated files are always analyzed, golangci-lint filters their issues
according to its own exclusion rules.

# Building a custom golangci-lint

Declare the plugin in `.custom-gcl.yaml`:

	---
	version: v2.7.0
	name: golangci-lint
	destination: .
	plugins:
	  - module: fillmore-labs.com/fallcheck
	    import: fillmore-labs.com/fallcheck/gclplugin
	    version: v0.0.1

and build the binary with `golangci-lint custom`.

# Enabling the linter

In `.golangci.yaml`:

	---
	version: "2"
	linters:
	  enable:
	    - fallcheck
	  settings:
	    custom:
	      fallcheck:
	        type: module
	        description: "Reports unintentional switch case fall-through."
	        settings:
	          pattern: "(?i)(falls?[-\\s]?thro?u[gh]?|fall-?through intended)"

Then run `./golangci-lint run ./...`.

[fallcheck]: https://pkg.go.dev/fillmore-labs.com/fallcheck/analyzer
*/
package gclplugin
