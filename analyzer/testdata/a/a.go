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

package a

import (
	"log"
	"os"
)

func basic(x int) {
	switch x {
	case 0: // want "End this switch case with an unconditional break, return or panic"
		x++
		fallthrough
	case 1:
		x--
	}
}

func marked(x int) {
	switch x {
	case 0:
		x++
		// falls through
		fallthrough
	case 1:
		x--
		fallthrough // fall thru
	case 2:
		x++
		fallthrough
	// FALLTHROUGH
	case 3:
		x--
		fallthrough /* Fallthru */
	default:
	}
}

func terminated(x int) {
	switch x {
	case 0:
		return
		fallthrough
	case 1:
		panic(x)
		fallthrough
	case 2:
		os.Exit(x)
		fallthrough
	case 3:
		log.Fatalf("%d", x)
		fallthrough
	case 4:
	}
}

func conditional(x int) int {
	switch x {
	case 0: // want "End this switch case with an unconditional break, return or panic"
		if x > 0 {
			return x
		}
		fallthrough
	case 1, 2: // want "End this switch case with an unconditional break, return or panic"
		for i := range x {
			if i > 2 {
				break
			}
		}
		fallthrough
	default:
		return 0
	}
}

func loops(x int) {
	switch x {
	case 0:
		for {
			x++
		}
		fallthrough
	case 1: // want "End this switch case with an unconditional break, return or panic"
	outer:
		for {
			for range x {
				break outer
			}
		}
		fallthrough
	case 2:
	}
}

func defaults(x int) {
	switch {
	default: // want "End this switch case with an unconditional break, return or panic"
		x++
		fallthrough
	case x > 0:
		x--
	}
}

func chain(x int) {
	switch x {
	case 0: // want "End this switch case with an unconditional break, return or panic"
		x++
		fallthrough
	case 1: // want "End this switch case with an unconditional break, return or panic"
		x--
		fallthrough
	case 2:
	}
}

func grouping(x int) {
	switch x {
	case 0:
		fallthrough
	case 1:
		x++
	}
}

func nested(x, y int) {
	switch x {
	case 0: // want "End this switch case with an unconditional break, return or panic"
		switch y {
		case 0: // want "End this switch case with an unconditional break, return or panic"
			y++
			fallthrough
		case 1:
			return
		}
		fallthrough
	case 1:
	}
}

func literal(x int) func() {
	return func() {
		switch x {
		case 0: // want "End this switch case with an unconditional break, return or panic"
			x++
			fallthrough
		default:
		}
	}
}

func noLintSwitch(x int) {
	switch x { //nolint:fallcheck
	case 0:
		x++
		fallthrough
	case 1:
	}
}

//nolint:fallcheck
func noLintFunc(x int) {
	switch x {
	case 0:
		x++
		fallthrough
	case 1:
	}
}
