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

package empty

func grouping(x int) {
	switch x {
	case 0: // want "End this switch case with an unconditional break, return or panic"
		fallthrough
	case 1, 2: // want "End this switch case with an unconditional break, return or panic"
		fallthrough
	case 3:
		x++
	}
}

func marked(x int) {
	switch x {
	case 0: // falls through
		fallthrough
	case 1:
	}
}
