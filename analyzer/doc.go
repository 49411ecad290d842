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

// Package analyzer implements the fallcheck static analysis pass.
//
// # Overview
//
// fallcheck reports switch cases that fall through to the next case without a
// comment marking the fall-through as intentional.
//
// Each switch statement containing a fallthrough is turned into a small
// control-flow graph. A case is reported when the next case can be reached
// from it without passing a return, a panic, a break out of the switch or a
// call that cannot return, like [os.Exit] or [log.Fatal].
//
// # Example
//
//	switch mode {
//	case read:
//	    open()
//	    fallthrough // reported
//	case write:
//	    sync()
//	}
//
// A comment matching "falls through" (or "fall thru", "fallthrough", ...) inside the case,
// or right before the next label, suppresses the diagnostic:
//
//	case read:
//	    open()
//	    fallthrough // falls through
//
// Cases consisting only of a fallthrough statement are not reported unless the
// -empty flag is set.
package analyzer
