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

// Package casegroup finds switch case groups that fall through into the next
// case group without an unconditional terminating statement.
//
// The analysis works on an already constructed control-flow graph of a single
// switch statement:
//
//  1. [NewIndex] maps the successors of the switch's entry block to the case
//     groups they enter.
//  2. [Violations] walks predecessors backwards from every case group entry and
//     yields the nearest case groups reaching it without passing another case
//     group entry.
//  3. [Intentional] inspects comments between a case group and its successor
//     for a "falls through" marker.
//
// [Check] combines these steps and returns the findings in source order.
package casegroup
