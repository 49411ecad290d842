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

// Package gocfg builds the control-flow graph of a single Go switch statement.
//
// The graph has a synthetic entry block that branches to every case body.
// Case bodies are marked with their [ast.CaseClause]. A fallthrough
// statement links to the next case body, while break, return, goto and
// continue out of the switch, as well as calls that cannot return, end the
// path.
package gocfg
