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

// Package java finds Java switch case groups falling through to the next group.
//
// Sources are parsed with tree-sitter. For every switch statement or
// expression using colon-style case groups a control-flow graph of the switch
// is built, where the end of each group body flows into the next group body.
// break, return, throw, yield and continue leave the switch.
package java
