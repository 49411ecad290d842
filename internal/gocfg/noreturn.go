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

package gocfg

import (
	"go/ast"
	"go/types"
)

// _noReturnFuncs are functions that end the goroutine or the process.
var _noReturnFuncs = map[FuncName]struct{}{
	{Path: "log", Name: "Fatal"}:   {},
	{Path: "log", Name: "Fatalf"}:  {},
	{Path: "log", Name: "Fatalln"}: {},
	{Path: "log", Name: "Panic"}:   {},
	{Path: "log", Name: "Panicf"}:  {},
	{Path: "log", Name: "Panicln"}: {},

	{Path: "log", Receiver: "Logger", Name: "Fatal"}:   {},
	{Path: "log", Receiver: "Logger", Name: "Fatalf"}:  {},
	{Path: "log", Receiver: "Logger", Name: "Fatalln"}: {},
	{Path: "log", Receiver: "Logger", Name: "Panic"}:   {},
	{Path: "log", Receiver: "Logger", Name: "Panicf"}:  {},
	{Path: "log", Receiver: "Logger", Name: "Panicln"}: {},

	{Path: "os", Name: "Exit"}:        {},
	{Path: "syscall", Name: "Exit"}:   {},
	{Path: "runtime", Name: "Goexit"}: {},

	{Path: "testing", Receiver: "common", Name: "Fatal"}:   {},
	{Path: "testing", Receiver: "common", Name: "Fatalf"}:  {},
	{Path: "testing", Receiver: "common", Name: "FailNow"}: {},
	{Path: "testing", Receiver: "common", Name: "Skip"}:    {},
	{Path: "testing", Receiver: "common", Name: "Skipf"}:   {},
	{Path: "testing", Receiver: "common", Name: "SkipNow"}: {},

	{Path: "testing", Receiver: "TB", Name: "Fatal"}:   {},
	{Path: "testing", Receiver: "TB", Name: "Fatalf"}:  {},
	{Path: "testing", Receiver: "TB", Name: "FailNow"}: {},
	{Path: "testing", Receiver: "TB", Name: "Skip"}:    {},
	{Path: "testing", Receiver: "TB", Name: "Skipf"}:   {},
	{Path: "testing", Receiver: "TB", Name: "SkipNow"}: {},

	{Path: "github.com/sirupsen/logrus", Name: "Exit"}:                     {},
	{Path: "github.com/sirupsen/logrus", Name: "Fatal"}:                    {},
	{Path: "github.com/sirupsen/logrus", Name: "Fatalf"}:                   {},
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Exit"}: {},
	{Path: "go.uber.org/zap", Receiver: "Logger", Name: "Fatal"}:           {},
	{Path: "go.uber.org/zap", Receiver: "Logger", Name: "Panic"}:           {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatal"}:    {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalf"}:   {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalw"}:   {},
	{Path: "k8s.io/klog/v2", Name: "Exit"}:                                 {},
	{Path: "k8s.io/klog/v2", Name: "Exitf"}:                                {},
	{Path: "k8s.io/klog/v2", Name: "Fatal"}:                                {},
	{Path: "k8s.io/klog/v2", Name: "Fatalf"}:                               {},
}

var builtinPanic = types.Universe.Lookup("panic").(*types.Builtin)

// NoReturn recognizes calls that never return to the caller.
type NoReturn struct {
	info *types.Info
}

// NewNoReturn creates a [NoReturn] using the type information of the current package.
// Without type information no call is recognized.
func NewNoReturn(info *types.Info) NoReturn {
	return NoReturn{info: info}
}

// Call reports whether the call expression is known to never return.
func (r NoReturn) Call(call *ast.CallExpr) bool {
	if r.info == nil {
		return false
	}

	fun := ast.Unparen(call.Fun)

	for {
		switch e := fun.(type) {
		case *ast.IndexExpr: // myFunc[T]
			fun = ast.Unparen(e.X)
			continue

		case *ast.IndexListExpr: // myFunc[T, U]
			fun = ast.Unparen(e.X)
			continue

		case *ast.Ident:
			return r.ident(e)

		case *ast.SelectorExpr:
			return r.ident(e.Sel)

		default: // Function values, conversions
			return false
		}
	}
}

func (r NoReturn) ident(id *ast.Ident) bool {
	switch use := r.info.Uses[id].(type) {
	case *types.Func:
		_, ok := _noReturnFuncs[FuncNameOf(use)]

		return ok

	case *types.Builtin:
		return use == builtinPanic

	default:
		return false
	}
}
