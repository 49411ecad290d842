// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gocfg_test

import (
	"go/token"
	"go/types"
	"testing"

	. "fillmore-labs.com/fallcheck/internal/gocfg"
)

func TestFuncNameOf(t *testing.T) {
	t.Parallel()

	osPkg := types.NewPackage("os", "os")
	testingPkg := types.NewPackage("testing", "testing")

	common := types.NewNamed(types.NewTypeName(token.NoPos, testingPkg, "common", nil), types.NewStruct(nil, nil), nil)
	tAlias := types.NewAlias(types.NewTypeName(token.NoPos, testingPkg, "T", nil), types.NewPointer(common))
	anon := types.NewStruct(nil, nil)

	newFunc := func(pkg *types.Package, recv types.Type, name string) *types.Func {
		var param *types.Var
		if recv != nil {
			param = types.NewParam(token.NoPos, pkg, "", recv)
		}

		sig := types.NewSignatureType(param, nil, nil, nil, nil, false)

		return types.NewFunc(token.NoPos, pkg, name, sig)
	}

	tests := [...]struct {
		name string
		fun  *types.Func
		want FuncName
	}{
		{
			name: "Function",
			fun:  newFunc(osPkg, nil, "Exit"),
			want: FuncName{Path: "os", Name: "Exit"},
		},
		{
			name: "ValueReceiver",
			fun:  newFunc(testingPkg, common, "FailNow"),
			want: FuncName{Path: "testing", Receiver: "common", Name: "FailNow"},
		},
		{
			name: "PointerReceiver",
			fun:  newFunc(testingPkg, types.NewPointer(common), "FailNow"),
			want: FuncName{Path: "testing", Receiver: "common", Name: "FailNow"},
		},
		{
			name: "AliasReceiver",
			fun:  newFunc(testingPkg, tAlias, "SkipNow"),
			want: FuncName{Path: "testing", Receiver: "common", Name: "SkipNow"},
		},
		{
			name: "InterfaceMethod",
			fun: types.NewInterfaceType([]*types.Func{
				newFunc(testingPkg, nil, "Fatal"),
			}, nil).Complete().Method(0),
			want: FuncName{Receiver: "interface", Name: "Fatal"},
		},
		{
			name: "Universe",
			fun:  types.Universe.Lookup("error").Type().Underlying().(*types.Interface).Method(0),
			want: FuncName{Receiver: "error", Name: "Error"},
		},
		{
			name: "NoPackage",
			fun:  newFunc(nil, nil, "exit"),
			want: FuncName{Name: "exit"},
		},
		{
			name: "UnnamedReceiver",
			fun:  newFunc(osPkg, types.NewPointer(anon), "Exit"),
			want: FuncName{Receiver: "<invalid>", Name: "Exit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FuncNameOf(tt.fun); got != tt.want {
				t.Errorf("FuncNameOf() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFuncNameString(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		fn   FuncName
		want string
	}{
		{"Function", FuncName{Path: "log", Name: "Fatal"}, "log.Fatal"},
		{"Method", FuncName{Path: "log", Receiver: "Logger", Name: "Fatalf"}, "(log.Logger).Fatalf"},
		{"Universe", FuncName{Receiver: "error", Name: "Error"}, "(error).Error"},
		{"Builtin", FuncName{Name: "panic"}, "panic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.fn.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
