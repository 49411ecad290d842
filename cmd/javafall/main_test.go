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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `class A {
  void f(int x) {
    switch (x) {
    case 0:
      a();
    case 1:
      b(); // continue
    case 2:
      break;
    }
  }
}
`

const terminated = `class B {
  int f(int x) {
    switch (x) {
    case 0:
      return 1;
    default:
      throw new IllegalArgumentException();
    }
  }
}
`

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o600))

	clean := filepath.Join(t.TempDir(), "B.java")
	require.NoError(t, os.WriteFile(clean, []byte(terminated), 0o600))

	settings := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(settings, []byte("pattern = \"(?i)continue\"\n"), 0o600))

	finding := func(line int) string {
		return fmt.Sprintf("%s:%d:5: End this switch case", path, line)
	}

	tests := [...]struct {
		name     string
		args     []string
		wantCode int
		wantOut  []string
		noOut    []string
	}{
		{
			name:     "Default",
			args:     []string{"-no-color", dir},
			wantCode: exitFindings,
			wantOut:  []string{finding(4), finding(6)},
		},
		{
			name:     "Jobs",
			args:     []string{"-no-color", "-j", "1", dir},
			wantCode: exitFindings,
			wantOut:  []string{finding(4), finding(6)},
		},
		{
			name:     "Pattern",
			args:     []string{"-no-color", "-pattern", "(?i)continue", path},
			wantCode: exitFindings,
			wantOut:  []string{finding(4), "\t" + path + ":6:5: falls through to this case"},
			noOut:    []string{finding(6)},
		},
		{
			name:     "Clean",
			args:     []string{"-no-color", clean},
			wantCode: exitClean,
		},
		{
			name:     "Config",
			args:     []string{"-no-color", "-config", settings, path},
			wantCode: exitFindings,
			wantOut:  []string{finding(4), "\t" + path + ":6:5: falls through to this case"},
			noOut:    []string{finding(6)},
		},
		{
			name:     "InvalidPattern",
			args:     []string{"-no-color", "-pattern", "(", path},
			wantCode: exitError,
			wantOut:  []string{"error: "},
		},
		{
			name:     "MissingConfig",
			args:     []string{"-no-color", "-config", filepath.Join(dir, "missing.yaml"), path},
			wantCode: exitError,
		},
		{
			name:     "UnknownFlag",
			args:     []string{"-unknown"},
			wantCode: exitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			code := run(t.Context(), tt.args, &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr.String())

			for _, want := range tt.wantOut {
				assert.Contains(t, stdout.String(), want)
			}

			for _, no := range tt.noOut {
				assert.NotContains(t, stdout.String(), no)
			}
		})
	}
}
