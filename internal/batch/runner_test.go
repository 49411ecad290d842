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

package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/fallcheck/internal/batch"
	"fillmore-labs.com/fallcheck/internal/java"
)

const falling = `class A {
  void f(int x) {
    switch (x) {
    case 0:
      a();
    case 1:
      b();
    }
  }
}
`

const clean = `class B {
  void f(int x) {
    switch (x) {
    case 0:
      a();
      break;
    default:
    }
  }
}
`

func write(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestRunner(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write(t, filepath.Join(dir, "src", "A.java"), falling)
	write(t, filepath.Join(dir, "src", "B.java"), clean)
	write(t, filepath.Join(dir, "src", "Broken.java"), "class {")
	write(t, filepath.Join(dir, "src", "README.md"), "case 0:")
	write(t, filepath.Join(dir, "build", "C.java"), falling)

	r := New(nil, WithExclude("build"), WithJobs(2))

	files, err := r.Files([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "src", "A.java"),
		filepath.Join(dir, "src", "B.java"),
		filepath.Join(dir, "src", "Broken.java"),
	}, files)

	result, err := r.Run(t.Context(), files)
	require.NoError(t, err)

	require.Len(t, result.Findings, 1)

	f := result.Findings[0]
	assert.Equal(t, filepath.Join(dir, "src", "A.java"), f.Pos.Filename)
	assert.Equal(t, 4, f.Pos.Line)
	assert.Equal(t, 6, f.Next.Line)
	assert.Equal(t, java.Message, f.Message)

	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], java.ErrSyntax)
	assert.Equal(t, filepath.Join(dir, "src", "Broken.java"), result.Errors[0].Path)
}

func TestRunnerErrorOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var files []string
	for _, name := range []string{"D.java", "B.java", "C.java", "A.java"} {
		path := filepath.Join(dir, name)
		write(t, path, "class {")
		files = append(files, path)
	}

	result, err := New(nil, WithJobs(4)).Run(t.Context(), files)
	require.NoError(t, err)

	paths := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		assert.ErrorIs(t, e, java.ErrSyntax)
		paths = append(paths, e.Path)
	}

	assert.Equal(t, []string{
		filepath.Join(dir, "A.java"),
		filepath.Join(dir, "B.java"),
		filepath.Join(dir, "C.java"),
		filepath.Join(dir, "D.java"),
	}, paths)
}

func TestRunnerMissingFile(t *testing.T) {
	t.Parallel()

	r := New(nil)

	_, err := r.Files([]string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)

	result, err := r.Run(t.Context(), []string{filepath.Join(t.TempDir(), "Missing.java")})
	require.NoError(t, err)
	assert.Len(t, result.Errors, 1)
	assert.Empty(t, result.Findings)
}

func TestRunnerCanceled(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "A.java")
	write(t, path, falling)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := New(nil).Run(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatcher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	r := New(nil)

	w, err := r.NewWatcher([]string{dir})
	require.NoError(t, err)

	defer func() { assert.NoError(t, w.Close()) }()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	type change struct {
		path   string
		result Result
	}

	changes := make(chan change, 10)
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx, func(path string, result Result) { changes <- change{path, result} })
	}()

	path := filepath.Join(dir, "A.java")
	write(t, path, falling)

	timeout := time.After(10 * time.Second)

	for {
		select {
		case c := <-changes:
			if len(c.result.Findings) == 0 {
				continue // partially written
			}

			assert.Equal(t, path, c.path)
			assert.Equal(t, 4, c.result.Findings[0].Pos.Line)

			cancel()
			require.NoError(t, <-done)

			return

		case <-timeout:
			t.Fatal("Timeout waiting for file change")
		}
	}
}
