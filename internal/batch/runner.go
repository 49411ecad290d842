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

package batch

import (
	"cmp"
	"context"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/fallcheck/internal/java"
	"fillmore-labs.com/fallcheck/internal/report"
)

// Ext is the extension of Java source files.
const Ext = ".java"

// Runner checks Java source files.
type Runner struct {
	checker *java.Checker
	exclude []string
	jobs    int
	logger  *slog.Logger
}

// Option configures a [Runner].
type Option func(r *Runner)

// WithExclude skips directories with one of the given names.
func WithExclude(names ...string) Option {
	return func(r *Runner) { r.exclude = append(r.exclude, names...) }
}

// WithJobs limits the number of files checked concurrently. Non-positive values use GOMAXPROCS.
func WithJobs(jobs int) Option {
	return func(r *Runner) { r.jobs = jobs }
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// New creates a [Runner]. A nil pattern selects the default comment pattern.
func New(pattern *regexp.Regexp, opts ...Option) *Runner {
	r := &Runner{
		checker: java.NewChecker(pattern),
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.jobs <= 0 {
		r.jobs = runtime.GOMAXPROCS(0)
	}

	return r
}

// Result holds the findings of a run, and the files that could not be checked.
type Result struct {
	Findings []report.Finding
	Errors   []*FileError
}

// FileError is an error reading or parsing a single file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// Compare orders errors by file path.
func (e *FileError) Compare(o *FileError) int { return cmp.Compare(e.Path, o.Path) }

// Excluded reports whether a directory name is excluded.
func (r *Runner) Excluded(name string) bool {
	return slices.Contains(r.exclude, name)
}

// Files returns the Java files named by paths, walking directories recursively.
// Files named explicitly are included regardless of their extension.
func (r *Runner) Files(paths []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "can't access %s", root)
		}

		if !info.IsDir() {
			files = append(files, root)

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && r.Excluded(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) == Ext {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "can't walk %s", root)
		}
	}

	return files, nil
}

// Run checks all files concurrently. Files that can't be read or parsed are
// recorded in [Result.Errors], the other files are still checked.
func (r *Runner) Run(ctx context.Context, files []string) (Result, error) {
	fset := token.NewFileSet()

	var (
		mu     sync.Mutex
		result Result
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			findings, err := r.checkFile(ctx, fset, path)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.Errors = append(result.Errors, &FileError{Path: path, Err: err})

				return nil
			}

			result.Findings = append(result.Findings, findings...)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	slices.SortStableFunc(result.Findings, report.Finding.Compare)
	slices.SortStableFunc(result.Errors, (*FileError).Compare)

	return result, nil
}

func (r *Runner) checkFile(ctx context.Context, fset *token.FileSet, path string) ([]report.Finding, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read %s", path)
	}

	p := java.NewParser(fset)
	defer p.Close()

	src, err := p.Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}

	defer src.Close()

	findings := r.checker.Check(ctx, src)

	r.logger.LogAttrs(ctx, slog.LevelDebug, "Checked file",
		slog.String("path", path), slog.Int("findings", len(findings)))

	return findings, nil
}
