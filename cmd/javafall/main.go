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

// Command javafall reports Java switch case groups falling through to the next group.
//
// Usage:
//
//	javafall [flags] [path ...]
//
// Paths are Java files or directories searched recursively, the current
// directory by default. Settings are read from a .javafall.yaml, .javafall.yml
// or .javafall.toml file in the current directory or one of its parents,
// unless -config names one.
//
// The exit status is 0 without findings, 1 with findings and 2 on errors.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"fillmore-labs.com/fallcheck/internal/batch"
	"fillmore-labs.com/fallcheck/internal/config"
	"fillmore-labs.com/fallcheck/internal/report"
)

const (
	exitClean    = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

type flags struct {
	config  string
	pattern string
	watch   bool
	noColor bool
	verbose bool
	jobs    int
}

func parseFlags(args []string, stderr io.Writer) (flags, []string, error) {
	var f flags

	fs := flag.NewFlagSet("javafall", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.config, "config", "", "settings file (default: search .javafall.{yaml,yml,toml})")
	fs.StringVar(&f.pattern, "pattern", "", "regular expression matching comments that mark an intentional fall-through")
	fs.BoolVar(&f.watch, "watch", false, "re-check files when they change")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&f.verbose, "v", false, "log progress")
	fs.IntVar(&f.jobs, "j", 0, "number of files checked concurrently (default GOMAXPROCS)")

	if err := fs.Parse(args); err != nil {
		return flags{}, nil, err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	return f, paths, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, paths, err := parseFlags(args, stderr)
	if err != nil {
		return exitError
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	printer := report.NewPrinter(stdout, f.noColor)

	settings, err := loadSettings(f.config)
	if err != nil {
		_ = printer.Error(err)

		return exitError
	}

	if f.pattern != "" {
		settings.Pattern = f.pattern
	}

	pattern, err := config.CompilePattern(settings.Pattern)
	if err != nil {
		_ = printer.Error(err)

		return exitError
	}

	r := batch.New(pattern,
		batch.WithExclude(settings.Exclude...),
		batch.WithJobs(f.jobs),
		batch.WithLogger(logger))

	files, err := r.Files(paths)
	if err != nil {
		_ = printer.Error(err)

		return exitError
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Checking files", slog.Int("files", len(files)))

	result, err := r.Run(ctx, files)
	if err != nil {
		_ = printer.Error(err)

		return exitError
	}

	code := print(printer, result)

	if !f.watch {
		return code
	}

	return watch(ctx, r, paths, printer)
}

func watch(ctx context.Context, r *batch.Runner, paths []string, printer *report.Printer) int {
	w, err := r.NewWatcher(paths)
	if err != nil {
		_ = printer.Error(err)

		return exitError
	}

	defer func() { _ = w.Close() }()

	code := exitClean

	err = w.Run(ctx, func(_ string, result batch.Result) {
		code = print(printer, result)
	})
	if err != nil {
		_ = printer.Error(err)

		return exitError
	}

	return code
}

// print writes the findings and errors of a run and returns the exit status.
func print(printer *report.Printer, result batch.Result) int {
	for _, err := range result.Errors {
		_ = printer.Error(err)
	}

	for _, f := range result.Findings {
		_ = printer.Print(f)
	}

	switch {
	case len(result.Errors) > 0:
		return exitError

	case len(result.Findings) > 0:
		return exitFindings

	default:
		return exitClean
	}
}

// loadSettings reads the named settings file, or searches one from the current directory.
func loadSettings(path string) (config.File, error) {
	if path == "" {
		found, err := config.FindFile(".")
		if err != nil || found == "" {
			return config.File{}, err
		}

		path = found
	}

	return config.LoadFile(path)
}
