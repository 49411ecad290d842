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
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher re-checks Java files when they change.
type Watcher struct {
	runner  *Runner
	watcher *fsnotify.Watcher
}

// NewWatcher creates a [Watcher] for the given files and directory trees.
// Excluded directories are not watched.
func (r *Runner) NewWatcher(paths []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "can't create watcher")
	}

	w := &Watcher{runner: r, watcher: fw}

	for _, path := range paths {
		if err := w.add(path); err != nil {
			_ = fw.Close()

			return nil, err
		}
	}

	return w, nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// add watches a file, or a directory tree recursively.
func (w *Watcher) add(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrapf(err, "can't access %s", root)
	}

	if !info.IsDir() {
		return errors.Wrapf(w.watcher.Add(root), "can't watch %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && w.runner.Excluded(d.Name()) {
			return filepath.SkipDir
		}

		return w.watcher.Add(path)
	})

	return errors.Wrapf(err, "can't watch %s", root)
}

// Run checks changed files and passes the results to handle until ctx is done.
func (w *Watcher) Run(ctx context.Context, handle func(path string, result Result)) error {
	logger := w.runner.logger

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			path, check := w.handleEvent(ctx, event)
			if !check {
				continue
			}

			result, err := w.runner.Run(ctx, []string{path})
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}

				return err
			}

			handle(path, result)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			logger.LogAttrs(ctx, slog.LevelWarn, "Watcher error", slog.Any("error", err))
		}
	}
}

// handleEvent updates the watch list and reports whether a file needs to be checked.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return "", false // removed again
	}

	if info.IsDir() {
		if event.Has(fsnotify.Create) && !w.runner.Excluded(info.Name()) {
			if err := w.add(event.Name); err != nil {
				w.runner.logger.LogAttrs(ctx, slog.LevelWarn, "Can't watch directory",
					slog.String("path", event.Name), slog.Any("error", err))
			}
		}

		return "", false
	}

	if filepath.Ext(event.Name) != Ext {
		return "", false
	}

	w.runner.logger.LogAttrs(ctx, slog.LevelInfo, "File changed", slog.String("path", event.Name))

	return event.Name, true
}
