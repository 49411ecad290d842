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

package config

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File holds the settings of the Java checker, read from a settings file.
type File struct {
	// Pattern overrides the comment pattern marking an intentional fall-through.
	Pattern string `toml:"pattern" yaml:"pattern"`

	// Exclude lists directory names skipped while walking source trees.
	Exclude []string `toml:"exclude" yaml:"exclude"`
}

// FileNames are the settings file names searched by [FindFile], in order of preference.
var FileNames = [...]string{".javafall.yaml", ".javafall.yml", ".javafall.toml"}

// ErrUnknownFormat is returned for settings files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown settings file format")

// FindFile searches dir and its parent directories for a settings file.
// It returns an empty path when there is none.
func FindFile(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "can't resolve %s", dir)
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)

			switch _, err := os.Stat(path); {
			case err == nil:
				return path, nil

			case !errors.Is(err, fs.ErrNotExist):
				return "", errors.Wrapf(err, "can't access %s", path)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}

		dir = parent
	}
}

// LoadFile reads the settings file at path, choosing the format by extension.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "settings file %s could not be read", path)
	}

	var f File

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		f, err = ParseYAML(data)

	case ".toml":
		f, err = ParseTOML(data)

	default:
		return File{}, errors.Wrapf(ErrUnknownFormat, "%s", path)
	}

	if err != nil {
		return File{}, errors.Wrapf(err, "could not parse settings file %s", path)
	}

	return f, nil
}

// ParseYAML decodes YAML settings, rejecting unknown fields.
func ParseYAML(data []byte) (File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}

	return f, nil
}

// ParseTOML decodes TOML settings, rejecting unknown fields.
func ParseTOML(data []byte) (File, error) {
	var f File

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&f); err != nil {
		return File{}, err
	}

	return f, nil
}

// CompilePattern compiles a comment pattern. An empty pattern returns nil,
// selecting the default.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid comment pattern %q", pattern)
	}

	return re, nil
}
