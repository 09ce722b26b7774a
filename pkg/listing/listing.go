// Copyright 2025 walteh LLC
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

// Package listing finds the regular files directly inside a directory.
package listing

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// entryInfo reads an entry's metadata without following symlinks
var entryInfo = func(entry fs.DirEntry) (fs.FileInfo, error) {
	return entry.Info()
}

// 🔧 Options tunes a listing
type Options struct {
	// Ignore holds doublestar patterns matched against each entry's base name
	Ignore []string
	// Sort orders the result lexicographically instead of directory order
	Sort bool
}

// 🔍 Validate checks that every ignore pattern is well formed
func (o Options) Validate() error {
	for _, pattern := range o.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}
	return nil
}

// 📋 List returns the paths of the regular files directly inside dir.
//
// Entries come back in the order the directory read yields them unless
// opts.Sort is set. Anything that is not a regular file is skipped, as is any
// entry whose metadata cannot be read. Failing to open or read dir itself is
// the only error.
func List(ctx context.Context, dir string, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("dir", dir).Msg("listing source directory")

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, errors.Errorf("opening source directory: %w", err)
	}
	defer f.Close()

	// os.ReadDir sorts by name; reading through the handle keeps directory order
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, errors.Errorf("reading source directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := entryInfo(entry)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("failed to get file type for entry")
			continue
		}

		if !info.Mode().IsRegular() {
			logger.Debug().Str("path", path).Str("mode", info.Mode().String()).Msg("ignoring non-file entry")
			continue
		}

		if pattern, ok := matchIgnore(opts.Ignore, entry.Name()); ok {
			logger.Debug().Str("path", path).Str("pattern", pattern).Msg("file ignored by pattern")
			continue
		}

		files = append(files, path)
	}

	if opts.Sort {
		sort.Strings(files)
	}

	logger.Debug().Int("files", len(files)).Msg("listed source directory")
	return files, nil
}

// 🔍 matchIgnore reports the first pattern matching name
func matchIgnore(patterns []string, name string) (string, bool) {
	for _, pattern := range patterns {
		// patterns are validated up front, so Match cannot fail here
		if matched, _ := doublestar.Match(pattern, name); matched {
			return pattern, true
		}
	}
	return "", false
}
