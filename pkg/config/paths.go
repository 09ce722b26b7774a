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

package config

import (
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrNoPrefix is returned when no prefix was given and none can be derived
var ErrNoPrefix = errors.Base("cannot determine prefix from source path, supply one with --prefix")

// 📂 ResolveDir returns path as an absolute path with every symlink resolved.
// The path must exist.
func ResolveDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Errorf("making %q absolute: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Errorf("resolving %q: %w", path, err)
	}
	return resolved, nil
}

// 🏷️ DerivePrefix returns *override when it is non-nil, empty included.
// Otherwise the prefix is the last element of the source argument as the user
// typed it, after lexical cleaning. Symlinks are not followed, so a link named
// rome yields rome. Arguments such as ".", ".." or "/" have no usable last
// element and yield ErrNoPrefix.
func DerivePrefix(override *string, sourceArg string) (string, error) {
	if override != nil {
		if strings.ContainsRune(*override, filepath.Separator) {
			return "", errors.Errorf("prefix %q must not contain a path separator", *override)
		}
		return *override, nil
	}

	base := filepath.Base(filepath.Clean(sourceArg))
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", errors.WithDetails(ErrNoPrefix, "source", sourceArg)
	}
	return base, nil
}
