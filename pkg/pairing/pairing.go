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

// Package pairing maps listed files to their numbered destination paths.
//
// The i-th file becomes {prefix}_{i}{ext} inside the destination directory.
// Nothing here touches the filesystem, and nothing checks whether a
// destination already exists: an existing file at a computed path is
// overwritten by the transfer.
package pairing

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// 🔗 Pair associates one source file with its computed destination
type Pair struct {
	Source      string
	Destination string
}

func (p Pair) String() string {
	return fmt.Sprintf("%q -> %q", p.Source, p.Destination)
}

// 🏭 Generate builds one pair per file, in input order
func Generate(files []string, destDir, prefix string) []Pair {
	pairs := make([]Pair, 0, len(files))
	for i, file := range files {
		pairs = append(pairs, Pair{
			Source:      file,
			Destination: filepath.Join(destDir, Name(prefix, i, file)),
		})
	}
	return pairs
}

// 📝 Name returns the destination base name for the file at index
func Name(prefix string, index int, file string) string {
	return prefix + "_" + strconv.Itoa(index) + Extension(file)
}

// 🔍 Extension returns the extension of path's base name including the dot,
// exactly as written. A leading dot alone does not start an extension, so
// ".bashrc" and "README" have none.
func Extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}
