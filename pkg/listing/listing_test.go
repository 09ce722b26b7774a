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

package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644), "writing %s should succeed", name)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string)
		opts        Options
		want        []string
		sorted      bool
		wantErr     bool
		errContains string
	}{
		{
			name: "only_regular_files",
			setup: func(t *testing.T, dir string) {
				writeFiles(t, dir, "a.jpg", "b.png", "README")
			},
			want: []string{"a.jpg", "b.png", "README"},
		},
		{
			name:  "empty_directory",
			setup: func(t *testing.T, dir string) {},
			want:  []string{},
		},
		{
			name: "skips_directories_and_symlinks",
			setup: func(t *testing.T, dir string) {
				writeFiles(t, dir, "a.jpg")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				writeFiles(t, filepath.Join(dir, "nested"), "deep.jpg")
				require.NoError(t, os.Symlink(filepath.Join(dir, "a.jpg"), filepath.Join(dir, "link.jpg")))
				require.NoError(t, os.Symlink(filepath.Join(dir, "nested"), filepath.Join(dir, "linkdir")))
			},
			want: []string{"a.jpg"},
		},
		{
			name: "ignore_patterns",
			setup: func(t *testing.T, dir string) {
				writeFiles(t, dir, "a.jpg", "b.tmp", ".DS_Store", "c.JPG")
			},
			opts: Options{Ignore: []string{"*.tmp", ".DS_Store"}},
			want: []string{"a.jpg", "c.JPG"},
		},
		{
			name: "sorted",
			setup: func(t *testing.T, dir string) {
				writeFiles(t, dir, "c", "a", "b")
			},
			opts:   Options{Sort: true},
			want:   []string{"a", "b", "c"},
			sorted: true,
		},
		{
			name:        "invalid_ignore_pattern",
			setup:       func(t *testing.T, dir string) {},
			opts:        Options{Ignore: []string{"[abc"}},
			wantErr:     true,
			errContains: "invalid ignore pattern",
		},
	}

	ctx := zerolog.Nop().WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			got, err := List(ctx, dir, tt.opts)
			if tt.wantErr {
				require.Error(t, err, "List should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}
			require.NoError(t, err, "List should succeed")

			want := make([]string, 0, len(tt.want))
			for _, name := range tt.want {
				want = append(want, filepath.Join(dir, name))
			}

			if tt.sorted {
				assert.Equal(t, want, got, "files should be in lexicographic order")
				return
			}
			assert.ElementsMatch(t, want, got, "listed files should match")
		})
	}
}

func TestListMissingDirectory(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())

	got, err := List(ctx, filepath.Join(t.TempDir(), "does-not-exist"), Options{})
	require.Error(t, err, "List should fail for a missing directory")
	assert.Contains(t, err.Error(), "opening source directory", "error should describe the failure")
	assert.Nil(t, got, "no partial listing should be returned")
}

func TestListNotADirectory(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	dir := t.TempDir()
	writeFiles(t, dir, "plain.txt")

	got, err := List(ctx, filepath.Join(dir, "plain.txt"), Options{})
	require.Error(t, err, "List should fail when the path is a file")
	assert.Contains(t, err.Error(), "reading source directory", "error should describe the failure")
	assert.Nil(t, got, "no partial listing should be returned")
}

// logEntries decodes the JSON lines written by a zerolog logger
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log entry should be JSON")
		entries = append(entries, entry)
	}
	return entries
}

func findEntry(entries []map[string]interface{}, message string) map[string]interface{} {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

func TestListLogsSkippedDirectory(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).Level(zerolog.DebugLevel).WithContext(context.Background())

	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	files, err := List(ctx, dir, Options{})
	require.NoError(t, err, "List should succeed")
	assert.Equal(t, []string{filepath.Join(dir, "a.jpg")}, files, "only the regular file should be listed")

	entry := findEntry(logEntries(t, &buf), "ignoring non-file entry")
	require.NotNil(t, entry, "skipped directory should be logged")
	assert.Equal(t, "debug", entry["level"], "skipped entries should be logged at debug")
	assert.Equal(t, filepath.Join(dir, "nested"), entry["path"], "path should be recorded")
}

func TestListLogsUnreadableMetadata(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).Level(zerolog.DebugLevel).WithContext(context.Background())

	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "b.jpg")

	original := entryInfo
	t.Cleanup(func() { entryInfo = original })
	entryInfo = func(entry fs.DirEntry) (fs.FileInfo, error) {
		if entry.Name() == "b.jpg" {
			return nil, fs.ErrPermission
		}
		return original(entry)
	}

	files, err := List(ctx, dir, Options{})
	require.NoError(t, err, "metadata failures should not fail the listing")
	assert.Equal(t, []string{filepath.Join(dir, "a.jpg")}, files, "entry without metadata should be skipped")

	entry := findEntry(logEntries(t, &buf), "failed to get file type for entry")
	require.NotNil(t, entry, "metadata failure should be logged")
	assert.Equal(t, "warn", entry["level"], "metadata failures should be logged at warn")
	assert.Equal(t, filepath.Join(dir, "b.jpg"), entry["path"], "path should be recorded")
	assert.Equal(t, fs.ErrPermission.Error(), entry["error"], "cause should be recorded")
}
