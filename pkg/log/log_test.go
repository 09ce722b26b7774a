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

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		op          TransferOperation
		wantConsole string
		wantLevel   string
		wantMessage string
	}{
		{
			name: "move_goes_to_console",
			op: TransferOperation{
				Verb:        "move",
				Source:      "/src/a.jpg",
				Destination: "/dst/trip_0.jpg",
			},
			wantConsole: `✓ move "/src/a.jpg" -> "/dst/trip_0.jpg"`,
		},
		{
			name: "dry_run_copy_goes_to_console",
			op: TransferOperation{
				Verb:        "copy",
				Source:      "/src/a.jpg",
				Destination: "/dst/trip_0.jpg",
				DryRun:      true,
			},
			wantConsole: `○ [dry-run] copy "/src/a.jpg" -> "/dst/trip_0.jpg"`,
		},
		{
			name: "failure_is_one_error_entry",
			op: TransferOperation{
				Verb:        "move",
				Source:      "/src/a.jpg",
				Destination: "/dst/trip_0.jpg",
				Err:         errors.New("permission denied"),
			},
			wantLevel:   "error",
			wantMessage: `failed to move "/src/a.jpg" -> "/dst/trip_0.jpg": permission denied`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := &bytes.Buffer{}
			zbuf := &bytes.Buffer{}
			logger := New(console, zerolog.New(zbuf))

			logger.LogTransfer(context.Background(), tt.op)

			if tt.wantConsole != "" {
				assert.Equal(t, tt.wantConsole, strings.TrimSpace(console.String()), "console line should match")
				assert.Empty(t, zbuf.String(), "successes should not be mirrored to zerolog")
				return
			}

			assert.Empty(t, console.String(), "failures should not be printed to the console")
			lines := strings.Split(strings.TrimSpace(zbuf.String()), "\n")
			require.Len(t, lines, 1, "failure should be logged exactly once")

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry), "log entry should be JSON")
			assert.Equal(t, tt.wantLevel, entry["level"], "level should match")
			assert.Equal(t, tt.wantMessage, entry["message"], "message should match")
			assert.Equal(t, tt.op.Source, entry["source"], "source should be recorded")
			assert.Equal(t, tt.op.Destination, entry["destination"], "destination should be recorded")
		})
	}
}

func TestUserLogger(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	tests := []struct {
		name     string
		op       func(u *UserLogger)
		contains []string
	}{
		{
			name: "run_start",
			op: func(u *UserLogger) {
				u.LogRunStart(RunInfo{Source: "/src/trip", Destination: "/dst", Prefix: "trip", Mode: "move", Files: 3})
			},
			contains: []string{"move 3 files from /src/trip to /dst as trip_N"},
		},
		{
			name: "summary_clean",
			op: func(u *UserLogger) {
				u.LogSummary(3, 0, false)
			},
			contains: []string{"3 succeeded, 0 failed"},
		},
		{
			name: "summary_dry_run_with_failures",
			op: func(u *UserLogger) {
				u.LogSummary(2, 1, true)
			},
			contains: []string{"[dry-run] 2 succeeded, 1 failed"},
		},
		{
			name: "validation_error",
			op: func(u *UserLogger) {
				u.LogValidation(false, "Command failed", errors.New("boom"))
			},
			contains: []string{"Command failed", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			ctx := zerolog.Nop().WithContext(context.Background())
			u := NewUserLoggerTo(ctx, buf)

			tt.op(u)

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want, "output should contain %q", want)
			}
		})
	}
}

func TestUserLoggerValidationPrintsOnce(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out := &bytes.Buffer{}
	zbuf := &bytes.Buffer{}
	ctx := zerolog.New(zbuf).Level(zerolog.InfoLevel).WithContext(context.Background())

	NewUserLoggerTo(ctx, out).LogValidation(false, "Command failed", errors.New("boom"))

	assert.Contains(t, out.String(), "boom", "the error should be printed for the user")
	assert.Empty(t, zbuf.String(), "the error should not be repeated by zerolog outside debug")
}
