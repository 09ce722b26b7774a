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
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// DryRunMarker prefixes every line describing a simulated transfer.
const DryRunMarker = "[dry-run] "

// 🎯 TransferOperation describes one source -> destination transfer for display
type TransferOperation struct {
	Verb        string // move or copy
	Source      string // absolute source path
	Destination string // absolute destination path
	DryRun      bool   // nothing was touched on disk
	Err         error  // non-nil when the transfer failed
}

// 📝 String renders the operation the way it is reported, without outcome
func (op TransferOperation) String() string {
	marker := ""
	if op.DryRun {
		marker = DryRunMarker
	}
	return fmt.Sprintf("%s%s %q -> %q", marker, op.Verb, op.Source, op.Destination)
}

// 📝 FailureString renders the error-level line for a failed operation
func (op TransferOperation) FailureString() string {
	marker := ""
	if op.DryRun {
		marker = DryRunMarker
	}
	return fmt.Sprintf("%sfailed to %s %q -> %q: %v", marker, op.Verb, op.Source, op.Destination, op.Err)
}

// 🎯 Logger reports transfers: successes as a console line, failures as one
// zerolog error entry
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 📝 formatTransfer formats a successful or simulated transfer for display
func (l *Logger) formatTransfer(op TransferOperation) string {
	symbol, symbolColor := '✓', color.FgGreen
	if op.DryRun {
		symbol, symbolColor = '○', color.FgYellow
	}
	return fmt.Sprintf("%s %s", color.New(symbolColor).Sprint(string(symbol)), op.String())
}

// 📝 LogTransfer reports a transfer exactly once
func (l *Logger) LogTransfer(ctx context.Context, op TransferOperation) {
	if op.Err != nil {
		l.zlog.Error().
			Err(op.Err).
			Str("source", op.Source).
			Str("destination", op.Destination).
			Bool("dry_run", op.DryRun).
			Msg(op.FailureString())
		return
	}

	fmt.Fprintln(l.console, l.formatTransfer(op))
}
