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

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides run-level feedback: what is about to happen and how it
// went. The pterm line is the user-facing copy; zerolog only gets a debug trace.
type UserLogger struct {
	log zerolog.Logger
	out io.Writer
}

// 🎯 NewUserLoggerTo creates a user logger writing to out
func NewUserLoggerTo(ctx context.Context, out io.Writer) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
		out: out,
	}
}

// 📦 RunInfo describes a batch before it starts
type RunInfo struct {
	Source      string
	Destination string
	Prefix      string
	Mode        string
	Files       int
}

// 📦 LogRunStart announces the batch
func (u *UserLogger) LogRunStart(info RunInfo) {
	msg := fmt.Sprintf("%s %d files from %s to %s as %s_N", info.Mode, info.Files, info.Source, info.Destination, info.Prefix)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).WithWriter(u.out).Println(msg)
	u.log.Debug().
		Str("source", info.Source).
		Str("destination", info.Destination).
		Str("prefix", info.Prefix).
		Str("mode", info.Mode).
		Int("files", info.Files).
		Msg("starting batch")
}

// 📊 LogSummary reports the outcome of a finished batch
func (u *UserLogger) LogSummary(succeeded, failed int, dryRun bool) {
	marker := ""
	if dryRun {
		marker = DryRunMarker
	}
	msg := fmt.Sprintf("%s%d succeeded, %d failed", marker, succeeded, failed)
	if failed > 0 {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(u.out).Println(msg)
		u.log.Debug().Int("succeeded", succeeded).Int("failed", failed).Bool("dry_run", dryRun).Msg("batch finished with failures")
		return
	}
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(u.out).Println(msg)
	u.log.Debug().Int("succeeded", succeeded).Bool("dry_run", dryRun).Msg("batch finished")
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(u.out).Println(description)
		u.log.Debug().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(u.out).Println(description)
		pterm.Error.WithWriter(u.out).Println(err)
		u.log.Debug().Err(err).Msg(description)
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(u.out).Println(description)
	u.log.Debug().Msg(description)
}
