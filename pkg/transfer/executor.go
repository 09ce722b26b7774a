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

package transfer

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/renumber/pkg/log"
	"github.com/walteh/renumber/pkg/pairing"
	"gitlab.com/tozd/go/errors"
)

// 📢 Reporter receives the visible report line for a pair
type Reporter interface {
	LogTransfer(ctx context.Context, op log.TransferOperation)
}

// 🚦 State tracks a pair through the executor
type State int

const (
	Pending State = iota
	Attempted
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Attempted:
		return "attempted"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Result is the outcome of one pair
type Result struct {
	Pair  pairing.Pair
	State State
	Err   error
}

// 📊 Summary collects the results of a batch in pair order
type Summary struct {
	Results []Result
}

// Succeeded counts the pairs that completed
func (s *Summary) Succeeded() int {
	return s.count(Succeeded)
}

// Failed counts the pairs that did not complete
func (s *Summary) Failed() int {
	return s.count(Failed)
}

func (s *Summary) count(state State) int {
	n := 0
	for _, r := range s.Results {
		if r.State == state {
			n++
		}
	}
	return n
}

// 🏃 Executor applies one mode to a sequence of pairs
type Executor struct {
	opts     Options
	reporter Reporter
}

// 🏗️ NewExecutor creates a new executor
func NewExecutor(opts Options, reporter Reporter) (*Executor, error) {
	if reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	switch opts.Mode {
	case Move, Copy, Simulate:
	default:
		return nil, errors.WithDetails(ErrUnknownMode, "mode", int(opts.Mode))
	}
	return &Executor{opts: opts, reporter: reporter}, nil
}

// 🏃 Execute transfers every pair in order. A failed pair is reported once
// and the batch moves on; nothing is retried or rolled back.
func (e *Executor) Execute(ctx context.Context, pairs []pairing.Pair) *Summary {
	logger := zerolog.Ctx(ctx)
	summary := &Summary{Results: make([]Result, 0, len(pairs))}

	for _, pair := range pairs {
		result := Result{Pair: pair, State: Pending}

		op := log.TransferOperation{
			Verb:        e.opts.verb(),
			Source:      pair.Source,
			Destination: pair.Destination,
			DryRun:      e.opts.Mode == Simulate,
		}

		result.State = Attempted
		logger.Trace().Str("pair", pair.String()).Str("mode", e.opts.Mode.String()).Msg("attempting transfer")

		if err := e.apply(pair); err != nil {
			result.State = Failed
			result.Err = err
			op.Err = err
			e.reporter.LogTransfer(ctx, op)
		} else {
			result.State = Succeeded
			if e.opts.Verbose {
				e.reporter.LogTransfer(ctx, op)
			} else {
				logger.Debug().Msg(op.String())
			}
		}

		summary.Results = append(summary.Results, result)
	}

	return summary
}

// apply performs the filesystem side of a single pair
func (e *Executor) apply(pair pairing.Pair) error {
	switch e.opts.Mode {
	case Move:
		if err := os.Rename(pair.Source, pair.Destination); err != nil {
			return errors.Errorf("renaming: %w", err)
		}
		return nil
	case Copy:
		return copyFile(pair.Source, pair.Destination)
	case Simulate:
		return nil
	default:
		return errors.WithDetails(ErrUnknownMode, "mode", int(e.opts.Mode))
	}
}

// 📥 copyFile writes src's content to dst, truncating dst if it exists,
// and carries over src's permission bits
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Errorf("reading source metadata: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Errorf("closing destination: %w", cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Errorf("copying content: %w", err)
	}

	// O_CREATE only applies the mode to new files, and it is masked by umask
	if err := out.Chmod(info.Mode().Perm()); err != nil {
		return errors.Errorf("setting destination permissions: %w", err)
	}

	return nil
}
