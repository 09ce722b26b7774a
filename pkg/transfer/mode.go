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

import "gitlab.com/tozd/go/errors"

// ErrUnknownMode is returned when an Executor is configured with an undefined Mode
var ErrUnknownMode = errors.Base("unknown transfer mode")

// 🎨 Mode selects what happens to each pair
type Mode int

const (
	// Move renames the source onto the destination
	Move Mode = iota
	// Copy duplicates the source content at the destination
	Copy
	// Simulate touches nothing and reports what would happen
	Simulate
)

func (m Mode) String() string {
	switch m {
	case Move:
		return "move"
	case Copy:
		return "copy"
	case Simulate:
		return "simulate"
	default:
		return "unknown"
	}
}

// 🔧 Options configures an Executor
type Options struct {
	// Mode is applied to every pair of the batch
	Mode Mode
	// Rehearse is the mode a Simulate run describes; ignored otherwise
	Rehearse Mode
	// Verbose reports successful transfers at normal visibility
	Verbose bool
}

// 🏭 SelectOptions maps the command line switches onto Options
func SelectOptions(copyFiles, dryRun, verbose bool) Options {
	action := Move
	if copyFiles {
		action = Copy
	}
	opts := Options{Mode: action, Rehearse: action, Verbose: verbose}
	if dryRun {
		opts.Mode = Simulate
	}
	return opts
}

// verb names the filesystem action being performed or rehearsed
func (o Options) verb() string {
	if o.Mode == Simulate {
		if o.Rehearse == Copy {
			return Copy.String()
		}
		return Move.String()
	}
	return o.Mode.String()
}
