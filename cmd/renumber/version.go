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

package main

import (
	"runtime"
	"runtime/debug"
	"strings"
)

const versionTemplate = "{{.Name}} {{.Version}}\n"

// buildVersion identifies the running binary
type buildVersion struct {
	module   string
	revision string
	dirty    bool
	built    string
}

// readBuildVersion pulls the module version and vcs stamp out of the binary.
// Binaries built outside a module or from a plain checkout report "dev".
func readBuildVersion(info *debug.BuildInfo, ok bool) buildVersion {
	v := buildVersion{module: "dev"}
	if !ok || info == nil {
		return v
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		v.module = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			v.revision = s.Value
			if len(v.revision) > 12 {
				v.revision = v.revision[:12]
			}
		case "vcs.modified":
			v.dirty = s.Value == "true"
		case "vcs.time":
			v.built = s.Value
		}
	}
	return v
}

// String renders e.g. "v1.2.0 (3f2a9c1b7d44+dirty 2025-03-01T10:00:00Z, go1.23.5 linux/amd64)"
func (v buildVersion) String() string {
	var stamp []string
	if v.revision != "" {
		rev := v.revision
		if v.dirty {
			rev += "+dirty"
		}
		stamp = append(stamp, rev)
	}
	if v.built != "" {
		stamp = append(stamp, v.built)
	}

	platform := runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH
	if len(stamp) == 0 {
		return v.module + " (" + platform + ")"
	}
	return v.module + " (" + strings.Join(stamp, " ") + ", " + platform + ")"
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	return readBuildVersion(info, ok).String()
}
