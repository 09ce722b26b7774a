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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/renumber/pkg/listing"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config holds the settings a file can provide; flags override them
type Config struct {
	Prefix  string   `json:"prefix,omitempty" yaml:"prefix,omitempty" hcl:"prefix,optional"`
	Copy    bool     `json:"copy,omitempty" yaml:"copy,omitempty" hcl:"copy,optional"`
	Verbose bool     `json:"verbose,omitempty" yaml:"verbose,omitempty" hcl:"verbose,optional"`
	DryRun  bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Sort    bool     `json:"sort,omitempty" yaml:"sort,omitempty" hcl:"sort,optional"`
	Ignore  []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(strings.ToLower(filepath.Base(path)))
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if strings.ContainsRune(cfg.Prefix, filepath.Separator) {
		return errors.Errorf("prefix %q must not contain a path separator", cfg.Prefix)
	}
	return cfg.ListingOptions().Validate()
}

// 📋 ListingOptions returns the lister settings carried by the config
func (cfg *Config) ListingOptions() listing.Options {
	return listing.Options{
		Ignore: cfg.Ignore,
		Sort:   cfg.Sort,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("prefix=%q copy=%t verbose=%t dry_run=%t sort=%t ignore=%v",
		cfg.Prefix, cfg.Copy, cfg.Verbose, cfg.DryRun, cfg.Sort, cfg.Ignore)
}
