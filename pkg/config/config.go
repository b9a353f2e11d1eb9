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

// Package config loads and validates .patchrc configuration files
package config

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*PatchrcConfig, error)

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

// 🔄 ChangeDefinition declares one literal-text edit in a config file
type ChangeDefinition struct {
	ID          string   `json:"id" yaml:"id" hcl:"id,label"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" hcl:"description,optional"`
	Anchor      string   `json:"anchor" yaml:"anchor" hcl:"anchor"`
	Replacement string   `json:"replacement" yaml:"replacement" hcl:"replacement"`
	GuardMarker string   `json:"guard_marker" yaml:"guard_marker" hcl:"guard_marker"`
	ReplaceAll  bool     `json:"replace_all,omitempty" yaml:"replace_all,omitempty" hcl:"replace_all,optional"`
	DependsOn   []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty" hcl:"depends_on,optional"`
}

// 🎯 Target names one document to patch and the changes to run over it
type Target struct {
	Path       string             `json:"path" yaml:"path" hcl:"path,label"`
	Source     string             `json:"source,omitempty" yaml:"source,omitempty" hcl:"source,optional"`
	Repo       string             `json:"repo,omitempty" yaml:"repo,omitempty" hcl:"repo,optional"`
	Ref        string             `json:"ref,omitempty" yaml:"ref,omitempty" hcl:"ref,optional"`
	Changesets []string           `json:"changesets,omitempty" yaml:"changesets,omitempty" hcl:"changesets,optional"`
	Changes    []ChangeDefinition `json:"changes,omitempty" yaml:"changes,omitempty" hcl:"change,block"`
}

// 📚 PatchrcConfig represents the complete configuration
type PatchrcConfig struct {
	Targets []Target `json:"targets" yaml:"targets" hcl:"target,block"`
	Async   bool     `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`
	DryRun  bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`

	location string
}

// Location returns the path the config was loaded from
func (c *PatchrcConfig) Location() string {
	return c.location
}

// ✅ Validate checks the configuration is complete and internally consistent
func Validate(ctx context.Context, cfg *PatchrcConfig) error {
	logger := zerolog.Ctx(ctx)

	if len(cfg.Targets) == 0 {
		return errors.New("at least one target is required")
	}

	for i, target := range cfg.Targets {
		if target.Path == "" {
			return errors.Errorf("target %d: path is required", i)
		}
		if target.Source == "github" && target.Repo == "" {
			return errors.Errorf("target %s: repo is required for the github source", target.Path)
		}
		if len(target.Changesets) == 0 && len(target.Changes) == 0 {
			return errors.Errorf("target %s: at least one changeset or inline change is required", target.Path)
		}
		for _, change := range target.Changes {
			if change.ID == "" {
				return errors.Errorf("target %s: change id is required", target.Path)
			}
			if change.Anchor == "" {
				return errors.Errorf("target %s: change %s: anchor is required", target.Path, change.ID)
			}
			if change.GuardMarker == "" {
				return errors.Errorf("target %s: change %s: guard_marker is required", target.Path, change.ID)
			}
		}
	}

	logger.Debug().Int("targets", len(cfg.Targets)).Msg("configuration validated")
	return nil
}

// SourceName returns the source this target loads from, defaulting to local
func (t Target) SourceName() string {
	if t.Source == "" {
		return "local"
	}
	return t.Source
}
