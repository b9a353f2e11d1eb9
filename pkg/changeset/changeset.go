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

// Package changeset holds named, versioned sequences of changes. Built-in
// changesets are registered at init time; additional ones come from config.
package changeset

import (
	"sort"

	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/document"
	"github.com/walteh/patchrc/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// 🏭 Builder produces the ordered changes of one named changeset
type Builder func() []patch.ChangeSpec

var (
	// 🗺️ builders is a map of changeset names to builders
	builders = make(map[string]Builder)
)

// 📝 Register registers a changeset builder under a name
func Register(name string, builder Builder) {
	builders[name] = builder
}

// 🎯 Get returns the changes of a registered changeset
func Get(name string) ([]patch.ChangeSpec, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, errors.Errorf("unknown changeset %q", name)
	}
	return builder(), nil
}

// 📋 Names returns the registered changeset names, sorted
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromDefinitions converts inline config change definitions into ChangeSpecs
func FromDefinitions(defs []config.ChangeDefinition) []patch.ChangeSpec {
	specs := make([]patch.ChangeSpec, 0, len(defs))
	for _, def := range defs {
		limit := 1
		if def.ReplaceAll {
			limit = document.ReplaceAll
		}
		specs = append(specs, patch.ChangeSpec{
			ID:          def.ID,
			Description: def.Description,
			Anchor:      def.Anchor,
			Replacement: def.Replacement,
			GuardMarker: def.GuardMarker,
			Limit:       limit,
			DependsOn:   def.DependsOn,
		})
	}
	return specs
}

// ForTarget resolves a target's full change sequence: registered changesets
// in declaration order, then inline changes. The combined sequence still has
// to pass patch.ValidateSequence before it runs.
func ForTarget(target config.Target) ([]patch.ChangeSpec, error) {
	var specs []patch.ChangeSpec
	for _, name := range target.Changesets {
		set, err := Get(name)
		if err != nil {
			return nil, errors.Errorf("resolving changesets for %s: %w", target.Path, err)
		}
		specs = append(specs, set...)
	}
	specs = append(specs, FromDefinitions(target.Changes)...)
	return specs, nil
}
