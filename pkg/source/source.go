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

// Package source is the text load/save boundary of the patch engine. The
// engine has no opinion on where document text comes from; sources supply it
// and persist it, one full read and one full write per run.
package source

import (
	"context"

	"github.com/walteh/patchrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrSourceUnavailable marks a fatal failure to obtain the input text.
	ErrSourceUnavailable = errors.Base("source unavailable")

	// ErrPersistenceFailure marks a fatal failure to write the output text.
	ErrPersistenceFailure = errors.Base("persistence failure")

	// ErrReadOnlySource marks a source that can load but never save.
	ErrReadOnlySource = errors.Base("source is read-only")
)

// 🔌 Source is the interface for document text retrieval and persistence
type Source interface {
	// 📄 Load retrieves the full text for the given identity
	Load(ctx context.Context, identity string) (string, error)

	// 💾 Save persists the full text for the given identity, exactly once per run
	Save(ctx context.Context, identity string, text string) error

	// 📝 Name returns the source's registered name
	Name() string
}

// 🏭 Factory creates a new source for one target
type Factory func(ctx context.Context, target config.Target) (Source, error)

var (
	// 🗺️ sources is a map of source names to factories
	sources = make(map[string]Factory)
)

// 📝 Register registers a source factory
func Register(name string, factory Factory) {
	sources[name] = factory
}

// 🎯 New creates the source a target asks for
func New(ctx context.Context, target config.Target) (Source, error) {
	factory, ok := sources[target.SourceName()]
	if !ok {
		return nil, errors.Errorf("unknown source %q", target.SourceName())
	}
	return factory(ctx, target)
}
