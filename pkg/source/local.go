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

package source

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register("local", NewLocal)
}

// 📁 Local reads and writes documents on the local filesystem
type Local struct{}

// 🏭 NewLocal creates a new local filesystem source
func NewLocal(ctx context.Context, _ config.Target) (Source, error) {
	return &Local{}, nil
}

// Name implements Source
func (s *Local) Name() string {
	return "local"
}

// 📄 Load reads the whole file
func (s *Local) Load(ctx context.Context, identity string) (string, error) {
	data, err := os.ReadFile(identity)
	if err != nil {
		return "", errors.Errorf("reading %s: %w: %w", identity, ErrSourceUnavailable, err)
	}
	return string(data), nil
}

// 💾 Save writes the whole file atomically: temp file in place, then rename
func (s *Local) Save(ctx context.Context, identity string, text string) error {
	logger := zerolog.Ctx(ctx)

	tempPath := identity + ".tmp"
	if err := os.WriteFile(tempPath, []byte(text), 0644); err != nil {
		return errors.Errorf("writing temp file: %w: %w", ErrPersistenceFailure, err)
	}

	if err := os.Rename(tempPath, identity); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w: %w", ErrPersistenceFailure, err)
	}

	logger.Debug().Str("path", identity).Int("bytes", len(text)).Msg("saved document")
	return nil
}
