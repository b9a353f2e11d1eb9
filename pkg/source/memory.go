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
	"sync"

	"github.com/walteh/patchrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register("memory", func(ctx context.Context, _ config.Target) (Source, error) {
		return NewMemory(nil), nil
	})
}

// 🧠 Memory is a map-backed source for tests and library embedding
type Memory struct {
	mu   sync.Mutex
	docs map[string]string
}

// 🏭 NewMemory creates a memory source seeded with the given documents
func NewMemory(docs map[string]string) *Memory {
	if docs == nil {
		docs = make(map[string]string)
	}
	return &Memory{docs: docs}
}

// Name implements Source
func (s *Memory) Name() string {
	return "memory"
}

// Load implements Source
func (s *Memory) Load(ctx context.Context, identity string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok := s.docs[identity]
	if !ok {
		return "", errors.Errorf("no document %q: %w", identity, ErrSourceUnavailable)
	}
	return text, nil
}

// Save implements Source
func (s *Memory) Save(ctx context.Context, identity string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[identity] = text
	return nil
}
