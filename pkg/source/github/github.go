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

// Package github loads document text straight from a GitHub repository. It
// is read-only: patched output always lands somewhere else (use check mode
// or save through another source).
package github

import (
	"context"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/source"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/oauth2"
)

func init() {
	source.Register("github", New)
}

// 🎯 Source implements the source interface for GitHub
type Source struct {
	client *github.Client
	repo   string
	ref    string
	logger zerolog.Logger
}

// 🏭 New creates a new GitHub source
func New(ctx context.Context, target config.Target) (source.Source, error) {
	logger := zerolog.Ctx(ctx)

	// Get token from environment
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, errors.New("GITHUB_TOKEN environment variable not set")
	}

	// Create OAuth2 client
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Source{
		client: github.NewClient(tc),
		repo:   target.Repo,
		ref:    target.Ref,
		logger: *logger,
	}, nil
}

// Name implements source.Source
func (s *Source) Name() string {
	return "github"
}

// 🔍 parseRepo parses a GitHub repository URL
func (s *Source) parseRepo() (owner, name string, err error) {
	parts := strings.Split(s.repo, "/")
	if len(parts) < 2 {
		return "", "", errors.Errorf("invalid repository format: %s", s.repo)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// 📄 Load retrieves a single file's contents from the repository
func (s *Source) Load(ctx context.Context, identity string) (string, error) {
	owner, name, err := s.parseRepo()
	if err != nil {
		return "", errors.Errorf("parsing repo: %w: %w", source.ErrSourceUnavailable, err)
	}

	content, _, _, err := s.client.Repositories.GetContents(ctx, owner, name, identity, &github.RepositoryContentGetOptions{
		Ref: s.ref,
	})
	if err != nil {
		return "", errors.Errorf("getting file content: %w: %w", source.ErrSourceUnavailable, err)
	}

	data, err := content.GetContent()
	if err != nil {
		return "", errors.Errorf("decoding content: %w: %w", source.ErrSourceUnavailable, err)
	}

	s.logger.Debug().Str("repo", s.repo).Str("path", identity).Msg("loaded document from github")
	return data, nil
}

// Save implements source.Source. GitHub documents are never written back.
func (s *Source) Save(ctx context.Context, identity string, text string) error {
	return errors.Errorf("saving %s: %w: %w", identity, source.ErrPersistenceFailure, source.ErrReadOnlySource)
}

// TODO(dr.methodical): 📝 Support writing patched output back through the contents API
