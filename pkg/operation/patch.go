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

package operation

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/changeset"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/source"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🩹 PatchOperation applies every configured target's change sequence
type PatchOperation struct {
	opts   Options
	dryRun bool
}

// 🏭 NewPatchOperation creates a new patch operation
func NewPatchOperation(opts Options) (*PatchOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}
	return &PatchOperation{
		opts:   opts,
		dryRun: opts.Config.DryRun,
	}, nil
}

// Execute runs every target. Targets are independent of each other, so async
// mode fans them out on an errgroup; each goroutine still owns exactly one
// document at a time.
func (op *PatchOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config

	if cfg.Async {
		g, gctx := errgroup.WithContext(ctx)
		for _, target := range cfg.Targets {
			g.Go(func() error {
				return op.processTarget(gctx, target)
			})
		}
		return g.Wait()
	}

	for _, target := range cfg.Targets {
		if err := op.processTarget(ctx, target); err != nil {
			return err
		}
	}
	return nil
}

// hasGlobMeta reports whether a target path needs glob expansion
func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// resolveIdentities expands a local glob target into concrete paths. Remote
// and literal paths pass through unchanged.
func resolveIdentities(target config.Target) ([]string, error) {
	if target.SourceName() != "local" || !hasGlobMeta(target.Path) {
		return []string{target.Path}, nil
	}

	matches, err := doublestar.FilepathGlob(target.Path)
	if err != nil {
		return nil, errors.Errorf("expanding glob %s: %w", target.Path, err)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("glob %s matched no files: %w", target.Path, source.ErrSourceUnavailable)
	}
	return matches, nil
}

// processTarget patches every document one target resolves to
func (op *PatchOperation) processTarget(ctx context.Context, target config.Target) error {
	logger := zerolog.Ctx(ctx)

	specs, err := changeset.ForTarget(target)
	if err != nil {
		return errors.Errorf("resolving changes: %w", err)
	}

	src, err := source.New(ctx, target)
	if err != nil {
		return errors.Errorf("creating source: %w", err)
	}

	identities, err := resolveIdentities(target)
	if err != nil {
		return err
	}

	for _, identity := range identities {
		logger.Debug().
			Str("target", identity).
			Str("source", src.Name()).
			Int("changes", len(specs)).
			Bool("dry_run", op.dryRun).
			Msg("patching target")

		text, err := src.Load(ctx, identity)
		if err != nil {
			return errors.Errorf("loading %s: %w", identity, err)
		}

		final, report, err := op.opts.Runner.Run(ctx, text, specs)
		if err != nil {
			return errors.Errorf("running changes for %s: %w", identity, err)
		}

		for _, outcome := range report {
			op.opts.Reporter.ReportOutcome(ctx, outcome)
		}

		// One write per run, and only when something changed. Skipping the
		// write when every change was already present keeps mtimes stable
		// and lets read-only sources (github) go through check unharmed.
		if report.Changed() && !op.dryRun {
			if err := src.Save(ctx, identity, final); err != nil {
				return errors.Errorf("saving %s: %w", identity, err)
			}
		}

		op.opts.Reporter.ReportSummary(ctx, identity, report)
	}

	return nil
}
