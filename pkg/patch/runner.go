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

package patch

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/document"
	"gitlab.com/tozd/go/errors"
)

// 📋 Report is the ordered collection of outcomes from one run
type Report []Outcome

// Applied returns the number of changes that were applied in this run
func (r Report) Applied() int {
	return r.countKind(OutcomeApplied)
}

// AlreadyPresent returns the number of changes the guard skipped
func (r Report) AlreadyPresent() int {
	return r.countKind(OutcomeAlreadyPresent)
}

// NotFound returns the number of changes whose anchor was missing
func (r Report) NotFound() int {
	return r.countKind(OutcomeAnchorNotFound)
}

// Changed reports whether the run mutated the document at all
func (r Report) Changed() bool {
	return r.Applied() > 0
}

func (r Report) countKind(kind OutcomeKind) int {
	n := 0
	for _, o := range r {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// 🏃 Runner applies an ordered sequence of ChangeSpecs to one document
type Runner struct{}

// 🏭 NewRunner creates a new runner
func NewRunner() *Runner {
	return &Runner{}
}

// ValidateSequence checks that IDs are unique and that every declared
// dependency names a change earlier in the sequence. Order is the execution
// order: a later change may anchor on text a prior change inserted, so a
// forward or missing dependency is a defect in the changeset, not something
// to discover at apply time.
func ValidateSequence(specs []ChangeSpec) error {
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return errors.Errorf("validating change: %w", err)
		}
		if seen[spec.ID] {
			return errors.Errorf("duplicate change id %q", spec.ID)
		}
		for _, dep := range spec.DependsOn {
			if !seen[dep] {
				return errors.Errorf("change %q depends on %q which does not precede it", spec.ID, dep)
			}
		}
		seen[spec.ID] = true
	}
	return nil
}

// Run builds one document from initialText and feeds it through every spec in
// order. Later specs observe the mutations of earlier ones. A missing anchor
// never short-circuits the sequence: unrelated changes still get their
// chance, which is the deliberate best-effort policy of this engine. The
// returned text is the fully patched document; persisting it is the caller's
// job.
func (r *Runner) Run(ctx context.Context, initialText string, specs []ChangeSpec) (string, Report, error) {
	logger := zerolog.Ctx(ctx)

	if err := ValidateSequence(specs); err != nil {
		return "", nil, errors.Errorf("validating change sequence: %w", err)
	}

	doc := document.New(initialText)
	report := make(Report, 0, len(specs))

	for _, spec := range specs {
		outcome := Apply(doc, spec)
		report = append(report, outcome)

		logger.Debug().
			Str("change", spec.ID).
			Str("outcome", outcome.Kind.String()).
			Int("count", outcome.Count).
			Msg("evaluated change")
	}

	return doc.Render(), report, nil
}
