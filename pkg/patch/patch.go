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

// Package patch applies ordered, guarded, idempotent literal-text changes to
// a single document
package patch

import (
	"fmt"

	"github.com/walteh/patchrc/pkg/document"
	"gitlab.com/tozd/go/errors"
)

// 🔄 ChangeSpec is one declarative edit: find Anchor, substitute Replacement,
// unless GuardMarker shows the edit already landed in an earlier run
type ChangeSpec struct {
	ID          string   // stable label used in reports
	Description string   // human-readable summary of the edit
	Anchor      string   // literal text expected to exist before the change
	Replacement string   // literal text to substitute (may embed Anchor for insertions)
	GuardMarker string   // literal text whose presence means the change already applied
	Limit       int      // 1 for first occurrence, document.ReplaceAll for every occurrence
	DependsOn   []string // IDs of changes whose inserted text this one anchors on
}

// ✅ Validate checks the spec is complete enough to apply
func (s ChangeSpec) Validate() error {
	if s.ID == "" {
		return errors.New("change id is required")
	}
	if s.Anchor == "" {
		return errors.Errorf("change %s: anchor is required", s.ID)
	}
	if s.GuardMarker == "" {
		return errors.Errorf("change %s: guard marker is required", s.ID)
	}
	if s.Limit == 0 {
		return errors.Errorf("change %s: limit must be 1 or ReplaceAll", s.ID)
	}
	return nil
}

// 📊 OutcomeKind classifies the result of applying one ChangeSpec
type OutcomeKind int

const (
	OutcomeUnknown        OutcomeKind = iota
	OutcomeApplied                    // anchor found, replacement performed
	OutcomeAlreadyPresent             // guard matched, nothing to do
	OutcomeAnchorNotFound             // anchor absent, document left untouched
)

// String returns a string representation of OutcomeKind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeApplied:
		return "applied"
	case OutcomeAlreadyPresent:
		return "already-present"
	case OutcomeAnchorNotFound:
		return "anchor-not-found"
	default:
		return "unknown"
	}
}

// 📄 Outcome is the immutable result of attempting one ChangeSpec
type Outcome struct {
	SpecID  string      // ID of the ChangeSpec that produced this outcome
	Kind    OutcomeKind // terminal classification
	Message string      // human-readable description including the spec id
	Count   int         // occurrences replaced (zero unless Kind is OutcomeApplied)
}

// Apply evaluates one ChangeSpec against the document. The guard is checked
// first: a matching guard short-circuits to OutcomeAlreadyPresent with the
// document untouched, which is what makes re-running a whole changeset safe
// even though insertion-style replacements embed their own anchor. A missing
// anchor is a soft failure reported to the caller, never an error.
func Apply(doc *document.Document, spec ChangeSpec) Outcome {
	desc := spec.Description
	if desc == "" {
		desc = spec.ID
	}

	if doc.Contains(spec.GuardMarker) {
		return Outcome{
			SpecID:  spec.ID,
			Kind:    OutcomeAlreadyPresent,
			Message: fmt.Sprintf("%s: already present", desc),
		}
	}

	result := doc.Replace(spec.Anchor, spec.Replacement, spec.Limit)
	if !result.Found {
		return Outcome{
			SpecID:  spec.ID,
			Kind:    OutcomeAnchorNotFound,
			Message: fmt.Sprintf("%s: could not find anchor", desc),
		}
	}

	return Outcome{
		SpecID:  spec.ID,
		Kind:    OutcomeApplied,
		Message: fmt.Sprintf("%s: applied", desc),
		Count:   result.Count,
	}
}
