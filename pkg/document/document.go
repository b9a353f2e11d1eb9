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

// Package document holds the mutable text buffer that patches operate on.
// The buffer is literal text all the way down: matching is exact substring
// containment, never a regular expression, so machine-generated sources keep
// their exact byte shape between runs.
package document

import (
	"strings"
)

// ReplaceAll is the occurrence limit meaning "every non-overlapping match".
const ReplaceAll = -1

// Document wraps the full text of one target file for the duration of a
// patch session. Exactly one Document exists per session and nothing mutates
// it concurrently.
type Document struct {
	text string
}

// New wraps externally supplied text verbatim. No normalization is applied;
// anchors later depend on literal equality with this exact content.
func New(text string) *Document {
	return &Document{text: text}
}

// Contains reports whether pattern occurs in the document as an exact
// literal substring.
func (d *Document) Contains(pattern string) bool {
	return strings.Contains(d.text, pattern)
}

// ReplaceResult describes the effect of a single Replace call.
type ReplaceResult struct {
	Found bool // anchor occurred at least once
	Count int  // occurrences replaced
}

// Replace substitutes replacement for anchor. With limit 1 only the first
// occurrence is touched; with ReplaceAll every non-overlapping occurrence is.
// The substitution is a single pass: inserted replacement text is never
// re-scanned, so a replacement containing the anchor as a substring does not
// cascade. When the anchor is absent the document is left unchanged.
func (d *Document) Replace(anchor, replacement string, limit int) ReplaceResult {
	if anchor == "" || !strings.Contains(d.text, anchor) {
		return ReplaceResult{Found: false}
	}

	count := strings.Count(d.text, anchor)
	if limit > 0 && count > limit {
		count = limit
	}

	d.text = strings.Replace(d.text, anchor, replacement, limit)
	return ReplaceResult{Found: true, Count: count}
}

// Render returns the current full text for persistence.
func (d *Document) Render() string {
	return d.text
}

// Len returns the current text length in bytes.
func (d *Document) Len() int {
	return len(d.text)
}
