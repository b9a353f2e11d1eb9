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

// Package status reports per-change outcomes to the user: one line per
// change with a fixed severity prefix, plus one summary line per target.
package status

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/patch"
)

// 📢 Reporter prints user-facing outcome lines and mirrors them to zerolog
type Reporter struct {
	mu        sync.Mutex
	console   io.Writer
	formatter OutcomeFormatter
}

// 🏭 NewReporter creates a reporter writing to the given console
func NewReporter(console io.Writer) *Reporter {
	if console == nil {
		console = os.Stdout
	}
	return &Reporter{
		console:   console,
		formatter: NewDefaultOutcomeFormatter(),
	}
}

// 📝 ReportOutcome prints one outcome line
func (r *Reporter) ReportOutcome(ctx context.Context, outcome patch.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger := zerolog.Ctx(ctx)

	fmt.Fprintln(r.console, r.formatter.FormatOutcome(outcome))

	event := logger.Info()
	if outcome.Kind == patch.OutcomeAnchorNotFound {
		event = logger.Warn()
	}
	event.
		Str("change", outcome.SpecID).
		Str("outcome", outcome.Kind.String()).
		Int("count", outcome.Count).
		Msg(outcome.Message)
}

// 📊 ReportSummary prints the applied-count summary for one target
func (r *Reporter) ReportSummary(ctx context.Context, identity string, report patch.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger := zerolog.Ctx(ctx)
	summary := r.formatter.FormatSummary(identity, report)

	pterm.Info.WithPrefix(pterm.Prefix{Text: "DONE"}).WithWriter(r.console).Println(summary)
	logger.Info().
		Str("target", identity).
		Int("applied", report.Applied()).
		Int("already_present", report.AlreadyPresent()).
		Int("not_found", report.NotFound()).
		Msg("target complete")
}

// ❌ ReportError prints a fatal error
func (r *Reporter) ReportError(ctx context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	zerolog.Ctx(ctx).Error().Err(err).Msg("run failed")
	fmt.Fprintln(r.console, r.formatter.FormatError(err))
}
