package status

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/walteh/patchrc/pkg/patch"
)

// OutcomeFormatter defines how per-change outcomes and run summaries are
// rendered for the console
type OutcomeFormatter interface {
	// FormatOutcome formats a single change outcome line
	FormatOutcome(outcome patch.Outcome) string

	// FormatSummary formats the end-of-run summary line for one target
	FormatSummary(identity string, report patch.Report) string

	// FormatError formats a fatal error message
	FormatError(err error) string
}

// DefaultOutcomeFormatter provides a default implementation of OutcomeFormatter
type DefaultOutcomeFormatter struct{}

// NewDefaultOutcomeFormatter creates a new DefaultOutcomeFormatter
func NewDefaultOutcomeFormatter() *DefaultOutcomeFormatter {
	return &DefaultOutcomeFormatter{}
}

// severityPrefix maps an outcome kind to its fixed console prefix
func severityPrefix(kind patch.OutcomeKind) string {
	switch kind {
	case patch.OutcomeApplied:
		return "OK"
	case patch.OutcomeAlreadyPresent:
		return "INFO"
	case patch.OutcomeAnchorNotFound:
		return "WARN"
	default:
		return "????"
	}
}

// FormatOutcome formats one outcome with its severity prefix
func (f *DefaultOutcomeFormatter) FormatOutcome(outcome patch.Outcome) string {
	prefix := severityPrefix(outcome.Kind)

	var prefixColor color.Attribute
	switch outcome.Kind {
	case patch.OutcomeApplied:
		prefixColor = color.FgGreen
	case patch.OutcomeAlreadyPresent:
		prefixColor = color.FgCyan
	case patch.OutcomeAnchorNotFound:
		prefixColor = color.FgYellow
	default:
		prefixColor = color.FgRed
	}

	return fmt.Sprintf("%s %s",
		color.New(prefixColor).Sprint(fmt.Sprintf("%-4s", prefix)),
		outcome.Message)
}

// FormatSummary formats the applied-count summary for one target
func (f *DefaultOutcomeFormatter) FormatSummary(identity string, report patch.Report) string {
	return fmt.Sprintf("%s: %d applied, %d already present, %d not found",
		identity, report.Applied(), report.AlreadyPresent(), report.NotFound())
}

// FormatError formats a fatal error message
func (f *DefaultOutcomeFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %v", color.New(color.FgRed).Sprint("FAIL"), err)
}
