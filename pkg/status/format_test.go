package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/patchrc/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

func init() {
	// Plain output so assertions see the raw prefixes.
	color.NoColor = true
}

func TestDefaultOutcomeFormatter_FormatOutcome(t *testing.T) {
	f := NewDefaultOutcomeFormatter()

	tests := []struct {
		name    string
		outcome patch.Outcome
		want    string
	}{
		{
			name:    "applied_gets_ok",
			outcome: patch.Outcome{SpecID: "a", Kind: patch.OutcomeApplied, Message: "add pagination: applied"},
			want:    "OK   add pagination: applied",
		},
		{
			name:    "already_present_gets_info",
			outcome: patch.Outcome{SpecID: "a", Kind: patch.OutcomeAlreadyPresent, Message: "add pagination: already present"},
			want:    "INFO add pagination: already present",
		},
		{
			name:    "anchor_not_found_gets_warn",
			outcome: patch.Outcome{SpecID: "a", Kind: patch.OutcomeAnchorNotFound, Message: "add pagination: could not find anchor"},
			want:    "WARN add pagination: could not find anchor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatOutcome(tt.outcome))
		})
	}
}

func TestDefaultOutcomeFormatter_FormatSummary(t *testing.T) {
	f := NewDefaultOutcomeFormatter()
	report := patch.Report{
		{Kind: patch.OutcomeApplied},
		{Kind: patch.OutcomeApplied},
		{Kind: patch.OutcomeAlreadyPresent},
		{Kind: patch.OutcomeAnchorNotFound},
	}

	got := f.FormatSummary("app/routes/app.bulk-edit.jsx", report)
	assert.Equal(t, "app/routes/app.bulk-edit.jsx: 2 applied, 1 already present, 1 not found", got)
}

func TestDefaultOutcomeFormatter_FormatError(t *testing.T) {
	f := NewDefaultOutcomeFormatter()

	assert.Equal(t, "", f.FormatError(nil))
	assert.Equal(t, "FAIL boom", f.FormatError(errors.New("boom")))
}
