package patch

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specAddY() ChangeSpec {
	return ChangeSpec{
		ID:          "add-y",
		Anchor:      "line X",
		Replacement: "line X\nline Y",
		GuardMarker: "line Y",
		Limit:       1,
	}
}

// add-z anchors on text that add-y inserts
func specAddZ() ChangeSpec {
	return ChangeSpec{
		ID:          "add-z",
		Anchor:      "line Y",
		Replacement: "line Y\nline Z",
		GuardMarker: "line Z",
		Limit:       1,
		DependsOn:   []string{"add-y"},
	}
}

func TestRunner_Run_Idempotency(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner()
	specs := []ChangeSpec{specAddY(), specAddZ()}

	first, report1, err := runner.Run(ctx, "line X", specs)
	require.NoError(t, err)
	assert.Equal(t, "line X\nline Y\nline Z", first)
	assert.Equal(t, 2, report1.Applied())
	assert.True(t, report1.Changed())

	// Re-running over the patched output must be a no-op.
	second, report2, err := runner.Run(ctx, first, specs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, report2.Applied())
	assert.Equal(t, 2, report2.AlreadyPresent())
	assert.False(t, report2.Changed())
}

func TestRunner_Run_OrderSensitivity(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner()

	// add-z declares its dependency on add-y, so the reversed order is
	// rejected before anything runs.
	_, _, err := runner.Run(ctx, "line X", []ChangeSpec{specAddZ(), specAddY()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `depends on "add-y"`)

	// Without the declaration the engine falls back to soft failure: the
	// dependent change simply cannot find its anchor yet.
	undeclared := specAddZ()
	undeclared.DependsOn = nil
	_, report, err := runner.Run(ctx, "line X", []ChangeSpec{undeclared, specAddY()})
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, OutcomeAnchorNotFound, report[0].Kind)
	assert.Equal(t, OutcomeApplied, report[1].Kind)
}

func TestRunner_Run_GuardLeavesTextUnchanged(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner()

	initial := "line X\nline Y"
	final, report, err := runner.Run(ctx, initial, []ChangeSpec{specAddY()})
	require.NoError(t, err)

	assert.Equal(t, initial, final)
	require.Len(t, report, 1)
	assert.Equal(t, OutcomeAlreadyPresent, report[0].Kind)
}

func TestRunner_Run_MissingAnchorDoesNotBlockOthers(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner()

	specs := []ChangeSpec{
		{ID: "broken", Anchor: "never present", Replacement: "x", GuardMarker: "also never present", Limit: 1},
		specAddY(),
		{ID: "tail", Anchor: "tail anchor", Replacement: "tail anchor patched", GuardMarker: "tail anchor patched", Limit: 1},
	}

	final, report, err := runner.Run(ctx, "line X\ntail anchor", specs)
	require.NoError(t, err)
	require.Len(t, report, 3)

	assert.Equal(t, OutcomeAnchorNotFound, report[0].Kind)
	assert.Equal(t, OutcomeApplied, report[1].Kind)
	assert.Equal(t, OutcomeApplied, report[2].Kind)
	assert.Equal(t, "line X\nline Y\ntail anchor patched", final)
}

func TestRunner_Run_ReportPreservesSpecOrder(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner()

	specs := []ChangeSpec{
		{ID: "first", Anchor: "a", Replacement: "a1", GuardMarker: "a1", Limit: 1},
		{ID: "second", Anchor: "b", Replacement: "b1", GuardMarker: "b1", Limit: 1},
		{ID: "third", Anchor: "c", Replacement: "c1", GuardMarker: "c1", Limit: 1},
	}

	_, report, err := runner.Run(ctx, "a b c", specs)
	require.NoError(t, err)
	require.Len(t, report, 3)
	for i, id := range []string{"first", "second", "third"} {
		assert.Equal(t, id, report[i].SpecID)
	}
}

func TestRunner_Run_DisjointAnchorsAreOrderIndependent(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner()

	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, "filler")
	}
	lines[10] = "alpha marker"
	lines[90] = "omega marker"
	initial := strings.Join(lines, "\n")

	a := ChangeSpec{ID: "a", Anchor: "alpha marker", Replacement: "alpha marker patched", GuardMarker: "alpha marker patched", Limit: 1}
	b := ChangeSpec{ID: "b", Anchor: "omega marker", Replacement: "omega marker patched", GuardMarker: "omega marker patched", Limit: 1}

	forward, reportF, err := runner.Run(ctx, initial, []ChangeSpec{a, b})
	require.NoError(t, err)
	reverse, reportR, err := runner.Run(ctx, initial, []ChangeSpec{b, a})
	require.NoError(t, err)

	assert.Equal(t, forward, reverse)
	assert.Equal(t, 2, reportF.Applied())
	assert.Equal(t, 2, reportR.Applied())
}

func TestValidateSequence(t *testing.T) {
	tests := []struct {
		name    string
		specs   []ChangeSpec
		wantErr string
	}{
		{
			name:  "valid_with_dependency",
			specs: []ChangeSpec{specAddY(), specAddZ()},
		},
		{
			name: "duplicate_id",
			specs: []ChangeSpec{
				specAddY(),
				{ID: "add-y", Anchor: "a", Replacement: "b", GuardMarker: "g", Limit: 1},
			},
			wantErr: `duplicate change id "add-y"`,
		},
		{
			name:    "forward_dependency",
			specs:   []ChangeSpec{specAddZ(), specAddY()},
			wantErr: "does not precede it",
		},
		{
			name: "unknown_dependency",
			specs: []ChangeSpec{
				{ID: "lonely", Anchor: "a", Replacement: "b", GuardMarker: "g", Limit: 1, DependsOn: []string{"ghost"}},
			},
			wantErr: `depends on "ghost"`,
		},
		{
			name: "invalid_spec_surfaces",
			specs: []ChangeSpec{
				{ID: "bad", Anchor: "", Replacement: "b", GuardMarker: "g", Limit: 1},
			},
			wantErr: "anchor is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSequence(tt.specs)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReport_Counts(t *testing.T) {
	report := Report{
		{SpecID: "a", Kind: OutcomeApplied, Count: 1},
		{SpecID: "b", Kind: OutcomeAlreadyPresent},
		{SpecID: "c", Kind: OutcomeAnchorNotFound},
		{SpecID: "d", Kind: OutcomeApplied, Count: 2},
	}

	assert.Equal(t, 2, report.Applied())
	assert.Equal(t, 1, report.AlreadyPresent())
	assert.Equal(t, 1, report.NotFound())
	assert.True(t, report.Changed())
}
