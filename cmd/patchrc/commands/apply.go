package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(newOpts opts.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply configured changesets to their targets",
		Long: `Apply runs every configured change over its target document.
It will:
1. Load each target's text through its source
2. Apply each change in order, skipping ones whose guard already matches
3. Save the patched text back, once, if anything changed
4. Print one OK/INFO/WARN line per change plus a summary per target`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			rootOpts, err := newOpts(ctx)
			if err != nil {
				return err
			}

			op, err := operation.NewPatchOperation(operation.Options{
				Config:   rootOpts.Config,
				Reporter: rootOpts.Reporter,
				Runner:   rootOpts.Runner,
			})
			if err != nil {
				return errors.Errorf("creating patch operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				rootOpts.Reporter.ReportError(ctx, err)
				return errors.Errorf("applying changes: %w", err)
			}

			return nil
		},
	}

	return cmd
}
