package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(newOpts opts.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report what apply would do without saving anything",
		Long: `Check is a dry run: it loads each target, evaluates every change,
and prints the same OK/INFO/WARN report apply would, but never writes the
patched text back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			rootOpts, err := newOpts(ctx)
			if err != nil {
				return err
			}

			op, err := operation.NewCheckOperation(operation.Options{
				Config:   rootOpts.Config,
				Reporter: rootOpts.Reporter,
				Runner:   rootOpts.Runner,
			})
			if err != nil {
				return errors.Errorf("creating check operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				rootOpts.Reporter.ReportError(ctx, err)
				return errors.Errorf("checking changes: %w", err)
			}

			return nil
		},
	}

	return cmd
}
