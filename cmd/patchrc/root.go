package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/status"
	"gitlab.com/tozd/go/errors"

	// Register the github source.
	_ "github.com/walteh/patchrc/pkg/source/github"
)

var (
	// Flags
	configFile string
	debug      bool
	async      bool
	dryRun     bool
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Load config
	cfg, err := config.LoadConfig(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Flags override config defaults
	if async {
		cfg.Async = true
	}
	if dryRun {
		cfg.DryRun = true
	}

	return &opts.RootOpts{
		Config:   cfg,
		Reporter: status.NewReporter(os.Stdout),
		Runner:   patch.NewRunner(),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".patchrc.hcl", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "patch independent targets concurrently")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report outcomes without saving")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
