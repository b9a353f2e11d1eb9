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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/commands"
)

func main() {
	root := &cobra.Command{
		Use:   "patchrc",
		Short: "Apply idempotent literal-text patches to generated source files",
		Long: `patchrc applies ordered, guarded text changes to generated source files.
Each change finds an exact literal anchor, substitutes a replacement, and
carries a guard marker so re-running the same changeset is always safe.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	addRootFlags(root)

	root.AddCommand(
		commands.NewApplyCmd(newRootOpts),
		commands.NewCheckCmd(newRootOpts),
		commands.NewListCmd(),
	)

	ctx := context.Background()
	if err := root.ExecuteContext(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("patchrc failed")
		os.Exit(1)
	}
}
