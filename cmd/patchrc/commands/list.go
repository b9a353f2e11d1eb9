package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/pkg/changeset"
)

// NewListCmd creates a new list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered changesets and their changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range changeset.Names() {
				specs, err := changeset.Get(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d changes)\n", name, len(specs))
				for _, spec := range specs {
					desc := spec.Description
					if desc == "" {
						desc = spec.ID
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %-28s %s\n", spec.ID, desc)
				}
			}
			return nil
		},
	}

	return cmd
}
