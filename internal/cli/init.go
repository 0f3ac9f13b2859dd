package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/choonghwanlee/folio/internal/files"
	"github.com/choonghwanlee/folio/internal/portfolio"
)

func newInitCommand(manager *files.Manager) *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the editable content file with the built-in portfolio.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, written, err := manager.EnsureContentFile(portfolio.Default(), forceFlag)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "Content file already exists at %s (use --force to overwrite)\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing content file")

	return cmd
}
