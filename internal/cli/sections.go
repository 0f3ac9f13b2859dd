package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/choonghwanlee/folio/internal/files"
	"github.com/choonghwanlee/folio/internal/portfolio"
)

func newSectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section identifiers and navigation links.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Sections:")
			for i, section := range portfolio.Sections {
				fmt.Fprintf(out, "%d. %s\n", i+1, section)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Navigation:")
			printNav(cmd, "")
			return nil
		},
	}
}

func newShowCommand(manager *files.Manager) *cobra.Command {
	var (
		widthFlag int
		tabFlag   string
	)

	cmd := &cobra.Command{
		Use:   "show <section>",
		Short: "Print one section as plain text.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := portfolio.ParseSection(args[0])
			if err != nil {
				return err
			}
			content, err := manager.LoadContent()
			if err != nil {
				return err
			}

			tab := 0
			if tabFlag != "" {
				tab = content.ExperienceIndex(tabFlag)
				if tab < 0 {
					return fmt.Errorf("no experience entry for company %q", tabFlag)
				}
			}

			layout := plainLayout(content, widthFlag, 0, tab)
			fmt.Fprintln(cmd.OutOrStdout(), trimBlock(layout.Block(section)))
			return nil
		},
	}

	cmd.Flags().IntVar(&widthFlag, "width", defaultWidth, "Wrap text to this many columns")
	cmd.Flags().StringVar(&tabFlag, "company", "", "Experience tab to show (default: first)")

	return cmd
}
