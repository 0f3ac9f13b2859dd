package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/choonghwanlee/folio/internal/files"
	"github.com/choonghwanlee/folio/internal/tracker"
	"github.com/choonghwanlee/folio/internal/ui"
)

func newLocateCommand(manager *files.Manager) *cobra.Command {
	var (
		offsetFlag    int
		widthFlag     int
		heightFlag    int
		thresholdFlag int
	)

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Report which section is highlighted at a scroll offset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if offsetFlag < 0 {
				return fmt.Errorf("offset must not be negative")
			}
			content, err := manager.LoadContent()
			if err != nil {
				return err
			}

			layout := plainLayout(content, widthFlag, heightFlag, 0)
			offset := float64(offsetFlag)
			tr := tracker.New(tracker.Stacked{
				Extents: layout.Extents(),
				Offset:  func() float64 { return offset },
			}, tracker.WithThreshold(float64(thresholdFlag)))
			tr.Update()

			out := cmd.OutOrStdout()
			section, ok := tr.Active()
			if !ok {
				fmt.Fprintf(out, "No section crosses row %d at offset %d (document has %d rows)\n",
					thresholdFlag, offsetFlag, layout.Lines())
				return nil
			}

			fmt.Fprintf(out, "offset %d: %s\n", offsetFlag, section)
			printNav(cmd, section)
			return nil
		},
	}

	cmd.Flags().IntVar(&offsetFlag, "offset", 0, "Scroll offset in rows from the top of the document")
	cmd.Flags().IntVar(&widthFlag, "width", defaultWidth, "Viewport width in columns")
	cmd.Flags().IntVar(&heightFlag, "height", defaultHeight, "Viewport height in rows")
	cmd.Flags().IntVar(&thresholdFlag, "threshold", ui.DefaultThreshold, "Detection line in rows below the viewport top")

	return cmd
}
