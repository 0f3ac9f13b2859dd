package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/choonghwanlee/folio/internal/config"
	"github.com/choonghwanlee/folio/internal/files"
	"github.com/choonghwanlee/folio/internal/web"
)

func newServeCommand(ctx context.Context, manager *files.Manager, settings config.Settings) *cobra.Command {
	var addrFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio as a web page.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := manager.LoadContent()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return web.Serve(runCtx, addrFlag, content)
		},
	}

	cmd.Flags().StringVar(&addrFlag, "addr", settings.Addr, "Listen address (env FOLIO_ADDR)")

	return cmd
}
