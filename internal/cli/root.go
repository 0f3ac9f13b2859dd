package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/choonghwanlee/folio/internal/config"
	"github.com/choonghwanlee/folio/internal/files"
	"github.com/choonghwanlee/folio/internal/ui"
	"github.com/choonghwanlee/folio/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager, settings config.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folio",
		Short:   "Browse a personal portfolio from your terminal or serve it over HTTP.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := manager.LoadContent()
			if err != nil {
				return err
			}

			closeLog, err := redirectLog(settings.DebugLog)
			if err != nil {
				return err
			}
			defer closeLog()

			m := ui.NewModel(content)
			defer m.Close()

			log.Printf("starting tui with content from %s", manager.ContentPath())
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newSectionsCommand(),
		newShowCommand(manager),
		newLocateCommand(manager),
		newInitCommand(manager),
		newServeCommand(ctx, manager, settings),
		newVersionCommand(),
	)

	return cmd
}

// redirectLog sends log output to path while the TUI owns the terminal, or
// discards it when no path is configured.
func redirectLog(path string) (func(), error) {
	prevOut, prevPrefix := log.Writer(), log.Prefix()
	restore := func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	f, err := tea.LogToFile(path, "folio")
	if err != nil {
		restore()
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() {
		restore()
		f.Close()
	}, nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	settings := config.FromEnv()

	manager, err := files.NewManager(settings.Home)
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager, settings)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/folio/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
