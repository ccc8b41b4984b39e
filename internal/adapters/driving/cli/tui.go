package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/messages"
)

// CatalogWatcher blocks watching the catalog file, calling onReload after
// each successful reload, until ctx is cancelled.
type CatalogWatcher func(ctx context.Context, onReload func()) error

var catalogWatcher CatalogWatcher

// SetCatalogWatcher registers the watcher used by long-running commands.
func SetCatalogWatcher(w CatalogWatcher) {
	catalogWatcher = w
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for browsing the device.

Controls:
  ↑/k, ↓/j         - Move
  Enter, →/l       - Open source or container
  Esc, ←/h         - Back
  /                - Jump to a child by name
  i                - Index everything below the current node
  r                - Reload
  ?                - Toggle help
  q                - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if browseService == nil {
		return errors.New("browse service not configured")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("the TUI needs an interactive terminal")
	}

	app, err := tui.NewApp(&tui.Ports{
		Browse:   browseService,
		Settings: settingsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := contextWithCancel(cmd)
	defer cancel()
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	stop := startCatalogWatcher(cmd, func() {
		p.Send(messages.CatalogReloaded{})
	})
	defer stop()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func contextWithCancel(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithCancel(ctx)
}
