package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/heos-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/heos-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so assistants can browse the device.

By default the server speaks JSON-RPC over stdio. Use --port to serve
streamable HTTP instead, for example to test with MCP Inspector.

Examples:
  # Stdio mode (default)
  heos mcp serve

  # HTTP mode
  heos mcp serve --port 8080

When a catalog file is in use it is watched for changes and the source
list is reloaded while the server runs.`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{Browse: browseService})
	if err != nil {
		return err
	}

	if browseService != nil {
		stop := startCatalogWatcher(cmd, browseService.Refresh)
		defer stop()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// startCatalogWatcher runs the registered catalog watcher until the
// returned stop function is called. It is a no-op when none is set.
func startCatalogWatcher(cmd *cobra.Command, onReload func()) func() {
	if catalogWatcher == nil {
		return func() {}
	}

	ctx, cancel := contextWithCancel(cmd)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := catalogWatcher(ctx, onReload); err != nil && !errors.Is(err, ctx.Err()) {
			logger.Warn("catalog watcher stopped: %v", err)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
