package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var indexJSON bool

var indexCmd = &cobra.Command{
	Use:   "index <source> [path...]",
	Short: "Index a subtree and count its playable items",
	Long: `Walks every container under the node, depth first, and builds each
child index along the way. Reports the number of non-container items found.

Every page of every container is requested from the device, so indexing a
large library takes a while.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	ctx := cmd.Context()
	node, err := browseService.Resolve(ctx, args)
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	if !indexJSON {
		cmd.Printf("Indexing %s...\n", node.Name)
	}

	report, err := browseService.IndexAll(ctx, node)
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	if indexJSON {
		return outputJSON(cmd, report)
	}

	cmd.Printf("Indexed %s: %d items in %s\n", report.Source, report.Leaves, report.Duration.Round(time.Millisecond))
	return nil
}
