package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

var treeDepth int

var treeCmd = &cobra.Command{
	Use:   "tree <source> [path...]",
	Short: "Print the content tree under a node",
	Long: `Prints the node and its descendants down to --depth levels.
Each container printed is indexed on the way.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 2, "levels to descend")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}
	if treeDepth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", treeDepth)
	}

	ctx := cmd.Context()
	node, err := browseService.Resolve(ctx, args)
	if err != nil {
		return fmt.Errorf("tree failed: %w", err)
	}

	cmd.Println(describe(node))
	if err := printTree(ctx, cmd, node, 1); err != nil {
		return fmt.Errorf("tree failed: %w", err)
	}
	return nil
}

func printTree(ctx context.Context, cmd *cobra.Command, node *domain.MediaSource, depth int) error {
	children, err := browseService.Children(ctx, node)
	if err != nil {
		return err
	}

	indent := strings.Repeat("  ", depth)
	for _, child := range children {
		cmd.Printf("%s%s\n", indent, describe(child))
		if child.Container && depth < treeDepth {
			if err := printTree(ctx, cmd, child, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
