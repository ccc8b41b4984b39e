package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

var (
	browseStart int
	browseEnd   int
	browseJSON  bool
)

var browseCmd = &cobra.Command{
	Use:   "browse <source> [path...]",
	Short: "List the children of a source or container",
	Long: `Lists the immediate children of the node reached by walking the path
from a top-level source. Names are matched ignoring case.

Without --end the node is indexed and all children are listed. With --end
one page [start, end) is requested from the device and the index is left
untouched.`,
	Example: `  heos browse "Local Music"
  heos browse "Local Music" Albums "Kind of Blue"
  heos browse "Local Music" Albums --start 50 --end 100`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().IntVar(&browseStart, "start", 0, "first record of the page")
	browseCmd.Flags().IntVar(&browseEnd, "end", 0, "end of the page, exclusive (0 = list everything)")
	browseCmd.Flags().BoolVar(&browseJSON, "json", false, "output children as JSON")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	ctx := cmd.Context()
	node, err := browseService.Resolve(ctx, args)
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}
	if len(args) > 1 && !node.Container {
		return fmt.Errorf("browse failed: %s is not a container", node.Name)
	}

	var children []*domain.MediaSource
	switch {
	case browseEnd > 0 && node.Container:
		if browseStart < 0 || browseEnd <= browseStart {
			return fmt.Errorf("invalid page [%d, %d)", browseStart, browseEnd)
		}
		children, err = browseService.BrowseContainer(ctx, node, browseStart, browseEnd)
	case browseEnd > 0:
		children, err = browseService.Browse(ctx, node)
	default:
		children, err = browseService.Children(ctx, node)
	}
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}

	if browseJSON {
		return outputJSON(cmd, domain.Infos(children))
	}

	cmd.Printf("%s\n", describe(node))
	outputChildren(cmd, children)
	return nil
}
