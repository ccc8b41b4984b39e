package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

var sourcesJSON bool

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the device's music sources",
	Args:  cobra.NoArgs,
	RunE:  runSources,
}

func init() {
	sourcesCmd.Flags().BoolVar(&sourcesJSON, "json", false, "output sources as JSON")
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	sources, err := browseService.Sources(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}

	if sourcesJSON {
		return outputJSON(cmd, domain.Infos(sources))
	}

	if len(sources) == 0 {
		cmd.Println("No sources found.")
		return nil
	}

	cmd.Println("Music sources:")
	for _, src := range sources {
		sid := "-"
		if id, ok := src.ID(); ok {
			sid = fmt.Sprintf("%d", id)
		}
		status := "available"
		if !src.Available {
			status = "unavailable"
		}
		cmd.Printf("  %-24s sid=%-6s %-16s %s\n", src.Name, sid, src.Type, status)
		if src.ServiceUsername != "" {
			cmd.Printf("  %-24s signed in as %s\n", "", src.ServiceUsername)
		}
	}
	return nil
}
