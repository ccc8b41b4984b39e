package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// describe formats one node for listing.
// Containers end with a slash; ids follow in brackets.
func describe(src *domain.MediaSource) string {
	var b strings.Builder
	b.WriteString(src.Name)
	if src.Container {
		b.WriteString("/")
	}

	var attrs []string
	if src.Type != "" {
		attrs = append(attrs, src.Type)
	}
	switch {
	case src.Container:
		attrs = append(attrs, "cid="+src.ContainerID)
	case src.MediaID != "":
		attrs = append(attrs, "mid="+src.MediaID)
	}
	if src.Playable {
		attrs = append(attrs, "playable")
	}
	if len(attrs) > 0 {
		b.WriteString(" [" + strings.Join(attrs, ", ") + "]")
	}
	return b.String()
}

func outputChildren(cmd *cobra.Command, children []*domain.MediaSource) {
	if len(children) == 0 {
		cmd.Println("  (empty)")
		return
	}
	for _, child := range children {
		cmd.Printf("  %s\n", describe(child))
	}
}
