package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

// ListSourcesInput is the input schema for the list_sources tool.
type ListSourcesInput struct{}

// SourcesOutput is the output schema for the list_sources tool.
type SourcesOutput struct {
	Sources []domain.SourceInfo `json:"sources"`
	Count   int                 `json:"count"`
}

// BrowseInput is the input schema for the browse tool.
type BrowseInput struct {
	Path  []string `json:"path" jsonschema:"names from a top-level source down to the node, matched ignoring case"`
	Start int      `json:"start,omitempty" jsonschema:"first record of the page (containers only)"`
	End   int      `json:"end,omitempty" jsonschema:"end of the page, exclusive; 0 lists every child"`
}

// BrowseOutput is the output schema for the browse tool.
type BrowseOutput struct {
	Node     domain.SourceInfo   `json:"node"`
	Children []domain.SourceInfo `json:"children"`
	Count    int                 `json:"count"`
}

// IndexInput is the input schema for the index_source tool.
type IndexInput struct {
	Path []string `json:"path" jsonschema:"names from a top-level source down to the subtree to index"`
}

// IndexOutput is the output schema for the index_source tool.
type IndexOutput struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	Items      int    `json:"items"`
	StartedAt  string `json:"started_at"`
	DurationMS int64  `json:"duration_ms"`
}

// FindChildInput is the input schema for the find_child tool.
type FindChildInput struct {
	Path []string `json:"path" jsonschema:"names from a top-level source down to the parent node"`
	Name string   `json:"name" jsonschema:"child name, matched ignoring case"`
}

// FindChildOutput is the output schema for the find_child tool.
type FindChildOutput struct {
	Found bool               `json:"found"`
	Child *domain.SourceInfo `json:"child,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sources",
		Description: "List the music sources of the HEOS device",
	}, s.handleListSources)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "browse",
		Description: "List the children of a source or container reached by a path of names",
	}, s.handleBrowse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "index_source",
		Description: "Index every container under a node and count the playable items",
	}, s.handleIndex)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_child",
		Description: "Look up an immediate child of a node by name, ignoring case",
	}, s.handleFindChild)
}

func (s *Server) handleListSources(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListSourcesInput,
) (*mcp.CallToolResult, SourcesOutput, error) {
	sources, err := s.ports.Browse.Sources(ctx)
	if err != nil {
		return nil, SourcesOutput{}, err
	}
	return nil, SourcesOutput{
		Sources: domain.Infos(sources),
		Count:   len(sources),
	}, nil
}

func (s *Server) handleBrowse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BrowseInput,
) (*mcp.CallToolResult, BrowseOutput, error) {
	node, err := s.ports.Browse.Resolve(ctx, input.Path)
	if err != nil {
		return nil, BrowseOutput{}, err
	}

	var children []*domain.MediaSource
	switch {
	case input.End > 0 && node.Container:
		if input.Start < 0 || input.End <= input.Start {
			return nil, BrowseOutput{}, fmt.Errorf("%w: page [%d, %d)", domain.ErrInvalidInput, input.Start, input.End)
		}
		children, err = s.ports.Browse.BrowseContainer(ctx, node, input.Start, input.End)
	case input.End > 0:
		children, err = s.ports.Browse.Browse(ctx, node)
	default:
		children, err = s.ports.Browse.Children(ctx, node)
	}
	if err != nil {
		return nil, BrowseOutput{}, err
	}

	return nil, BrowseOutput{
		Node:     node.Info(),
		Children: domain.Infos(children),
		Count:    len(children),
	}, nil
}

func (s *Server) handleIndex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IndexInput,
) (*mcp.CallToolResult, IndexOutput, error) {
	node, err := s.ports.Browse.Resolve(ctx, input.Path)
	if err != nil {
		return nil, IndexOutput{}, err
	}

	report, err := s.ports.Browse.IndexAll(ctx, node)
	if err != nil {
		return nil, IndexOutput{}, err
	}

	return nil, IndexOutput{
		ID:         report.ID,
		Source:     report.Source,
		Items:      report.Leaves,
		StartedAt:  report.StartedAt.Format(time.RFC3339),
		DurationMS: report.Duration.Milliseconds(),
	}, nil
}

func (s *Server) handleFindChild(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindChildInput,
) (*mcp.CallToolResult, FindChildOutput, error) {
	parent, err := s.ports.Browse.Resolve(ctx, input.Path)
	if err != nil {
		return nil, FindChildOutput{}, err
	}

	child, ok, err := s.ports.Browse.ChildByName(ctx, parent, input.Name)
	if err != nil {
		return nil, FindChildOutput{}, err
	}
	if !ok {
		return nil, FindChildOutput{Found: false}, nil
	}

	info := child.Info()
	return nil, FindChildOutput{Found: true, Child: &info}, nil
}
