package mcp

import (
	"github.com/custodia-labs/heos-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Browse walks the device's content tree.
	Browse driving.BrowseService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Browse == nil {
		return ErrMissingBrowseService
	}
	return nil
}
