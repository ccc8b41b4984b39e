// Package mcp provides an MCP (Model Context Protocol) server adapter for heos.
// It lets AI assistants list a device's music sources and walk its content tree.
package mcp

import "errors"

// ErrMissingBrowseService is returned when the browse service is not provided.
var ErrMissingBrowseService = errors.New("mcp: browse service is required")
