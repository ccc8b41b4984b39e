// Package tui provides an interactive terminal browser for a HEOS device's
// content tree. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/heos-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Browse walks the content tree.
	Browse driving.BrowseService

	// Settings is shown on the help screen. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Browse == nil {
		return ErrMissingBrowseService
	}
	return nil
}
