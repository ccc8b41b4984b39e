// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBrowser walks the content tree.
	ViewBrowser ViewType = iota
	// ViewHelp lists the keybindings.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBrowser:
		return "browser"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Quit signals the application should exit.
type Quit struct{}

// SourcesLoaded carries the device's top-level sources.
type SourcesLoaded struct {
	Sources []*domain.MediaSource
	Err     error
}

// ChildrenLoaded carries the children of a node.
type ChildrenLoaded struct {
	Parent   *domain.MediaSource
	Children []*domain.MediaSource
	Err      error
}

// ChildFound carries the result of a lookup by name.
// Parent is nil when the lookup was among the top-level sources.
type ChildFound struct {
	Parent *domain.MediaSource
	Name   string
	Child  *domain.MediaSource
	Found  bool
	Err    error
}

// IndexCompleted carries the report of an index run.
type IndexCompleted struct {
	Node   *domain.MediaSource
	Report *domain.IndexReport
	Err    error
}

// CatalogReloaded signals that the device's sources changed.
type CatalogReloaded struct{}
