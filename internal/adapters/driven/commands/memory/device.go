// Package memory provides an in-process device that answers browse
// commands from a tree of records held in memory.
//
// It behaves like the real device where the core can tell the
// difference: records come back in tree order, pages are cut from a
// half-open window, and child records leave out a sid or cid that
// repeats their parent's.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
	"github.com/custodia-labs/heos-cli/internal/core/ports/driven"
)

// Ensure Device implements the interfaces.
var (
	_ driven.Commands      = (*Device)(nil)
	_ driven.SourceCatalog = (*Device)(nil)
)

// Command names, used for error reporting and call counting.
const (
	CommandGetMusicSources = "browse/get_music_sources"
	CommandBrowse          = "browse/browse"
)

// Node is one record in the device tree.
type Node struct {
	// Item is the full record, with its own sid and cid filled in.
	Item domain.RawItem

	// Children are listed when the node is browsed.
	Children []*Node
}

type containerKey struct {
	sid int
	cid string
}

// Device serves browse commands from an in-memory tree.
type Device struct {
	mu         sync.RWMutex
	sources    []*Node
	bySID      map[int]*Node
	containers map[containerKey]*Node
	calls      map[string]int
}

// NewDevice creates a device serving the given top-level sources.
func NewDevice(sources []*Node) (*Device, error) {
	d := &Device{calls: make(map[string]int)}
	if err := d.Replace(sources); err != nil {
		return nil, err
	}
	return d, nil
}

// Replace swaps the served tree. Every top-level source needs a unique
// numeric sid and every container a cid unique within its source.
func (d *Device) Replace(sources []*Node) error {
	bySID := make(map[int]*Node, len(sources))
	containers := make(map[containerKey]*Node)

	for _, src := range sources {
		sid, err := strconv.Atoi(src.Item.SID)
		if err != nil {
			return fmt.Errorf("%w: source %q needs a numeric sid, got %q",
				domain.ErrInvalidInput, src.Item.Name, src.Item.SID)
		}
		if _, dup := bySID[sid]; dup {
			return fmt.Errorf("%w: duplicate sid %d", domain.ErrInvalidInput, sid)
		}
		bySID[sid] = src
		if err := registerContainers(sid, src, containers); err != nil {
			return err
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.sources = sources
	d.bySID = bySID
	d.containers = containers
	return nil
}

// registerContainers indexes every container under node by (sid, cid).
func registerContainers(sid int, node *Node, containers map[containerKey]*Node) error {
	if node.Item.IsContainer() {
		if node.Item.CID == "" {
			return fmt.Errorf("%w: container %q has no cid", domain.ErrInvalidInput, node.Item.Name)
		}
		key := containerKey{sid: sid, cid: node.Item.CID}
		if _, dup := containers[key]; dup {
			return fmt.Errorf("%w: duplicate cid %q in sid %d", domain.ErrInvalidInput, node.Item.CID, sid)
		}
		containers[key] = node
	}
	for _, child := range node.Children {
		if err := registerContainers(sid, child, containers); err != nil {
			return err
		}
	}
	return nil
}

// MusicSources returns the top-level source records.
func (d *Device) MusicSources(ctx context.Context) ([]domain.RawItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls[CommandGetMusicSources]++

	items := make([]domain.RawItem, len(d.sources))
	for i, src := range d.sources {
		items[i] = src.Item
	}
	return items, nil
}

// Browse lists the children of a top-level source.
func (d *Device) Browse(ctx context.Context, sourceID int) ([]domain.RawItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls[CommandBrowse]++

	src, ok := d.bySID[sourceID]
	if !ok {
		return nil, &domain.CommandError{
			Command: CommandBrowse,
			ID:      domain.ErrIDInvalidID,
			Text:    fmt.Sprintf("unknown sid %d", sourceID),
		}
	}
	return served(src.Item, src.Children), nil
}

// BrowseContainer lists records start through end-1 of a container.
func (d *Device) BrowseContainer(
	ctx context.Context,
	sourceID int,
	containerID string,
	start, end int,
) ([]domain.RawItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls[CommandBrowse]++

	if start < 0 || end < start {
		return nil, &domain.CommandError{
			Command: CommandBrowse,
			ID:      domain.ErrIDWrongArguments,
			Text:    fmt.Sprintf("invalid range %d,%d", start, end),
		}
	}

	node, ok := d.containers[containerKey{sid: sourceID, cid: containerID}]
	if !ok {
		return nil, &domain.CommandError{
			Command: CommandBrowse,
			ID:      domain.ErrIDInvalidID,
			Text:    fmt.Sprintf("unknown container sid=%d cid=%s", sourceID, containerID),
		}
	}

	if start >= len(node.Children) {
		return []domain.RawItem{}, nil
	}
	if end > len(node.Children) {
		end = len(node.Children)
	}
	return served(node.Item, node.Children[start:end]), nil
}

// Calls returns how many times a command has been served.
func (d *Device) Calls(command string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.calls[command]
}

// served copies child records, dropping ids that repeat the parent's.
func served(parent domain.RawItem, children []*Node) []domain.RawItem {
	items := make([]domain.RawItem, len(children))
	for i, child := range children {
		item := child.Item
		if item.SID == parent.SID {
			item.SID = ""
		}
		if parent.CID != "" && item.CID == parent.CID {
			item.CID = ""
		}
		items[i] = item
	}
	return items
}
