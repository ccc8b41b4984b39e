package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
	"github.com/custodia-labs/heos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/heos-cli/internal/logger"
)

// Indexer browses nodes through the Commands port and maintains their
// child indexes.
//
// Calls are sequential: one round trip at a time per operation. Two
// callers building the same node concurrently may both reach the device;
// whichever finishes last owns the node's index.
type Indexer struct {
	commands driven.Commands
	pageSize int
}

// NewIndexer creates an indexer that requests pageSize records per
// container page. A non-positive pageSize falls back to domain.DefaultPageSize.
func NewIndexer(commands driven.Commands, pageSize int) *Indexer {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Indexer{
		commands: commands,
		pageSize: pageSize,
	}
}

// PageSize returns the number of records requested per container page.
func (x *Indexer) PageSize() int {
	return x.pageSize
}

// Browse lists the children of a non-container node in device order.
// It does not modify the node's index.
func (x *Indexer) Browse(ctx context.Context, src *domain.MediaSource) ([]*domain.MediaSource, error) {
	if src.Container {
		return nil, fmt.Errorf("%w: %s is a container, use BrowseContainer instead", domain.ErrInvalidOperation, src)
	}
	sid, ok := src.ID()
	if !ok {
		return nil, fmt.Errorf("%w: %s has no source id", domain.ErrInvalidOperation, src)
	}

	logger.Debug("browse sid=%d (%s)", sid, src.Name)
	items, err := x.commands.Browse(ctx, sid)
	if err != nil {
		return nil, err
	}
	return x.wrap(src, items)
}

// BrowseContainer lists records start through end-1 of a container node.
// The caller drives pagination. It does not modify the node's index.
func (x *Indexer) BrowseContainer(
	ctx context.Context,
	src *domain.MediaSource,
	start, end int,
) ([]*domain.MediaSource, error) {
	if !src.Container {
		return nil, fmt.Errorf("%w: %s is not a container, use Browse instead", domain.ErrInvalidOperation, src)
	}
	sid, ok := src.ID()
	if !ok {
		return nil, fmt.Errorf("%w: %s has no source id", domain.ErrInvalidOperation, src)
	}

	logger.Debug("browse sid=%d cid=%s range=[%d,%d) (%s)", sid, src.ContainerID, start, end, src.Name)
	items, err := x.commands.BrowseContainer(ctx, sid, src.ContainerID, start, end)
	if err != nil {
		return nil, err
	}
	return x.wrap(src, items)
}

// wrap turns raw records into child nodes, filling in the parent's ids.
func (x *Indexer) wrap(parent *domain.MediaSource, items []domain.RawItem) ([]*domain.MediaSource, error) {
	children := make([]*domain.MediaSource, 0, len(items))
	for _, item := range items {
		child, err := domain.NewMediaSource(parent.InheritIDs(item))
		if err != nil {
			return nil, fmt.Errorf("browsing %s: %w", parent.Name, err)
		}
		children = append(children, child)
	}
	return children, nil
}

// BuildIndex fetches the node's immediate children and replaces its index.
//
// Containers are read page by page until the device returns an empty
// page; the offset advances by the number of records actually returned.
// Other nodes are read with a single Browse. Command errors are returned
// unchanged and leave the previous index in place.
func (x *Indexer) BuildIndex(ctx context.Context, src *domain.MediaSource) error {
	var children []*domain.MediaSource

	if src.Container {
		offset := 0
		for {
			page, err := x.BrowseContainer(ctx, src, offset, offset+x.pageSize)
			if err != nil {
				return err
			}
			if len(page) == 0 {
				break
			}
			children = append(children, page...)
			offset += len(page)
		}
	} else {
		var err error
		children, err = x.Browse(ctx, src)
		if err != nil {
			return err
		}
	}

	src.SetIndex(domain.NewChildIndex(children))
	logger.Debug("indexed %s: %d children", src.Name, len(children))
	return nil
}

// ChildByName finds an immediate child by name, ignoring case.
// The node is indexed first if it has never been indexed. A missing name
// returns false with a nil error.
func (x *Indexer) ChildByName(
	ctx context.Context,
	src *domain.MediaSource,
	name string,
) (*domain.MediaSource, bool, error) {
	if !src.Indexed() {
		if err := x.BuildIndex(ctx, src); err != nil {
			return nil, false, err
		}
	}
	child, ok := src.Index().Get(name)
	return child, ok, nil
}

// IndexAll indexes every container under src, src included, and returns
// the number of non-container descendants.
//
// The walk is depth-first in device order and makes one round trip per
// page at every level, so large libraries take time and memory. Once it
// returns, ChildByName anywhere in the subtree is served from the cache.
// An error stops the walk; indexes already built are kept.
func (x *Indexer) IndexAll(ctx context.Context, src *domain.MediaSource) (int, error) {
	leaves := 0
	pending := []*domain.MediaSource{src}

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		node := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if err := x.BuildIndex(ctx, node); err != nil {
			return 0, err
		}

		children := node.Index().Children()
		// Push in reverse so the first child is visited next.
		for i := len(children) - 1; i >= 0; i-- {
			if children[i].Container {
				pending = append(pending, children[i])
			} else {
				leaves++
			}
		}
	}

	logger.Info("indexed %s: %d items", src.Name, leaves)
	return leaves, nil
}
