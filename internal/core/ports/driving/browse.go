package driving

import (
	"context"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

// BrowseService navigates the device's content tree.
type BrowseService interface {
	// Sources returns the device's top-level sources.
	// The list is fetched once and reused until Refresh.
	Sources(ctx context.Context) ([]*domain.MediaSource, error)

	// Source finds a top-level source by name, ignoring case.
	// Returns domain.ErrNotFound if no source has that name.
	Source(ctx context.Context, name string) (*domain.MediaSource, error)

	// Resolve walks a path of names starting at a top-level source.
	// Returns domain.ErrNotFound if any element is missing.
	Resolve(ctx context.Context, path []string) (*domain.MediaSource, error)

	// Children returns the node's immediate children, indexing it first if needed.
	Children(ctx context.Context, src *domain.MediaSource) ([]*domain.MediaSource, error)

	// ChildByName finds an immediate child by name, ignoring case.
	// A missing name is reported through the boolean, not an error.
	ChildByName(ctx context.Context, src *domain.MediaSource, name string) (*domain.MediaSource, bool, error)

	// Browse lists a non-container node without touching its index.
	Browse(ctx context.Context, src *domain.MediaSource) ([]*domain.MediaSource, error)

	// BrowseContainer lists one page of a container without touching its index.
	BrowseContainer(ctx context.Context, src *domain.MediaSource, start, end int) ([]*domain.MediaSource, error)

	// IndexAll indexes the whole subtree under the node and counts its leaves.
	IndexAll(ctx context.Context, src *domain.MediaSource) (*domain.IndexReport, error)

	// Refresh forgets the cached top-level sources.
	Refresh()
}
