package driven

import (
	"context"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

// Commands issues browse requests to a device.
// Each call is one request/response round trip. Implementations return
// records in the order the device sent them.
type Commands interface {
	// Browse lists the contents of a non-container source.
	Browse(ctx context.Context, sourceID int) ([]domain.RawItem, error)

	// BrowseContainer lists one page of a container.
	// The window is half-open: records start through end-1.
	// An empty result means the container has no records at or after start.
	BrowseContainer(ctx context.Context, sourceID int, containerID string, start, end int) ([]domain.RawItem, error)
}

// SourceCatalog lists the device's top-level music sources.
type SourceCatalog interface {
	// MusicSources returns the top-level sources in device order.
	MusicSources(ctx context.Context) ([]domain.RawItem, error)
}
