package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
	"github.com/custodia-labs/heos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/heos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/heos-cli/internal/logger"
)

// Ensure BrowseService implements the interface.
var _ driving.BrowseService = (*BrowseService)(nil)

// BrowseService navigates the device's content tree starting from its
// top-level sources.
type BrowseService struct {
	indexer *Indexer
	catalog driven.SourceCatalog

	mu      sync.Mutex
	sources []*domain.MediaSource
}

// NewBrowseService creates a new browse service.
func NewBrowseService(indexer *Indexer, catalog driven.SourceCatalog) *BrowseService {
	return &BrowseService{
		indexer: indexer,
		catalog: catalog,
	}
}

// Sources returns the device's top-level sources.
func (s *BrowseService) Sources(ctx context.Context) ([]*domain.MediaSource, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}

	s.mu.Lock()
	cached := s.sources
	s.mu.Unlock()
	if cached != nil {
		return append([]*domain.MediaSource(nil), cached...), nil
	}

	items, err := s.catalog.MusicSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("get music sources: %w", err)
	}

	sources := make([]*domain.MediaSource, 0, len(items))
	for _, item := range items {
		src, err := domain.NewMediaSource(item)
		if err != nil {
			return nil, fmt.Errorf("get music sources: %w", err)
		}
		sources = append(sources, src)
	}
	logger.Debug("loaded %d music sources", len(sources))

	s.mu.Lock()
	s.sources = sources
	s.mu.Unlock()

	return append([]*domain.MediaSource(nil), sources...), nil
}

// Source finds a top-level source by name, ignoring case.
func (s *BrowseService) Source(ctx context.Context, name string) (*domain.MediaSource, error) {
	sources, err := s.Sources(ctx)
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		if strings.EqualFold(src.Name, name) {
			return src, nil
		}
	}
	return nil, fmt.Errorf("%w: source %q", domain.ErrNotFound, name)
}

// Resolve walks a path of names starting at a top-level source.
func (s *BrowseService) Resolve(ctx context.Context, path []string) (*domain.MediaSource, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	node, err := s.Source(ctx, path[0])
	if err != nil {
		return nil, err
	}

	for i, name := range path[1:] {
		child, ok, err := s.indexer.ChildByName(ctx, node, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, strings.Join(path[:i+2], "/"))
		}
		node = child
	}
	return node, nil
}

// Children returns the node's immediate children in device order.
func (s *BrowseService) Children(ctx context.Context, src *domain.MediaSource) ([]*domain.MediaSource, error) {
	if !src.Indexed() {
		if err := s.indexer.BuildIndex(ctx, src); err != nil {
			return nil, err
		}
	}
	return src.Index().Children(), nil
}

// ChildByName finds an immediate child by name, ignoring case.
func (s *BrowseService) ChildByName(
	ctx context.Context,
	src *domain.MediaSource,
	name string,
) (*domain.MediaSource, bool, error) {
	return s.indexer.ChildByName(ctx, src, name)
}

// Browse lists a non-container node without touching its index.
func (s *BrowseService) Browse(ctx context.Context, src *domain.MediaSource) ([]*domain.MediaSource, error) {
	return s.indexer.Browse(ctx, src)
}

// BrowseContainer lists one page of a container without touching its index.
func (s *BrowseService) BrowseContainer(
	ctx context.Context,
	src *domain.MediaSource,
	start, end int,
) ([]*domain.MediaSource, error) {
	return s.indexer.BrowseContainer(ctx, src, start, end)
}

// IndexAll indexes the whole subtree under the node and counts its leaves.
func (s *BrowseService) IndexAll(ctx context.Context, src *domain.MediaSource) (*domain.IndexReport, error) {
	report := &domain.IndexReport{
		ID:        uuid.New().String(),
		Source:    src.Name,
		StartedAt: time.Now(),
	}
	logger.Section("Index " + src.Name)

	leaves, err := s.indexer.IndexAll(ctx, src)
	if err != nil {
		return nil, err
	}

	report.Leaves = leaves
	report.Duration = time.Since(report.StartedAt)
	return report, nil
}

// Refresh forgets the cached top-level sources.
// Call it when the device reports that its sources changed.
func (s *BrowseService) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = nil
}
