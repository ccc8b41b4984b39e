package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
	"github.com/custodia-labs/heos-cli/internal/core/ports/driving"
)

// Ensure mockBrowseService implements the interface.
var _ driving.BrowseService = (*mockBrowseService)(nil)

// mockBrowseService is a mock implementation of driving.BrowseService.
// Resolve walks children keyed by the lowercased parent name.
type mockBrowseService struct {
	sources  []*domain.MediaSource
	children map[string][]*domain.MediaSource
	report   *domain.IndexReport
	err      error

	pageCalls   [][2]int
	browseCalls int
}

func (m *mockBrowseService) Sources(_ context.Context) ([]*domain.MediaSource, error) {
	return m.sources, m.err
}

func (m *mockBrowseService) Source(_ context.Context, name string) (*domain.MediaSource, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, src := range m.sources {
		if strings.EqualFold(src.Name, name) {
			return src, nil
		}
	}
	return nil, fmt.Errorf("%w: source %q", domain.ErrNotFound, name)
}

func (m *mockBrowseService) Resolve(ctx context.Context, path []string) (*domain.MediaSource, error) {
	if len(path) == 0 {
		return nil, domain.ErrInvalidInput
	}
	node, err := m.Source(ctx, path[0])
	if err != nil {
		return nil, err
	}
	for _, name := range path[1:] {
		child, ok, _ := m.ChildByName(ctx, node, name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
		}
		node = child
	}
	return node, nil
}

func (m *mockBrowseService) Children(_ context.Context, src *domain.MediaSource) ([]*domain.MediaSource, error) {
	return m.children[strings.ToLower(src.Name)], m.err
}

func (m *mockBrowseService) ChildByName(
	_ context.Context,
	src *domain.MediaSource,
	name string,
) (*domain.MediaSource, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	for _, child := range m.children[strings.ToLower(src.Name)] {
		if strings.EqualFold(child.Name, name) {
			return child, true, nil
		}
	}
	return nil, false, nil
}

func (m *mockBrowseService) Browse(_ context.Context, src *domain.MediaSource) ([]*domain.MediaSource, error) {
	m.browseCalls++
	return m.children[strings.ToLower(src.Name)], m.err
}

func (m *mockBrowseService) BrowseContainer(
	_ context.Context,
	src *domain.MediaSource,
	start, end int,
) ([]*domain.MediaSource, error) {
	m.pageCalls = append(m.pageCalls, [2]int{start, end})
	all := m.children[strings.ToLower(src.Name)]
	if start >= len(all) {
		return nil, m.err
	}
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], m.err
}

func (m *mockBrowseService) IndexAll(_ context.Context, src *domain.MediaSource) (*domain.IndexReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.report != nil {
		return m.report, nil
	}
	return &domain.IndexReport{ID: "run-1", Source: src.Name, StartedAt: time.Now()}, nil
}

func (m *mockBrowseService) Refresh() {}

// newLibrary returns a mock with one source, one album and two tracks.
func newLibrary() *mockBrowseService {
	local := &domain.MediaSource{Name: "Local Music", Type: "heos_server", SourceID: domain.SourceIDPtr(1024), Available: true}
	albums := &domain.MediaSource{
		Name: "Albums", Type: "container", SourceID: domain.SourceIDPtr(1024), ContainerID: "albums", Container: true,
	}
	return &mockBrowseService{
		sources: []*domain.MediaSource{local},
		children: map[string][]*domain.MediaSource{
			"local music": {albums},
			"albums": {
				{Name: "So What", Type: "song", SourceID: domain.SourceIDPtr(1024), ContainerID: "albums", MediaID: "t1", Playable: true},
				{Name: "Blue in Green", Type: "song", SourceID: domain.SourceIDPtr(1024), ContainerID: "albums", MediaID: "t2", Playable: true},
			},
		},
	}
}
