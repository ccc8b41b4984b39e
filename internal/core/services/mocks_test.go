package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

// containerCall records one BrowseContainer request.
type containerCall struct {
	sourceID    int
	containerID string
	start, end  int
}

// mockCommands is a mock implementation of driven.Commands.
// Browse answers from browse keyed by sid. BrowseContainer answers from
// pages keyed by cid, one slice per call, then empty pages.
type mockCommands struct {
	browse     map[int][]domain.RawItem
	pages      map[string][][]domain.RawItem
	browseErr  error
	pageErr    error
	failOnPage int

	browseCalls    []int
	containerCalls []containerCall
}

func newMockCommands() *mockCommands {
	return &mockCommands{
		browse:     make(map[int][]domain.RawItem),
		pages:      make(map[string][][]domain.RawItem),
		failOnPage: -1,
	}
}

func (m *mockCommands) Browse(_ context.Context, sourceID int) ([]domain.RawItem, error) {
	m.browseCalls = append(m.browseCalls, sourceID)
	if m.browseErr != nil {
		return nil, m.browseErr
	}
	return clone(m.browse[sourceID]), nil
}

func (m *mockCommands) BrowseContainer(
	_ context.Context,
	sourceID int,
	containerID string,
	start, end int,
) ([]domain.RawItem, error) {
	call := len(m.callsFor(containerID))
	m.containerCalls = append(m.containerCalls, containerCall{sourceID, containerID, start, end})
	if m.pageErr != nil && (m.failOnPage < 0 || m.failOnPage == call) {
		return nil, m.pageErr
	}
	pages := m.pages[containerID]
	if call >= len(pages) {
		return []domain.RawItem{}, nil
	}
	return clone(pages[call]), nil
}

func (m *mockCommands) callsFor(containerID string) []containerCall {
	var calls []containerCall
	for _, c := range m.containerCalls {
		if c.containerID == containerID {
			calls = append(calls, c)
		}
	}
	return calls
}

func clone(items []domain.RawItem) []domain.RawItem {
	return append([]domain.RawItem(nil), items...)
}

// songs returns n playable records named prefix 0..n-1.
func songs(prefix string, n int) []domain.RawItem {
	items := make([]domain.RawItem, n)
	for i := range items {
		items[i] = domain.RawItem{
			Name:     fmt.Sprintf("%s %d", prefix, i),
			Type:     "song",
			Playable: "yes",
			MID:      fmt.Sprintf("%s-%d", prefix, i),
		}
	}
	return items
}

// folder returns a container record.
func folder(name, cid string) domain.RawItem {
	return domain.RawItem{Name: name, Type: "container", Container: "yes", CID: cid}
}

// mockCatalog is a mock implementation of driven.SourceCatalog.
type mockCatalog struct {
	items []domain.RawItem
	err   error
	calls int
}

func (m *mockCatalog) MusicSources(_ context.Context) ([]domain.RawItem, error) {
	m.calls++
	return m.items, m.err
}
