package domain

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// MediaSource is one addressable node in a device's content tree: a
// top-level source, a container, or a playable item.
//
// Attributes are fixed after construction. The child index is the only
// mutable part and is replaced as a whole each time the node is indexed.
// A root is built as a struct literal; children come from NewMediaSource.
type MediaSource struct {
	// SourceID is the numeric source id. Nil when the node has none.
	SourceID *int

	// ContainerID identifies the container within its source.
	ContainerID string

	// MediaID identifies a playable item.
	MediaID string

	// Name is the display name.
	Name string

	// ImageURL points at artwork for the node.
	ImageURL string

	// Type is the node kind as reported by the device.
	Type string

	// Container is true when children must be fetched page by page.
	Container bool

	// Playable is true when the node can be played.
	Playable bool

	// Available is true when the source can currently be used.
	Available bool

	// ServiceUsername is the account signed in to a music service.
	ServiceUsername string

	mu    sync.RWMutex
	index ChildIndex
}

// NewMediaSource builds a node from a raw browse record.
func NewMediaSource(item RawItem) (*MediaSource, error) {
	if item.Name == "" {
		return nil, fmt.Errorf("%w: item has no name", ErrInvalidInput)
	}

	src := &MediaSource{
		ContainerID:     item.CID,
		MediaID:         item.MID,
		Name:            item.Name,
		ImageURL:        item.ImageURL,
		Type:            item.Type,
		Container:       item.IsContainer(),
		Playable:        item.IsPlayable(),
		Available:       item.IsAvailable(),
		ServiceUsername: item.ServiceUsername,
	}

	if item.SID != "" {
		sid, err := strconv.Atoi(item.SID)
		if err != nil {
			return nil, fmt.Errorf("%w: item %q has non-numeric sid %q", ErrInvalidInput, item.Name, item.SID)
		}
		src.SourceID = &sid
	}

	return src, nil
}

// InheritIDs fills the record's sid and cid from this node when the record
// omits them. The device leaves out parent identity on child records.
func (s *MediaSource) InheritIDs(item RawItem) RawItem {
	if s.SourceID != nil && item.SID == "" {
		item.SID = strconv.Itoa(*s.SourceID)
	}
	if s.ContainerID != "" && item.CID == "" {
		item.CID = s.ContainerID
	}
	return item
}

// ID returns the source id and whether the node has one.
func (s *MediaSource) ID() (int, bool) {
	if s.SourceID == nil {
		return 0, false
	}
	return *s.SourceID, true
}

// Index returns the current child index.
func (s *MediaSource) Index() ChildIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// SetIndex replaces the child index.
func (s *MediaSource) SetIndex(idx ChildIndex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = idx
}

// Indexed returns true once the node's children have been indexed.
func (s *MediaSource) Indexed() bool {
	return s.Index().State() == Indexed
}

// String returns a user-readable representation of the node.
func (s *MediaSource) String() string {
	return fmt.Sprintf("<%s (%s)>", s.Name, s.Type)
}

// SourceIDPtr returns a pointer to id, for building roots.
func SourceIDPtr(id int) *int {
	return &id
}

// NormaliseName returns the index key for a display name.
func NormaliseName(name string) string {
	return strings.ToLower(name)
}

// SourceInfo is a snapshot of a node's attributes for output.
type SourceInfo struct {
	Name            string `json:"name"`
	Type            string `json:"type,omitempty"`
	SourceID        *int   `json:"sid,omitempty"`
	ContainerID     string `json:"cid,omitempty"`
	MediaID         string `json:"mid,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
	Container       bool   `json:"container"`
	Playable        bool   `json:"playable"`
	Available       bool   `json:"available"`
	ServiceUsername string `json:"service_username,omitempty"`
	Indexed         bool   `json:"indexed"`
}

// Info returns the node's attributes and index state.
func (s *MediaSource) Info() SourceInfo {
	return SourceInfo{
		Name:            s.Name,
		Type:            s.Type,
		SourceID:        s.SourceID,
		ContainerID:     s.ContainerID,
		MediaID:         s.MediaID,
		ImageURL:        s.ImageURL,
		Container:       s.Container,
		Playable:        s.Playable,
		Available:       s.Available,
		ServiceUsername: s.ServiceUsername,
		Indexed:         s.Indexed(),
	}
}

// Infos returns Info for each node.
func Infos(sources []*MediaSource) []SourceInfo {
	infos := make([]SourceInfo, len(sources))
	for i, src := range sources {
		infos[i] = src.Info()
	}
	return infos
}
