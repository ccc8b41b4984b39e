package domain

import "time"

// IndexState tells whether a node's children have been fetched.
type IndexState int

const (
	// Unindexed means the children have never been fetched.
	Unindexed IndexState = iota

	// Indexed means the children were fetched, possibly yielding none.
	Indexed
)

// String returns the string representation of the state.
func (s IndexState) String() string {
	if s == Indexed {
		return "indexed"
	}
	return "unindexed"
}

// ChildIndex is the name-keyed cache of a node's immediate children.
// The zero value is Unindexed.
type ChildIndex struct {
	state   IndexState
	entries map[string]*MediaSource
	keys    []string
}

// NewChildIndex builds an Indexed cache from children in server order.
// Names are matched case-insensitively; when two children share a
// normalised name the later one replaces the earlier one in place.
func NewChildIndex(children []*MediaSource) ChildIndex {
	idx := ChildIndex{
		state:   Indexed,
		entries: make(map[string]*MediaSource, len(children)),
		keys:    make([]string, 0, len(children)),
	}
	for _, child := range children {
		key := NormaliseName(child.Name)
		if _, exists := idx.entries[key]; !exists {
			idx.keys = append(idx.keys, key)
		}
		idx.entries[key] = child
	}
	return idx
}

// State returns whether the cache has been built.
func (c ChildIndex) State() IndexState {
	return c.state
}

// Get looks up a child by name, ignoring case.
func (c ChildIndex) Get(name string) (*MediaSource, bool) {
	child, ok := c.entries[NormaliseName(name)]
	return child, ok
}

// Len returns the number of distinct child names.
func (c ChildIndex) Len() int {
	return len(c.keys)
}

// Children returns the cached children in first-seen order.
// Returns nil when Unindexed.
func (c ChildIndex) Children() []*MediaSource {
	if c.state == Unindexed {
		return nil
	}
	children := make([]*MediaSource, len(c.keys))
	for i, key := range c.keys {
		children[i] = c.entries[key]
	}
	return children
}

// IndexReport describes one recursive index run.
type IndexReport struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// Source is the display name of the indexed node.
	Source string `json:"source"`

	// Leaves is the number of non-container descendants.
	Leaves int `json:"leaves"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`
}
