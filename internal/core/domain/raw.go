package domain

// Wire values for boolean-like record attributes.
const (
	wireTrue = "true"
	wireYes  = "yes"
)

// RawItem is one record returned by a browse command.
// All attributes are strings on the wire; an empty string means the
// attribute was absent.
type RawItem struct {
	// Name is the display name. Required.
	Name string `json:"name" toml:"name"`

	// ImageURL points at artwork for the item.
	ImageURL string `json:"image_url,omitempty" toml:"image_url,omitempty"`

	// Type is the item kind (e.g., "music_service", "container", "song").
	Type string `json:"type,omitempty" toml:"type,omitempty"`

	// SID is the numeric source id, encoded as a string.
	SID string `json:"sid,omitempty" toml:"sid,omitempty"`

	// Available is "true" when the source can be used.
	Available string `json:"available,omitempty" toml:"available,omitempty"`

	// ServiceUsername is the account signed in to a music service.
	ServiceUsername string `json:"service_username,omitempty" toml:"service_username,omitempty"`

	// Container is "yes" when the item holds paginated children.
	Container string `json:"container,omitempty" toml:"container,omitempty"`

	// CID is the container id.
	CID string `json:"cid,omitempty" toml:"cid,omitempty"`

	// MID is the media id.
	MID string `json:"mid,omitempty" toml:"mid,omitempty"`

	// Playable is "yes" when the item can be played.
	Playable string `json:"playable,omitempty" toml:"playable,omitempty"`
}

// IsAvailable decodes the available attribute.
func (r RawItem) IsAvailable() bool {
	return r.Available == wireTrue
}

// IsContainer decodes the container attribute.
func (r RawItem) IsContainer() bool {
	return r.Container == wireYes
}

// IsPlayable decodes the playable attribute.
func (r RawItem) IsPlayable() bool {
	return r.Playable == wireYes
}

// EncodeFlag returns the wire form of a yes/no attribute.
func EncodeFlag(v bool) string {
	if v {
		return wireYes
	}
	return "no"
}

// EncodeBool returns the wire form of a true/false attribute.
func EncodeBool(v bool) string {
	if v {
		return wireTrue
	}
	return "false"
}
