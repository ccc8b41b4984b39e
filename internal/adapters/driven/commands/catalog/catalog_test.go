package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

func TestLoad_TestdataCatalog(t *testing.T) {
	nodes, err := Load(filepath.Join("testdata", "catalog.toml"))

	require.NoError(t, err)
	require.Len(t, nodes, 2)

	local := nodes[0]
	assert.Equal(t, "Local Music", local.Item.Name)
	assert.Equal(t, "1024", local.Item.SID)
	assert.True(t, local.Item.IsAvailable())
	require.Len(t, local.Children, 2)

	albums := local.Children[0]
	assert.Equal(t, "Albums", albums.Item.Name)
	assert.Equal(t, "1024", albums.Item.SID, "sid is taken from the source")
	assert.True(t, albums.Item.IsContainer())

	kob := albums.Children[0]
	require.Len(t, kob.Children, 2)
	assert.Equal(t, "So What", kob.Children[0].Item.Name)
	assert.Equal(t, "kob-1", kob.Children[0].Item.MID)

	tunein := nodes[1]
	assert.Equal(t, "listener@example.com", tunein.Item.ServiceUsername)
	require.Len(t, tunein.Children, 1)
	assert.Equal(t, "3", tunein.Children[0].Item.SID)
}

func TestLoadDevice(t *testing.T) {
	device, err := LoadDevice(filepath.Join("testdata", "catalog.toml"))
	require.NoError(t, err)

	items, err := device.BrowseContainer(context.Background(), 1024, "album-kob", 0, 10)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Freddie Freeloader", items[1].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not toml", data: "[[source"},
		{name: "missing name", data: "[[source]]\nsid = \"1\"\n"},
		{name: "nested missing name", data: "[[source]]\nname = \"A\"\nsid = \"1\"\n[[source.item]]\ncid = \"x\"\n"},
		{name: "integer sid", data: "[[source]]\nname = \"A\"\nsid = 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	nodes, err := Parse(nil)

	require.NoError(t, err)
	assert.Empty(t, nodes)
}
