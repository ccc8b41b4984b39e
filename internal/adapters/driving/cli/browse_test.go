package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

func TestBrowseCmd_Flags(t *testing.T) {
	assert.Equal(t, "browse <source> [path...]", browseCmd.Use)
	for _, name := range []string{"start", "end", "json"} {
		assert.NotNil(t, browseCmd.Flags().Lookup(name), name)
	}
}

func TestBrowseCmd_RequiresSource(t *testing.T) {
	_, err := execute("browse")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestBrowseCmd_Source(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("browse", "local music")

	require.NoError(t, err)
	assert.Contains(t, out, "Local Music [heos_server]")
	assert.Contains(t, out, "  Albums/ [container, cid=albums]")
	assert.Contains(t, out, "  Loose Track [song, mid=t4, playable]")
}

func TestBrowseCmd_Path(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("browse", "Local Music", "ALBUMS", "kind of blue")

	require.NoError(t, err)
	assert.Contains(t, out, "Kind of Blue/ [album, cid=album-kob]")
	assert.Contains(t, out, "So What")
	assert.Contains(t, out, "Freddie Freeloader")
	assert.Contains(t, out, "Blue in Green")
}

func TestBrowseCmd_JSON(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("browse", "Local Music", "Albums", "Kind of Blue", "--json")
	require.NoError(t, err)

	var infos []domain.SourceInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "t1", infos[0].MediaID)
	assert.Equal(t, "album-kob", infos[0].ContainerID, "cid inherited from parent")
	require.NotNil(t, infos[0].SourceID)
	assert.Equal(t, 1024, *infos[0].SourceID)
}

func TestBrowseCmd_Page(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("browse", "Local Music", "Albums", "Kind of Blue", "--start", "1", "--end", "3")

	require.NoError(t, err)
	assert.NotContains(t, out, "So What")
	assert.Contains(t, out, "Freddie Freeloader")
	assert.Contains(t, out, "Blue in Green")
}

func TestBrowseCmd_PageOfSource(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("browse", "Local Music", "--end", "10")

	require.NoError(t, err)
	assert.Contains(t, out, "Albums/")
	assert.Contains(t, out, "Loose Track")
}

func TestBrowseCmd_InvalidPage(t *testing.T) {
	defer setupTestServices(t)()

	_, err := execute("browse", "Local Music", "Albums", "--start", "5", "--end", "2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid page [5, 2)")
}

func TestBrowseCmd_Leaf(t *testing.T) {
	defer setupTestServices(t)()

	_, err := execute("browse", "Local Music", "Loose Track")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Loose Track is not a container")
}

func TestBrowseCmd_NotFound(t *testing.T) {
	defer setupTestServices(t)()

	_, err := execute("browse", "Local Music", "Singles")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBrowseCmd_EmptySource(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("browse", "TuneIn")

	require.NoError(t, err)
	assert.Contains(t, out, "(empty)")
}
