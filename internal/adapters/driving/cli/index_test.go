package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

func TestIndexCmd_Use(t *testing.T) {
	assert.Equal(t, "index <source> [path...]", indexCmd.Use)
}

func TestIndexCmd_CountsLeaves(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("index", "Local Music")

	require.NoError(t, err)
	assert.Contains(t, out, "Indexing Local Music...")
	assert.Contains(t, out, "Indexed Local Music: 4 items in")
}

func TestIndexCmd_Subtree(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("index", "Local Music", "Albums", "Kind of Blue")

	require.NoError(t, err)
	assert.Contains(t, out, "Indexed Kind of Blue: 3 items")
}

func TestIndexCmd_JSON(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("index", "Local Music", "--json")
	require.NoError(t, err)

	var report domain.IndexReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Local Music", report.Source)
	assert.Equal(t, 4, report.Leaves)
	assert.NotEmpty(t, report.ID)
}

func TestIndexCmd_NotFound(t *testing.T) {
	defer setupTestServices(t)()

	_, err := execute("index", "Spotify")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
