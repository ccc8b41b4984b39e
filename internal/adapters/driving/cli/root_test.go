package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configmemory "github.com/custodia-labs/heos-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/heos-cli/internal/adapters/driven/commands/memory"
	"github.com/custodia-labs/heos-cli/internal/core/domain"
	"github.com/custodia-labs/heos-cli/internal/core/services"
)

func testLibrary() []*memory.Node {
	return []*memory.Node{
		{
			Item: domain.RawItem{Name: "Local Music", SID: "1024", Type: "heos_server", Available: "true"},
			Children: []*memory.Node{
				{
					Item: domain.RawItem{Name: "Albums", Type: "container", Container: "yes", CID: "albums"},
					Children: []*memory.Node{
						{
							Item: domain.RawItem{Name: "Kind of Blue", Type: "album", Container: "yes", CID: "album-kob"},
							Children: []*memory.Node{
								{Item: domain.RawItem{Name: "So What", Type: "song", Playable: "yes", MID: "t1"}},
								{Item: domain.RawItem{Name: "Freddie Freeloader", Type: "song", Playable: "yes", MID: "t2"}},
								{Item: domain.RawItem{Name: "Blue in Green", Type: "song", Playable: "yes", MID: "t3"}},
							},
						},
					},
				},
				{Item: domain.RawItem{Name: "Loose Track", Type: "song", Playable: "yes", MID: "t4"}},
			},
		},
		{
			Item: domain.RawItem{Name: "TuneIn", SID: "3", Type: "music_service", Available: "false"},
		},
	}
}

// setupTestServices installs services backed by an in-memory device and
// returns a function restoring the previous state.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	device, err := memory.NewDevice(testLibrary())
	require.NoError(t, err)

	origBrowse, origSettings := browseService, settingsService
	browseService = services.NewBrowseService(services.NewIndexer(device, 2), device)
	settingsService = services.NewSettingsService(configmemory.NewConfigStore())

	return func() {
		browseService, settingsService = origBrowse, origSettings
		resetFlags()
	}
}

// resetFlags restores flag variables, which outlive a single Execute.
func resetFlags() {
	options = Options{}
	sourcesJSON = false
	browseStart, browseEnd, browseJSON = 0, 0, false
	indexJSON = false
	treeDepth = 2
}

// execute runs the root command with args and returns everything it printed.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "heos", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "ignore case")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	verbose := flags.Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	assert.NotNil(t, flags.Lookup("config-dir"))
	assert.NotNil(t, flags.Lookup("catalog"))
}

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"sources", "browse", "index", "tree", "settings", "mcp", "tui", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_SetupReceivesFlags(t *testing.T) {
	defer resetFlags()
	defer SetSetup(nil)

	var got Options
	SetSetup(func(o Options) error {
		got = o
		return nil
	})

	_, err := execute("version", "--config-dir", "/tmp/heos", "--catalog", "library.toml")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/heos", got.ConfigDir)
	assert.Equal(t, "library.toml", got.CatalogPath)
	assert.False(t, got.Verbose)
}

func TestRootCmd_SetupErrorStopsCommand(t *testing.T) {
	defer resetFlags()
	defer SetSetup(nil)

	setupErr := errors.New("no catalog")
	SetSetup(func(Options) error { return setupErr })

	out, err := execute("version")

	assert.ErrorIs(t, err, setupErr)
	assert.NotContains(t, out, "heos version")
}

func TestSetters(t *testing.T) {
	origBrowse, origSettings, origVersion := browseService, settingsService, version
	defer func() {
		browseService, settingsService, version = origBrowse, origSettings, origVersion
	}()

	svc := services.NewSettingsService(configmemory.NewConfigStore())
	SetSettingsService(svc)
	SetBrowseService(nil)
	SetVersion("1.2.3")

	assert.Same(t, svc, settingsService)
	assert.Nil(t, browseService)
	assert.Equal(t, "1.2.3", version)
}

func TestCommands_WithoutServices(t *testing.T) {
	origBrowse, origSettings := browseService, settingsService
	browseService, settingsService = nil, nil
	defer func() {
		browseService, settingsService = origBrowse, origSettings
		resetFlags()
	}()

	tests := [][]string{
		{"sources"},
		{"browse", "Local Music"},
		{"index", "Local Music"},
		{"tree", "Local Music"},
		{"settings", "show"},
		{"tui"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not configured")
		})
	}
}
