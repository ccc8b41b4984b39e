package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingKeys(t *testing.T) {
	assert.Equal(t, []string{"burst", "catalog", "page_size", "rate_limit"}, settingKeys())
}

func TestSettingsCmd_Show(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Page size: 50")
	assert.Contains(t, out, "Rate limit: 10/s")
	assert.Contains(t, out, "Burst: 5")
	assert.Contains(t, out, "Path: (not set)")
}

func TestSettingsCmd_SetThenGet(t *testing.T) {
	defer setupTestServices(t)()

	out, err := execute("settings", "set", "page_size", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Set page_size to 100")

	out, err = execute("settings", "get", "page_size")
	require.NoError(t, err)
	assert.Equal(t, "100\n", out)

	_, err = execute("settings", "set", "catalog", "/srv/library.toml")
	require.NoError(t, err)

	out, err = execute("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Path: /srv/library.toml")
}

func TestSettingsCmd_SetErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown key", []string{"set", "volume", "3"}, `unknown setting "volume"`},
		{"not a number", []string{"set", "burst", "many"}, "invalid value for burst"},
		{"not positive", []string{"set", "rate_limit", "0"}, "failed to save settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer setupTestServices(t)()

			_, err := execute(append([]string{"settings"}, tt.args...)...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSettingsCmd_Wizard(t *testing.T) {
	defer setupTestServices(t)()

	rootCmd.SetIn(strings.NewReader("25\n\nlots\n/srv/library.toml\n"))
	out, err := execute("settings", "wizard")
	require.NoError(t, err)
	assert.Contains(t, out, "All settings are valid and saved.")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, 25, settings.Index.PageSize)
	assert.InDelta(t, 10.0, settings.Commands.RateLimit, 0.001)
	assert.Equal(t, 5, settings.Commands.Burst)
	assert.Equal(t, "/srv/library.toml", settings.Catalog.Path)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 7, parseInt("", 7))
	assert.Equal(t, 7, parseInt("x", 7))
	assert.Equal(t, 7, parseInt("-1", 7))
	assert.Equal(t, 12, parseInt("12", 7))
}

func TestParseFloat(t *testing.T) {
	assert.InDelta(t, 2.5, parseFloat("", 2.5), 0.001)
	assert.InDelta(t, 2.5, parseFloat("0", 2.5), 0.001)
	assert.InDelta(t, 0.5, parseFloat("0.5", 2.5), 0.001)
}
