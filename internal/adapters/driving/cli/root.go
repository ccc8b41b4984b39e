// Package cli provides the heos command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/heos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/heos-cli/internal/logger"
)

// version is set by main from build flags.
var version = "dev"

// Services used by commands. Set by main before Execute.
var (
	browseService   driving.BrowseService
	settingsService driving.SettingsService
)

// Options carries the persistent flags to the setup hook.
type Options struct {
	Verbose     bool
	ConfigDir   string
	CatalogPath string
}

var (
	options Options
	setup   func(Options) error
)

var rootCmd = &cobra.Command{
	Use:   "heos",
	Short: "Browse the music sources of a HEOS device",
	Long: `heos walks the content tree of a HEOS device: its music sources,
the containers inside them and the playable items at the leaves.

Lookups by name ignore case. Containers are read page by page and cached,
so repeated lookups under an indexed container do not touch the device.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(options.Verbose)
		if setup == nil {
			return nil
		}
		return setup(options)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "log every command sent to the device")
	flags.StringVar(&options.ConfigDir, "config-dir", "", "configuration directory (default ~/.heos)")
	flags.StringVar(&options.CatalogPath, "catalog", "", "catalog file served as the device")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetSetup registers a hook that runs after flags are parsed and before
// any command. It is expected to build the services and install them.
func SetSetup(fn func(Options) error) {
	setup = fn
}

// SetBrowseService sets the browse service used by commands.
func SetBrowseService(s driving.BrowseService) {
	browseService = s
}

// SetSettingsService sets the settings service used by commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}
