// Command heos browses the music sources of a HEOS device.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/heos-cli/internal/adapters/driven/commands/catalog"
	"github.com/custodia-labs/heos-cli/internal/adapters/driven/commands/memory"
	"github.com/custodia-labs/heos-cli/internal/adapters/driven/commands/ratelimit"
	"github.com/custodia-labs/heos-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/heos-cli/internal/core/services"
	"github.com/custodia-labs/heos-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetSetup(setup)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup wires the driven adapters into the core services once flags
// are parsed.
func setup(opts cli.Options) error {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	catalogPath := opts.CatalogPath
	if catalogPath == "" {
		catalogPath = settings.Catalog.Path
	}

	var device *memory.Device
	if catalogPath != "" {
		device, err = catalog.LoadDevice(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		logger.Debug("serving catalog %s", catalogPath)
		cli.SetCatalogWatcher(watchCatalog(catalogPath, device))
	} else {
		device, err = memory.NewDevice(nil)
		if err != nil {
			return err
		}
		logger.Debug("no catalog configured, serving an empty device")
	}

	commands := ratelimit.New(device, settings.Commands)
	indexer := services.NewIndexer(commands, settings.Index.PageSize)

	cli.SetBrowseService(services.NewBrowseService(indexer, device))
	cli.SetSettingsService(settingsService)
	return nil
}

// watchCatalog swaps the device's tree whenever the catalog file changes.
func watchCatalog(path string, device *memory.Device) cli.CatalogWatcher {
	return func(ctx context.Context, onReload func()) error {
		w, err := catalog.NewWatcher(path)
		if err != nil {
			return err
		}
		return w.Run(ctx, func(nodes []*memory.Node) {
			if err := device.Replace(nodes); err != nil {
				logger.Warn("catalog rejected: %v", err)
				return
			}
			onReload()
		})
	}
}
