package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/heos-cli/internal/adapters/driven/commands/memory"
	"github.com/custodia-labs/heos-cli/internal/logger"
)

// Watcher reloads a catalog file when it changes on disk.
// The directory is watched rather than the file so editors that save by
// renaming a temp file are picked up.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the catalog's directory.
// Changes are only delivered once Run is called.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, watcher: fw}, nil
}

// Run blocks until ctx is done, calling reload with the parsed catalog
// after every change. Files that fail to parse are logged and skipped.
func (w *Watcher) Run(ctx context.Context, reload func([]*memory.Node)) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			nodes, err := Load(w.path)
			if err != nil {
				logger.Warn("catalog reload skipped: %v", err)
				continue
			}
			logger.Info("catalog reloaded: %d sources", len(nodes))
			reload(nodes)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("catalog watcher: %v", err)
		}
	}
}
