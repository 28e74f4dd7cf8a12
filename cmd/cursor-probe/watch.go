package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/lixenwraith/winparam/engine"
)

// watchScene re-evaluates the scene whenever the file is written or replaced
// The parent directory is watched so editors that rename over the file are seen
func watchScene(ctx context.Context, world *engine.World, path string, out io.Writer, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "failed to resolve scene path")
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("scene changed", "path", abs, "op", event.Op.String())
			rep, err := evaluate(world, abs, logger)
			if err != nil {
				logger.Error("scene reload failed", "path", abs, "error", err)
				continue
			}
			rep.WriteTo(out)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("scene watcher error", "error", err)
		}
	}
}
