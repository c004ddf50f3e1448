package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch re-renders opts.scene each time it is written until ctx is done.
// The scene's directory is watched rather than the file itself so editors
// that replace the file on save keep triggering renders.
func (c *CLI) watch(ctx context.Context, opts renderOpts) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	scene, err := filepath.Abs(opts.scene)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(scene)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(scene), err)
	}
	c.Logger.Info("watching", "scene", opts.scene)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isSceneChange(ev, scene) {
				continue
			}
			c.Logger.Debug("scene changed", "op", ev.Op.String())
			if err := c.render(opts); err != nil {
				c.Logger.Error("render failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.Logger.Warn("watcher", "err", err)
		}
	}
}

func isSceneChange(ev fsnotify.Event, scene string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	return err == nil && name == scene
}
