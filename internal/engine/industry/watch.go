package industry

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 500 * time.Millisecond

// Watch reloads the rule file at path whenever it changes until ctx is
// done. The parent directory is watched so editors that replace the file
// atomically are picked up. A file that fails to parse keeps the previous
// table in place.
func (r *Resolver) Watch(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create rules watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	go func() {
		defer w.Close()
		var timer *time.Timer
		reload := make(chan struct{}, 1)
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceDelay, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})
			case <-reload:
				rules, err := LoadRules(path)
				if err != nil {
					r.log.Error("industry rules reload failed", slog.String("path", path), slog.Any("error", err))
					continue
				}
				r.SetRules(rules)
				r.log.Info("industry rules reloaded", slog.String("path", path), slog.Int("industries", len(rules.profiles)))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				r.log.Warn("industry rules watcher error", slog.Any("error", err))
			}
		}
	}()
	return nil
}
