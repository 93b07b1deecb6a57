// Package watch re-runs a computation whenever its input files change
// on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/johns/pavecheck/internal/log"
)

// Editors often emit several write events per save; events for the
// same file inside this window collapse into one recompute.
const debounce = 200 * time.Millisecond

// Run watches the given files and invokes recompute after any of them
// is written, created or renamed. recompute runs once up front. Errors
// from recompute are logged, not fatal; a broken intermediate save
// should not kill the watcher. Run returns when ctx is cancelled.
func Run(ctx context.Context, paths []string, recompute func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		watched[abs] = true
		// Watch the directory: editors that replace files via rename
		// drop the watch on the file itself.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
		}
	}

	if err := recompute(); err != nil {
		log.Error("initial compute: %v", err)
	}

	last := make(map[string]time.Time, len(paths))
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if now := time.Now(); now.Sub(last[abs]) < debounce {
				continue
			} else {
				last[abs] = now
			}

			log.Info("change detected: %s", abs)
			if err := recompute(); err != nil {
				log.Error("recompute: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch: %v", err)
		}
	}
}
