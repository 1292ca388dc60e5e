package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"funcscan/internal/extractor"
)

// debounceTime batches rapid-fire editor events into one re-extraction.
const debounceTime = 500 * time.Millisecond

// Watch re-extracts files as they change until the context is cancelled.
// Changed files are debounced and processed with a single engine; records
// are appended to out as JSON Lines.
func (r *Runner) Watch(ctx context.Context, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addDirectoriesRecursively(watcher, r.root); err != nil {
		return err
	}

	engine := extractor.NewEngine(r.logger)
	encoder := json.NewEncoder(out)

	var debounceTimer *time.Timer
	extractCh := make(chan struct{}, 1)
	changed := make(map[string]bool)

	r.logger.Info("watching for changes", "root", r.root)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			// New directories need to be watched too.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addDirectoriesRecursively(watcher, event.Name); err != nil {
						r.logger.Warn("failed to watch new directory",
							"path", event.Name, "error", err)
					}
					continue
				}
			}

			if _, ok := extractor.LanguageForPath(event.Name); !ok {
				continue
			}
			changed[event.Name] = true

			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}
			debounceTimer = time.AfterFunc(debounceTime, func() {
				select {
				case extractCh <- struct{}{}:
				default:
				}
			})

		case <-extractCh:
			for path := range changed {
				records, err := engine.ExtractFile(path)
				if err != nil {
					r.logger.Warn("extraction failed", "path", path, "error", err)
					continue
				}
				for _, rec := range records {
					if err := encoder.Encode(rec); err != nil {
						return err
					}
				}
				r.logger.Info("re-extracted", "path", path, "records", len(records))
			}
			changed = make(map[string]bool)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watcher error", "error", err)
		}
	}
}

// addDirectoriesRecursively registers root and every subdirectory with the
// watcher, skipping hidden directories.
func addDirectoriesRecursively(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Unreadable entries are skipped, not fatal.
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
