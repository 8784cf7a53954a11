package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/LegacyCodeHQ/cozy/convert"
	"github.com/LegacyCodeHQ/cozy/internal/diag"
	"github.com/LegacyCodeHQ/cozy/scan"
)

const debounceInterval = 300 * time.Millisecond

func watchDir(ctx context.Context, fs afero.Fs, opts convert.Options) error {
	watcher, err := newDirWatcher(opts.Dir)
	if err != nil {
		return err
	}
	defer watcher.Close()

	diag.OrDiscard(opts.Logger).Infof("Watching %s (Ctrl+C to stop)", opts.Dir)
	return watchAndConvert(ctx, watcher, fs, opts)
}

func newDirWatcher(dir string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return watcher, nil
}

// watchAndConvert re-runs the conversion after matching files settle. Runs
// happen on this goroutine only, so they never overlap.
func watchAndConvert(ctx context.Context, watcher *fsnotify.Watcher, fs afero.Fs, opts convert.Options) error {
	logger := diag.OrDiscard(opts.Logger)

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = convert.DefaultExtensions
	}
	normalized := scan.NormalizeExtensions(exts)

	rerun := make(chan struct{}, 1)
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantChange(event, normalized) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "err", err)

		case <-rerun:
			runOnce(fs, opts, logger)
		}
	}
}

func runOnce(fs afero.Fs, opts convert.Options, logger *log.Logger) {
	if _, err := convert.Run(fs, opts); err != nil {
		logger.Error("conversion failed", "err", err)
	}
}

func isRelevantChange(event fsnotify.Event, normalized []string) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	return scan.HasExtension(filepath.Base(event.Name), normalized)
}
