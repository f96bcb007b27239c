package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/versa-format/versa/debug"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the quiet period after the last change to the file
// before Watch reloads it.
var WatchDebounce = 100 * time.Millisecond

// Watch reloads the file whenever it is written or created, passing the
// result of each reload to onChange, until ctx is done.
// The directory of the file is watched so that editors replacing the file
// are seen.
func (l *Loader) Watch(ctx context.Context, onChange func(error)) error {
	abs, err := filepath.Abs(l.path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("could not watch %s: %w", filepath.Dir(abs), err)
	}
	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if debug.Load() {
				debug.Logf("watch %s: %s\n", l.path, ev.Op)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(WatchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			onChange(l.Reload())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onChange(err)
		}
	}
}
