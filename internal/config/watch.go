package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Result is one outcome of reloading a watched file.
type Result struct {
	Config *Config
	Err    error
}

// Watch reloads path whenever it changes and sends the result on the
// returned channel. The directory is watched rather than the file so
// rename-on-save editors keep working. The channel closes when ctx is
// done. Receivers should drain it from the goroutine that owns the
// button; Watch itself never touches engine state.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan Result, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Result, 1)
	go func() {
		defer close(out)
		defer w.Close()

		// Idle until the first event. A stopped timer never delivers a
		// stale value, so there is nothing to drain.
		timer := time.NewTimer(time.Hour)
		timer.Stop()

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				timer.Reset(debounce)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				send(ctx, out, Result{Err: fmt.Errorf("watch config: %w", err)})
			case <-timer.C:
				cfg, err := LoadFromFile(abs)
				send(ctx, out, Result{Config: cfg, Err: err})
			}
		}
	}()
	return out, nil
}

func send(ctx context.Context, out chan<- Result, r Result) {
	select {
	case out <- r:
	case <-ctx.Done():
	}
}
