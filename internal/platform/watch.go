package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// EventReason says why Watch produced a new render.
type EventReason string

const (
	ReasonStart    EventReason = "START"
	ReasonConfig   EventReason = "CONFIG"
	ReasonRollover EventReason = "ROLLOVER"
)

// Event is one render produced by Watch.
// Err is set when the render failed (e.g. a broken config file); the
// watcher keeps running and Output is empty.
type Event struct {
	Reason    EventReason
	Year      int
	Output    string
	Err       error
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %d: %v", e.Reason, e.Year, e.Err)
	}
	return fmt.Sprintf("%s %d", e.Reason, e.Year)
}

// Watch renders the current year immediately and again whenever the config
// file changes or the local date rolls over. Today is marked unless
// WithMarkToday(false) is given. The returned channel is closed once ctx is
// cancelled.
func Watch(ctx context.Context, opts ...Option) (<-chan Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	o := newOptions(opts)
	o.markDefault = true

	var watcher *fsnotify.Watcher
	configPath := ""
	if o.configPath != "" {
		abs, err := filepath.Abs(o.configPath)
		if err != nil {
			return nil, err
		}
		configPath = abs

		watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("failed to create watcher: %w", err)
		}
		// Watch the directory: editors often replace the file instead of writing it.
		if err := watcher.Add(filepath.Dir(configPath)); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", configPath, err)
		}
	}

	out := make(chan Event, 1)
	w := &watchLoop{opts: o, out: out, watcher: watcher, configPath: configPath}

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		o.logger.Error("watch loop panic", "error", err)
	}))

	return out, nil
}

type watchLoop struct {
	opts       *options
	out        chan<- Event
	watcher    *fsnotify.Watcher
	configPath string
	lastDay    string
}

func (w *watchLoop) run(ctx context.Context) error {
	defer close(w.out)
	if w.watcher != nil {
		defer w.watcher.Close()
	}

	ticker := time.NewTicker(w.opts.interval)
	defer ticker.Stop()

	var fsEvents <-chan fsnotify.Event
	var fsErrors <-chan error
	if w.watcher != nil {
		fsEvents = w.watcher.Events
		fsErrors = w.watcher.Errors
	}

	w.emit(ctx, ReasonStart)

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsEvents:
			if !ok {
				fsEvents = nil
				continue
			}
			if filepath.Clean(event.Name) != w.configPath {
				continue
			}
			w.opts.logger.Debug("config event", "name", event.Name, "op", event.Op.String())
			settle = time.After(w.opts.debounce)

		case err, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			w.opts.logger.Error("watcher error", "error", err)

		case <-settle:
			settle = nil
			w.emit(ctx, ReasonConfig)

		case <-ticker.C:
			if w.dayKey() != w.lastDay {
				w.emit(ctx, ReasonRollover)
			}
		}
	}
}

func (w *watchLoop) dayKey() string {
	var cfg Config
	if w.configPath != "" {
		// A broken file falls back to defaults here; emit reports the error.
		cfg, _ = LoadConfig(w.configPath)
	}
	return w.opts.clock().In(w.opts.locationFor(cfg)).Format(time.DateOnly)
}

func (w *watchLoop) emit(ctx context.Context, reason EventReason) {
	w.lastDay = w.dayKey()

	event := Event{Reason: reason, Timestamp: w.opts.clock().Unix()}
	year, err := w.opts.currentYear()
	if err == nil {
		event.Year = year
		event.Output, err = w.opts.generate(year)
	}
	event.Err = err

	if err != nil {
		w.opts.logger.Warn("render failed", "reason", string(reason), "error", err)
	} else {
		w.opts.logger.Debug("rendered", "reason", string(reason), "year", event.Year)
	}

	select {
	case w.out <- event:
	case <-ctx.Done():
	}
}
