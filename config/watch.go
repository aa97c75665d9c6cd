package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/automoto/uitween/logx"
)

// ReloadDebounce is how long the watcher waits for writes to settle before parsing.
var ReloadDebounce = 250 * time.Millisecond

// watchStarted runs once the directory watch is registered. Tests hook it.
var watchStarted = func() {}

// Watch calls fn with the parsed file every time the file at path changes on disk,
// until ctx is done. Invalid files are logged and skipped. fn runs on a timer
// goroutine; hand the result to the game loop before calling Apply.
func Watch(ctx context.Context, path string, log logx.Logger, fn func(*File)) error {
	dir := filepath.Dir(path)
	file := filepath.Base(path)
	log = log.With(logx.String("component", "config"), logx.String("path", path))

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	var (
		mu    sync.Mutex
		timer *time.Timer
		last  []byte
	)
	// The caller already applied the current content; only real changes reload.
	if b, err := os.ReadFile(path); err == nil {
		last = b
	}

	// Watch the directory so editors that replace the file on save keep working.
	if err := w.Add(dir); err != nil {
		return err
	}
	watchStarted()
	reload := func() {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Warn("config read failed", logx.Err(err))
			return
		}
		mu.Lock()
		unchanged := last != nil && bytes.Equal(b, last)
		mu.Unlock()
		if unchanged {
			log.Debug("config unchanged; skipping reload")
			return
		}
		f, err := Parse(b)
		if err != nil {
			log.Warn("config rejected", logx.Err(err))
			return
		}
		mu.Lock()
		last = b
		mu.Unlock()
		log.Info("config reloaded")
		fn(f)
	}

	debounce := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(ReloadDebounce, reload)
	}

	log.Debug("config watcher started")
	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watch error", logx.Err(err))
		}
	}
}
