// Package watcher reloads the termy configuration when the config file
// changes on disk, using fsnotify with debouncing.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/termyhq/termy/internal/config"
)

// ErrClosed is returned when operations are called on a closed Watcher.
var ErrClosed = errors.New("watcher: watcher is closed")

// ReloadFunc receives the freshly parsed config after a change settles.
// The previous configuration is replaced wholesale, never patched.
type ReloadFunc func(result *config.Result)

// Watcher watches one config file. Editors typically replace the file
// by rename, so the parent directory is watched and events are filtered
// to the config file's name.
type Watcher struct {
	fs        *fsnotify.Watcher
	debouncer *Debouncer
	path      string
	onReload  ReloadFunc
	logger    *log.Logger

	mu     sync.Mutex
	closed bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger; the default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(w *Watcher) { w.logger = logger }
}

// WithDebouncer replaces the default debouncer.
func WithDebouncer(d *Debouncer) Option {
	return func(w *Watcher) {
		if d != nil {
			w.debouncer = d
		}
	}
}

// Watch starts watching the config file at path. onReload is called,
// debounced, after each settled change; it runs on the watcher's
// goroutine.
func Watch(path string, onReload ReloadFunc, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:        fs,
		debouncer: NewDebouncer(DefaultDebounceDuration),
		path:      abs,
		onReload:  onReload,
		logger:    log.New(os.Stderr),
	}
	w.logger.SetLevel(log.FatalLevel)
	for _, opt := range opts {
		opt(w)
	}

	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

// Path returns the watched config file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and cancels any pending reload.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	w.debouncer.Cancel()
	return w.fs.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.logger.Debug("config changed", "path", w.path, "op", event.Op.String())
	w.debouncer.Trigger(w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	result, err := config.ParseFile(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		return
	}
	for _, d := range result.Diagnostics {
		w.logger.Warn("config diagnostic", "kind", d.Kind, "message", d.String())
	}
	w.logger.Info("config reloaded", "path", w.path, "diagnostics", len(result.Diagnostics))

	if w.onReload != nil {
		w.onReload(result)
	}
}
