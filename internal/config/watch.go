package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow drops repeated events for the same file; editors often
// write a file several times per save.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to YAML files in a set of directories.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan string
	errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the given directories.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("config: cannot watch %s: %w", dir, err)
		}
	}

	watcher := &Watcher{
		watcher: w,
		events:  make(chan string, 16),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Events returns the channel of changed file paths.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors returns the channel of watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.events)
	defer close(w.errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isYAMLFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounceWindow {
				continue
			}
			last[event.Name] = now
			select {
			case w.events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// WatchHeartJump reloads the game tuning whenever the file at path changes.
// An empty path watches the file LoadHeartJump("") reads, or
// ~/.heartjump/configs/heartjump.yaml when only the embedded default applies.
// Only configs that load and validate are delivered; the newest one replaces
// any undelivered one. The returned channel closes when ctx is done.
func WatchHeartJump(ctx context.Context, path string, logger *log.Logger) (<-chan HeartJumpConfig, error) {
	path = WatchPath("heartjump", path)
	if path == "" {
		return nil, fmt.Errorf("config: cannot resolve user config directory")
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("config: cannot create directory %s: %w", dir, err)
	}

	w, err := NewWatcher(dir)
	if err != nil {
		return nil, err
	}

	out := make(chan HeartJumpConfig, 1)
	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", err)
			case name, ok := <-w.Events():
				if !ok {
					return
				}
				if filepath.Clean(name) != path {
					continue
				}
				cfg, err := LoadHeartJump(path)
				if err != nil {
					logger.Warn("ignoring invalid tuning", "path", path, "error", err)
					continue
				}
				logger.Info("tuning reloaded", "path", path)

				// Replace a pending config rather than block the watcher
				select {
				case <-out:
				default:
				}
				out <- cfg
			}
		}
	}()

	return out, nil
}
