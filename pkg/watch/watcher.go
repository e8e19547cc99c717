package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches bibliography files for changes and triggers re-lints.
// It implements debouncing to prevent re-lint storms.
//
// Watches are placed on the parent directories of the requested files, not
// the files themselves: editors replace files on save, and a watch on the
// old inode would be lost after the first write.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *FileWatcherConfig
	debounce *Debouncer

	// files holds the absolute paths of the watched bibliographies.
	files map[string]bool

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// FileWatcherConfig contains configuration for the file watcher.
type FileWatcherConfig struct {
	// Files is the list of bibliography files to watch.
	Files []string

	// DebounceInterval is the time to wait before triggering a re-lint
	// after detecting file changes (default: 100ms)
	DebounceInterval time.Duration

	// Extensions is the list of file extensions to watch (e.g., ".bib")
	Extensions []string

	// SkipHidden controls whether to skip hidden files
	SkipHidden bool
}

// DefaultFileWatcherConfig returns the default watcher configuration.
func DefaultFileWatcherConfig() *FileWatcherConfig {
	return &FileWatcherConfig{
		DebounceInterval: 100 * time.Millisecond,
		Extensions:       []string{".bib"},
		SkipHidden:       true,
	}
}

// NewFileWatcher creates a new file watcher.
func NewFileWatcher(config *FileWatcherConfig, logger *slog.Logger) (*FileWatcher, error) {
	if config == nil {
		config = DefaultFileWatcherConfig()
	}

	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  watcher,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		files:    make(map[string]bool),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	return fw, nil
}

// Watch starts watching for file changes and triggers onChange after each
// debounced change. This is a blocking operation that runs until the context
// is cancelled or Stop is called.
func (fw *FileWatcher) Watch(ctx context.Context, onChange func() error) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	fw.running = true
	fw.mu.Unlock()

	defer func() {
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		close(fw.doneCh)
	}()

	if err := fw.addFiles(fw.config.Files); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.logger.Info("File watcher started",
		"files", len(fw.files),
		"debounce_ms", fw.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			fw.logger.Info("File watcher stopped (context cancelled)")
			return nil

		case <-fw.stopCh:
			fw.logger.Info("File watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !fw.shouldProcessEvent(event) {
				continue
			}

			fw.logger.Debug("File event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			fw.debounce.Trigger(func() {
				fw.logger.Info("Re-linting",
					"path", event.Name,
					"op", event.Op.String(),
				)

				if err := onChange(); err != nil {
					fw.logger.Error("Re-lint failed",
						"error", err,
					)
				}
			})

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}

			fw.logger.Error("File watcher error", "error", err)
			// Continue watching despite errors
		}
	}
}

// Stop stops the file watcher.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if !fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.mu.Unlock()

	// Signal stop
	close(fw.stopCh)

	// Wait for watcher to stop
	<-fw.doneCh

	// Stop debouncer
	fw.debounce.Stop()

	// Close fsnotify watcher
	if err := fw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	return nil
}

// addFiles registers the files' parent directories with the watcher.
func (fw *FileWatcher) addFiles(files []string) error {
	dirs := make(map[string]bool)

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", file, err)
		}
		fw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", dir, err)
		}
		fw.logger.Debug("Watching directory", "path", dir)
	}

	return nil
}

// shouldProcessEvent determines if an event should trigger a re-lint.
func (fw *FileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	// Skip events we don't care about
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	// Check file extension
	ext := strings.ToLower(filepath.Ext(event.Name))
	if !fw.hasValidExtension(ext) {
		return false
	}

	// Skip hidden files if configured
	if fw.config.SkipHidden && strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}

	// Only watched files count; the parent directory watch also reports
	// siblings.
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return fw.files[abs]
}

// hasValidExtension checks if a file extension should be watched.
func (fw *FileWatcher) hasValidExtension(ext string) bool {
	for _, validExt := range fw.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}

// Debouncer implements event debouncing to prevent re-lint storms.
// It collects rapid events and triggers the callback only after a quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopCh   chan struct{}
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Trigger triggers the debouncer with a new event.
// The callback will be called after the debounce interval if no new events occur.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Store the callback
	d.callback = callback

	// Reset or create timer
	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
			d.mu.Lock()
			cb := d.callback
			d.mu.Unlock()

			if cb != nil {
				cb()
			}
		}
	})
}

// Stop stops the debouncer and cancels any pending callbacks.
func (d *Debouncer) Stop() {
	close(d.stopCh)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
