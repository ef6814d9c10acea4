package catalog

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/facetdrawer/internal/logging"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to
// settle before reloading. Many editors write a file in several steps.
const DefaultDebounce = 100 * time.Millisecond

// Reload is the outcome of reloading the catalog after a change on disk.
// Exactly one of Catalog and Err is set.
type Reload struct {
	Catalog *Catalog
	Err     error
}

// Watcher reloads a catalog file whenever it changes and publishes the
// result on a channel.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *logging.Logger

	events   chan Reload
	errs     chan error
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for the catalog at path. The parent directory
// is watched rather than the file itself, so editors that replace the file
// on save are still observed.
func NewWatcher(path string, logger *logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, err
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	if logger == nil {
		logger = logging.NopLogger()
	}

	return &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		watcher:  fw,
		logger:   logger.WithComponent("catalog"),
		events:   make(chan Reload, 1),
		errs:     make(chan error, 1),
		stopCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the debounce interval. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Events returns the channel reload results are delivered on.
// It is closed when the watcher stops.
func (w *Watcher) Events() <-chan Reload {
	return w.events
}

// Errors returns the channel errors from the underlying file watcher are
// delivered on. Reload failures are reported on Events instead. It is closed
// when the watcher stops.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.watchLoop()
}

// Stop stops the watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
	w.wg.Wait()
}

func (w *Watcher) watchLoop() {
	defer w.wg.Done()
	defer close(w.events)
	defer close(w.errs)

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	pending := false

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			if !pending {
				continue
			}
			pending = false
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", "error", err.Error())
			sendLatest(w.errs, err, w.stopCh)
		}
	}
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		w.logger.Warn("catalog reload failed", "path", w.path, "error", err.Error())
	} else {
		w.logger.Debug("catalog reloaded", "path", w.path, "categories", len(c.Categories), "items", len(c.Items))
	}
	sendLatest(w.events, Reload{Catalog: c, Err: err}, w.stopCh)
}

// sendLatest delivers v on a buffered channel, replacing an undelivered
// value if the consumer has fallen behind.
func sendLatest[T any](ch chan T, v T, stop <-chan struct{}) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	case <-stop:
	}
}
