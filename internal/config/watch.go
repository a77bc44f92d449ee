package config

import (
	"path/filepath"
	"sync"
	"time"

	"mindease/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the app home for config.yaml changes and invokes a
// callback once a burst of writes has settled. Editors often emit
// several events per save, so events are debounced rather than acted on
// directly.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	home        string
	configPath  string
	onChange    func()
	debounceDur time.Duration
	pendingAt   time.Time
	pending     bool
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a Watcher for <home>/config.yaml. onChange runs on
// the watcher goroutine after each settled change.
func NewWatcher(home string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fw,
		home:        home,
		configPath:  filepath.Join(home, "config.yaml"),
		onChange:    onChange,
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a
// goroutine until Stop.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory, not the file: saves that replace the file
	// (write to temp, rename over) would silently detach a file watch.
	if err := w.watcher.Add(w.home); err != nil {
		return err
	}
	logging.Boot("config watcher: watching %s", w.home)

	go w.run()
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryBoot).Error("config watcher: close: %v", err)
	}
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryBoot).Error("config watcher: %v", err)

		case <-ticker.C:
			w.fireSettled()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.configPath {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	w.pending = true
	w.pendingAt = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) fireSettled() {
	w.mu.Lock()
	fire := w.pending && time.Since(w.pendingAt) >= w.debounceDur
	if fire {
		w.pending = false
	}
	w.mu.Unlock()

	if fire {
		logging.Boot("config watcher: %s changed, reloading", w.configPath)
		w.onChange()
	}
}
