// Package watch reloads the application configuration when the config
// file changes on disk, so the GUI can apply new settings without a
// restart.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"guessd/internal/config"
	"guessd/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Reload carries a freshly loaded configuration after a change to the
// config file.
type Reload struct {
	Config    *config.Config
	Timestamp time.Time
}

// Watcher monitors the config file for changes using fsnotify. The file's
// parent directory is watched rather than the file itself, since editors
// commonly replace the file on save.
type Watcher struct {
	path       string
	reloadChan chan Reload
	stopChan   chan struct{}
	doneChan   chan struct{}
	fsWatcher  *fsnotify.Watcher

	mutex   sync.Mutex
	running bool
}

// New creates a watcher for the config file at path.
func New(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:       path,
		reloadChan: make(chan Reload, 4),
		fsWatcher:  fsWatcher,
	}, nil
}

// ReloadChannel returns the channel that delivers reloaded configurations.
func (w *Watcher) ReloadChannel() <-chan Reload {
	return w.reloadChan
}

// Start begins watching the config file's directory.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	fail := func(err error) error {
		w.mutex.Lock()
		w.running = false
		w.mutex.Unlock()
		return err
	}

	dir := filepath.Dir(w.path)
	if info, err := os.Stat(dir); err != nil {
		return fail(fmt.Errorf("error accessing config directory: %w", err))
	} else if !info.IsDir() {
		return fail(fmt.Errorf("%s is not a directory", dir))
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return fail(fmt.Errorf("failed to watch %s: %w", dir, err))
	}

	// Create fresh lifecycle channels each time Start is called
	w.stopChan = make(chan struct{})
	w.doneChan = make(chan struct{})

	go func() {
		defer close(w.doneChan)
		log.With(log.F("path", w.path)).Debug("Config watcher loop started")

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return // Channel closed
				}

				// Only changes to the config file itself are interesting.
				if event.Name != w.path {
					continue
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
					continue
				}

				cfg, err := config.LoadConfigFile(w.path)
				if err != nil {
					// Keep the previous config; a half-written or broken
					// file must not take the running app down.
					log.With(log.F("error", err)).Warn("Config changed but failed to load")
					continue
				}

				reload := Reload{Config: cfg, Timestamp: time.Now()}
				select {
				case w.reloadChan <- reload:
				default:
					log.Warn("Reload channel is full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return // Channel closed
				}
				log.With(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	log.With(log.F("path", w.path)).Info("Config watcher started")
	return nil
}

// Stop halts the watcher and closes the reload channel.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return // Already stopped
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.With(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	w.running = false

	// Wait for the event loop to exit before closing the public channel;
	// the loop sends on reloadChan, so closing it any earlier could panic
	// on a send racing the stop signal.
	<-w.doneChan
	close(w.reloadChan)

	log.Info("Config watcher stopped")
}
