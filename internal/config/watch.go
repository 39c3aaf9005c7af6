package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bidscope-io/bidscope/internal/models"
)

// SettingsWatcher observes the settings file and reloads it on change, so a
// running dashboard can pick up a new backend URL or poll interval without a
// restart.
type SettingsWatcher struct {
	fsWatcher *fsnotify.Watcher
	onChange  func(*models.Settings)
	done      chan struct{}
	closeOnce sync.Once

	debounceMu sync.Mutex
	debounce   *time.Timer
}

// WatchSettings starts watching the settings file. onChange is invoked with
// freshly loaded settings after each change; load failures keep the previous
// settings and are silently skipped (the next write retries).
func WatchSettings(onChange func(*models.Settings)) (*SettingsWatcher, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: atomic writes (write tmp → rename)
	// replace the inode, which would silently kill a file-level watch.
	if err := EnsureGlobalDir(); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	w := &SettingsWatcher{
		fsWatcher: fsWatcher,
		onChange:  onChange,
		done:      make(chan struct{}),
	}
	go w.processEvents(filepath.Base(path))
	return w, nil
}

// Stop stops the watcher.
func (w *SettingsWatcher) Stop() {
	w.closeOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()
	})
}

func (w *SettingsWatcher) processEvents(filename string) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceReload()
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// debounceReload coalesces the event bursts editors produce for one save.
func (w *SettingsWatcher) debounceReload() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(100*time.Millisecond, func() {
		settings, err := LoadSettings()
		if err != nil {
			return
		}
		select {
		case <-w.done:
		default:
			w.onChange(settings)
		}
	})
}
