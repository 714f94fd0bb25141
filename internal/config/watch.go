package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written and delivers the
// parsed result on Changes. Parse failures (e.g. a half-written file) are
// skipped; the previous config stays in effect.
type Watcher struct {
	Changes <-chan *Config

	path    string
	changes chan *Config
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher watches path for writes. The parent directory is registered
// with fsnotify so editors that replace the file atomically are still seen.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan *Config, 4)
	w := &Watcher{
		Changes: ch,
		path:    path,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching. Events arrive on Changes until Stop is called.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	close(w.done)
	w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				continue
			}
			select {
			case w.changes <- cfg:
			case <-w.done:
				return
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
