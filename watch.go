package main

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DirWatcher flags changes in the active directory so the shell can
// rescan the collection. Events are collapsed into a single dirty flag
// that the UI thread polls between operations; the session itself is
// never touched from the watcher goroutine.
type DirWatcher struct {
	watcher *fsnotify.Watcher
	dirty   chan struct{}
	dir     string
}

// NewDirWatcher creates a watcher with no directory attached yet.
func NewDirWatcher() (*DirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dw := &DirWatcher{
		watcher: w,
		dirty:   make(chan struct{}, 1),
	}
	go dw.run()
	return dw, nil
}

func (dw *DirWatcher) run() {
	for {
		select {
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			log.Debug().Str("event", event.String()).Msg("directory changed")
			select {
			case dw.dirty <- struct{}{}:
			default:
			}
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("directory watcher error")
		}
	}
}

// SetDirectory switches the watch to dir, replacing any previous watch.
func (dw *DirWatcher) SetDirectory(dir string) error {
	if dw.dir == dir {
		return nil
	}
	if dw.dir != "" {
		if err := dw.watcher.Remove(dw.dir); err != nil {
			log.Debug().Err(err).Str("dir", dw.dir).Msg("failed to unwatch")
		}
	}
	if err := dw.watcher.Add(dir); err != nil {
		return err
	}
	dw.dir = dir
	return nil
}

// Dirty reports (and clears) whether the watched directory has changed
// since the last call. Never blocks.
func (dw *DirWatcher) Dirty() bool {
	select {
	case <-dw.dirty:
		return true
	default:
		return false
	}
}

// Close stops the watcher.
func (dw *DirWatcher) Close() error {
	return dw.watcher.Close()
}
