// Package watch reloads the store when the data file changes on disk
// outside the process, so an externally edited document shows up
// without a restart.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"launchdeck/internal/logger"
)

const debounce = 200 * time.Millisecond

// Watcher observes the data file's directory and fires onChange after a
// quiet period. Watching the directory instead of the file survives the
// file being replaced by editors that write-and-rename.
type Watcher struct {
	fsw      *fsnotify.Watcher
	file     string
	onChange func()
	log      logger.Logger

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

func New(dataFile string, onChange func(), log logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(dataFile)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		file:     filepath.Base(dataFile),
		onChange: onChange,
		log:      log,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.file {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warning("Watcher", "watch error", map[string]interface{}{
				"error": err.Error(),
			})
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounce, func() {
		w.log.Debug("Watcher", "data file changed, reloading", nil)
		w.onChange()
	})
}

func (w *Watcher) Shutdown() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	w.fsw.Close()
}
