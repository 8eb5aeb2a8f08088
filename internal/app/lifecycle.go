package app

import (
	"launchdeck/internal/gui"
	"launchdeck/internal/logger"
	"launchdeck/internal/store"
	"launchdeck/internal/watch"
)

type Lifecycle struct {
	registry   *store.Store
	guiManager *gui.Manager
	watcher    *watch.Watcher
	log        logger.Logger
	isShutdown bool
}

func NewLifecycle(registry *store.Store, gm *gui.Manager, watcher *watch.Watcher, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		registry:   registry,
		guiManager: gm,
		watcher:    watcher,
		log:        log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}
	l.isShutdown = true
	l.log.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.watcher != nil {
		l.watcher.Shutdown()
		l.log.Debug("Lifecycle", "watcher shutdown completed", nil)
	}

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.log.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	// Every mutation already persisted; a final save only matters if the
	// last write failed.
	if err := l.registry.Save(); err != nil {
		l.log.Error("Lifecycle", err, nil)
	}

	l.log.Info("Lifecycle", "shutdown sequence completed", nil)
}
