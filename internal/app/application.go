package app

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"launchdeck/internal/config"
	"launchdeck/internal/gui"
	"launchdeck/internal/launcher"
	"launchdeck/internal/logger"
	"launchdeck/internal/store"
	"launchdeck/internal/watch"
)

const (
	AppName    = "LaunchDeck"
	AppID      = "com.launchdeck.desktop"
	AppVersion = "1.0.0"

	MinWindowWidth  = 620
	MinWindowHeight = 680

	dropHint = "Drop .exe / .lnk / .bat / .cmd / .ps1 files here to add them to the current group"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	registry   *store.Store
	dispatcher *launcher.Dispatcher
	watcher    *watch.Watcher
	lifecycle  *Lifecycle
	log        logger.Logger
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   AppVersion,
		"data_file": cfg.DataFile,
		"watch":     cfg.WatchFile,
	})

	registry := store.Open(cfg.DataFile, log)
	dispatcher := launcher.NewDispatcher(launcher.OSRunner{}, registry.DisplayName, log)
	guiManager := gui.NewManager(window, dropHint, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		registry:   registry,
		dispatcher: dispatcher,
		log:        log,
	}

	handlers := NewHandlers(registry, dispatcher, guiManager, log)
	handlers.Wire()

	if cfg.WatchFile {
		watcher, err := watch.New(cfg.DataFile, func() {
			// Our own saves land here too; Load reports those as
			// unchanged so they do not trigger a redundant render.
			if registry.Load() {
				handlers.Render()
			}
		}, log)
		if err != nil {
			log.Warning("Application", "data file watch unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			application.watcher = watcher
		}
	}

	application.lifecycle = NewLifecycle(registry, guiManager, application.watcher, log)

	handlers.Render()
	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.log.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.log.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
