// Package gui is the Fyne presentation adapter for the game: it renders
// the game state into widgets, translates widget callbacks into game
// events, and re-renders after every transition.
package gui

import (
	"guessd/internal/config"
	"guessd/internal/game"
	"guessd/internal/log"
	"guessd/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	view       *gameView
	watcher    *watch.Watcher
}

// NewApp creates a new GUI application around an existing game session.
// If watcher is non-nil, config reloads are applied to the running window.
func NewApp(cfg *config.Config, g *game.Game, watcher *watch.Watcher) *App {
	// Create app with a unique ID for preferences storage
	fyneApp := app.NewWithID("io.github.guessd")

	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		watcher: watcher,
	}

	applyTheme(fyneApp, cfg.Settings.Theme)

	a.mainWindow = fyneApp.NewWindow(cfg.Window.Title)
	a.view = newGameView(g, cfg.Settings.SubmitOnEnter)

	a.mainWindow.SetContent(a.view.content)
	a.mainWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	a.mainWindow.SetMainMenu(a.buildMainMenu())

	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run starts the GUI application and blocks until the window closes.
func (a *App) Run() {
	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			log.With(log.F("error", err)).Warn("Config watcher unavailable")
		} else {
			go a.consumeReloads()
			defer a.watcher.Stop()
		}
	}

	a.mainWindow.Show()
	a.fyneApp.Run()
}

// consumeReloads applies config changes delivered by the watcher.
func (a *App) consumeReloads() {
	for reload := range a.watcher.ReloadChannel() {
		log.With(log.F("theme", reload.Config.Settings.Theme)).Info("Applying reloaded configuration")
		a.ApplyConfig(reload.Config)
	}
}

// ApplyConfig applies settings to the running application.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.cfg = cfg
	log.SetDebug(cfg.Settings.Debug)
	applyTheme(a.fyneApp, cfg.Settings.Theme)
	a.mainWindow.SetTitle(cfg.Window.Title)
	a.mainWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	a.view.setSubmitOnEnter(cfg.Settings.SubmitOnEnter)
}

func (a *App) buildMainMenu() *fyne.MainMenu {
	about := fyne.NewMenuItem("About", func() {
		dialog.ShowInformation("About",
			"Guess the secret number between 1 and 100.\n"+
				"Each guess is answered with too small, too big, or a win.",
			a.mainWindow)
	})
	return fyne.NewMainMenu(fyne.NewMenu("Help", about))
}
