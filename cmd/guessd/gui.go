package main

import (
	"guessd/internal/game"
	"guessd/internal/gui"
	"guessd/internal/log"
	"guessd/internal/watch"

	"github.com/spf13/cobra"
)

// runGUI launches the GUI with config hot reload.
func runGUI() error {
	watcher := newConfigWatcher()

	guiApp := gui.NewApp(cfg, game.New(), watcher)
	guiApp.Run()

	return nil
}

// newConfigWatcher builds a watcher for the active config file. The GUI
// works without one, so failures only log.
func newConfigWatcher() *watch.Watcher {
	path, err := configPath()
	if err != nil {
		log.With(log.F("error", err)).Warn("Config path unavailable, hot reload disabled")
		return nil
	}

	watcher, err := watch.New(path)
	if err != nil {
		log.With(log.F("error", err)).Warn("Config watcher unavailable, hot reload disabled")
		return nil
	}
	return watcher
}

// NewGUICmd creates the GUI command for the CLI
func NewGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Launch the windowed version of the guessing game.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}
}
