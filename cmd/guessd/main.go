package main

import (
	"fmt"
	"os"

	"guessd/internal/config"
	"guessd/internal/log"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgFile string
	cfg     *config.Config
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "guessd",
		Short:   "A desktop number-guessing game",
		Long:    `Guessd picks a secret number between 1 and 100 and answers every guess with too small, too big, or a win.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				log.With(log.F("error", configErr)).Warn("Could not load config, using defaults")
				cfg = config.New()
			}

			log.SetDebug(cfg.Settings.Debug)
		},
		// Running guessd with no subcommand opens the GUI.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/guessd/config.yaml)")

	rootCmd.AddCommand(NewGUICmd())
	rootCmd.AddCommand(NewTUICmd())
	rootCmd.AddCommand(NewPlayCmd())

	return rootCmd
}

// configPath returns the path of the active config file, for the watcher.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}
