package main

import (
	"fmt"

	"guessd/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewTUICmd creates the TUI command
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal user interface",
		Long:  `Play the guessing game in a full-screen terminal interface.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := tui.New()
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}
