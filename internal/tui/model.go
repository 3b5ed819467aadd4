// Package tui is the terminal presentation adapter for the game, built
// on Bubble Tea. It owns nothing but widget state; every keystroke is
// translated into a game event and the view re-renders from game state.
package tui

import (
	"guessd/internal/game"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model wrapping one game session.
type Model struct {
	game  *game.Game
	input textinput.Model
}

// New creates a TUI model with a fresh game.
func New() *Model {
	return NewWithGame(game.New())
}

// NewWithGame creates a TUI model around an existing session.
func NewWithGame(g *game.Game) *Model {
	input := textinput.New()
	input.Placeholder = "Enter your guess..."
	input.CharLimit = 10
	input.Width = 24
	input.Focus()

	return &Model{
		game:  g,
		input: input,
	}
}

// Game exposes the underlying session, mainly for tests.
func (m *Model) Game() *game.Game {
	return m.game
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Enter submits the current guess; any other
// key edits the input and mirrors it into the game state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.game.Apply(game.SubmitPressed{})
			// The game clears the text on a parsed guess; mirror that
			// back into the widget.
			m.input.SetValue(m.game.Guess())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.game.Apply(game.InputChanged{Text: m.input.Value()})
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	message := messageStyle.Render(m.game.Message())
	if m.game.Won() {
		message = winStyle.Render(m.game.Message())
	}

	return appStyle.Render(
		titleStyle.Render("Guessing Game") + "\n" +
			message + "\n\n" +
			m.input.View() + "\n\n" +
			helpStyle.Render("enter: guess • esc: quit"),
	)
}
