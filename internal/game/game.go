// Package game holds the state of one guessing-game session and the
// transition function that drives it. The presentation layers (GUI, TUI,
// terminal loop) translate raw toolkit input into Events and re-render
// from the state after each Apply call; nothing else touches the state.
package game

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// Secret numbers are drawn uniformly from [SecretMin, SecretMax].
const (
	SecretMin = 1
	SecretMax = 100
)

// Feedback messages shown to the player.
const (
	MessageWelcome = "Welcome to the Guessing Game!"
	MessageTooLow  = "Too small!"
	MessageTooHigh = "Too big!"
	MessageWin     = "You win! 🎉"
	MessageInvalid = "Please enter a valid number."
)

// Game is the complete state of one session: the secret number, the raw
// text of the guess field, and the current feedback message. The secret
// is fixed for the lifetime of the Game; winning does not regenerate it.
type Game struct {
	secret  int
	guess   string
	message string
}

// New creates a game with a random secret in [SecretMin, SecretMax].
func New() *Game {
	return NewWithSecret(SecretMin + rand.IntN(SecretMax-SecretMin+1))
}

// NewWithSecret creates a game with a fixed secret. Used by tests and by
// anything that needs a reproducible session.
func NewWithSecret(secret int) *Game {
	return &Game{
		secret:  secret,
		message: MessageWelcome,
	}
}

// Secret returns the target number for this session.
func (g *Game) Secret() int { return g.secret }

// Guess returns the raw, unvalidated text of the guess field.
func (g *Game) Guess() string { return g.guess }

// Message returns the current feedback message.
func (g *Game) Message() string { return g.message }

// Won reports whether the secret has been guessed.
func (g *Game) Won() bool { return g.message == MessageWin }

// Apply consumes one event and mutates the state in place. It is the only
// transition in the program:
//
//   - InputChanged overwrites the guess text, with no validation.
//   - SubmitPressed parses the trimmed guess text as a non-negative
//     integer. If parsing fails the message prompts for a valid number
//     and the guess text is left as the player typed it. Otherwise the
//     guess is compared against the secret, the message reports the
//     outcome, and the guess text is cleared.
//
// A winning submit does not end or reset the session; further guesses are
// still accepted against the same secret.
func (g *Game) Apply(ev Event) {
	switch ev := ev.(type) {
	case InputChanged:
		g.guess = ev.Text
	case SubmitPressed:
		n, err := parseGuess(g.guess)
		if err != nil {
			g.message = MessageInvalid
			return
		}
		switch {
		case n < g.secret:
			g.message = MessageTooLow
		case n > g.secret:
			g.message = MessageTooHigh
		default:
			g.message = MessageWin
		}
		g.guess = ""
	}
}

// parseGuess parses the guess text as an unsigned decimal integer, so
// negative input is rejected along with empty and non-numeric text.
func parseGuess(text string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
