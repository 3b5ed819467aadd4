package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	g := New()

	assert.GreaterOrEqual(t, g.Secret(), SecretMin)
	assert.LessOrEqual(t, g.Secret(), SecretMax)
	assert.Empty(t, g.Guess())
	assert.Equal(t, MessageWelcome, g.Message())
	assert.False(t, g.Won())
}

func TestInputChanged(t *testing.T) {
	g := NewWithSecret(42)

	g.Apply(InputChanged{Text: "17"})
	assert.Equal(t, "17", g.Guess())

	// Last write wins; a repeated edit with the same text is a no-op.
	g.Apply(InputChanged{Text: "17"})
	assert.Equal(t, "17", g.Guess())

	g.Apply(InputChanged{Text: ""})
	assert.Empty(t, g.Guess())

	// Edits never touch the message.
	assert.Equal(t, MessageWelcome, g.Message())
}

func TestSubmitComparison(t *testing.T) {
	tests := []struct {
		name    string
		secret  int
		guess   string
		message string
	}{
		{"below", 50, "10", MessageTooLow},
		{"just below", 50, "49", MessageTooLow},
		{"above", 50, "90", MessageTooHigh},
		{"just above", 50, "51", MessageTooHigh},
		{"exact", 50, "50", MessageWin},
		{"lowest secret", 1, "1", MessageWin},
		{"highest secret", 100, "100", MessageWin},
		{"zero guess", 1, "0", MessageTooLow},
		{"whitespace trimmed", 50, "  50  ", MessageWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithSecret(tt.secret)
			g.Apply(InputChanged{Text: tt.guess})
			g.Apply(SubmitPressed{})

			assert.Equal(t, tt.message, g.Message())
			assert.Empty(t, g.Guess(), "guess text should clear after a parsed submit")
		})
	}
}

func TestSubmitInvalidInput(t *testing.T) {
	for _, input := range []string{"", "abc", "12.5", "-5", "1e3", "12a", "٣"} {
		t.Run(fmt.Sprintf("input %q", input), func(t *testing.T) {
			g := NewWithSecret(50)
			g.Apply(InputChanged{Text: input})
			g.Apply(SubmitPressed{})

			assert.Equal(t, MessageInvalid, g.Message())
			assert.Equal(t, input, g.Guess(), "invalid input stays in the field")
			assert.False(t, g.Won())
		})
	}
}

func TestWinDoesNotReset(t *testing.T) {
	g := NewWithSecret(7)
	g.Apply(InputChanged{Text: "7"})
	g.Apply(SubmitPressed{})

	require.True(t, g.Won())
	assert.Equal(t, 7, g.Secret(), "secret is fixed for the session")

	// The session stays live after a win; the same guess wins again.
	g.Apply(InputChanged{Text: "8"})
	g.Apply(SubmitPressed{})
	assert.Equal(t, MessageTooHigh, g.Message())

	g.Apply(InputChanged{Text: "7"})
	g.Apply(SubmitPressed{})
	assert.Equal(t, MessageWin, g.Message())
	assert.Equal(t, 7, g.Secret())
}

func TestExactlyOneWinningGuess(t *testing.T) {
	const secret = 33
	for guess := SecretMin - 1; guess <= SecretMax+1; guess++ {
		g := NewWithSecret(secret)
		g.Apply(InputChanged{Text: fmt.Sprint(guess)})
		g.Apply(SubmitPressed{})

		switch {
		case guess < secret:
			assert.Equal(t, MessageTooLow, g.Message())
		case guess > secret:
			assert.Equal(t, MessageTooHigh, g.Message())
		default:
			assert.Equal(t, MessageWin, g.Message())
		}
	}
}

func TestPlayedScenario(t *testing.T) {
	g := NewWithSecret(50)

	g.Apply(InputChanged{Text: "10"})
	g.Apply(SubmitPressed{})
	require.Equal(t, MessageTooLow, g.Message())
	require.Empty(t, g.Guess())

	g.Apply(InputChanged{Text: "90"})
	g.Apply(SubmitPressed{})
	require.Equal(t, MessageTooHigh, g.Message())
	require.Empty(t, g.Guess())

	g.Apply(InputChanged{Text: "foo"})
	g.Apply(SubmitPressed{})
	require.Equal(t, MessageInvalid, g.Message())
	require.Equal(t, "foo", g.Guess())

	g.Apply(InputChanged{Text: "50"})
	g.Apply(SubmitPressed{})
	require.Equal(t, MessageWin, g.Message())
	require.Empty(t, g.Guess())
	require.True(t, g.Won())
}

func TestSubmitWithoutInput(t *testing.T) {
	g := NewWithSecret(50)
	g.Apply(SubmitPressed{})

	assert.Equal(t, MessageInvalid, g.Message())
	assert.Empty(t, g.Guess())
}
