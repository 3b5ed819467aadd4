package main

import (
	"bufio"
	"fmt"
	"io"

	"guessd/internal/game"

	"github.com/spf13/cobra"
)

// NewPlayCmd creates the plain line-based play command
func NewPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play on the command line",
		Long:  `Play the guessing game as a plain prompt loop, one guess per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(game.New(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// play drives one session over a line-based reader until the secret is
// guessed or input runs out.
func play(g *game.Game, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, g.Message())
	fmt.Fprintf(out, "Guess a number between %d and %d.\n", game.SecretMin, game.SecretMax)

	scanner := bufio.NewScanner(in)
	for !g.Won() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		g.Apply(game.InputChanged{Text: scanner.Text()})
		g.Apply(game.SubmitPressed{})
		fmt.Fprintln(out, g.Message())
	}

	return scanner.Err()
}
