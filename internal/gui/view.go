package gui

import (
	"guessd/internal/game"
	"guessd/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// gameView owns the three observable widgets and the dispatch loop. Every
// widget callback becomes exactly one game event, and every event is
// followed by a full re-render from the state.
type gameView struct {
	game    *game.Game
	content fyne.CanvasObject

	message *widget.Label
	entry   *widget.Entry
	button  *widget.Button
}

func newGameView(g *game.Game, submitOnEnter bool) *gameView {
	v := &gameView{game: g}

	v.message = widget.NewLabelWithStyle(g.Message(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	v.entry = widget.NewEntry()
	v.entry.SetPlaceHolder("Enter your guess...")
	v.entry.OnChanged = func(text string) {
		v.dispatch(game.InputChanged{Text: text})
	}
	v.setSubmitOnEnter(submitOnEnter)

	v.button = widget.NewButton("Guess", func() {
		v.dispatch(game.SubmitPressed{})
	})

	v.content = container.NewVBox(
		v.message,
		v.entry,
		v.button,
	)

	return v
}

// dispatch feeds one event to the game and re-renders the widgets.
func (v *gameView) dispatch(ev game.Event) {
	v.game.Apply(ev)
	v.render()
}

// render pushes the current state back into the widgets. Entry.SetText is
// a no-op when the text already matches, so the OnChanged round trip
// settles immediately.
func (v *gameView) render() {
	v.message.SetText(v.game.Message())
	if v.entry.Text != v.game.Guess() {
		v.entry.SetText(v.game.Guess())
	}
	if v.game.Won() {
		log.With(log.F("secret", v.game.Secret())).Debug("Game won")
	}
}

func (v *gameView) setSubmitOnEnter(enabled bool) {
	if enabled {
		v.entry.OnSubmitted = func(string) {
			v.dispatch(game.SubmitPressed{})
		}
	} else {
		v.entry.OnSubmitted = nil
	}
}
