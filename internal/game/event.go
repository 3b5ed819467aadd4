package game

// Event is a single input from a presentation adapter. Exactly two kinds
// exist: a text edit and a submit. Adapters construct events; only Apply
// consumes them.
type Event interface {
	isEvent()
}

// InputChanged carries the new raw text of the guess field.
type InputChanged struct {
	Text string
}

// SubmitPressed is raised when the player submits the current guess.
type SubmitPressed struct{}

func (InputChanged) isEvent()  {}
func (SubmitPressed) isEvent() {}
