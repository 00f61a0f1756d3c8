package session

import "fmt"

// Kind identifies a host request.
type Kind int

const (
	// Pan moves the viewport by Delta along Axis.
	Pan Kind = iota
	// TogglePause pauses or resumes automatic stepping.
	TogglePause
	// Step advances one generation; honoured only while paused.
	Step
	// Exit ends the session.
	Exit
	// Redraw asks for a fresh frame, e.g. after the host window resized.
	Redraw
)

func (k Kind) String() string {
	switch k {
	case Pan:
		return "pan"
	case TogglePause:
		return "toggle-pause"
	case Step:
		return "step"
	case Exit:
		return "exit"
	case Redraw:
		return "redraw"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Command is a single input from the host.
type Command struct {
	Kind  Kind
	Axis  int
	Delta int
}

// PanBy returns a pan request along axis. Delta is clamped to a unit step.
func PanBy(axis, delta int) Command {
	switch {
	case delta > 0:
		delta = 1
	case delta < 0:
		delta = -1
	}
	return Command{Kind: Pan, Axis: axis, Delta: delta}
}

func (c Command) String() string {
	if c.Kind == Pan {
		return fmt.Sprintf("pan(axis=%d, %+d)", c.Axis, c.Delta)
	}
	return c.Kind.String()
}
