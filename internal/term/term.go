// Package term renders a session in a terminal with tcell and feeds key
// presses back to it.
package term

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"hyperlife/internal/core"
	"hyperlife/internal/session"
)

var (
	styleAlive  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// Terminal is a session.Backend drawing onto a tcell screen. The last screen
// row is reserved for the status line.
type Terminal struct {
	screen tcell.Screen
	keys   *Keymap
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, keys: NewKeymap()}
}

// Open creates and initialises the default terminal screen. Callers must
// Close it to restore the terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: initializing screen: %w", err)
	}
	screen.HideCursor()
	return New(screen), nil
}

// Close restores the terminal. Listen returns once the screen is closed.
func (t *Terminal) Close() { t.screen.Fini() }

// Size implements session.Backend.
func (t *Terminal) Size() (int, int) {
	w, h := t.screen.Size()
	return w, max(h-1, 1)
}

// Render implements session.Backend.
func (t *Terminal) Render(f session.Frame) error {
	t.screen.Clear()
	g := f.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) == session.CellAlive {
				t.screen.SetContent(x, y, '#', nil, styleAlive)
			}
		}
	}
	w, h := t.screen.Size()
	line := StatusLine(f.Status) + fmt.Sprintf("  depth axis: %d", t.keys.Depth())
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		t.screen.SetContent(col, h-1, r, nil, styleStatus)
		col++
	}
	t.screen.Show()
	return nil
}

// Listen forwards key presses to in until the screen is closed or ctx ends.
// Resizes are forwarded as redraw requests.
func (t *Terminal) Listen(ctx context.Context, in *session.Inbox) {
	for ctx.Err() == nil {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
			in.Offer(session.Command{Kind: session.Redraw})
		case *tcell.EventKey:
			if c, ok := t.keys.Translate(ev); ok {
				in.Offer(c)
			}
		}
	}
}

// StatusLine flattens a snapshot into "Label: value" pairs.
func StatusLine(snap core.ParameterSnapshot) string {
	var parts []string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if p.Type == core.ParamTypeBool {
				if p.Value == "true" {
					parts = append(parts, strings.ToUpper(p.Label))
				}
				continue
			}
			parts = append(parts, p.Label+": "+p.Value)
		}
	}
	return strings.Join(parts, "  ")
}
