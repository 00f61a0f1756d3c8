package term

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"hyperlife/internal/session"
)

// Keymap translates key presses into session commands. Arrow keys (or hjkl)
// pan axes 0 and 1; '+' and '-' pan the depth axis, which the digit keys
// 2-9 select. The depth axis may be read while keys are being translated.
type Keymap struct {
	depth atomic.Int32
}

// NewKeymap returns a keymap with axis 2 as the depth axis.
func NewKeymap() *Keymap {
	k := &Keymap{}
	k.depth.Store(2)
	return k
}

// Depth returns the axis panned by '+' and '-'.
func (k *Keymap) Depth() int { return int(k.depth.Load()) }

// Translate maps a key event to a command. ok is false for keys that only
// change keymap state or are not bound.
func (k *Keymap) Translate(ev *tcell.EventKey) (c session.Command, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.Command{Kind: session.Exit}, true
	case tcell.KeyUp:
		return session.PanBy(0, -1), true
	case tcell.KeyDown:
		return session.PanBy(0, 1), true
	case tcell.KeyLeft:
		return session.PanBy(1, -1), true
	case tcell.KeyRight:
		return session.PanBy(1, 1), true
	case tcell.KeyRune:
	default:
		return session.Command{}, false
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return session.Command{Kind: session.Exit}, true
	case ' ':
		return session.Command{Kind: session.TogglePause}, true
	case 'n', '.':
		return session.Command{Kind: session.Step}, true
	case 'k':
		return session.PanBy(0, -1), true
	case 'j':
		return session.PanBy(0, 1), true
	case 'h':
		return session.PanBy(1, -1), true
	case 'l':
		return session.PanBy(1, 1), true
	case '+', '=':
		return session.PanBy(k.Depth(), 1), true
	case '-', '_':
		return session.PanBy(k.Depth(), -1), true
	default:
		if r >= '2' && r <= '9' {
			k.depth.Store(int32(r - '0'))
		}
		return session.Command{}, false
	}
}
