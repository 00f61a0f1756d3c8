// Package session drives a simulation for an interactive front end: it owns
// the viewport position, interprets pan/pause/step/exit requests and renders
// a 2D window through the lattice.
package session

import (
	"context"
	"io"
	"log"
	"time"

	"hyperlife/internal/core"
	"hyperlife/internal/lattice"
	"hyperlife/internal/life"
)

// Glyph values written into a window raster.
const (
	CellDead  uint8 = 0
	CellAlive uint8 = 1
)

// pollTimeout bounds how long Run waits for input before checking the clock.
const pollTimeout = 10 * time.Millisecond

// Frame is what a backend draws: a window raster and the current status.
type Frame struct {
	Grid   *core.ByteGrid
	Status core.ParameterSnapshot
}

// Backend renders frames. Size reports the window in cells.
type Backend interface {
	Size() (w, h int)
	Render(f Frame) error
}

// Session couples a simulation with viewport and playback state. It is not
// safe for concurrent use; feed it through an Inbox.
type Session struct {
	life     *life.Life
	pos      lattice.Point
	paused   bool
	stepOnce bool
	exited   bool
	logger   *log.Logger
}

// Option customises a Session.
type Option func(*Session)

// WithLogger routes diagnostic messages, such as ignored pan requests, to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPaused starts the session paused.
func WithPaused(paused bool) Option {
	return func(s *Session) { s.paused = paused }
}

// New starts a session on l with the viewport centred on the origin.
func New(l *life.Life, opts ...Option) *Session {
	origin, _ := lattice.Origin(l.Dims())
	s := &Session{life: l, pos: origin, logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Life returns the current generation.
func (s *Session) Life() *life.Life { return s.life }

// Position returns the viewport centre.
func (s *Session) Position() lattice.Point { return s.pos }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Exited reports whether an Exit command has been applied.
func (s *Session) Exited() bool { return s.exited }

// Apply interprets a host command and reports whether the session should end.
// Panning along an axis the simulation does not have is a no-op.
func (s *Session) Apply(c Command) (exit bool) {
	switch c.Kind {
	case Pan:
		moved, ok := s.pos.Shift(c.Axis, c.Delta)
		if !ok {
			s.logger.Printf("ignoring %v: simulation has %d axes", c, s.life.Dims())
			break
		}
		s.pos = moved
	case TogglePause:
		s.paused = !s.paused
		s.stepOnce = false
	case Step:
		if s.paused {
			s.stepOnce = true
		}
	case Exit:
		s.exited = true
	}
	return s.exited
}

// Pending reports whether Update would advance the simulation.
func (s *Session) Pending() bool {
	return !s.exited && (!s.paused || s.stepOnce)
}

// Update advances one generation unless the session is paused without a
// pending single step. It reports whether a generation was computed.
func (s *Session) Update(ctx context.Context) (bool, error) {
	if !s.Pending() {
		return false, nil
	}
	next, err := s.life.AdvanceContext(ctx)
	if err != nil {
		return false, err
	}
	s.life = next
	s.stepOnce = false
	return true, nil
}

// Window rasterises the w×h slice of the lattice centred on the viewport.
// Rows follow axis 0 and columns axis 1; every further axis is fixed at the
// viewport's coordinate, so panning those axes moves through slices. A
// one-dimensional simulation is drawn down the centre column.
func (s *Session) Window(w, h int) *core.ByteGrid {
	g := core.NewByteGrid(w, h)
	for y := 0; y < g.H; y++ {
		row, _ := s.pos.Shift(0, y-g.H/2)
		for x := 0; x < g.W; x++ {
			p, ok := row.Shift(1, x-g.W/2)
			if !ok && x != g.W/2 {
				continue
			}
			if s.life.Get(p) == core.Alive {
				g.Set(x, y, CellAlive)
			}
		}
	}
	return g
}

// Parameters reports the simulation status together with viewport state.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.life.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "View",
		Params: []core.Parameter{
			core.StringParam("position", "Position", s.pos.String()),
			core.BoolParam("paused", "Paused", s.paused),
		},
	})
	return snap
}

// Frame renders the current window for a backend of size w×h.
func (s *Session) Frame(w, h int) Frame {
	return Frame{Grid: s.Window(w, h), Status: s.Parameters()}
}

// Run is the interactive loop: it drains commands from in, advances the
// simulation at tps generations per second and renders to b whenever
// something changed. It returns nil after an Exit command and ctx.Err() when
// ctx is cancelled.
func (s *Session) Run(ctx context.Context, in *Inbox, b Backend, tps int) error {
	clock := core.NewFixedStep(tps)
	dirty := true
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if dirty {
			w, h := b.Size()
			if err := b.Render(s.Frame(w, h)); err != nil {
				return err
			}
			dirty = false
		}

		if c, ok := in.Receive(ctx, min(pollTimeout, clock.Interval())); ok {
			if s.Apply(c) {
				return nil
			}
			dirty = true
		}

		if s.stepOnce || (!s.paused && clock.ShouldStep()) {
			advanced, err := s.Update(ctx)
			if err != nil {
				return err
			}
			dirty = dirty || advanced
		}
	}
}
