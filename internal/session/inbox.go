package session

import (
	"context"
	"time"
)

// Inbox is a single-slot mailbox between an input reader and the session
// loop. A newer command replaces an unconsumed older one, except that a
// pending Exit is never displaced.
type Inbox struct {
	ch chan Command
}

// NewInbox returns an empty inbox.
func NewInbox() *Inbox {
	return &Inbox{ch: make(chan Command, 1)}
}

// Offer stores c without blocking, discarding any stale pending command.
func (b *Inbox) Offer(c Command) {
	for {
		select {
		case b.ch <- c:
			return
		default:
		}
		select {
		case old := <-b.ch:
			if old.Kind == Exit {
				c = old
			}
		default:
		}
	}
}

// Receive waits up to timeout for a command. ok is false on timeout or when
// ctx is done.
func (b *Inbox) Receive(ctx context.Context, timeout time.Duration) (c Command, ok bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case c = <-b.ch:
		return c, true
	case <-timer.C:
		return Command{}, false
	case <-ctx.Done():
		return Command{}, false
	}
}
