package modal

import (
	"context"
	"sync"
)

// Result is the outcome of a confirmation.
type Result int

const (
	Cancelled Result = iota
	Confirmed
)

func (r Result) String() string {
	if r == Confirmed {
		return "confirmed"
	}
	return "cancelled"
}

// Pending is the single-assignment result of a confirmation workflow.
// It settles exactly once; later attempts are ignored.
type Pending struct {
	once   sync.Once
	done   chan struct{}
	result Result
	id     EntryID
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// settle records r if nothing has been recorded yet and reports whether
// this call won.
func (p *Pending) settle(r Result) bool {
	won := false
	p.once.Do(func() {
		p.result = r
		won = true
		close(p.done)
	})
	return won
}

// ID is the entry of the dialog that settles p.
func (p *Pending) ID() EntryID {
	return p.id
}

// Done is closed once the result is known.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Result returns the outcome without blocking. ok is false until settled.
func (p *Pending) Result() (Result, bool) {
	select {
	case <-p.done:
		return p.result, true
	default:
		return Cancelled, false
	}
}

// Wait blocks until the confirmation settles or ctx is done.
func (p *Pending) Wait(ctx context.Context) (Result, error) {
	select {
	case <-p.done:
		return p.result, nil
	case <-ctx.Done():
		return Cancelled, ctx.Err()
	}
}
