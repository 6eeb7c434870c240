package client

import (
	"context"
	"sync"
)

// Status is an operation's position in its single-shot Ready -> Executing
// -> Finished lifecycle.
type Status int

const (
	StatusReady Status = iota
	StatusExecuting
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusExecuting:
		return "Executing"
	case StatusFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// lifecycle is embedded by every operation type to give it the shared
// Ready/Executing/Finished state machine and cancellation: begin attempts
// the Ready -> Executing transition, Cancel may be called from any state
// and always ends in Finished without surfacing a success.
type lifecycle struct {
	mu     sync.Mutex
	status Status
	cancel context.CancelFunc
}

// begin transitions Ready -> Executing and derives a cancellable context
// from parent. It returns ok=false if the operation isn't in Ready state
// (already started, or already cancelled).
func (l *lifecycle) begin(parent context.Context) (context.Context, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.status != StatusReady {
		return nil, false
	}
	ctx, cancel := context.WithCancel(parent)
	l.status = StatusExecuting
	l.cancel = cancel
	return ctx, true
}

// finish transitions to Finished, called by the operation's goroutine once
// its result is resolved.
func (l *lifecycle) finish() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = StatusFinished
}

// Cancel transitions the operation directly to Finished. If a transport
// call is in flight, the derived context is cancelled; the transport is not
// required to honor it, but the operation's eventual result is discarded
// either way (see Execute's opCtx.Err() check).
func (l *lifecycle) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.status == StatusFinished {
		return
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.status = StatusFinished
}

// Status reports the operation's current lifecycle state.
func (l *lifecycle) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}
