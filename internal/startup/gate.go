// Package startup implements the one-shot loading gate shown before the
// dashboard becomes interactive.
package startup

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/heorconnect/heor-connect/internal/model"
)

// Gate flips from loading to ready exactly once.
type Gate struct {
	delay time.Duration
	ready atomic.Bool
}

// New returns a gate that opens after delay. A non-positive delay uses
// model.DefaultStartupDelay.
func New(delay time.Duration) *Gate {
	if delay <= 0 {
		delay = model.DefaultStartupDelay
	}
	return &Gate{delay: delay}
}

// Delay returns the configured delay.
func (g *Gate) Delay() time.Duration { return g.delay }

// Wait blocks until the delay elapses or ctx is done. It reports whether
// the delay elapsed. Wait does not open the gate; call Fire.
func (g *Gate) Wait(ctx context.Context) bool {
	t := time.NewTimer(g.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Fire opens the gate. It returns true only on the call that opened it.
func (g *Gate) Fire() bool {
	return g.ready.CompareAndSwap(false, true)
}

// Ready reports whether the gate is open.
func (g *Gate) Ready() bool {
	return g.ready.Load()
}
