// Package loop runs a frame function on a ticker until it is cancelled.
package loop

import (
	"context"
	"sync"
	"time"
)

// StepFunc advances one frame. dt is the time since the previous frame in
// seconds.
type StepFunc func(dt float64)

// Handle controls a running loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Run calls step every interval on a new goroutine until ctx is done or
// Stop is called. step is never called concurrently with itself.
func Run(ctx context.Context, interval time.Duration, step StepFunc) *Handle {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				// Cancellation wins over a tick that is ready at the same time.
				if ctx.Err() != nil {
					return
				}
				step(now.Sub(last).Seconds())
				last = now
			}
		}
	}()
	return h
}

// Stop cancels the loop and waits for the goroutine to exit. No step call
// starts after Stop returns. It is safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed when the loop goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
