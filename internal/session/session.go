// Package session composes heterogeneous event sources into one ordered
// stream and folds the world reducer over it. It is the only place where
// goroutines touch the simulation; the reducer itself stays single-threaded
// because all cross-source merging happens before reduction.
package session

import (
	"context"
	"sync"

	"github.com/vovakirdan/tui-asteroids/internal/world"
)

// Handle controls a running session. It replaces the implicitly captured
// subscription a reactive framework would hide: whoever owns the event loop
// holds the handle and may stop the session explicitly.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop detaches the session from its event sources. Safe to call more than
// once and after the session has already halted on its own.
func (h *Handle) Stop() {
	h.cancel()
}

// Done is closed once the session has stopped producing states, whether
// because a terminated state was reached, the sources closed, or Stop was
// called.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Merge fans several event sources into one strictly ordered sequence in
// arrival order. The output channel closes when every source has closed or
// the context is cancelled.
func Merge(ctx context.Context, sources ...<-chan world.Event) <-chan world.Event {
	out := make(chan world.Event)

	var wg sync.WaitGroup
	wg.Add(len(sources))
	for _, src := range sources {
		go func(src <-chan world.Event) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case ev, ok := <-src:
					if !ok {
						return
					}
					select {
					case out <- ev:
					case <-ctx.Done():
						return
					}
				}
			}
		}(src)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run folds the reducer over the event stream starting from initial,
// emitting one state per consumed event. The fold halts and detaches after
// emitting the first terminated state; the states channel then closes.
func Run(ctx context.Context, r *world.Reducer, initial world.State, events <-chan world.Event) (<-chan world.State, *Handle) {
	ctx, cancel := context.WithCancel(ctx)
	states := make(chan world.State)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer cancel()
		defer close(h.done)
		defer close(states)

		s := initial
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				s = r.Reduce(s, ev)
				select {
				case states <- s:
				case <-ctx.Done():
					return
				}
				if s.Terminated {
					return
				}
			}
		}
	}()

	return states, h
}

// Start merges the given sources and runs a session over the result. The
// returned handle stops both the fold and the merge; once the fold halts on
// a terminated state the merge is detached as well.
func Start(ctx context.Context, r *world.Reducer, initial world.State, sources ...<-chan world.Event) (<-chan world.State, *Handle) {
	ctx, cancel := context.WithCancel(ctx)
	states, h := Run(ctx, r, initial, Merge(ctx, sources...))

	go func() {
		<-h.done
		cancel()
	}()

	return states, &Handle{cancel: cancel, done: h.done}
}
