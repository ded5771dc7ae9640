// Package lifecycle bridges gridsync watch events into generic
// lifecycle-managed pipelines.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/gridsync/pkg/core"
)

type snapshotSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits snapshot change events.
// It bridges the typed gridsync event channel to the generic lifecycle
// Event interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &snapshotSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *snapshotSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *snapshotSource) Start(ctx context.Context) error {
	// lifecycle.Go tracks the bridging goroutine so shutdown waits for it.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
