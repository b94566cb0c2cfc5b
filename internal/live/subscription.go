// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package live

import (
	"context"
	"sync"
)

// Query produces the current value of a subscription.
type Query[T any] func(ctx context.Context) (T, error)

// Subscription is a live query. It must be closed when no longer needed,
// either with [Subscription.Close] or by cancelling the context it was
// created with.
type Subscription[T any] struct {
	hub      *Hub
	query    Query[T]
	fallback T

	updates chan T
	dirty   chan struct{}

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// Subscribe registers query under keys and starts evaluating it. The first
// result is delivered without waiting for an invalidation. When query fails
// the subscription delivers fallback instead and keeps running.
func Subscribe[T any](ctx context.Context, hub *Hub, keys []string, query Query[T], fallback T) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)

	s := &Subscription[T]{
		hub:      hub,
		query:    query,
		fallback: fallback,
		updates:  make(chan T, 1),
		dirty:    make(chan struct{}, 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	// registered before the first run so that a write racing with it still
	// causes a rerun
	hub.register(s, keys)
	go s.run(ctx, keys)

	return s
}

// Updates delivers the newest query result. Values that were not received
// before a newer one arrived are dropped. The channel is closed when the
// subscription stops.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Close stops the subscription and waits for its worker to exit. It is safe
// to call more than once.
func (s *Subscription[T]) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
	})
	return nil
}

// Done is closed once the subscription has stopped.
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription[T]) markDirty() {
	select {
	case s.dirty <- struct{}{}:
	default:
		// a rerun is already pending
	}
}

func (s *Subscription[T]) run(ctx context.Context, keys []string) {
	defer close(s.done)
	defer close(s.updates)
	defer s.hub.unregister(s)

	for {
		value, err := s.query(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.hub.logger.Warn().Err(err).
				Str("func", "Subscription.run").
				Strs("keys", keys).
				Msg("live query failed, delivering fallback")
			value = s.fallback
		}
		s.publish(value)

		select {
		case <-ctx.Done():
			return
		case <-s.dirty:
		}
	}
}

// publish replaces any undelivered value with value. Only the worker sends on
// updates, so after draining there is room.
func (s *Subscription[T]) publish(value T) {
	select {
	case <-s.updates:
	default:
	}
	s.updates <- value
}
