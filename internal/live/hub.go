// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package live

import (
	"sync"

	"github.com/MKhiriev/go-dabria/internal/logger"
)

// listener is the hub's view of a subscription.
type listener interface {
	markDirty()
}

// Hub routes invalidated keys to the subscriptions that depend on them.
// The zero value is not usable; create one with [NewHub].
type Hub struct {
	mu     sync.Mutex
	byKey  map[string]map[listener]struct{}
	keysOf map[listener][]string
	logger *logger.Logger
}

// NewHub creates an empty Hub.
func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		byKey:  make(map[string]map[listener]struct{}),
		keysOf: make(map[listener][]string),
		logger: log,
	}
}

// Invalidate marks every subscription depending on any of keys as dirty. It
// never blocks on subscribers.
func (h *Hub) Invalidate(keys ...string) {
	h.mu.Lock()
	targets := make(map[listener]struct{})
	for _, key := range keys {
		for l := range h.byKey[key] {
			targets[l] = struct{}{}
		}
	}
	h.mu.Unlock()

	for l := range targets {
		l.markDirty()
	}
}

// Subscribers returns the number of registered subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.keysOf)
}

func (h *Hub) register(l listener, keys []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	unique := make([]string, 0, len(keys))
	for _, key := range keys {
		set, ok := h.byKey[key]
		if !ok {
			set = make(map[listener]struct{})
			h.byKey[key] = set
		}
		if _, dup := set[l]; dup {
			continue
		}
		set[l] = struct{}{}
		unique = append(unique, key)
	}
	h.keysOf[l] = unique
}

func (h *Hub) unregister(l listener) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, key := range h.keysOf[l] {
		delete(h.byKey[key], l)
		if len(h.byKey[key]) == 0 {
			delete(h.byKey, key)
		}
	}
	delete(h.keysOf, l)
}
