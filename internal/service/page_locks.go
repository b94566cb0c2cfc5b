// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// pageLocks hands out one mutex per key. Entries are removed once nobody
// holds or waits for them, so the map only grows with concurrent writers.
type pageLocks struct {
	mu    sync.Mutex
	locks map[string]*pageLock
}

type pageLock struct {
	sync.Mutex
	refs int
}

func newPageLocks() *pageLocks {
	return &pageLocks{locks: make(map[string]*pageLock)}
}

// lock blocks until key is free and returns the function releasing it.
func (p *pageLocks) lock(key string) (unlock func()) {
	p.mu.Lock()
	l, ok := p.locks[key]
	if !ok {
		l = &pageLock{}
		p.locks[key] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, key)
		}
		p.mu.Unlock()
	}
}

func (p *pageLocks) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
