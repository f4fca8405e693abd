// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package presence

import (
	"sync"

	"go.uber.org/atomic"
)

var _ Tracker = (*Set)(nil)

// Set is an unbounded tracker. Keys are never evicted, so its hit rate is
// the upper bound a bounded tracker can reach on the same key stream.
type Set struct {
	mu     sync.RWMutex
	keys   map[string]struct{}
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewSet creates an empty unbounded tracker.
func NewSet() *Set {
	return &Set{
		keys: make(map[string]struct{}),
	}
}

// Record inserts key and reports whether it was already present.
func (s *Set) Record(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[key]; ok {
		s.hits.Inc()
		return true
	}
	s.keys[key] = struct{}{}
	s.misses.Inc()
	return false
}

// HitCount returns the number of hits recorded so far.
func (s *Set) HitCount() uint64 {
	return s.hits.Load()
}

// Stats returns a snapshot of the counters. Capacity is reported as 0.
func (s *Set) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Len:    len(s.keys),
	}
}

// Len returns the number of distinct keys seen.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// PortionFilled is always 0 since the set has no bound.
func (*Set) PortionFilled() float64 {
	return 0
}
