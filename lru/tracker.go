// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lru provides key presence trackers with least recently used
// eviction.
package lru

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/luxfi/presence"
	"go.uber.org/atomic"
)

var _ presence.Tracker = (*Tracker)(nil)

// Tracker is a thread-safe LRU set of keys bounded by key count.
//
// The front of order is the most recently touched key, the back is the next
// eviction candidate.
type Tracker struct {
	lock     sync.Mutex
	capacity int
	elements map[string]*list.Element
	order    *list.List

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewTracker creates a tracker holding at most capacity keys.
func NewTracker(capacity int) (*Tracker, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", presence.ErrInvalidCapacity, capacity)
	}
	return &Tracker{
		capacity: capacity,
		elements: make(map[string]*list.Element),
		order:    list.New(),
	}, nil
}

// Record marks key as the newest entry and reports whether it was already
// tracked. When a new key would exceed the capacity the oldest key is
// dropped first.
func (t *Tracker) Record(key string) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	if elem, ok := t.elements[key]; ok {
		t.order.MoveToFront(elem)
		t.hits.Inc()
		return true
	}

	if t.order.Len() >= t.capacity {
		t.removeOldest()
	}
	t.elements[key] = t.order.PushFront(key)
	t.misses.Inc()
	return false
}

// HitCount returns the number of hits recorded so far.
func (t *Tracker) HitCount() uint64 {
	return t.hits.Load()
}

// Stats returns a snapshot of the tracker counters.
func (t *Tracker) Stats() presence.Stats {
	t.lock.Lock()
	defer t.lock.Unlock()
	return presence.Stats{
		Hits:      t.hits.Load(),
		Misses:    t.misses.Load(),
		Evictions: t.evictions.Load(),
		Len:       t.order.Len(),
		Capacity:  t.capacity,
	}
}

// Len returns the number of tracked keys.
func (t *Tracker) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.order.Len()
}

// Capacity returns the maximum number of tracked keys.
func (t *Tracker) Capacity() int {
	return t.capacity
}

// PortionFilled returns fraction of tracker currently filled.
func (t *Tracker) PortionFilled() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()
	return float64(t.order.Len()) / float64(t.capacity)
}

// Keys returns a copy of the tracked keys, from oldest to newest.
func (t *Tracker) Keys() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	keys := make([]string, 0, t.order.Len())
	for elem := t.order.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(string))
	}
	return keys
}

func (t *Tracker) removeOldest() {
	oldest := t.order.Back()
	if oldest == nil {
		return
	}
	delete(t.elements, oldest.Value.(string))
	t.order.Remove(oldest)
	t.evictions.Inc()
}
