// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/luxfi/presence"
	"go.uber.org/atomic"
)

var _ presence.Tracker = (*SizedTracker)(nil)

// SizedTracker is an LRU key tracker bounded by the total byte length of the
// tracked keys rather than by key count.
type SizedTracker struct {
	mu          sync.Mutex
	maxBytes    int
	currentSize int
	items       map[string]*list.Element
	lru         *list.List

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewSizedTracker creates a tracker whose keys sum to at most maxBytes.
func NewSizedTracker(maxBytes int) (*SizedTracker, error) {
	if maxBytes <= 0 {
		return nil, fmt.Errorf("%w: got %d bytes", presence.ErrInvalidCapacity, maxBytes)
	}
	return &SizedTracker{
		maxBytes: maxBytes,
		items:    make(map[string]*list.Element),
		lru:      list.New(),
	}, nil
}

// Record marks key as the newest entry and reports whether it was already
// tracked. A key longer than the byte budget is counted as a miss and is
// not retained.
func (t *SizedTracker) Record(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if elem, ok := t.items[key]; ok {
		t.lru.MoveToFront(elem)
		t.hits.Inc()
		return true
	}

	t.misses.Inc()
	if len(key) > t.maxBytes {
		return false
	}

	for t.currentSize > t.maxBytes-len(key) {
		back := t.lru.Back()
		if back == nil {
			break
		}
		oldKey := back.Value.(string)
		t.currentSize -= len(oldKey)
		delete(t.items, oldKey)
		t.lru.Remove(back)
		t.evictions.Inc()
	}

	t.items[key] = t.lru.PushFront(key)
	t.currentSize += len(key)
	return false
}

// HitCount returns the number of hits recorded so far.
func (t *SizedTracker) HitCount() uint64 {
	return t.hits.Load()
}

// Stats returns a snapshot of the counters. Capacity is in bytes.
func (t *SizedTracker) Stats() presence.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return presence.Stats{
		Hits:      t.hits.Load(),
		Misses:    t.misses.Load(),
		Evictions: t.evictions.Load(),
		Len:       len(t.items),
		Capacity:  t.maxBytes,
	}
}

// Len returns number of tracked keys.
func (t *SizedTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

// Size returns the summed byte length of the tracked keys.
func (t *SizedTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentSize
}

// PortionFilled returns the ratio of bytes used to max bytes.
func (t *SizedTracker) PortionFilled() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return float64(t.currentSize) / float64(t.maxBytes)
}
