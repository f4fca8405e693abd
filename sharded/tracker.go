// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sharded provides a key presence tracker split into independently
// locked LRU shards.
//
// Recency is tracked per shard: when a shard is full the least recently
// touched key of that shard is evicted, which approximates global LRU order
// for well distributed keys but does not guarantee that the globally oldest
// key is the one evicted. The total number of keys never exceeds the
// configured capacity. Use lru.Tracker when exact recency order matters.
package sharded

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/luxfi/presence"
	"go.uber.org/atomic"
)

var _ presence.Tracker = (*Tracker)(nil)

// ErrInvalidShardCount is returned when the shard count is not a positive
// power of two.
var ErrInvalidShardCount = errors.New("shard count must be a positive power of two")

// Tracker is a sharded LRU key tracker.
type Tracker struct {
	shards    []*shard
	shardMask uint64
	capacity  int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard struct {
	mu   sync.Mutex
	keys *simplelru.LRU[string, struct{}]
}

// NewTracker creates a tracker holding at most capacity keys spread over
// numShards shards. Shard sizes differ by at most one and sum to capacity.
func NewTracker(capacity, numShards int) (*Tracker, error) {
	if numShards <= 0 || numShards&(numShards-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShardCount, numShards)
	}
	if capacity < numShards {
		return nil, fmt.Errorf("%w: %d is less than %d shards", presence.ErrInvalidCapacity, capacity, numShards)
	}

	t := &Tracker{
		shards:    make([]*shard, numShards),
		shardMask: uint64(numShards - 1),
		capacity:  capacity,
	}
	perShard, extra := capacity/numShards, capacity%numShards
	for i := range t.shards {
		size := perShard
		if i < extra {
			size++
		}
		keys, err := simplelru.NewLRU[string, struct{}](size, nil)
		if err != nil {
			return nil, err
		}
		t.shards[i] = &shard{keys: keys}
	}
	return t, nil
}

func (t *Tracker) shard(key string) *shard {
	return t.shards[xxhash.Sum64String(key)&t.shardMask]
}

// Record marks key as the newest entry of its shard and reports whether it
// was already tracked.
func (t *Tracker) Record(key string) bool {
	s := t.shard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Get refreshes recency on a hit.
	if _, ok := s.keys.Get(key); ok {
		t.hits.Inc()
		return true
	}
	if s.keys.Add(key, struct{}{}) {
		t.evictions.Inc()
	}
	t.misses.Inc()
	return false
}

// HitCount returns the number of hits recorded so far.
func (t *Tracker) HitCount() uint64 {
	return t.hits.Load()
}

// Stats returns a snapshot of the counters. Shards are read one at a time,
// so under concurrent writes the counters and Len may be slightly apart.
func (t *Tracker) Stats() presence.Stats {
	return presence.Stats{
		Hits:      t.hits.Load(),
		Misses:    t.misses.Load(),
		Evictions: t.evictions.Load(),
		Len:       t.Len(),
		Capacity:  t.capacity,
	}
}

// Len returns the number of tracked keys across all shards.
func (t *Tracker) Len() int {
	total := 0
	for _, s := range t.shards {
		s.mu.Lock()
		total += s.keys.Len()
		s.mu.Unlock()
	}
	return total
}

// Capacity returns the maximum number of tracked keys.
func (t *Tracker) Capacity() int {
	return t.capacity
}

// Shards returns the number of shards.
func (t *Tracker) Shards() int {
	return len(t.shards)
}

// PortionFilled returns fraction of tracker currently filled.
func (t *Tracker) PortionFilled() float64 {
	return float64(t.Len()) / float64(t.capacity)
}
