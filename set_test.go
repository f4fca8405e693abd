// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package presence

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetRecord(t *testing.T) {
	require := require.New(t)

	s := NewSet()
	require.False(s.Record("a"))
	require.False(s.Record("b"))
	require.True(s.Record("a"))
	require.True(s.Record("b"))
	require.False(s.Record("c"))

	require.Equal(uint64(2), s.HitCount())
	require.Equal(3, s.Len())
	require.Zero(s.PortionFilled())

	stats := s.Stats()
	require.Equal(uint64(2), stats.Hits)
	require.Equal(uint64(3), stats.Misses)
	require.Zero(stats.Evictions)
	require.Zero(stats.Capacity)
	require.InDelta(0.4, stats.HitRate(), 1e-9)
}

func TestSetConcurrentRecord(t *testing.T) {
	require := require.New(t)

	const (
		workers = 8
		keys    = 1000
	)
	s := NewSet()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < keys; i++ {
				s.Record(strconv.Itoa(i))
			}
		}()
	}
	wg.Wait()

	// Every key misses exactly once no matter which worker got there first.
	require.Equal(keys, s.Len())
	require.Equal(uint64(keys), s.Stats().Misses)
	require.Equal(uint64((workers-1)*keys), s.HitCount())
}

func TestStatsHitRate(t *testing.T) {
	require := require.New(t)

	require.Zero(Stats{}.HitRate())
	require.Equal(uint64(4), Stats{Hits: 1, Misses: 3}.Records())
	require.InDelta(0.25, Stats{Hits: 1, Misses: 3}.HitRate(), 1e-9)
	require.InDelta(1.0, Stats{Hits: 5}.HitRate(), 1e-9)
}
