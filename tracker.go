// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package presence provides bounded trackers that record whether request
// keys have been seen recently, without storing any payload.
package presence

import "errors"

// DefaultCapacity is the number of distinct keys a tracker holds when the
// caller has no better estimate.
const DefaultCapacity = 250_000

// ErrInvalidCapacity is returned when a tracker is constructed with a
// non-positive capacity.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// Tracker records key presence and counts hits.
type Tracker interface {
	// Record marks key as the most recently seen key and reports whether it
	// was already tracked.
	Record(key string) bool

	// HitCount returns the number of Record calls that returned true.
	HitCount() uint64

	// Stats returns a snapshot of the tracker counters.
	Stats() Stats

	// Len returns the number of tracked keys.
	Len() int

	// PortionFilled returns fraction of tracker currently filled (0 --> 1).
	PortionFilled() float64
}

// Stats is a point in time view of a tracker.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
	Capacity  int
}

// Records returns the number of Record calls covered by the snapshot.
func (s Stats) Records() uint64 {
	return s.Hits + s.Misses
}

// HitRate returns Hits / (Hits + Misses), or 0 before the first record.
func (s Stats) HitRate() float64 {
	total := s.Records()
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
