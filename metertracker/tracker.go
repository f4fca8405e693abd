// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metertracker provides metered key presence trackers.
package metertracker

import (
	"time"

	"github.com/luxfi/metric"
	"github.com/luxfi/presence"
)

var _ presence.Tracker = (*Tracker)(nil)

// Tracker wraps a presence.Tracker with metrics.
type Tracker struct {
	presence.Tracker
	metrics *trackerMetrics
}

// New creates a new metered tracker wrapper.
func New(
	namespace string,
	registry metric.Registry,
	t presence.Tracker,
) (*Tracker, error) {
	metrics, err := newMetrics(namespace, registry)
	return &Tracker{
		Tracker: t,
		metrics: metrics,
	}, err
}

func (t *Tracker) Record(key string) bool {
	start := time.Now()
	hit := t.Tracker.Record(key)
	recordDuration := time.Since(start)

	labels := missLabels
	if hit {
		labels = hitLabels
	}
	t.metrics.recordCount.With(labels).Inc()
	t.metrics.recordTime.With(labels).Add(float64(recordDuration))
	t.metrics.len.Set(float64(t.Tracker.Len()))
	t.metrics.portionFilled.Set(t.Tracker.PortionFilled())

	return hit
}
