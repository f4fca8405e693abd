// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metertracker

import (
	"testing"

	"github.com/luxfi/metric"
	"github.com/luxfi/presence/lru"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMeteredRecord(t *testing.T) {
	require := require.New(t)

	inner, err := lru.NewTracker(2)
	require.NoError(err)

	registry := metric.NewRegistry()
	tracker, err := New("fragments", registry, inner)
	require.NoError(err)

	require.False(tracker.Record("a"))
	require.False(tracker.Record("b"))
	require.True(tracker.Record("a"))
	require.False(tracker.Record("c"))

	require.Equal(uint64(1), tracker.HitCount())
	require.Equal(2, tracker.Len())

	require.Equal(1.0, testutil.ToFloat64(tracker.metrics.recordCount.With(hitLabels)))
	require.Equal(3.0, testutil.ToFloat64(tracker.metrics.recordCount.With(missLabels)))
	require.Equal(2.0, testutil.ToFloat64(tracker.metrics.len))
	require.Equal(1.0, testutil.ToFloat64(tracker.metrics.portionFilled))
	require.Greater(testutil.ToFloat64(tracker.metrics.recordTime.With(hitLabels)), 0.0)
	require.Greater(testutil.ToFloat64(tracker.metrics.recordTime.With(missLabels)), 0.0)

	families, err := registry.Gather()
	require.NoError(err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	require.ElementsMatch([]string{
		"fragments_record_count",
		"fragments_record_time",
		"fragments_len",
		"fragments_portion_filled",
	}, names)
}

func TestNewDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	inner, err := lru.NewTracker(1)
	require.NoError(err)

	registry := metric.NewRegistry()
	_, err = New("fragments", registry, inner)
	require.NoError(err)

	_, err = New("fragments", registry, inner)
	require.Error(err)
}
