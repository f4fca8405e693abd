// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metertracker

import (
	"errors"

	"github.com/luxfi/metric"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultLabel = "result"
	hitResult   = "hit"
	missResult  = "miss"
)

var (
	resultLabels = []string{resultLabel}
	hitLabels    = prometheus.Labels{
		resultLabel: hitResult,
	}
	missLabels = prometheus.Labels{
		resultLabel: missResult,
	}
)

type trackerMetrics struct {
	recordCount *prometheus.CounterVec
	recordTime  *prometheus.CounterVec

	len           prometheus.Gauge
	portionFilled prometheus.Gauge
}

func newMetrics(
	namespace string,
	registry metric.Registry,
) (*trackerMetrics, error) {
	m := &trackerMetrics{
		recordCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "record_count",
				Help:      "number of record calls",
			},
			resultLabels,
		),
		recordTime: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "record_time",
				Help:      "time spent (ns) in record calls",
			},
			resultLabels,
		),
		len: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "len",
				Help:      "number of keys currently tracked",
			},
		),
		portionFilled: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "portion_filled",
				Help:      "fraction of the tracker currently filled",
			},
		),
	}
	return m, errors.Join(
		registry.Register(m.recordCount),
		registry.Register(m.recordTime),
		registry.Register(m.len),
		registry.Register(m.portionFilled),
	)
}
