// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Command replay estimates the hit rate a bounded presence tracker would
// reach on a recorded stream of request cache keys.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/luxfi/metric"
	"github.com/luxfi/presence"
	"github.com/luxfi/presence/internal/replay"
	"github.com/luxfi/presence/internal/settings"
	"github.com/luxfi/presence/lru"
	"github.com/luxfi/presence/metertracker"
	"github.com/luxfi/presence/sharded"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "presence"

func main() {
	programLevel := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: programLevel,
	}))
	slog.SetDefault(logger)

	if err := run(programLevel); err != nil {
		slog.Error(fmt.Sprint("replay failed: ", err))
		os.Exit(1)
	}
}

func run(programLevel *slog.LevelVar) error {
	s, err := settings.LoadSettings(os.Args[1:])
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	programLevel.Set(s.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inner, err := newTracker(s.Capacity(), s.Shards())
	if err != nil {
		return err
	}
	registry := metric.NewRegistry()
	tracker, err := metertracker.New(metricsNamespace, registry, inner)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	if addr := s.MetricsAddress(); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		metricsServer := &http.Server{Addr: addr, Handler: mux}
		go func() {
			slog.Info(fmt.Sprintf("Listening with metrics api on http://%v/metrics", addr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error(fmt.Sprint("metrics server stopped: ", err))
			}
		}()
		defer metricsServer.Close()
	}

	input, err := openInput(s.Input())
	if err != nil {
		return err
	}
	defer input.Close()

	stats, err := replay.Run(ctx, input, tracker, replay.Config{
		Logger:      slog.Default(),
		ReportEvery: s.ReportEvery(),
	})
	if err != nil {
		return err
	}

	slog.Info("replay finished",
		"records", stats.Records(),
		"hits", stats.Hits,
		"misses", stats.Misses,
		"evictions", stats.Evictions,
		"hitRate", stats.HitRate(),
		"len", stats.Len,
		"capacity", stats.Capacity,
	)
	return nil
}

func newTracker(capacity, shards int) (presence.Tracker, error) {
	if shards == 0 {
		return lru.NewTracker(capacity)
	}
	slog.Warn(fmt.Sprintf("Using %d shards: eviction follows per-shard recency, not global recency", shards))
	return sharded.NewTracker(capacity, shards)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}
