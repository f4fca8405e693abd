// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package replay feeds a recorded key stream through a presence tracker.
package replay

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/luxfi/presence"
)

// maxKeyLength bounds a single line of input.
const maxKeyLength = 1 << 20

type Config struct {
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// ReportEvery logs progress after this many records. 0 disables it.
	ReportEvery int
}

// Run records every non-empty line of r in t and returns the tracker stats
// once r is exhausted.
func Run(ctx context.Context, r io.Reader, t presence.Tracker, cfg Config) (presence.Stats, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxKeyLength)

	var records int
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return t.Stats(), err
		}

		key := strings.TrimSpace(scanner.Text())
		if key == "" {
			continue
		}
		hit := t.Record(key)
		records++
		logger.Debug("recorded key", "key", key, "hit", hit)

		if cfg.ReportEvery > 0 && records%cfg.ReportEvery == 0 {
			stats := t.Stats()
			logger.Info("replay progress",
				"records", records,
				"hits", stats.Hits,
				"hitRate", stats.HitRate(),
				"len", stats.Len,
			)
		}
	}
	if err := scanner.Err(); err != nil {
		return t.Stats(), fmt.Errorf("reading keys: %w", err)
	}
	return t.Stats(), nil
}
