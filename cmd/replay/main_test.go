// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/luxfi/presence/lru"
	"github.com/luxfi/presence/sharded"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	require := require.New(t)

	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	tracker, err := newTracker(16, 0)
	require.NoError(err)
	require.IsType(&lru.Tracker{}, tracker)
	require.Empty(logs.String())

	tracker, err = newTracker(16, 4)
	require.NoError(err)
	require.IsType(&sharded.Tracker{}, tracker)
	require.Contains(logs.String(), "per-shard recency")

	_, err = newTracker(16, 3)
	require.ErrorIs(err, sharded.ErrInvalidShardCount)
}
