// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package replay

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/luxfi/presence"
	"github.com/luxfi/presence/lru"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	require := require.New(t)

	tracker, err := lru.NewTracker(2)
	require.NoError(err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	input := "a\nb\n\n  a  \nc\nb\n"
	stats, err := Run(context.Background(), strings.NewReader(input), tracker, Config{
		Logger:      logger,
		ReportEvery: 2,
	})
	require.NoError(err)
	require.Equal(presence.Stats{
		Hits:      1,
		Misses:    4,
		Evictions: 2,
		Len:       2,
		Capacity:  2,
	}, stats)
	require.Equal([]string{"c", "b"}, tracker.Keys())
	require.Equal(2, strings.Count(logs.String(), "replay progress"))
}

func TestRunCanceled(t *testing.T) {
	require := require.New(t)

	tracker := presence.NewSet()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := Run(ctx, strings.NewReader("a\nb\n"), tracker, Config{})
	require.ErrorIs(err, context.Canceled)
	require.Zero(stats.Records())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestRunReadError(t *testing.T) {
	_, err := Run(context.Background(), io.MultiReader(strings.NewReader("a\n"), failingReader{}), presence.NewSet(), Config{})
	require.ErrorContains(t, err, "disk gone")
}
