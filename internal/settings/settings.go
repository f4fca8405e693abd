// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package settings loads the replay command configuration from command line
// flags and PRESENCE_* environment variables.
package settings

import (
	"fmt"
	"log/slog"

	"github.com/luxfi/presence"
)

const (
	defaultCapacity       = presence.DefaultCapacity
	defaultShards         = 0
	defaultInput          = "-"
	defaultMetricsAddress = ""
	defaultReportEvery    = 100_000
	defaultLogLevel       = slog.LevelInfo
)

// Settings holds optional values; accessors fall back to defaults.
type Settings struct {
	capacity       *int
	shards         *int
	input          *string
	metricsAddress *string
	reportEvery    *int
	logLevel       *slog.Level
}

func valueOrDefault[V any](v *V, defaultValue V) V {
	if v == nil {
		return defaultValue
	}
	return *v
}

func firstSet[V any](values ...*V) *V {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// Capacity is the maximum number of tracked keys.
func (s *Settings) Capacity() int {
	return valueOrDefault(s.capacity, defaultCapacity)
}

// Shards is the shard count. 0 selects the single lock tracker.
func (s *Settings) Shards() int {
	return valueOrDefault(s.shards, defaultShards)
}

// Input is the key file to replay, "-" for stdin.
func (s *Settings) Input() string {
	return valueOrDefault(s.input, defaultInput)
}

// MetricsAddress is where /metrics is served. Empty disables it.
func (s *Settings) MetricsAddress() string {
	return valueOrDefault(s.metricsAddress, defaultMetricsAddress)
}

// ReportEvery is the number of records between progress logs. 0 disables
// progress logging.
func (s *Settings) ReportEvery() int {
	return valueOrDefault(s.reportEvery, defaultReportEvery)
}

// LogLevel is the minimum level the command logs at.
func (s *Settings) LogLevel() slog.Level {
	return valueOrDefault(s.logLevel, defaultLogLevel)
}

func parseLogLevel(name string, value *string) (*slog.Level, error) {
	if value == nil {
		return nil, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(*value)); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, *value, err)
	}
	return &level, nil
}

// merge overlays the set fields of other onto s.
func (s *Settings) merge(other *Settings) {
	s.capacity = firstSet(other.capacity, s.capacity)
	s.shards = firstSet(other.shards, s.shards)
	s.input = firstSet(other.input, s.input)
	s.metricsAddress = firstSet(other.metricsAddress, s.metricsAddress)
	s.reportEvery = firstSet(other.reportEvery, s.reportEvery)
	s.logLevel = firstSet(other.logLevel, s.logLevel)
}

func mergeSettings(settings ...*Settings) *Settings {
	result := &Settings{}
	for _, setting := range settings {
		if setting == nil {
			continue
		}
		result.merge(setting)
	}
	return result
}

// LoadSettings parses args, then applies environment overrides.
func LoadSettings(args []string) (*Settings, error) {
	cmdArgsSettings, err := loadSettingsFromCmdArgs(args)
	if err != nil {
		return nil, err
	}
	envSettings, err := loadSettingsFromEnv()
	if err != nil {
		return nil, err
	}
	settings := mergeSettings(cmdArgsSettings, envSettings)

	if settings.ReportEvery() < 0 {
		return nil, fmt.Errorf("invalid report interval %d", settings.ReportEvery())
	}
	return settings, nil
}
