// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package settings

import (
	"flag"
)

// flagWasSet reports whether name was given on the command line, so that
// unset flags do not shadow environment values.
func flagWasSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func registerStringFlag(fs *flag.FlagSet, name string, defaultValue string, description string) func() *string {
	stringVar := fs.String(name, defaultValue, description)
	return func() *string {
		if !flagWasSet(fs, name) {
			return nil
		}
		return stringVar
	}
}

func registerIntFlag(fs *flag.FlagSet, name string, defaultValue int, description string) func() *int {
	intVar := fs.Int(name, defaultValue, description)
	return func() *int {
		if !flagWasSet(fs, name) {
			return nil
		}
		return intVar
	}
}

func loadSettingsFromCmdArgs(args []string) (*Settings, error) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)

	capacityAccessor := registerIntFlag(fs, "capacity", defaultCapacity, "the maximum number of tracked keys")
	shardsAccessor := registerIntFlag(fs, "shards", defaultShards, "the number of tracker shards (power of two, 0 for a single lock); shards evict by per-shard recency, not global recency")
	inputAccessor := registerStringFlag(fs, "input", defaultInput, "the file with one key per line, - for stdin")
	metricsAddressAccessor := registerStringFlag(fs, "metricsAddress", defaultMetricsAddress, "the address serving /metrics, empty to disable")
	reportEveryAccessor := registerIntFlag(fs, "reportEvery", defaultReportEvery, "log progress every n records, 0 to disable")
	logLevelAccessor := registerStringFlag(fs, "logLevel", defaultLogLevel.String(), "the log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	logLevel, err := parseLogLevel("logLevel", logLevelAccessor())
	if err != nil {
		return nil, err
	}

	return &Settings{
		capacity:       capacityAccessor(),
		shards:         shardsAccessor(),
		input:          inputAccessor(),
		metricsAddress: metricsAddressAccessor(),
		reportEvery:    reportEveryAccessor(),
		logLevel:       logLevel,
	}, nil
}
