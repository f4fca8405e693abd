// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package settings

import (
	"fmt"
	"os"
	"strconv"
)

const envKeyPrefix string = "PRESENCE"

const capacityEnvKey string = envKeyPrefix + "_CAPACITY"
const shardsEnvKey string = envKeyPrefix + "_SHARDS"
const inputEnvKey string = envKeyPrefix + "_INPUT"
const metricsAddressEnvKey string = envKeyPrefix + "_METRICS_ADDRESS"
const reportEveryEnvKey string = envKeyPrefix + "_REPORT_EVERY"
const logLevelEnvKey string = envKeyPrefix + "_LOG_LEVEL"

func getStringFromEnv(envKey string) *string {
	val := os.Getenv(envKey)
	if val == "" {
		return nil
	}
	return &val
}

func getIntFromEnv(envKey string) (*int, error) {
	val := os.Getenv(envKey)
	if val == "" {
		return nil, nil
	}
	int64Val, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envKey, err)
	}
	intVal := int(int64Val)
	return &intVal, nil
}

func loadSettingsFromEnv() (*Settings, error) {
	capacity, err := getIntFromEnv(capacityEnvKey)
	if err != nil {
		return nil, err
	}
	shards, err := getIntFromEnv(shardsEnvKey)
	if err != nil {
		return nil, err
	}
	reportEvery, err := getIntFromEnv(reportEveryEnvKey)
	if err != nil {
		return nil, err
	}
	logLevel, err := parseLogLevel(logLevelEnvKey, getStringFromEnv(logLevelEnvKey))
	if err != nil {
		return nil, err
	}

	return &Settings{
		capacity:       capacity,
		shards:         shards,
		input:          getStringFromEnv(inputEnvKey),
		metricsAddress: getStringFromEnv(metricsAddressEnvKey),
		reportEvery:    reportEvery,
		logLevel:       logLevel,
	}, nil
}
