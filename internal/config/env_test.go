// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_LEVEL":       "debug",
		"APP_VERSION":         "1.2.3",
		"APP_METRICS_ADDRESS": "localhost:9100",

		"ACCOUNT_EMAIL":           "user@example.com",
		"ACCOUNT_PASSWORD":        "secret-password",
		"ACCOUNT_TWO_FACTOR_CODE": "123456",
		"ACCOUNT_ROOT_FOLDER":     "root-uuid",

		"ADAPTER_ADDRESS":         "https://gateway.example",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		"STORAGE_DB_DATABASE_URI": "/tmp/client.db",

		"WORKERS_POOL_SIZE":         "8",
		"WORKERS_RETRY_ATTEMPTS":    "5",
		"WORKERS_RETRY_DELAY":       "250ms",
		"WORKERS_KEY_SYNC_INTERVAL": "10m",

		"CRYPTO_KEY_PAIR_BITS": "2048",
		"CRYPTO_AUTH_VERSION":  "3",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:9100", cfg.App.MetricsAddress)

	assert.Equal(t, "user@example.com", cfg.Account.Email)
	assert.Equal(t, "secret-password", cfg.Account.Password)
	assert.Equal(t, "123456", cfg.Account.TwoFactorCode)
	assert.Equal(t, "root-uuid", cfg.Account.RootFolder)

	assert.Equal(t, "https://gateway.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 8, cfg.Workers.PoolSize)
	assert.Equal(t, 5, cfg.Workers.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Workers.RetryDelay)
	assert.Equal(t, 10*time.Minute, cfg.Workers.KeySyncInterval)

	assert.Equal(t, 2048, cfg.Crypto.KeyPairBits)
	assert.Equal(t, 3, cfg.Crypto.AuthVersion)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_RETRY_DELAY": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_POOL_SIZE": "many"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_LOG_LEVEL",
		"APP_VERSION",
		"APP_METRICS_ADDRESS",

		"ACCOUNT_EMAIL",
		"ACCOUNT_PASSWORD",
		"ACCOUNT_TWO_FACTOR_CODE",
		"ACCOUNT_ROOT_FOLDER",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"STORAGE_DB_DATABASE_URI",

		"WORKERS_POOL_SIZE",
		"WORKERS_RETRY_ATTEMPTS",
		"WORKERS_RETRY_DELAY",
		"WORKERS_KEY_SYNC_INTERVAL",

		"CRYPTO_KEY_PAIR_BITS",
		"CRYPTO_AUTH_VERSION",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
