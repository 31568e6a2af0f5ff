// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the
// go-cloud-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process level settings: log level, version, metrics address.
	App App `envPrefix:"APP_"`

	// Account holds the credentials and the folder the client works on.
	Account Account `envPrefix:"ACCOUNT_"`

	// Storage holds the local key-value database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the drive API endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the crypto worker pool and retry settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Crypto holds the parameters used for new key material.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// MetricsAddress is the host:port the Prometheus endpoint listens on.
	// Empty disables the endpoint.
	// Env: APP_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Account identifies the user the client acts for.
type Account struct {
	// Env: ACCOUNT_EMAIL
	Email string `env:"EMAIL"`

	// Password is only read from the environment or the JSON file.
	// Env: ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`

	// Env: ACCOUNT_TWO_FACTOR_CODE
	TwoFactorCode string `env:"TWO_FACTOR_CODE"`

	// RootFolder is the UUID of the folder listed after login.
	// Env: ACCOUNT_ROOT_FOLDER
	RootFolder string `env:"ROOT_FOLDER"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path. "memory" keeps everything in process.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the drive API client.
type Adapter struct {
	// HTTPAddress is the base URL of the drive API gateway.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the crypto worker pool and polling.
type Workers struct {
	// PoolSize is the number of crypto worker goroutines.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`

	// RetryAttempts bounds polling loops such as upload finalization.
	// Env: WORKERS_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryDelay is the constant pause between two polling attempts.
	// Env: WORKERS_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// KeySyncInterval is the period of the background master key sync.
	// Env: WORKERS_KEY_SYNC_INTERVAL
	KeySyncInterval time.Duration `env:"KEY_SYNC_INTERVAL"`
}

// Crypto holds the parameters of newly generated key material.
type Crypto struct {
	// KeyPairBits is the RSA modulus size of new keypairs.
	// Env: CRYPTO_KEY_PAIR_BITS
	KeyPairBits int `env:"KEY_PAIR_BITS"`

	// AuthVersion is the KDF version used for registration and password changes.
	// Env: CRYPTO_AUTH_VERSION
	AuthVersion int `env:"AUTH_VERSION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
