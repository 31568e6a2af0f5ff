package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultAdapterAddress  = "https://gateway.filen.io"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultPoolSize        = 4
	DefaultRetryAttempts   = 10
	DefaultRetryDelay      = time.Second
	DefaultKeySyncInterval = 5 * time.Minute
	DefaultKeyPairBits     = 4096
	DefaultAuthVersion     = 2
	DefaultLogLevel        = "info"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	LogLevel       string
	Version        string
	MetricsAddress string
}

// ClientAccount holds the credentials used by the command line client.
type ClientAccount struct {
	Email         string
	Password      string
	TwoFactorCode string
	RootFolder    string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the drive API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains the crypto pool and polling settings.
type ClientWorkers struct {
	PoolSize        int
	RetryAttempts   int
	RetryDelay      time.Duration
	KeySyncInterval time.Duration
}

// ClientCrypto contains parameters of new key material.
type ClientCrypto struct {
	KeyPairBits int
	AuthVersion int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Account ClientAccount
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Crypto  ClientCrypto
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig projects cfg onto a [ClientConfig] and fills defaults.
// The result is not validated.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel:       cfg.App.LogLevel,
			Version:        cfg.App.Version,
			MetricsAddress: cfg.App.MetricsAddress,
		},
		Account: ClientAccount{
			Email:         cfg.Account.Email,
			Password:      cfg.Account.Password,
			TwoFactorCode: cfg.Account.TwoFactorCode,
			RootFolder:    cfg.Account.RootFolder,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			PoolSize:        cfg.Workers.PoolSize,
			RetryAttempts:   cfg.Workers.RetryAttempts,
			RetryDelay:      cfg.Workers.RetryDelay,
			KeySyncInterval: cfg.Workers.KeySyncInterval,
		},
		Crypto: ClientCrypto{
			KeyPairBits: cfg.Crypto.KeyPairBits,
			AuthVersion: cfg.Crypto.AuthVersion,
		},
	}

	clientCfg.applyDefaults()
	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.PoolSize == 0 {
		cfg.Workers.PoolSize = DefaultPoolSize
	}
	if cfg.Workers.RetryAttempts == 0 {
		cfg.Workers.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.Workers.RetryDelay == 0 {
		cfg.Workers.RetryDelay = DefaultRetryDelay
	}
	if cfg.Workers.KeySyncInterval == 0 {
		cfg.Workers.KeySyncInterval = DefaultKeySyncInterval
	}
	if cfg.Crypto.KeyPairBits == 0 {
		cfg.Crypto.KeyPairBits = DefaultKeyPairBits
	}
	if cfg.Crypto.AuthVersion == 0 {
		cfg.Crypto.AuthVersion = DefaultAuthVersion
	}
}
