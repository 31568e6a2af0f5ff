// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Everything may be left unset here; [ClientConfig.validate] runs after
// defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.PoolSize < 0 || cfg.Workers.RetryAttempts < 0 || cfg.Workers.RetryDelay < 0 || cfg.Workers.KeySyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PoolSize <= 0 || cfg.Workers.RetryAttempts <= 0 || cfg.Workers.RetryDelay <= 0 || cfg.Workers.KeySyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Crypto.KeyPairBits < 2048 || (cfg.Crypto.AuthVersion != 2 && cfg.Crypto.AuthVersion != 3) {
		return ErrInvalidCryptoConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return ErrInvalidAppConfigs
	}

	return nil
}
