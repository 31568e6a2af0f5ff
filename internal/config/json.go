package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys.
type StructuredJSONConfig struct {
	App struct {
		LogLevel       string `json:"log_level"`
		Version        string `json:"version"`
		MetricsAddress string `json:"metrics_address"`
	} `json:"app,omitempty"`

	Account struct {
		Email         string `json:"email"`
		Password      string `json:"password"`
		TwoFactorCode string `json:"two_factor_code"`
		RootFolder    string `json:"root_folder"`
	} `json:"account,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PoolSize        int      `json:"pool_size"`
		RetryAttempts   int      `json:"retry_attempts"`
		RetryDelay      Duration `json:"retry_delay"`
		KeySyncInterval Duration `json:"key_sync_interval"`
	} `json:"workers,omitempty"`

	Crypto struct {
		KeyPairBits int `json:"key_pair_bits"`
		AuthVersion int `json:"auth_version"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
			MetricsAddress: jsonCfg.App.MetricsAddress,
		},
		Account: Account{
			Email:         jsonCfg.Account.Email,
			Password:      jsonCfg.Account.Password,
			TwoFactorCode: jsonCfg.Account.TwoFactorCode,
			RootFolder:    jsonCfg.Account.RootFolder,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PoolSize:        jsonCfg.Workers.PoolSize,
			RetryAttempts:   jsonCfg.Workers.RetryAttempts,
			RetryDelay:      time.Duration(jsonCfg.Workers.RetryDelay),
			KeySyncInterval: time.Duration(jsonCfg.Workers.KeySyncInterval),
		},
		Crypto: Crypto{
			KeyPairBits: jsonCfg.Crypto.KeyPairBits,
			AuthVersion: jsonCfg.Crypto.AuthVersion,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
