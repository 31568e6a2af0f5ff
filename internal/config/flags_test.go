package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 9100},
			expected: "localhost:9100",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 9100},
			expected: ":9100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:9100",
			expectedAddr: NetAddress{Host: "localhost", Port: 9100},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":9100",
			expectedAddr: NetAddress{Host: "", Port: 9100},
		},
		{
			name:        "missing colon",
			input:       "localhost9100",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "port too large",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:9100",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "https://gateway.example",
				"-d", "/tmp/client.db",
				"-c", "/path/to/config.json",
				"-request-timeout", "30s",
				"-workers", "6",
				"-retry-attempts", "4",
				"-retry-delay", "500ms",
				"-key-sync-interval", "2m",
				"-key-bits", "2048",
				"-auth-version", "3",
				"-log-level", "debug",
				"-metrics-address", "localhost:9100",
				"-email", "user@example.com",
				"-root-folder", "root-uuid",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://gateway.example", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 6, cfg.Workers.PoolSize)
				assert.Equal(t, 4, cfg.Workers.RetryAttempts)
				assert.Equal(t, 500*time.Millisecond, cfg.Workers.RetryDelay)
				assert.Equal(t, 2*time.Minute, cfg.Workers.KeySyncInterval)
				assert.Equal(t, 2048, cfg.Crypto.KeyPairBits)
				assert.Equal(t, 3, cfg.Crypto.AuthVersion)
				assert.Equal(t, "debug", cfg.App.LogLevel)
				assert.Equal(t, "localhost:9100", cfg.App.MetricsAddress)
				assert.Equal(t, "user@example.com", cfg.Account.Email)
				assert.Equal(t, "root-uuid", cfg.Account.RootFolder)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Invalid tests ParseFlags with malformed values
func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid metrics address", []string{"-metrics-address", "invalid"}},
		{"invalid duration", []string{"-retry-delay", "soon"}},
		{"invalid int", []string{"-workers", "many"}},
		{"unknown flag", []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
