package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the client command line.
//
// Flags:
//
//	-a drive API base URL
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-workers crypto worker pool size
//	-retry-attempts polling attempts
//	-retry-delay pause between polling attempts
//	-key-sync-interval period of the background key sync
//	-key-bits RSA size of new keypairs
//	-auth-version KDF version for new credentials
//	-log-level zerolog level
//	-metrics-address metrics listen address in format [host]:[port]
//	-email account email
//	-root-folder folder UUID to list
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("cloud-keeper", flag.ContinueOnError)

	var metricsAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var poolSize int
	var retryAttempts int
	var retryDelay time.Duration
	var keySyncInterval time.Duration
	var keyBits int
	var authVersion int
	var logLevel string
	var email string
	var rootFolder string

	fs.StringVar(&adapterAddress, "a", "", "Drive API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&poolSize, "workers", 0, "Crypto worker pool size")
	fs.IntVar(&retryAttempts, "retry-attempts", 0, "Polling attempts")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Pause between polling attempts")
	fs.DurationVar(&keySyncInterval, "key-sync-interval", 0, "Period of the background key sync")
	fs.IntVar(&keyBits, "key-bits", 0, "RSA size of new keypairs")
	fs.IntVar(&authVersion, "auth-version", 0, "KDF version for new credentials")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Var(&metricsAddress, "metrics-address", "Metrics listen address host:port")
	fs.StringVar(&email, "email", "", "Account email")
	fs.StringVar(&rootFolder, "root-folder", "", "Folder UUID to list")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			MetricsAddress: metricsAddress.String(),
		},
		Account: Account{
			Email:      email,
			RootFolder: rootFolder,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PoolSize:        poolSize,
			RetryAttempts:   retryAttempts,
			RetryDelay:      retryDelay,
			KeySyncInterval: keySyncInterval,
		},
		Crypto: Crypto{
			KeyPairBits: keyBits,
			AuthVersion: authVersion,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
