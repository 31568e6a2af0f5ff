package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/client"
	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/metrics"
	"github.com/MKhiriev/go-cloud-keeper/internal/server"
	"github.com/MKhiriev/go-cloud-keeper/internal/service"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("cloud-keeper-client", config.DefaultLogLevel).
			Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("cloud-keeper-client", cfg.App.LogLevel)

	cryptoMetrics := metrics.NewCryptoMetrics()
	pool := workers.NewPool(cfg.Workers.PoolSize, cryptoMetrics, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	keyChain, err := crypto.NewKeyChainService(crypto.AuthVersion(cfg.Crypto.AuthVersion), cfg.Crypto.KeyPairBits)
	if err != nil {
		log.Fatal().Err(err).Msg("create key chain")
	}

	services := service.NewClientServices(service.Dependencies{
		Adapter:       serverAdapter,
		Storages:      localStorage,
		KeyChain:      keyChain,
		Pool:          pool,
		Observer:      service.NewLoggingObserver(log),
		Metrics:       cryptoMetrics,
		Logger:        log,
		RetryAttempts: cfg.Workers.RetryAttempts,
		RetryDelay:    cfg.Workers.RetryDelay,
	})

	background := []workers.Worker{pool}
	stop := []func(){pool.Close}
	if cfg.App.MetricsAddress != "" {
		metricsServer, err := server.NewMetricsServer(cfg.App.MetricsAddress, prometheus.DefaultGatherer, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create metrics server")
		}
		background = append(background, metricsServer)
		stop = append(stop, metricsServer.Shutdown)
	}

	app, err := client.NewApp(client.Options{
		Config:     cfg,
		Services:   services,
		Background: background,
		Stop:       stop,
		Closers:    []io.Closer{localStorage},
		Out:        os.Stdout,
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
