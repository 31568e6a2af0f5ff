package server

import (
	"sync"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is where the collectors are exposed.
const MetricsPath = "/metrics"

type metricsServer struct {
	httpServer *httpServer
	started    bool
	mu         sync.Mutex
	logger     *logger.Logger
}

// NewMetricsServer builds a server exposing the collectors of gatherer on
// address under [MetricsPath]. Nothing listens until Run.
func NewMetricsServer(address string, gatherer prometheus.Gatherer, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, errEmptyAddress
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := chi.NewRouter()
	router.Get(MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}).ServeHTTP)
	router.MethodNotAllowed(checkMethod(router))

	logger.Info().Str("addr", address).Msg("creating metrics server...")
	return &metricsServer{
		httpServer: newHTTPServer(address, router, logger),
		logger:     logger,
	}, nil
}

func (s *metricsServer) Run() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	s.logger.Info().Str("addr", s.httpServer.server.Addr).Msg("Launching metrics server")
	go s.httpServer.RunServer()
}

func (s *metricsServer) Shutdown() {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	s.httpServer.Shutdown()
	if started {
		<-s.httpServer.done
	}
	s.logger.Info().Msg("metrics server shutdown gracefully")
}
