// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics records counters and latencies of the client crypto work
// (key derivation, metadata decoding, keypair generation) in Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cloudkeeper"

// CryptoMetrics observes tasks executed on the crypto worker pool.
type CryptoMetrics interface {
	// ObserveTask records one finished task of kind op.
	ObserveTask(op string, duration time.Duration, err error)
	// ObserveDroppedItem counts a listing item that could not be decoded.
	ObserveDroppedItem(source string)
}

type cryptoMetrics struct {
	tasksTotal   *prometheus.CounterVec
	taskDuration *prometheus.HistogramVec
	droppedItems *prometheus.CounterVec
}

// NewCryptoMetrics registers the crypto collectors in the default registry.
func NewCryptoMetrics() CryptoMetrics {
	return NewCryptoMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewCryptoMetricsWithRegistry registers the collectors in reg.
func NewCryptoMetricsWithRegistry(reg prometheus.Registerer) CryptoMetrics {
	factory := promauto.With(reg)
	return &cryptoMetrics{
		tasksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "crypto_tasks_total",
				Help:      "Total number of crypto tasks by operation and status",
			},
			[]string{"operation", "status"},
		),
		taskDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "crypto_task_duration_seconds",
				Help:      "Crypto task duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"operation"},
		),
		droppedItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dropped_items_total",
				Help:      "Listing items dropped because their metadata could not be decoded",
			},
			[]string{"source"},
		),
	}
}

func (m *cryptoMetrics) ObserveTask(op string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.tasksTotal.WithLabelValues(op, status).Inc()
	m.taskDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *cryptoMetrics) ObserveDroppedItem(source string) {
	m.droppedItems.WithLabelValues(source).Inc()
}

type noOp struct{}

// NoOp returns a [CryptoMetrics] that records nothing.
func NoOp() CryptoMetrics { return noOp{} }

func (noOp) ObserveTask(string, time.Duration, error) {}
func (noOp) ObserveDroppedItem(string)                {}
