// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/metrics"
)

// DefaultPoolSize is used when the configured size is not positive.
const DefaultPoolSize = 4

const queueSize = 64

// ErrPoolClosed is returned by [Pool.Submit] and [Do] after [Pool.Close].
var ErrPoolClosed = errors.New("worker pool is closed")

type job struct {
	ctx context.Context
	op  string
	fn  func() error
}

// Pool is a fixed size set of goroutines. Each worker owns its queue and jobs
// are spread over the queues round-robin.
type Pool struct {
	queues  []chan job
	next    atomic.Uint64
	closed  chan struct{}
	wg      sync.WaitGroup
	start   sync.Once
	stop    sync.Once
	metrics metrics.CryptoMetrics
	logger  *logger.Logger
}

// NewPool builds a pool of size workers. The workers start on [Pool.Run].
func NewPool(size int, m metrics.CryptoMetrics, log *logger.Logger) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	if m == nil {
		m = metrics.NoOp()
	}

	queues := make([]chan job, size)
	for i := range queues {
		queues[i] = make(chan job, queueSize)
	}

	log.Debug().Int("size", size).Msg("creating crypto worker pool")
	return &Pool{
		queues:  queues,
		closed:  make(chan struct{}),
		metrics: m,
		logger:  log,
	}
}

// Size returns the number of workers. A nil pool has none.
func (p *Pool) Size() int {
	if p == nil {
		return 0
	}
	return len(p.queues)
}

// Run starts the workers. It returns immediately and is safe to call twice.
func (p *Pool) Run() {
	p.start.Do(func() {
		for i, q := range p.queues {
			p.wg.Add(1)
			go p.work(i, q)
		}
	})
}

func (p *Pool) work(id int, q <-chan job) {
	defer p.wg.Done()
	for {
		select {
		case <-p.closed:
			p.logger.Debug().Int("worker", id).Msg("crypto worker stopped")
			return
		case j := <-q:
			if j.ctx.Err() != nil {
				continue
			}
			started := time.Now()
			err := j.fn()
			p.metrics.ObserveTask(j.op, time.Since(started), err)
		}
	}
}

// Submit queues fn on the next worker. It blocks while that worker's queue is
// full, until ctx is done or the pool is closed.
func (p *Pool) Submit(ctx context.Context, op string, fn func() error) error {
	select {
	case <-p.closed:
		return ErrPoolClosed
	default:
	}

	q := p.queues[p.next.Add(1)%uint64(len(p.queues))]
	select {
	case q <- job{ctx: ctx, op: op, fn: fn}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.closed:
		return ErrPoolClosed
	}
}

// Close stops the workers and waits for running jobs to finish. Queued jobs
// that did not start are discarded.
func (p *Pool) Close() {
	p.stop.Do(func() {
		close(p.closed)
	})
	p.wg.Wait()
}

// Do runs fn on the pool and waits for its result. A nil pool runs fn on the
// calling goroutine.
func Do[T any](ctx context.Context, p *Pool, op string, fn func() (T, error)) (T, error) {
	if p == nil {
		return fn()
	}

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)

	var zero T
	err := p.Submit(ctx, op, func() error {
		v, err := fn()
		done <- result{v: v, err: err}
		return err
	})
	if err != nil {
		return zero, err
	}

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-p.closed:
		select {
		case r := <-done:
			return r.v, r.err
		default:
			return zero, ErrPoolClosed
		}
	}
}
