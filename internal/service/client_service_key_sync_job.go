package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
)

const defaultKeySyncInterval = 5 * time.Minute

type clientKeySyncJob struct {
	keys    ClientKeyService
	keyPair ClientKeyPairService
	session *ClientSession
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientKeySyncJob creates a job that resyncs the master key ring and
// the keypair on a ticker. The job is idle until Start is called.
func NewClientKeySyncJob(keys ClientKeyService, keyPair ClientKeyPairService, session *ClientSession, log *logger.Logger) ClientKeySyncJob {
	if log == nil {
		log = logger.Nop()
	}
	return &clientKeySyncJob{keys: keys, keyPair: keyPair, session: session, logger: log}
}

// Start implements [ClientKeySyncJob]. A non-positive interval defaults to
// five minutes. Ticks while no session is loaded are skipped.
func (j *clientKeySyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultKeySyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *clientKeySyncJob) tick(ctx context.Context) {
	if !j.session.Authenticated() {
		return
	}
	if err := j.keys.UpdateKeys(ctx, nil); err != nil {
		j.logWarn(err, "master key resync failed")
		return
	}
	if err := j.keyPair.EnsureKeyPair(ctx); err != nil {
		j.logWarn(err, "keypair resync failed")
	}
}

func (j *clientKeySyncJob) logWarn(err error, msg string) {
	if errors.Is(err, context.Canceled) {
		return
	}
	j.logger.Warn().Err(err).Str("func", "clientKeySyncJob.tick").Msg(msg)
}

// Stop implements [ClientKeySyncJob]. Safe to call when the job is not
// running.
func (j *clientKeySyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
