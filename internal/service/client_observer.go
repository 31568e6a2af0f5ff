package service

import "github.com/MKhiriev/go-cloud-keeper/internal/logger"

// NopObserver ignores every key event.
type NopObserver struct{}

func (NopObserver) RingRotated(int)          {}
func (NopObserver) KeyPairUpdated(string)    {}
func (NopObserver) SessionInvalidated(error) {}

type loggingObserver struct {
	logger *logger.Logger
}

// NewLoggingObserver returns a [KeyEventObserver] that writes every event
// to the log.
func NewLoggingObserver(logger *logger.Logger) KeyEventObserver {
	return &loggingObserver{logger: logger}
}

func (o *loggingObserver) RingRotated(keyCount int) {
	o.logger.Info().Int("keys", keyCount).Msg("master key ring updated")
}

func (o *loggingObserver) KeyPairUpdated(publicKey string) {
	// the public key is not secret but long; a prefix is enough to tell keys apart
	prefix := publicKey
	if len(prefix) > 16 {
		prefix = prefix[:16]
	}
	o.logger.Info().Str("public_key", prefix).Msg("key pair updated")
}

func (o *loggingObserver) SessionInvalidated(cause error) {
	o.logger.Warn().Err(cause).Msg("session invalidated, log in again")
}
