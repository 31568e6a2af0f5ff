package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// minPublicKeyLength rejects placeholder keys of accounts that never
// created a keypair.
const minPublicKeyLength = 16

type adapterPublicKeyDirectory struct {
	adapter adapter.ServerAdapter
	keys    sync.Map
}

// NewAdapterPublicKeyDirectory resolves public keys through the server and
// remembers every key it found.
func NewAdapterPublicKeyDirectory(a adapter.ServerAdapter) PublicKeyDirectory {
	return &adapterPublicKeyDirectory{adapter: a}
}

func (d *adapterPublicKeyDirectory) LookupPublicKey(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if cached, ok := d.keys.Load(email); ok {
		return cached.(string), nil
	}

	key, err := d.adapter.PublicKey(ctx, email)
	if err != nil {
		return "", mapAdapterError(err)
	}
	if len(key) < minPublicKeyLength {
		return "", fmt.Errorf("%w: %s", ErrRecipientNotFound, email)
	}

	d.keys.Store(email, key)
	return key, nil
}

type clientShareService struct {
	adapter   adapter.ServerAdapter
	directory PublicKeyDirectory
	pool      *workers.Pool
	guard     *sessionGuard
	logger    *logger.Logger
}

func NewClientShareService(deps Dependencies) ClientShareService {
	deps = deps.withDefaults()
	return &clientShareService{
		adapter:   deps.Adapter,
		directory: deps.Directory,
		pool:      deps.Pool,
		guard:     deps.guard(),
		logger:    deps.Logger,
	}
}

// EncryptAndShare implements [ClientShareService]. The result holds one
// entry per recipient in the order of emails.
func (s *clientShareService) EncryptAndShare(ctx context.Context, item models.DecodedItem, parent string, emails []string) []models.ShareResult {
	results := make([]models.ShareResult, len(emails))

	plain, err := itemMetadataJSON(item)
	if err != nil {
		for i, email := range emails {
			results[i] = models.ShareResult{Email: email, Err: fmt.Errorf("error encoding item metadata: %w", err)}
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(1, s.pool.Size()))
	for i, email := range emails {
		g.Go(func() error {
			results[i] = models.ShareResult{Email: email, Err: s.shareWith(ctx, item, parent, email, plain)}
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		if r.Err != nil {
			s.logger.Warn().Err(r.Err).Str("func", "clientShareService.EncryptAndShare").Str("item", item.UUID).Msg("share failed for recipient")
		}
	}
	return results
}

func (s *clientShareService) shareWith(ctx context.Context, item models.DecodedItem, parent, email, plain string) error {
	encoded, err := s.directory.LookupPublicKey(ctx, email)
	if err != nil {
		return err
	}
	pub, err := crypto.ParsePublicKey(encoded)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRecipientNotFound, err)
	}

	metadata, err := workers.Do(ctx, s.pool, "encrypt_for_recipient", func() (string, error) {
		return crypto.EncryptForRecipient(plain, pub)
	})
	if err != nil {
		return fmt.Errorf("error encrypting metadata: %w", err)
	}

	err = s.adapter.ShareItem(ctx, models.ShareRequest{
		UUID:     item.UUID,
		Parent:   parent,
		Email:    email,
		Type:     item.Type,
		Metadata: metadata,
	})
	return s.guard.check(ctx, err)
}
