package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

const (
	uploadMetadataVersion = 2
	uploadRmLength        = 32
)

type clientUploadService struct {
	adapter adapter.ServerAdapter
	pool    *workers.Pool
	session *ClientSession
	guard   *sessionGuard
	logger  *logger.Logger

	attempts uint64
	backoff  retry.Backoff
}

func NewClientUploadService(deps Dependencies) ClientUploadService {
	deps = deps.withDefaults()
	return &clientUploadService{
		adapter:  deps.Adapter,
		pool:     deps.Pool,
		session:  deps.Session,
		guard:    deps.guard(),
		logger:   deps.Logger,
		attempts: uint64(deps.RetryAttempts),
		backoff:  retry.NewConstant(deps.RetryDelay),
	}
}

// MarkUploadDone implements [ClientUploadService].
func (u *clientUploadService) MarkUploadDone(ctx context.Context, file models.UploadedFile) error {
	req, err := workers.Do(ctx, u.pool, "encrypt_upload_metadata", func() (models.UploadDoneRequest, error) {
		return u.buildRequest(file)
	})
	if err != nil {
		return err
	}

	attempt := 0
	err = retry.Do(ctx, retry.WithMaxRetries(u.attempts, u.backoff), func(ctx context.Context) error {
		attempt++
		err := u.adapter.MarkUploadDone(ctx, req)
		if errors.Is(err, adapter.ErrUploadNotReady) {
			u.logger.Debug().Str("func", "clientUploadService.MarkUploadDone").Int("attempt", attempt).Msg("upload not committed yet")
			return retry.RetryableError(err)
		}
		return err
	})
	if err == nil {
		u.logger.Info().Str("func", "clientUploadService.MarkUploadDone").Str("uuid", file.UUID).Msg("upload finalized")
		return nil
	}
	if errors.Is(err, adapter.ErrUploadNotReady) {
		return fmt.Errorf("%w after %d attempts: %w", ErrUploadNotFinalized, attempt, err)
	}
	return u.guard.check(ctx, err)
}

// buildRequest encrypts the per-field copies under the file key and the
// full metadata under the newest master key.
func (u *clientUploadService) buildRequest(file models.UploadedFile) (models.UploadDoneRequest, error) {
	ring, err := u.session.Ring()
	if err != nil {
		return models.UploadDoneRequest{}, err
	}

	name, err := crypto.EncryptMetadata(file.Name, file.Key)
	if err != nil {
		return models.UploadDoneRequest{}, fmt.Errorf("error encrypting name: %w", err)
	}
	size, err := crypto.EncryptMetadata(strconv.FormatInt(file.Size, 10), file.Key)
	if err != nil {
		return models.UploadDoneRequest{}, fmt.Errorf("error encrypting size: %w", err)
	}
	mime, err := crypto.EncryptMetadata(file.Mime, file.Key)
	if err != nil {
		return models.UploadDoneRequest{}, fmt.Errorf("error encrypting mime: %w", err)
	}

	plain, err := itemMetadataJSON(models.DecodedItem{
		Type:         models.ItemFile,
		Name:         file.Name,
		Size:         file.Size,
		Mime:         file.Mime,
		Key:          file.Key,
		LastModified: file.LastModified,
	})
	if err != nil {
		return models.UploadDoneRequest{}, fmt.Errorf("error encoding metadata: %w", err)
	}
	metadata, err := ring.Encrypt(plain)
	if err != nil {
		return models.UploadDoneRequest{}, fmt.Errorf("error encrypting metadata: %w", err)
	}

	rm, err := crypto.GenerateRandomString(uploadRmLength)
	if err != nil {
		return models.UploadDoneRequest{}, err
	}

	return models.UploadDoneRequest{
		UUID:       file.UUID,
		Name:       string(name),
		NameHashed: nameHasher(ring).Hash(file.Name),
		Size:       string(size),
		Chunks:     file.Chunks,
		Mime:       string(mime),
		Rm:         rm,
		Metadata:   string(metadata),
		Version:    uploadMetadataVersion,
		UploadKey:  file.UploadKey,
	}, nil
}
