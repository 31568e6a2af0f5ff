package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/utils"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

const defaultLinkExpiration = "never"

type clientLinkService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionRepository
	keyChain crypto.KeyChainService
	pool     *workers.Pool
	session  *ClientSession
	uuids    *utils.UUIDGenerator
	guard    *sessionGuard
	logger   *logger.Logger

	metadata ClientMetadataService
}

func NewClientLinkService(deps Dependencies, metadata ClientMetadataService) ClientLinkService {
	deps = deps.withDefaults()
	return &clientLinkService{
		adapter:  deps.Adapter,
		sessions: deps.Storages.Session,
		keyChain: deps.KeyChain,
		pool:     deps.Pool,
		session:  deps.Session,
		uuids:    deps.UUIDs,
		guard:    deps.guard(),
		logger:   deps.Logger,
		metadata: metadata,
	}
}

// CreateFolderLink implements [ClientLinkService]. Items are added one by
// one, parents before children as given by the caller.
func (l *clientLinkService) CreateFolderLink(ctx context.Context, items []models.LinkedItem, expiration string) (models.FolderLink, error) {
	if len(items) == 0 {
		return models.FolderLink{}, ErrEmptyLinkItems
	}
	if expiration == "" {
		expiration = defaultLinkExpiration
	}

	ring, err := l.session.Ring()
	if err != nil {
		return models.FolderLink{}, err
	}

	linkUUID := l.uuids.Generate()
	key, err := l.keyChain.GenerateLinkKey()
	if err != nil {
		return models.FolderLink{}, fmt.Errorf("error generating link key: %w", err)
	}
	wrapped, err := crypto.WrapLinkKey(ring, key)
	if err != nil {
		return models.FolderLink{}, fmt.Errorf("error wrapping link key: %w", err)
	}

	for _, linked := range items {
		plain, err := itemMetadataJSON(linked.Item)
		if err != nil {
			return models.FolderLink{}, fmt.Errorf("error encoding item metadata: %w", err)
		}
		metadata, err := key.Encrypt(plain)
		if err != nil {
			return models.FolderLink{}, fmt.Errorf("error encrypting item metadata: %w", err)
		}

		parent := linked.Parent
		if parent == "" {
			parent = models.LinkRootParent
		}
		err = l.adapter.AddItemToLink(ctx, models.LinkAddRequest{
			UUID:       linked.Item.UUID,
			Parent:     parent,
			LinkUUID:   linkUUID,
			Type:       linked.Item.Type,
			Metadata:   string(metadata),
			Key:        string(wrapped),
			Expiration: expiration,
		})
		if err != nil {
			return models.FolderLink{}, l.guard.check(ctx, err)
		}
	}

	l.saveKey(ctx, linkUUID, key)
	l.logger.Info().Str("func", "clientLinkService.CreateFolderLink").Str("link", linkUUID).Int("items", len(items)).Msg("folder link created")
	return models.FolderLink{LinkUUID: linkUUID, Key: string(key)}, nil
}

// EditLink implements [ClientLinkService].
func (l *clientLinkService) EditLink(ctx context.Context, linkUUID string, settings models.LinkSettings) error {
	salt, err := l.keyChain.GenerateLinkSalt()
	if err != nil {
		return fmt.Errorf("error generating link salt: %w", err)
	}

	hashed, err := workers.Do(ctx, l.pool, "hash_link_password", func() (string, error) {
		return l.keyChain.HashLinkPassword(settings.Password, salt), nil
	})
	if err != nil {
		return err
	}

	marker := models.LinkPasswordUnset
	if settings.Password != "" {
		marker = models.LinkPasswordSet
	}
	expiration := settings.Expiration
	if expiration == "" {
		expiration = defaultLinkExpiration
	}

	err = l.adapter.EditLink(ctx, models.LinkEditRequest{
		UUID:           linkUUID,
		Expiration:     expiration,
		Password:       marker,
		PasswordHashed: hashed,
		Salt:           salt,
		DownloadButton: settings.DownloadButton,
	})
	return l.guard.check(ctx, err)
}

// DisableLink implements [ClientLinkService].
func (l *clientLinkService) DisableLink(ctx context.Context, linkUUID string) error {
	if err := l.adapter.DisableLink(ctx, linkUUID); err != nil {
		return l.guard.check(ctx, err)
	}
	if l.sessions != nil {
		if err := l.sessions.DeleteLinkKey(ctx, linkUUID); err != nil {
			l.logger.Warn().Err(err).Str("func", "clientLinkService.DisableLink").Msg("failed to forget link key")
		}
	}
	return nil
}

// DecryptLinkKey implements [ClientLinkService].
func (l *clientLinkService) DecryptLinkKey(ctx context.Context, folderUUID string) (crypto.LinkKey, error) {
	ring, err := l.session.Ring()
	if err != nil {
		return "", err
	}

	status, err := l.adapter.LinkStatus(ctx, folderUUID)
	if err != nil {
		return "", l.guard.check(ctx, err)
	}
	if !status.Exists || status.Key == "" {
		return "", ErrLinkNotFound
	}

	key, err := crypto.UnwrapLinkKey(ring, crypto.EncryptedString(status.Key))
	if err != nil {
		return "", fmt.Errorf("error unwrapping link key: %w", err)
	}
	l.saveKey(ctx, status.UUID, key)
	return key, nil
}

// LinkPasswordHash implements [ClientLinkService].
func (l *clientLinkService) LinkPasswordHash(ctx context.Context, linkUUID, password string) (string, error) {
	info, err := l.adapter.LinkInfo(ctx, linkUUID)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return l.hashFor(ctx, info, password)
}

func (l *clientLinkService) hashFor(ctx context.Context, info models.LinkInfo, password string) (string, error) {
	if !info.HasPassword {
		password = ""
	}
	return workers.Do(ctx, l.pool, "hash_link_password", func() (string, error) {
		return l.keyChain.HashLinkPassword(password, info.Salt), nil
	})
}

// ListLinkFolder implements [ClientLinkService]. An empty parent lists the
// root of the link.
func (l *clientLinkService) ListLinkFolder(ctx context.Context, linkUUID, parent string, key crypto.LinkKey, password string) ([]models.DecodedItem, error) {
	if key == "" {
		return nil, ErrMissingLinkKey
	}

	info, err := l.adapter.LinkInfo(ctx, linkUUID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	hashed, err := l.hashFor(ctx, info, password)
	if err != nil {
		return nil, err
	}
	if parent == "" {
		parent = info.Parent
	}

	content, err := l.adapter.LinkDirContent(ctx, models.LinkContentRequest{
		UUID:     linkUUID,
		Parent:   parent,
		Password: hashed,
	})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return l.metadata.DecodeFolderListing(ctx, content, models.ListingContext{
		Source:  models.SourceLink,
		LinkKey: string(key),
	})
}

func (l *clientLinkService) saveKey(ctx context.Context, linkUUID string, key crypto.LinkKey) {
	if l.sessions == nil || linkUUID == "" {
		return
	}
	if err := l.sessions.SaveLinkKey(ctx, linkUUID, string(key)); err != nil {
		l.logger.Warn().Err(err).Str("func", "clientLinkService.saveKey").Msg("failed to persist link key")
	}
}
