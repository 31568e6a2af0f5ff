package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/metrics"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

type decryptFunc func(blob string) (string, error)

type clientMetadataService struct {
	adapter adapter.ServerAdapter
	cache   store.MetadataCache
	pool    *workers.Pool
	session *ClientSession
	metrics metrics.CryptoMetrics
	guard   *sessionGuard
	logger  *logger.Logger
}

func NewClientMetadataService(deps Dependencies) ClientMetadataService {
	deps = deps.withDefaults()
	return &clientMetadataService{
		adapter: deps.Adapter,
		cache:   deps.Storages.Metadata,
		pool:    deps.Pool,
		session: deps.Session,
		metrics: deps.Metrics,
		guard:   deps.guard(),
		logger:  deps.Logger,
	}
}

// keyScope fingerprints the key material a listing is decrypted with. Cached
// items are stored under it, so a different key never reads them back.
func keyScope(source models.ListingSource, material string) string {
	h := sha256.New()
	h.Write([]byte(source))
	h.Write([]byte{0})
	h.Write([]byte(material))
	return hex.EncodeToString(h.Sum(nil))
}

// decrypterFor picks the key that opens metadata of the given listing and
// the cache scope of that key.
func (m *clientMetadataService) decrypterFor(lc models.ListingContext) (decryptFunc, string, error) {
	switch lc.Source {
	case models.SourceSharedIn:
		priv, err := m.session.PrivateKey()
		if err != nil {
			return nil, "", err
		}
		kp, _ := m.session.KeyPair()
		return func(blob string) (string, error) {
			return crypto.DecryptWithPrivateKey(blob, priv)
		}, keyScope(lc.Source, kp.PublicKey), nil
	case models.SourceLink:
		if lc.LinkKey == "" {
			return nil, "", ErrMissingLinkKey
		}
		key := crypto.LinkKey(lc.LinkKey)
		return func(blob string) (string, error) {
			return key.Decrypt(crypto.EncryptedString(blob))
		}, keyScope(lc.Source, lc.LinkKey), nil
	case models.SourceOwn, models.SourceSharedOut, models.SourceRecent, models.SourceTrash:
		ring, err := m.session.Ring()
		if err != nil {
			return nil, "", err
		}
		return func(blob string) (string, error) {
			return ring.Decrypt(crypto.EncryptedString(blob))
		}, keyScope(lc.Source, ring.Serialize()), nil
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedListingSource, lc.Source)
}

// DecodeFolderListing implements [ClientMetadataService].
func (m *clientMetadataService) DecodeFolderListing(ctx context.Context, content models.FolderContent, lc models.ListingContext) ([]models.DecodedItem, error) {
	decrypt, scope, err := m.decrypterFor(lc)
	if err != nil {
		return nil, err
	}

	total := len(content.Folders) + len(content.Files)
	slots := make([]*models.DecodedItem, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, m.pool.Size()*2))

	for i, folder := range content.Folders {
		g.Go(func() error {
			meta, ok, err := m.decode(gctx, scope, folder.EncryptedName(), lc.Source, decrypt, parseFolderMetadata)
			if err != nil || !ok {
				return err
			}
			item := completeFolder(meta, folder, lc.Source)
			slots[i] = &item
			return nil
		})
	}
	offset := len(content.Folders)
	for i, file := range content.Files {
		g.Go(func() error {
			meta, ok, err := m.decode(gctx, scope, file.Metadata, lc.Source, decrypt, parseFileMetadata)
			if err != nil || !ok {
				return err
			}
			item := completeFile(meta, file, lc.Source)
			slots[offset+i] = &item
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	items := make([]models.DecodedItem, 0, total)
	for _, item := range slots {
		if item != nil {
			items = append(items, *item)
		}
	}
	SortItems(items)
	return items, nil
}

// decode returns the metadata half of one item. ok is false when the item
// has to be dropped; err is set only when the whole listing must fail.
func (m *clientMetadataService) decode(
	ctx context.Context,
	scope, blob string,
	source models.ListingSource,
	decrypt decryptFunc,
	parse func(string) (models.DecodedItem, error),
) (models.DecodedItem, bool, error) {
	if m.cache != nil {
		if cached, hit := m.cache.Get(ctx, scope, blob); hit {
			return cached, true, nil
		}
	}

	meta, err := workers.Do(ctx, m.pool, "decode_metadata", func() (models.DecodedItem, error) {
		plain, err := decrypt(blob)
		if err != nil {
			return models.DecodedItem{}, err
		}
		return parse(plain)
	})
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, workers.ErrPoolClosed) {
			return models.DecodedItem{}, false, err
		}
		m.logger.Debug().Err(err).
			Str("func", "clientMetadataService.decode").
			Str("source", string(source)).
			Msg("dropping undecodable item")
		m.metrics.ObserveDroppedItem(string(source))
		return models.DecodedItem{}, false, nil
	}

	if m.cache != nil {
		m.cache.Put(ctx, scope, blob, meta)
	}
	return meta, true, nil
}

// ListFolder implements [ClientMetadataService].
func (m *clientMetadataService) ListFolder(ctx context.Context, source models.ListingSource, folderUUID string) ([]models.DecodedItem, error) {
	var (
		content models.FolderContent
		err     error
	)
	switch source {
	case models.SourceOwn:
		content, err = m.adapter.FolderContent(ctx, folderUUID)
	case models.SourceSharedIn:
		content, err = m.adapter.SharedIn(ctx, folderUUID)
	case models.SourceSharedOut:
		content, err = m.adapter.SharedOut(ctx, folderUUID)
	case models.SourceRecent:
		content, err = m.adapter.Recents(ctx)
	case models.SourceTrash:
		content, err = m.adapter.Trash(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedListingSource, source)
	}
	if err != nil {
		return nil, m.guard.check(ctx, err)
	}

	return m.DecodeFolderListing(ctx, content, models.ListingContext{Source: source})
}

// EncryptItemMetadata implements [ClientMetadataService].
func (m *clientMetadataService) EncryptItemMetadata(ctx context.Context, item models.DecodedItem) (string, error) {
	ring, err := m.session.Ring()
	if err != nil {
		return "", err
	}
	plain, err := itemMetadataJSON(item)
	if err != nil {
		return "", fmt.Errorf("error encoding item metadata: %w", err)
	}
	encrypted, err := ring.Encrypt(plain)
	if err != nil {
		return "", fmt.Errorf("error encrypting item metadata: %w", err)
	}
	return string(encrypted), nil
}

// RenameItem implements [ClientMetadataService].
func (m *clientMetadataService) RenameItem(ctx context.Context, item models.DecodedItem, newName string) error {
	name := strings.TrimSpace(newName)
	if name == "" {
		return ErrEmptyItemName
	}

	ring, err := m.session.Ring()
	if err != nil {
		return err
	}

	renamed := item
	renamed.Name = name
	encrypted, err := m.EncryptItemMetadata(ctx, renamed)
	if err != nil {
		return err
	}

	req := models.RenameRequest{
		UUID:       item.UUID,
		Type:       item.Type,
		NameHashed: nameHasher(ring).Hash(name),
		Metadata:   encrypted,
	}
	if item.IsFolder() {
		req.Name = encrypted
	}
	if err = m.adapter.RenameItem(ctx, req); err != nil {
		return m.guard.check(ctx, err)
	}

	return m.renameInLinks(ctx, ring, renamed)
}

// renameInLinks refreshes the copies of item held by public links. A link
// that fails does not stop the others.
func (m *clientMetadataService) renameInLinks(ctx context.Context, ring *crypto.MasterKeyRing, item models.DecodedItem) error {
	links, err := m.adapter.ItemLinks(ctx, item.UUID)
	if err != nil {
		return m.guard.check(ctx, err)
	}
	if len(links) == 0 {
		return nil
	}

	plain, err := itemMetadataJSON(item)
	if err != nil {
		return fmt.Errorf("error encoding item metadata: %w", err)
	}

	var errs []error
	for _, link := range links {
		key, err := crypto.UnwrapLinkKey(ring, crypto.EncryptedString(link.LinkKey))
		if err != nil {
			errs = append(errs, fmt.Errorf("link %s: %w", link.LinkUUID, err))
			continue
		}
		encrypted, err := key.Encrypt(plain)
		if err != nil {
			errs = append(errs, fmt.Errorf("link %s: %w", link.LinkUUID, err))
			continue
		}
		err = m.adapter.RenameInLink(ctx, models.LinkRenameRequest{
			UUID:     item.UUID,
			LinkUUID: link.LinkUUID,
			Metadata: string(encrypted),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("link %s: %w", link.LinkUUID, m.guard.check(ctx, err)))
		}
	}
	return errors.Join(errs...)
}
