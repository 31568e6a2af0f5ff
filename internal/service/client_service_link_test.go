package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/mock"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

const testLinkKey = crypto.LinkKey("0123456789abcdef0123456789abcdef")

func newTestLinkSvc(t *testing.T, ctrl *gomock.Controller) (*clientLinkService, *testDeps, *mock.MockClientMetadataService) {
	t.Helper()
	td := newTestDeps(t, ctrl)
	metadata := mock.NewMockClientMetadataService(ctrl)
	return NewClientLinkService(td.deps, metadata).(*clientLinkService), td, metadata
}

// ── CreateFolderLink ─────────────────────────────────────────────────────────

func TestClientLinkService_CreateFolderLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, td, _ := newTestLinkSvc(t, ctrl)
	ctx := context.Background()
	ring := td.login(t, "mk1")

	items := []models.LinkedItem{
		{Item: models.DecodedItem{UUID: "root", Type: models.ItemFolder, Name: "Holiday"}},
		{Item: models.DecodedItem{UUID: "f1", Type: models.ItemFile, Name: "beach.jpg", Size: 9, Mime: "image/jpeg", Key: "k"}, Parent: "root"},
	}

	td.keyChain.EXPECT().GenerateLinkKey().Return(testLinkKey, nil)

	var linkUUIDs []string
	td.adapter.EXPECT().AddItemToLink(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, req models.LinkAddRequest) error {
			linkUUIDs = append(linkUUIDs, req.LinkUUID)
			assert.Equal(t, "never", req.Expiration)

			key, err := crypto.UnwrapLinkKey(ring, crypto.EncryptedString(req.Key))
			require.NoError(t, err)
			assert.Equal(t, testLinkKey, key)

			plain, err := testLinkKey.Decrypt(crypto.EncryptedString(req.Metadata))
			require.NoError(t, err)

			switch req.UUID {
			case "root":
				assert.Equal(t, models.LinkRootParent, req.Parent)
				assert.JSONEq(t, `{"name":"Holiday"}`, plain)
			case "f1":
				assert.Equal(t, "root", req.Parent)
				assert.Contains(t, plain, `"name":"beach.jpg"`)
			default:
				t.Fatalf("unexpected item %s", req.UUID)
			}
			return nil
		},
	)

	link, err := svc.CreateFolderLink(ctx, items, "")
	require.NoError(t, err)
	assert.Equal(t, string(testLinkKey), link.Key)
	require.Len(t, linkUUIDs, 2)
	assert.Equal(t, link.LinkUUID, linkUUIDs[0])
	assert.Equal(t, link.LinkUUID, linkUUIDs[1])

	stored, err := td.storages.Session.LoadLinkKey(ctx, link.LinkUUID)
	require.NoError(t, err)
	assert.Equal(t, string(testLinkKey), stored)
}

func TestClientLinkService_CreateFolderLink_NoItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, td, _ := newTestLinkSvc(t, ctrl)
	td.login(t, "mk1")

	_, err := svc.CreateFolderLink(context.Background(), nil, "never")
	assert.ErrorIs(t, err, ErrEmptyLinkItems)
}

// ── EditLink ─────────────────────────────────────────────────────────────────

func TestClientLinkService_EditLink(t *testing.T) {
	tests := []struct {
		name     string
		settings models.LinkSettings
		marker   string
	}{
		{"with password", models.LinkSettings{Password: "s3cret", Expiration: "1d", DownloadButton: true}, models.LinkPasswordSet},
		{"without password", models.LinkSettings{Expiration: "1d"}, models.LinkPasswordUnset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, td, _ := newTestLinkSvc(t, ctrl)
			ctx := context.Background()

			td.keyChain.EXPECT().GenerateLinkSalt().Return("fresh-salt", nil)
			td.keyChain.EXPECT().HashLinkPassword(tt.settings.Password, "fresh-salt").Return("hashed")
			td.adapter.EXPECT().EditLink(ctx, models.LinkEditRequest{
				UUID:           "l1",
				Expiration:     "1d",
				Password:       tt.marker,
				PasswordHashed: "hashed",
				Salt:           "fresh-salt",
				DownloadButton: tt.settings.DownloadButton,
			}).Return(nil)

			require.NoError(t, svc.EditLink(ctx, "l1", tt.settings))
		})
	}
}

// ── DisableLink / DecryptLinkKey ─────────────────────────────────────────────

func TestClientLinkService_DisableLink_ForgetsKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, td, _ := newTestLinkSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, td.storages.Session.SaveLinkKey(ctx, "l1", string(testLinkKey)))

	td.adapter.EXPECT().DisableLink(ctx, "l1").Return(nil)

	require.NoError(t, svc.DisableLink(ctx, "l1"))
	_, err := td.storages.Session.LoadLinkKey(ctx, "l1")
	assert.Error(t, err)
}

func TestClientLinkService_DecryptLinkKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, td, _ := newTestLinkSvc(t, ctrl)
	ctx := context.Background()
	ring := td.login(t, "mk0", "mk1")

	wrapped, err := crypto.WrapLinkKey(crypto.NewMasterKeyRing("mk0"), testLinkKey)
	require.NoError(t, err)

	td.adapter.EXPECT().LinkStatus(ctx, "d1").Return(models.LinkStatus{Exists: true, UUID: "l1", Key: string(wrapped)}, nil)
	td.adapter.EXPECT().LinkStatus(ctx, "d2").Return(models.LinkStatus{Exists: false}, nil)

	key, err := svc.DecryptLinkKey(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, testLinkKey, key)
	assert.Equal(t, 2, ring.Len())

	_, err = svc.DecryptLinkKey(ctx, "d2")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

// ── visitor side ─────────────────────────────────────────────────────────────

func TestClientLinkService_LinkPasswordHash_NoPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, td, _ := newTestLinkSvc(t, ctrl)
	ctx := context.Background()

	td.adapter.EXPECT().LinkInfo(ctx, "l1").Return(models.LinkInfo{UUID: "l1", HasPassword: false, Salt: "salt"}, nil)
	// a typed password is ignored for links without one
	td.keyChain.EXPECT().HashLinkPassword("", "salt").Return("empty-hash")

	hash, err := svc.LinkPasswordHash(ctx, "l1", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "empty-hash", hash)
}

func TestClientLinkService_ListLinkFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, td, metadata := newTestLinkSvc(t, ctrl)
	ctx := context.Background()

	content := models.FolderContent{Folders: []models.RawFolder{{UUID: "d1"}}}
	decoded := []models.DecodedItem{{UUID: "d1", Name: "public"}}

	gomock.InOrder(
		td.adapter.EXPECT().LinkInfo(ctx, "l1").Return(models.LinkInfo{UUID: "l1", Parent: "root-folder", HasPassword: true, Salt: "salt"}, nil),
		td.keyChain.EXPECT().HashLinkPassword("pw", "salt").Return("pw-hash"),
		td.adapter.EXPECT().LinkDirContent(ctx, models.LinkContentRequest{UUID: "l1", Parent: "root-folder", Password: "pw-hash"}).Return(content, nil),
		metadata.EXPECT().DecodeFolderListing(ctx, content, models.ListingContext{Source: models.SourceLink, LinkKey: string(testLinkKey)}).Return(decoded, nil),
	)

	items, err := svc.ListLinkFolder(ctx, "l1", "", testLinkKey, "pw")
	require.NoError(t, err)
	assert.Equal(t, decoded, items)
}

func TestClientLinkService_ListLinkFolder_MissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestLinkSvc(t, ctrl)

	_, err := svc.ListLinkFolder(context.Background(), "l1", "", "", "")
	assert.ErrorIs(t, err, ErrMissingLinkKey)
}
