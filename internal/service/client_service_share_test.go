package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/mock"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// TestClientShareService_EncryptAndShare_PerRecipientResults verifies that
// a recipient without a public key does not stop the others.
func TestClientShareService_EncryptAndShare_PerRecipientResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	td := newTestDeps(t, ctrl)
	directory := mock.NewMockPublicKeyDirectory(ctrl)
	td.deps.Directory = directory
	svc := NewClientShareService(td.deps)
	ctx := context.Background()

	kp := sharedKeyPair(t)
	priv, err := crypto.ParsePrivateKey(kp.PrivateKey)
	require.NoError(t, err)

	item := models.DecodedItem{UUID: "f1", Type: models.ItemFile, Name: "plan.txt", Size: 42, Mime: "text/plain", Key: "file-key", LastModified: 1700000000000}

	directory.EXPECT().LookupPublicKey(ctx, "bob@example.com").Return(kp.PublicKey, nil)
	directory.EXPECT().LookupPublicKey(ctx, "ghost@example.com").Return("", ErrRecipientNotFound)
	td.adapter.EXPECT().ShareItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.ShareRequest) error {
			assert.Equal(t, "f1", req.UUID)
			assert.Equal(t, "parent-uuid", req.Parent)
			assert.Equal(t, "bob@example.com", req.Email)
			assert.Equal(t, models.ItemFile, req.Type)

			plain, err := crypto.DecryptWithPrivateKey(req.Metadata, priv)
			require.NoError(t, err)
			assert.JSONEq(t, `{"name":"plan.txt","size":42,"mime":"text/plain","key":"file-key","lastModified":1700000000000}`, plain)
			return nil
		},
	)

	results := svc.EncryptAndShare(ctx, item, "parent-uuid", []string{"bob@example.com", "ghost@example.com"})
	require.Len(t, results, 2)

	assert.Equal(t, "bob@example.com", results[0].Email)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "ghost@example.com", results[1].Email)
	assert.ErrorIs(t, results[1].Err, ErrRecipientNotFound)
}

func TestClientShareService_EncryptAndShare_InvalidPublicKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	td := newTestDeps(t, ctrl)
	directory := mock.NewMockPublicKeyDirectory(ctrl)
	td.deps.Directory = directory
	svc := NewClientShareService(td.deps)
	ctx := context.Background()

	directory.EXPECT().LookupPublicKey(ctx, "bob@example.com").Return("this is not a public key", nil)

	results := svc.EncryptAndShare(ctx, models.DecodedItem{UUID: "d1", Type: models.ItemFolder, Name: "x"}, "", []string{"bob@example.com"})
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrRecipientNotFound)
}

func TestAdapterPublicKeyDirectory_LookupPublicKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	dir := NewAdapterPublicKeyDirectory(a)
	ctx := context.Background()
	kp := sharedKeyPair(t)

	a.EXPECT().PublicKey(ctx, "bob@example.com").Return(kp.PublicKey, nil).Times(1)

	for range 2 {
		key, err := dir.LookupPublicKey(ctx, " Bob@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, kp.PublicKey, key)
	}
}

func TestAdapterPublicKeyDirectory_MissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	dir := NewAdapterPublicKeyDirectory(a)
	ctx := context.Background()

	a.EXPECT().PublicKey(ctx, "new@example.com").Return("", nil)
	a.EXPECT().PublicKey(ctx, "unknown@example.com").Return("", fmt.Errorf("public key: %w", adapter.ErrNotFound))

	_, err := dir.LookupPublicKey(ctx, "new@example.com")
	assert.ErrorIs(t, err, ErrRecipientNotFound)

	_, err = dir.LookupPublicKey(ctx, "unknown@example.com")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
