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
	"github.com/MKhiriev/go-cloud-keeper/models"
)

var testUpload = models.UploadedFile{
	UUID:         "f1",
	Parent:       "root",
	Name:         "video.mp4",
	Size:         1 << 20,
	Mime:         "video/mp4",
	Key:          "abcdefghijklmnopqrstuvwxyz012345",
	Chunks:       1,
	UploadKey:    "upload-key",
	LastModified: 1700000000000,
}

func notReady() error {
	return fmt.Errorf("upload done: %w", adapter.ErrUploadNotReady)
}

// TestClientUploadService_MarkUploadDone_PollsUntilReady verifies the retry
// loop and the encrypted request fields.
func TestClientUploadService_MarkUploadDone_PollsUntilReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	td := newTestDeps(t, ctrl)
	ring := td.login(t, "mk1")
	svc := NewClientUploadService(td.deps)
	ctx := context.Background()

	var seen []models.UploadDoneRequest
	td.adapter.EXPECT().MarkUploadDone(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, req models.UploadDoneRequest) error {
			seen = append(seen, req)
			if len(seen) < 3 {
				return notReady()
			}
			return nil
		},
	)

	require.NoError(t, svc.MarkUploadDone(ctx, testUpload))

	req := seen[2]
	assert.Equal(t, seen[0], req, "the same request is retried")
	assert.Equal(t, "f1", req.UUID)
	assert.Equal(t, 2, req.Version)
	assert.Len(t, req.Rm, 32)
	assert.Equal(t, "upload-key", req.UploadKey)
	assert.Equal(t, nameHasher(ring).Hash("video.mp4"), req.NameHashed)

	name, err := crypto.DecryptMetadata(crypto.EncryptedString(req.Name), testUpload.Key)
	require.NoError(t, err)
	assert.Equal(t, "video.mp4", name)

	size, err := crypto.DecryptMetadata(crypto.EncryptedString(req.Size), testUpload.Key)
	require.NoError(t, err)
	assert.Equal(t, "1048576", size)

	plain, err := ring.Decrypt(crypto.EncryptedString(req.Metadata))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"video.mp4","size":1048576,"mime":"video/mp4","key":"abcdefghijklmnopqrstuvwxyz012345","lastModified":1700000000000}`, plain)
}

func TestClientUploadService_MarkUploadDone_GivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	td := newTestDeps(t, ctrl)
	td.login(t, "mk1")
	svc := NewClientUploadService(td.deps)

	// two retries after the first attempt
	td.adapter.EXPECT().MarkUploadDone(gomock.Any(), gomock.Any()).Times(3).Return(notReady())

	err := svc.MarkUploadDone(context.Background(), testUpload)
	assert.ErrorIs(t, err, ErrUploadNotFinalized)
	assert.ErrorIs(t, err, adapter.ErrUploadNotReady)
}

func TestClientUploadService_MarkUploadDone_OtherErrorsAreFinal(t *testing.T) {
	ctrl := gomock.NewController(t)
	td := newTestDeps(t, ctrl)
	td.login(t, "mk1")
	svc := NewClientUploadService(td.deps)

	td.adapter.EXPECT().MarkUploadDone(gomock.Any(), gomock.Any()).Times(1).Return(adapter.ErrBadRequest)

	err := svc.MarkUploadDone(context.Background(), testUpload)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestClientUploadService_MarkUploadDone_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	td := newTestDeps(t, ctrl)
	svc := NewClientUploadService(td.deps)

	err := svc.MarkUploadDone(context.Background(), testUpload)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
