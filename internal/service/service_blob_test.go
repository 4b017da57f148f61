package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/logger"
)

func testBlobsConfig() config.ServerBlobs {
	return config.ServerBlobs{
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "pawtrail-photos",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	}
}

func TestBlobService_PresignUpload(t *testing.T) {
	blobs := NewBlobService(testBlobsConfig(), logger.Nop())

	upload, err := blobs.PresignUpload(t.Context())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.Key, "photos/"))
	assert.Contains(t, upload.PutURL, "pawtrail-photos")
	assert.Contains(t, upload.PutURL, "X-Amz-Signature")
	assert.Contains(t, upload.GetURL, upload.Key)
}

func TestBlobService_PresignDownload(t *testing.T) {
	blobs := NewBlobService(testBlobsConfig(), logger.Nop())

	t.Run("signs get url for key", func(t *testing.T) {
		url, err := blobs.PresignDownload(t.Context(), "photos/2026/8/23/some-object")
		require.NoError(t, err)
		assert.Contains(t, url, "photos/2026/8/23/some-object")
	})

	t.Run("rejects empty key", func(t *testing.T) {
		_, err := blobs.PresignDownload(t.Context(), "")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestBlobService_NotConfigured(t *testing.T) {
	blobs := NewBlobService(config.ServerBlobs{}, logger.Nop())

	_, err := blobs.PresignUpload(t.Context())
	assert.ErrorIs(t, err, ErrBlobStoreNotConfigured)

	_, err = blobs.PresignDownload(t.Context(), "photos/whatever")
	assert.ErrorIs(t, err, ErrBlobStoreNotConfigured)
}
