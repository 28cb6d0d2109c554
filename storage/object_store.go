// Package storage hands out presigned upload URLs for the media bucket.
//
// The backend never proxies image bytes: the SPA PUTs directly to the
// bucket/CDN and only the resulting locator string is stored on the Image
// record.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// UploadTicket is what a client needs to push one image: a presigned PUT
// URL and the locator to save as the image's "image" field afterwards.
type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	Locator   string `json:"locator"`
}

// ObjectStore issues presigned upload URLs; the MinIO implementation is
// swapped for a stub in handler tests.
type ObjectStore interface {
	PresignUpload(ctx context.Context, ext string) (*UploadTicket, error)
}

// MinioStore implements ObjectStore for MinIO/S3-compatible storage.
type MinioStore struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

// NewMinioStore connects to the object storage endpoint and ensures the
// bucket exists.
func NewMinioStore(endpoint, accessKey, secretKey, bucket string, useSSL bool, expiry time.Duration) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioStore{client: client, bucket: bucket, expiry: expiry}, nil
}

// PresignUpload generates a presigned PUT URL for a fresh uuid-keyed
// object. ext is the client's file extension hint ("jpg", ".png", ...);
// anything unsafe is dropped.
func (m *MinioStore) PresignUpload(ctx context.Context, ext string) (*UploadTicket, error) {
	key := uuid.NewString() + sanitizeExt(ext)
	u, err := m.client.PresignedPutObject(ctx, m.bucket, key, m.expiry)
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}
	return &UploadTicket{
		UploadURL: u.String(),
		Locator:   path.Join(m.bucket, key),
	}, nil
}

// sanitizeExt keeps a short alphanumeric extension with a leading dot, or
// nothing at all.
func sanitizeExt(ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" || len(ext) > 8 {
		return ""
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return "." + strings.ToLower(ext)
}
