// Package storage provides the MinIO/S3-backed object store used for product
// images and generated report snapshots.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ghuser/gudang/pkg/config"
)

// ObjectStore wraps a MinIO client scoped to a single bucket.
// Uploaded objects are addressed by public URL: <publicURL>/<bucket>/<object>.
type ObjectStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// New connects to the configured MinIO endpoint and ensures the bucket
// exists, creating it when missing (development convenience; production
// buckets are provisioned out of band).
func New(ctx context.Context, cfg *config.Config) (*ObjectStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: new client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("storage: check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: make bucket %s: %w", cfg.MinioBucket, err)
		}
	}

	return &ObjectStore{
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: strings.TrimRight(cfg.MinioPublicURL, "/"),
	}, nil
}

// Upload streams r into the bucket under objectName and returns the public
// URL of the stored object. Pass size -1 when the length is unknown.
func (s *ObjectStore) Upload(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", objectName, err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

// Ping checks bucket reachability for the health endpoint.
func (s *ObjectStore) Ping(ctx context.Context) error {
	if _, err := s.client.BucketExists(ctx, s.bucket); err != nil {
		return fmt.Errorf("storage: ping: %w", err)
	}
	return nil
}

// ObjectName builds a collision-resistant object name from an uploaded file's
// original name: unix-millis prefix, spaces replaced with dashes.
func ObjectName(original string, now time.Time) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(original), " ", "-")
	if cleaned == "" {
		cleaned = "upload"
	}
	return fmt.Sprintf("%d_%s", now.UnixMilli(), cleaned)
}
