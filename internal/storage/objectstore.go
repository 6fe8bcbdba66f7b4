package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/config"
)

// ObjectStore keeps uploaded banner/slide images in a MinIO bucket and hands
// back the relative object path that gets stored on the row (image_type FILE).
type ObjectStore struct {
	client *minio.Client
	bucket string
}

func New(cfg *config.Config) (*ObjectStore, error) {
	client, err := minio.New(cfg.MINIO_ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MINIO_ACCESS_KEY, cfg.MINIO_SECRET_KEY, ""),
		Secure: cfg.MINIO_USE_SSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: connect minio: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MINIO_BUCKET)
	if err != nil {
		return nil, fmt.Errorf("storage: bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MINIO_BUCKET, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: make bucket: %w", err)
		}
	}

	return &ObjectStore{client: client, bucket: cfg.MINIO_BUCKET}, nil
}

// PutImage streams an uploaded file into the bucket under a unique name and
// returns the relative path ("/images/<id><ext>").
func (s *ObjectStore) PutImage(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	object := "images/" + uuid.NewString() + path.Ext(filename)
	_, err := s.client.PutObject(ctx, s.bucket, object, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", object, err)
	}
	return "/" + object, nil
}

func (s *ObjectStore) RemoveImage(ctx context.Context, relPath string) error {
	object := relPath
	if len(object) > 0 && object[0] == '/' {
		object = object[1:]
	}
	if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: remove %s: %w", object, err)
	}
	return nil
}
