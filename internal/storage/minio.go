package storage

import (
	"context" // Request scoped cancellation
	"errors"  // Config validation errors
	"io"      // Upload streams
	"strings" // Object path parsing

	"github.com/minio/minio-go/v7"                 // MinIO client
	"github.com/minio/minio-go/v7/pkg/credentials" // MinIO credentials
)

// MinioConfig holds the connection settings for a MinIO bucket.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStorage wraps the MinIO SDK client and bucket name.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage constructs a MinIO client from config.
func NewMinioStorage(cfg MinioConfig) (*MinioStorage, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("minio access key and secret key are required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket ensures the configured bucket exists.
func (m *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
}

// Put uploads the resume and returns "<bucket>/<key>".
func (m *MinioStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return m.bucket + "/" + key, nil
}

// Delete removes an object previously returned by Put.
func (m *MinioStorage) Delete(ctx context.Context, path string) error {
	key := strings.TrimPrefix(path, m.bucket+"/")
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}
