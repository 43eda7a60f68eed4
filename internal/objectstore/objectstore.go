// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package objectstore wraps MinIO as the binary store for uploaded assets
(car photographs, client documents).

The SDK client is hidden behind a narrow API interface so the store can be
exercised in tests without a running MinIO server.
*/
package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// API is the slice of the MinIO SDK the store actually uses.
type API interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// clientWrapper adapts *minio.Client to [API].
type clientWrapper struct{ c *minio.Client }

func (w clientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}

func (w clientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}

func (w clientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (w clientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := w.c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (w clientWrapper) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return w.c.RemoveObject(ctx, bucketName, objectName, opts)
}

func (w clientWrapper) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return w.c.StatObject(ctx, bucketName, objectName, opts)
}

// Object is a stored asset opened for reading.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Store persists binary assets in a single bucket.
type Store struct {
	api    API
	bucket string
}

// NewStore wraps a real MinIO client and ensures the bucket exists.
func NewStore(ctx context.Context, client *minio.Client, bucket string) (*Store, error) {
	return NewStoreWithAPI(ctx, clientWrapper{c: client}, bucket)
}

// NewStoreWithAPI allows injecting a mockable [API] (used in tests).
func NewStoreWithAPI(ctx context.Context, api API, bucket string) (*Store, error) {
	store := &Store{
		api:    api,
		bucket: bucket,
	}

	if err := store.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("objectstore_bucket_setup_failed: %w", err)
	}

	return store, nil
}

func (store *Store) ensureBucket(ctx context.Context) error {
	exists, err := store.api.BucketExists(ctx, store.bucket)
	if err != nil {
		return err
	}

	if !exists {
		if err := store.api.MakeBucket(ctx, store.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	return nil
}

// Put stores an asset under the given key, overwriting any previous version.
func (store *Store) Put(ctx context.Context, key, contentType string, reader io.Reader, size int64) error {
	_, err := store.api.PutObject(ctx, store.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("objectstore_put_failed: %w", err)
	}
	return nil
}

// Get opens a stored asset. The caller owns the returned body.
func (store *Store) Get(ctx context.Context, key string) (*Object, error) {
	info, err := store.api.StatObject(ctx, store.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, err
	}

	body, err := store.api.GetObject(ctx, store.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("objectstore_get_failed: %w", err)
	}

	return &Object{
		Body:        body,
		ContentType: info.ContentType,
		Size:        info.Size,
	}, nil
}

// Remove deletes a stored asset.
func (store *Store) Remove(ctx context.Context, key string) error {
	if err := store.api.RemoveObject(ctx, store.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("objectstore_remove_failed: %w", err)
	}
	return nil
}

// IsNotFound reports whether an error is the store's missing-object response.
func IsNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
