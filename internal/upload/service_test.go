// Copyright (c) 2026 Garagem. All rights reserved.

package upload_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvieira/garagem/internal/objectstore"
	"github.com/pvieira/garagem/internal/platform/apperr"
	"github.com/pvieira/garagem/internal/upload"
)

// storedObject is one asset held by the fake bucket.
type storedObject struct {
	data        []byte
	contentType string
}

// fakeAPI is an in-memory bucket implementing objectstore.API.
type fakeAPI struct {
	buckets map[string]bool
	objects map[string]storedObject
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		buckets: make(map[string]bool),
		objects: make(map[string]storedObject),
	}
}

func (api *fakeAPI) BucketExists(_ context.Context, bucketName string) (bool, error) {
	return api.buckets[bucketName], nil
}

func (api *fakeAPI) MakeBucket(_ context.Context, bucketName string, _ minio.MakeBucketOptions) error {
	api.buckets[bucketName] = true
	return nil
}

func (api *fakeAPI) PutObject(_ context.Context, _, objectName string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	api.objects[objectName] = storedObject{data: data, contentType: opts.ContentType}
	return minio.UploadInfo{Key: objectName, Size: int64(len(data))}, nil
}

func (api *fakeAPI) GetObject(_ context.Context, _, objectName string, _ minio.GetObjectOptions) (io.ReadCloser, error) {
	object, found := api.objects[objectName]
	if !found {
		return nil, minio.ErrorResponse{Code: "NoSuchKey"}
	}
	return io.NopCloser(bytes.NewReader(object.data)), nil
}

func (api *fakeAPI) RemoveObject(_ context.Context, _, objectName string, _ minio.RemoveObjectOptions) error {
	delete(api.objects, objectName)
	return nil
}

func (api *fakeAPI) StatObject(_ context.Context, _, objectName string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	object, found := api.objects[objectName]
	if !found {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"}
	}
	return minio.ObjectInfo{
		Key:         objectName,
		Size:        int64(len(object.data)),
		ContentType: object.contentType,
	}, nil
}

func newService(t *testing.T, api *fakeAPI) *upload.Service {
	t.Helper()

	store, err := objectstore.NewStoreWithAPI(context.Background(), api, "garagem-uploads")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return upload.NewService(store, "https://api.garagem.pt/", logger)
}

/* TestStore_RoundTrip verifies that a base64 payload is decoded, persisted
under its key, and addressed by the public retrieval URL. */
func TestStore_RoundTrip(t *testing.T) {
	api := newFakeAPI()
	service := newService(t, api)

	payload := []byte("front view of the Clio")
	encoded := base64.StdEncoding.EncodeToString(payload)

	result, err := service.Store(context.Background(), "cars/clio/front.jpg", encoded, "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "cars/clio/front.jpg", result.Key)
	assert.Equal(t, "https://api.garagem.pt/uploads/cars/clio/front.jpg", result.URL)

	stored, found := api.objects["cars/clio/front.jpg"]
	require.True(t, found)
	assert.Equal(t, payload, stored.data)
	assert.Equal(t, "image/jpeg", stored.contentType)
}

/* TestStore_NormalizesLeadingSlashes verifies that client-supplied keys are
stripped of leading slashes before storage. */
func TestStore_NormalizesLeadingSlashes(t *testing.T) {
	api := newFakeAPI()
	service := newService(t, api)

	encoded := base64.StdEncoding.EncodeToString([]byte("doc"))
	result, err := service.Store(context.Background(), "///clients/ana/contract.pdf", encoded, "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "clients/ana/contract.pdf", result.Key)
	_, found := api.objects["clients/ana/contract.pdf"]
	assert.True(t, found)
}

/* TestStore_DefaultsContentType verifies that an empty content type falls
back to application/octet-stream. */
func TestStore_DefaultsContentType(t *testing.T) {
	api := newFakeAPI()
	service := newService(t, api)

	encoded := base64.StdEncoding.EncodeToString([]byte{0x01, 0x02})
	_, err := service.Store(context.Background(), "misc/blob", encoded, "")
	require.NoError(t, err)

	assert.Equal(t, "application/octet-stream", api.objects["misc/blob"].contentType)
}

/* TestStore_ValidationFailures verifies that a missing key, missing payload,
or malformed base64 is rejected with a validation error and nothing is stored. */
func TestStore_ValidationFailures(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		dataBase64 string
	}{
		{name: "missing key", key: "", dataBase64: base64.StdEncoding.EncodeToString([]byte("x"))},
		{name: "slash-only key", key: "///", dataBase64: base64.StdEncoding.EncodeToString([]byte("x"))},
		{name: "missing payload", key: "cars/photo.jpg", dataBase64: ""},
		{name: "malformed base64", key: "cars/photo.jpg", dataBase64: "not-@-base64!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			service := newService(t, api)

			_, err := service.Store(context.Background(), tt.key, tt.dataBase64, "image/jpeg")
			require.Error(t, err)

			var appError *apperr.AppError
			require.ErrorAs(t, err, &appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Empty(t, api.objects)
		})
	}
}

/* TestOpen verifies that a stored asset is served back with its size and
content type, and that an unknown key surfaces the store's missing-object
error. */
func TestOpen(t *testing.T) {
	api := newFakeAPI()
	service := newService(t, api)

	payload := []byte("interior shot")
	encoded := base64.StdEncoding.EncodeToString(payload)
	_, err := service.Store(context.Background(), "cars/clio/interior.jpg", encoded, "image/jpeg")
	require.NoError(t, err)

	// 1. Existing key streams back the original bytes
	object, err := service.Open(context.Background(), "/cars/clio/interior.jpg")
	require.NoError(t, err)
	defer object.Body.Close()

	assert.Equal(t, int64(len(payload)), object.Size)
	assert.Equal(t, "image/jpeg", object.ContentType)

	body, err := io.ReadAll(object.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, body)

	// 2. Unknown key reports a missing object
	_, err = service.Open(context.Background(), "cars/clio/rear.jpg")
	require.Error(t, err)
	assert.True(t, objectstore.IsNotFound(err))
}
