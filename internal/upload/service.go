// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package upload implements the admin console's binary upload channel.

The console posts base64-encoded payloads (car photographs, client documents)
with a caller-chosen key; the service stores the decoded bytes in the object
store and hands back the public retrieval URL. No image processing happens
server-side.
*/
package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/pvieira/garagem/internal/objectstore"
	"github.com/pvieira/garagem/internal/platform/constants"
	"github.com/pvieira/garagem/internal/platform/validate"
)

const defaultContentType = "application/octet-stream"

type Service struct {
	store         *objectstore.Store
	publicBaseURL string
	logger        *slog.Logger
}

func NewService(store *objectstore.Store, publicBaseURL string, logger *slog.Logger) *Service {
	return &Service{
		store:         store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Result carries the stored key and its public URL.
type Result struct {
	Key string
	URL string
}

// NormalizeKey strips leading slashes so client-supplied keys cannot escape
// the upload prefix.
func NormalizeKey(key string) string {
	return strings.TrimLeft(key, "/")
}

// Store decodes and persists one upload.
func (service *Service) Store(context context.Context, key, dataBase64, contentType string) (*Result, error) {
	key = NormalizeKey(key)

	validator := &validate.Validator{}
	validator.Required(FieldKey, key)
	validator.Required(FieldData, dataBase64)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(dataBase64)
	if err != nil {
		validator.Custom(FieldData, true, "must be valid base64")
		return nil, validator.Err()
	}

	if contentType == "" {
		contentType = defaultContentType
	}

	if err := service.store.Put(context, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, err
	}

	service.logger.Info("upload_stored",
		slog.String("key", key),
		slog.Int("size", len(data)),
		slog.String("content_type", contentType),
	)

	return &Result{
		Key: key,
		URL: service.publicBaseURL + constants.UploadURLPrefix + key,
	}, nil
}

// Open retrieves a stored upload for public serving.
func (service *Service) Open(context context.Context, key string) (*objectstore.Object, error) {
	return service.store.Get(context, NormalizeKey(key))
}
