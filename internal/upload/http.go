// Copyright (c) 2026 Garagem. All rights reserved.

package upload

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pvieira/garagem/internal/objectstore"
	"github.com/pvieira/garagem/internal/platform/apperr"
	"github.com/pvieira/garagem/internal/platform/constants"
	"github.com/pvieira/garagem/internal/platform/middleware"
	requestutil "github.com/pvieira/garagem/internal/platform/request"
	"github.com/pvieira/garagem/internal/platform/respond"
	"github.com/pvieira/garagem/internal/platform/validate"
)

const (
	FieldKey     = "key"
	FieldData    = "dataBase64"
	FieldURL     = "url"
	FieldSuccess = "success"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterUploadRoute mounts the admin-only upload endpoint.
func (handler *Handler) RegisterUploadRoute(router chi.Router) {
	router.With(middleware.RequireAdmin).Post("/", handler.storeUpload)
}

// RegisterServeRoute mounts the public asset retrieval endpoint.
func (handler *Handler) RegisterServeRoute(router chi.Router) {
	router.Get("/*", handler.serveUpload)
}

type uploadRequest struct {
	Key         string `json:"key"`
	DataBase64  string `json:"dataBase64"`
	ContentType string `json:"contentType"`
}

func (handler *Handler) storeUpload(writer http.ResponseWriter, request *http.Request) {
	var input uploadRequest

	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBodyBytes)
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	result, err := handler.service.Store(request.Context(), input.Key, input.DataBase64, input.ContentType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldSuccess: true,
		FieldKey:     result.Key,
		FieldURL:     result.URL,
	})
}

func (handler *Handler) serveUpload(writer http.ResponseWriter, request *http.Request) {
	key := chi.URLParam(request, "*")

	object, err := handler.service.Open(request.Context(), key)
	if err != nil {
		if objectstore.IsNotFound(err) {
			respond.Error(writer, request, apperr.NotFound("Asset not found"))
			return
		}
		respond.Error(writer, request, err)
		return
	}
	defer object.Body.Close()

	if object.ContentType != "" {
		writer.Header().Set("Content-Type", object.ContentType)
	}
	if object.Size > 0 {
		writer.Header().Set("Content-Length", strconv.FormatInt(object.Size, 10))
	}

	_, _ = io.Copy(writer, object.Body)
}
