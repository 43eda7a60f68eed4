// Copyright (c) 2026 Garagem. All rights reserved.

package partner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pvieira/garagem/internal/platform/middleware"
	requestutil "github.com/pvieira/garagem/internal/platform/request"
	"github.com/pvieira/garagem/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public storefront
	router.Get("/", handler.listPartners)
	router.Get("/{id}", handler.getPartner)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createPartner)
		adminRoute.Patch("/{id}", handler.updatePartner)
		adminRoute.Delete("/{id}", handler.deletePartner)
	})
}

func (handler *Handler) listPartners(writer http.ResponseWriter, request *http.Request) {
	partners, err := handler.service.ListPartners(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, partners)
}

func (handler *Handler) getPartner(writer http.ResponseWriter, request *http.Request) {
	partnerID := requestutil.ID(request, "id")

	partner, err := handler.service.GetPartner(request.Context(), partnerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, partner)
}

func (handler *Handler) createPartner(writer http.ResponseWriter, request *http.Request) {
	var input Partner

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePartner(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePartner(writer http.ResponseWriter, request *http.Request) {
	partnerID := requestutil.ID(request, "id")

	var input Patch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdatePartner(request.Context(), partnerID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deletePartner(writer http.ResponseWriter, request *http.Request) {
	partnerID := requestutil.ID(request, "id")

	if err := handler.service.DeletePartner(request.Context(), partnerID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
