// Copyright (c) 2026 Garagem. All rights reserved.

package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pvieira/garagem/internal/platform/middleware"
	requestutil "github.com/pvieira/garagem/internal/platform/request"
	"github.com/pvieira/garagem/internal/platform/respond"
	"github.com/pvieira/garagem/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the client endpoints. The whole module is gated:
// customer data never reaches anonymous or non-admin callers.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Get("/", handler.listClients)
		adminRoute.Get("/{id}", handler.getClient)
		adminRoute.Post("/", handler.createClient)
		adminRoute.Patch("/{id}", handler.updateClient)
		adminRoute.Delete("/{id}", handler.deleteClient)
	})
}

func (handler *Handler) listClients(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Name:  request.URL.Query().Get("name"),
		Email: request.URL.Query().Get("email"),
	}

	clients, total, err := handler.service.ListClients(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, clients, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getClient(writer http.ResponseWriter, request *http.Request) {
	clientID := requestutil.ID(request, "id")

	client, err := handler.service.GetClient(request.Context(), clientID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, client)
}

func (handler *Handler) createClient(writer http.ResponseWriter, request *http.Request) {
	var input Client

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateClient(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateClient(writer http.ResponseWriter, request *http.Request) {
	clientID := requestutil.ID(request, "id")

	var input Patch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateClient(request.Context(), clientID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteClient(writer http.ResponseWriter, request *http.Request) {
	clientID := requestutil.ID(request, "id")

	if err := handler.service.DeleteClient(request.Context(), clientID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
