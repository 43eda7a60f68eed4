// Copyright (c) 2026 Garagem. All rights reserved.

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pvieira/garagem/internal/platform/middleware"
	requestutil "github.com/pvieira/garagem/internal/platform/request"
	"github.com/pvieira/garagem/internal/platform/respond"
	"github.com/pvieira/garagem/internal/platform/validate"
	"github.com/pvieira/garagem/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public storefront form
	router.Post("/", handler.submitInquiry)

	// Admin inbox
	router.With(middleware.RequireAdmin).Get("/", handler.listInquiries)
}

type inquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (handler *Handler) submitInquiry(writer http.ResponseWriter, request *http.Request) {
	var input inquiryRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	inquiry := &Inquiry{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := handler.service.SubmitInquiry(request.Context(), inquiry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldSuccess: true})
}

func (handler *Handler) listInquiries(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	inquiries, total, err := handler.service.ListInquiries(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, inquiries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
