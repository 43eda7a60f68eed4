// Copyright (c) 2026 Garagem. All rights reserved.

package car

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pvieira/garagem/internal/platform/middleware"
	requestutil "github.com/pvieira/garagem/internal/platform/request"
	"github.com/pvieira/garagem/internal/platform/respond"
	"github.com/pvieira/garagem/pkg/convert"
	"github.com/pvieira/garagem/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public storefront
	router.Get("/", handler.listCars)
	router.Get("/featured", handler.listFeaturedCars)
	router.Get("/{id}", handler.getCar)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createCar)
		adminRoute.Patch("/{id}", handler.updateCar)
		adminRoute.Delete("/{id}", handler.deleteCar)
	})
}

// filterFromQuery maps storefront search parameters onto a [Filter].
func filterFromQuery(request *http.Request) Filter {
	q := request.URL.Query()

	return Filter{
		Brand:    q.Get("brand"),
		Model:    q.Get("model"),
		MinYear:  convert.ToInt(q.Get("minYear")),
		MaxYear:  convert.ToInt(q.Get("maxYear")),
		MinPrice: convert.ToFloat64(q.Get("minPrice")),
		MaxPrice: convert.ToFloat64(q.Get("maxPrice")),
		MinKm:    convert.ToInt(q.Get("minKm")),
		MaxKm:    convert.ToInt(q.Get("maxKm")),
		Fuel:     q.Get("fuel"),
		MinPower: convert.ToInt(q.Get("minPower")),
		MaxPower: convert.ToInt(q.Get("maxPower")),
		Origin:   q.Get("origin"),
		Status:   q.Get("status"),
		SoldTo:   q.Get("soldTo"),
	}
}

func (handler *Handler) listCars(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := filterFromQuery(request)

	cars, total, err := handler.service.ListCars(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, cars, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listFeaturedCars(writer http.ResponseWriter, request *http.Request) {
	limit := convert.ToInt(request.URL.Query().Get("limit"))

	cars, err := handler.service.ListFeaturedCars(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, cars)
}

func (handler *Handler) getCar(writer http.ResponseWriter, request *http.Request) {
	carID := requestutil.ID(request, "id")

	car, err := handler.service.GetCar(request.Context(), carID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, car)
}

func (handler *Handler) createCar(writer http.ResponseWriter, request *http.Request) {
	var input Car

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCar(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCar(writer http.ResponseWriter, request *http.Request) {
	carID := requestutil.ID(request, "id")

	var input Patch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateCar(request.Context(), carID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteCar(writer http.ResponseWriter, request *http.Request) {
	carID := requestutil.ID(request, "id")

	if err := handler.service.DeleteCar(request.Context(), carID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
