// Copyright (c) 2026 Garagem. All rights reserved.

package car

import (
	"context"
	"log/slog"

	"github.com/pvieira/garagem/internal/platform/validate"
)

const defaultFeaturedLimit = 6

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCars(context context.Context, filter Filter, limit, offset int) ([]*Car, int, error) {
	return service.repo.ListCars(context, filter, limit, offset)
}

func (service *Service) ListFeaturedCars(context context.Context, limit int) ([]*Car, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return service.repo.ListFeaturedCars(context, limit)
}

func (service *Service) GetCar(context context.Context, id string) (*Car, error) {
	return service.repo.GetCar(context, id)
}

func (service *Service) CreateCar(context context.Context, car *Car) error {
	validator := &validate.Validator{}
	validator.Required(FieldBrand, car.Brand).MaxLen(FieldBrand, car.Brand, 100).
		Required(FieldModel, car.Model).MaxLen(FieldModel, car.Model, 100).
		Range(FieldYear, car.Year, 1900, 2100).
		Positive(FieldPrice, car.Price).
		Required(FieldFuel, car.Fuel)

	validator.Custom(FieldKm, car.Km < 0, "must not be negative")
	validator.Custom(FieldMotorPower, car.MotorPower <= 0, "must be a positive number")

	if car.Status != "" {
		validator.OneOf(FieldStatus, car.Status, Statuses...)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if car.Status == "" {
		car.Status = StatusAvailable
	}

	if err := service.repo.CreateCar(context, car); err != nil {
		return err
	}

	service.logger.Info("car_created",
		slog.String("car_id", car.ID),
		slog.String("brand", car.Brand),
		slog.String("model", car.Model),
	)
	return nil
}

func (service *Service) UpdateCar(context context.Context, id string, patch *Patch) (*Car, error) {
	validator := &validate.Validator{}

	if patch.Brand != nil {
		validator.Required(FieldBrand, *patch.Brand).MaxLen(FieldBrand, *patch.Brand, 100)
	}
	if patch.Model != nil {
		validator.Required(FieldModel, *patch.Model).MaxLen(FieldModel, *patch.Model, 100)
	}
	if patch.Year != nil {
		validator.Range(FieldYear, *patch.Year, 1900, 2100)
	}
	if patch.Price != nil {
		validator.Positive(FieldPrice, *patch.Price)
	}
	if patch.Km != nil {
		validator.Custom(FieldKm, *patch.Km < 0, "must not be negative")
	}
	if patch.MotorPower != nil {
		validator.Custom(FieldMotorPower, *patch.MotorPower <= 0, "must be a positive number")
	}
	if patch.Status != nil {
		validator.OneOf(FieldStatus, *patch.Status, Statuses...)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdateCar(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("car_updated", slog.String("car_id", id))
	return updated, nil
}

func (service *Service) DeleteCar(context context.Context, id string) error {
	if err := service.repo.DeleteCar(context, id); err != nil {
		return err
	}

	service.logger.Warn("car_deleted", slog.String("car_id", id))
	return nil
}
