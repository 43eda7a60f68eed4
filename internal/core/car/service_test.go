// Copyright (c) 2026 Garagem. All rights reserved.

package car_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvieira/garagem/internal/core/car"
	"github.com/pvieira/garagem/internal/platform/apperr"
	"github.com/pvieira/garagem/internal/platform/dberr"
	"github.com/pvieira/garagem/pkg/pointer"
)

// memoryRepository is an in-memory stand-in for the postgres store, good
// enough to observe what the service hands down after validation.
type memoryRepository struct {
	cars    map[string]*car.Car
	lastNew *car.Car
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{cars: make(map[string]*car.Car)}
}

func (repo *memoryRepository) ListCars(_ context.Context, _ car.Filter, _, _ int) ([]*car.Car, int, error) {
	listing := make([]*car.Car, 0, len(repo.cars))
	for _, record := range repo.cars {
		listing = append(listing, record)
	}
	return listing, len(listing), nil
}

func (repo *memoryRepository) ListFeaturedCars(_ context.Context, limit int) ([]*car.Car, error) {
	featured := make([]*car.Car, 0)
	for _, record := range repo.cars {
		if record.Featured && len(featured) < limit {
			featured = append(featured, record)
		}
	}
	return featured, nil
}

func (repo *memoryRepository) GetCar(_ context.Context, id string) (*car.Car, error) {
	record, found := repo.cars[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	return record, nil
}

func (repo *memoryRepository) CreateCar(_ context.Context, record *car.Car) error {
	if record.ID == "" {
		record.ID = fmt.Sprintf("car-%d", len(repo.cars)+1)
	}
	repo.cars[record.ID] = record
	repo.lastNew = record
	return nil
}

func (repo *memoryRepository) UpdateCar(_ context.Context, id string, patch *car.Patch) (*car.Car, error) {
	record, found := repo.cars[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	if patch.Price != nil {
		record.Price = *patch.Price
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
	if patch.Featured != nil {
		record.Featured = *patch.Featured
	}
	return record, nil
}

func (repo *memoryRepository) DeleteCar(_ context.Context, id string) error {
	if _, found := repo.cars[id]; !found {
		return dberr.ErrNotFound
	}
	delete(repo.cars, id)
	return nil
}

func newService(repo *memoryRepository) *car.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return car.NewService(repo, logger)
}

func validCar() *car.Car {
	return &car.Car{
		Brand:      "Renault",
		Model:      "Clio",
		Year:       2021,
		Price:      14500,
		Km:         42000,
		Fuel:       "gasoline",
		MotorPower: 90,
	}
}

/* TestCreateCar_Valid verifies that a well-formed listing is accepted and
persisted unchanged. */
func TestCreateCar_Valid(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	newCar := validCar()
	require.NoError(t, service.CreateCar(context.Background(), newCar))

	require.NotNil(t, repo.lastNew)
	assert.Equal(t, "Renault", repo.lastNew.Brand)
	assert.Equal(t, "Clio", repo.lastNew.Model)
}

/* TestCreateCar_DefaultsStatusToAvailable verifies that a listing created
without an explicit status lands in the available state. */
func TestCreateCar_DefaultsStatusToAvailable(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	newCar := validCar()
	require.NoError(t, service.CreateCar(context.Background(), newCar))

	assert.Equal(t, car.StatusAvailable, repo.lastNew.Status)
}

/* TestCreateCar_KeepsExplicitStatus verifies that a valid caller-provided
status is preserved as-is. */
func TestCreateCar_KeepsExplicitStatus(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	newCar := validCar()
	newCar.Status = car.StatusReserved
	require.NoError(t, service.CreateCar(context.Background(), newCar))

	assert.Equal(t, car.StatusReserved, repo.lastNew.Status)
}

/* TestCreateCar_ValidationFailures verifies the field rules on creation: each
bad input is rejected with a validation error and nothing is persisted. */
func TestCreateCar_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *car.Car)
	}{
		{name: "missing brand", mutate: func(c *car.Car) { c.Brand = "" }},
		{name: "missing model", mutate: func(c *car.Car) { c.Model = "" }},
		{name: "year before 1900", mutate: func(c *car.Car) { c.Year = 1885 }},
		{name: "year after 2100", mutate: func(c *car.Car) { c.Year = 2150 }},
		{name: "negative price", mutate: func(c *car.Car) { c.Price = -5000 }},
		{name: "missing fuel", mutate: func(c *car.Car) { c.Fuel = "" }},
		{name: "negative km", mutate: func(c *car.Car) { c.Km = -1 }},
		{name: "zero motor power", mutate: func(c *car.Car) { c.MotorPower = 0 }},
		{name: "unknown status", mutate: func(c *car.Car) { c.Status = "scrapped" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			service := newService(repo)

			badCar := validCar()
			tt.mutate(badCar)

			err := service.CreateCar(context.Background(), badCar)
			require.Error(t, err)

			var appError *apperr.AppError
			require.ErrorAs(t, err, &appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Nil(t, repo.lastNew)
		})
	}
}

/* TestUpdateCar_PartialPatch verifies that only the fields present in the
patch are validated and applied; untouched fields keep their stored values. */
func TestUpdateCar_PartialPatch(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	existing := validCar()
	require.NoError(t, service.CreateCar(context.Background(), existing))

	patch := &car.Patch{
		Price:  pointer.To(13900.0),
		Status: pointer.To(car.StatusSold),
	}
	updated, err := service.UpdateCar(context.Background(), existing.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, 13900.0, updated.Price)
	assert.Equal(t, car.StatusSold, updated.Status)
	assert.Equal(t, "Renault", updated.Brand)
	assert.Equal(t, 2021, updated.Year)
}

/* TestUpdateCar_RejectsInvalidPatchFields verifies that a present-but-invalid
patch field fails validation even when the rest of the patch is fine. */
func TestUpdateCar_RejectsInvalidPatchFields(t *testing.T) {
	tests := []struct {
		name  string
		patch *car.Patch
	}{
		{name: "empty brand", patch: &car.Patch{Brand: pointer.To("")}},
		{name: "year out of range", patch: &car.Patch{Year: pointer.To(1750)}},
		{name: "negative price", patch: &car.Patch{Price: pointer.To(-1.0)}},
		{name: "negative km", patch: &car.Patch{Km: pointer.To(-20)}},
		{name: "unknown status", patch: &car.Patch{Status: pointer.To("melted")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			service := newService(repo)

			existing := validCar()
			require.NoError(t, service.CreateCar(context.Background(), existing))

			_, err := service.UpdateCar(context.Background(), existing.ID, tt.patch)
			require.Error(t, err)

			var appError *apperr.AppError
			require.ErrorAs(t, err, &appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

/* TestUpdateCar_UnknownID verifies that patching a missing listing surfaces
the store's not-found error untouched. */
func TestUpdateCar_UnknownID(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	_, err := service.UpdateCar(context.Background(), "missing", &car.Patch{Featured: pointer.To(true)})
	require.ErrorIs(t, err, dberr.ErrNotFound)
}

/* TestListFeaturedCars_DefaultLimit verifies that a non-positive limit falls
back to the storefront default of six highlighted listings. */
func TestListFeaturedCars_DefaultLimit(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	for i := 0; i < 10; i++ {
		featured := validCar()
		featured.Featured = true
		require.NoError(t, service.CreateCar(context.Background(), featured))
	}

	listing, err := service.ListFeaturedCars(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, listing, 6)
}

/* TestDeleteCar verifies removal of an existing listing and the not-found
error for a repeat delete. */
func TestDeleteCar(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	existing := validCar()
	require.NoError(t, service.CreateCar(context.Background(), existing))

	require.NoError(t, service.DeleteCar(context.Background(), existing.ID))
	require.ErrorIs(t, service.DeleteCar(context.Background(), existing.ID), dberr.ErrNotFound)
}
