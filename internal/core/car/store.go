// Copyright (c) 2026 Garagem. All rights reserved.

package car

import "context"

type Repository interface {
	ListCars(context context.Context, f Filter, limit, offset int) ([]*Car, int, error)
	ListFeaturedCars(context context.Context, limit int) ([]*Car, error)
	GetCar(context context.Context, id string) (*Car, error)
	CreateCar(context context.Context, c *Car) error
	UpdateCar(context context.Context, id string, patch *Patch) (*Car, error)
	DeleteCar(context context.Context, id string) error
}
