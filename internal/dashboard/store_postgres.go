// Copyright (c) 2026 Garagem. All rights reserved.

package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pvieira/garagem/internal/core/car"
	"github.com/pvieira/garagem/internal/platform/database/schema"
	"github.com/pvieira/garagem/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InventoryAggregates computes the dashboard numbers in one round-trip.
// Cars without a status predate the field and count as available.
func (repository *PostgresRepository) InventoryAggregates(context context.Context) (*Aggregates, error) {
	query := fmt.Sprintf(`
		SELECT
			count(*) FILTER (WHERE %s = $1 OR %s = ''),
			COALESCE(sum(%s) FILTER (WHERE %s = $2), 0),
			COALESCE(sum(%s), 0)
		FROM %s
	`,
		schema.Cars.Status, schema.Cars.Status,
		schema.Cars.SoldPrice, schema.Cars.Status,
		schema.Cars.PurchasePrice,
		schema.Cars.Table,
	)

	aggregates := &Aggregates{}
	err := repository.db.QueryRow(context, query, car.StatusAvailable, car.StatusSold).Scan(
		&aggregates.AvailableCars,
		&aggregates.TotalSales,
		&aggregates.TotalSpends,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "inventory_aggregates")
	}

	return aggregates, nil
}
