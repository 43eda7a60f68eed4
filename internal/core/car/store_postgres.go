// Copyright (c) 2026 Garagem. All rights reserved.

package car

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pvieira/garagem/internal/platform/database/schema"
	"github.com/pvieira/garagem/internal/platform/dberr"
	"github.com/pvieira/garagem/pkg/uuidv7"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// carColumns is the canonical SELECT column list, aligned with scanCar.
func carColumns() string {
	return strings.Join(schema.Cars.Columns(), ", ")
}

func scanCar(row interface{ Scan(dest ...any) error }) (*Car, error) {
	c := &Car{}
	err := row.Scan(
		&c.ID, &c.Brand, &c.Model, &c.Year, &c.Price, &c.Km, &c.Fuel,
		&c.MotorPower, &c.EngineSize, &c.Origin, &c.LastMaintenanceDate,
		&c.Description, &c.ImageURLs, &c.Featured, &c.Status,
		&c.PurchasePrice, &c.SoldPrice, &c.SoldTo, &c.SoldDate,
		&c.VehicleType, &c.BodyType, &c.Transmission, &c.Traction,
		&c.Condition, &c.ColorExterior, &c.ColorInterior, &c.Doors,
		&c.Seats, &c.Equipment, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// buildFilter translates a [Filter] into a WHERE fragment with positional
// arguments. Zero values are skipped.
func buildFilter(f Filter) (string, []any) {
	var conditions []string
	var args []any

	add := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if f.Brand != "" {
		add(schema.Cars.Brand+" = $%d", f.Brand)
	}
	if f.Model != "" {
		add(schema.Cars.Model+" = $%d", f.Model)
	}
	if f.MinYear > 0 {
		add(schema.Cars.Year+" >= $%d", f.MinYear)
	}
	if f.MaxYear > 0 {
		add(schema.Cars.Year+" <= $%d", f.MaxYear)
	}
	if f.MinPrice > 0 {
		add(schema.Cars.Price+" >= $%d", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		add(schema.Cars.Price+" <= $%d", f.MaxPrice)
	}
	if f.MinKm > 0 {
		add(schema.Cars.Km+" >= $%d", f.MinKm)
	}
	if f.MaxKm > 0 {
		add(schema.Cars.Km+" <= $%d", f.MaxKm)
	}
	if f.Fuel != "" {
		add(schema.Cars.Fuel+" = $%d", f.Fuel)
	}
	if f.MinPower > 0 {
		add(schema.Cars.MotorPower+" >= $%d", f.MinPower)
	}
	if f.MaxPower > 0 {
		add(schema.Cars.MotorPower+" <= $%d", f.MaxPower)
	}
	if f.Origin != "" {
		add(schema.Cars.Origin+" = $%d", f.Origin)
	}
	if f.Status != "" {
		if f.Status == StatusAvailable {
			// Pre-status records count as available.
			add("("+schema.Cars.Status+" = $%d OR "+schema.Cars.Status+" = '')", f.Status)
		} else {
			add(schema.Cars.Status+" = $%d", f.Status)
		}
	}
	if f.SoldTo != "" {
		add(schema.Cars.SoldTo+" = $%d", f.SoldTo)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (repository *PostgresRepository) ListCars(context context.Context, f Filter, limit, offset int) ([]*Car, int, error) {
	where, args := buildFilter(f)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Cars.Table) + where

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_cars")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, carColumns(), schema.Cars.Table) + where +
		fmt.Sprintf(` ORDER BY %s DESC LIMIT $%d OFFSET $%d`, schema.Cars.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_cars")
	}
	defer rows.Close()

	var cars []*Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_car")
		}
		cars = append(cars, c)
	}

	return cars, total, nil
}

func (repository *PostgresRepository) ListFeaturedCars(context context.Context, limit int) ([]*Car, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s DESC
		LIMIT $1
	`, carColumns(), schema.Cars.Table, schema.Cars.Featured, schema.Cars.CreatedAt)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_featured_cars")
	}
	defer rows.Close()

	var cars []*Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_car")
		}
		cars = append(cars, c)
	}

	return cars, nil
}

func (repository *PostgresRepository) GetCar(context context.Context, id string) (*Car, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, carColumns(), schema.Cars.Table, schema.Cars.ID)

	c, err := scanCar(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_car")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCar(context context.Context, c *Car) error {
	if c.ID == "" {
		c.ID = uuidv7.New()
	}
	if c.ImageURLs == nil {
		c.ImageURLs = []string{}
	}
	if c.Equipment == nil {
		c.Equipment = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
		        $27, $28, $29, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Cars.Table, carColumns(),
		schema.Cars.CreatedAt, schema.Cars.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Brand, c.Model, c.Year, c.Price, c.Km, c.Fuel,
		c.MotorPower, c.EngineSize, c.Origin, c.LastMaintenanceDate,
		c.Description, c.ImageURLs, c.Featured, c.Status,
		c.PurchasePrice, c.SoldPrice, c.SoldTo, c.SoldDate,
		c.VehicleType, c.BodyType, c.Transmission, c.Traction,
		c.Condition, c.ColorExterior, c.ColorInterior, c.Doors,
		c.Seats, c.Equipment,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return dberr.Wrap(err, "create_car")
}

func (repository *PostgresRepository) UpdateCar(context context.Context, id string, patch *Patch) (*Car, error) {
	var assignments []string
	args := []any{id}

	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Brand != nil {
		set(schema.Cars.Brand, *patch.Brand)
	}
	if patch.Model != nil {
		set(schema.Cars.Model, *patch.Model)
	}
	if patch.Year != nil {
		set(schema.Cars.Year, *patch.Year)
	}
	if patch.Price != nil {
		set(schema.Cars.Price, *patch.Price)
	}
	if patch.Km != nil {
		set(schema.Cars.Km, *patch.Km)
	}
	if patch.Fuel != nil {
		set(schema.Cars.Fuel, *patch.Fuel)
	}
	if patch.MotorPower != nil {
		set(schema.Cars.MotorPower, *patch.MotorPower)
	}
	if patch.EngineSize != nil {
		set(schema.Cars.EngineSize, *patch.EngineSize)
	}
	if patch.Origin != nil {
		set(schema.Cars.Origin, *patch.Origin)
	}
	if patch.LastMaintenanceDate != nil {
		set(schema.Cars.LastMaintenanceDate, *patch.LastMaintenanceDate)
	}
	if patch.Description != nil {
		set(schema.Cars.Description, *patch.Description)
	}
	if patch.ImageURLs != nil {
		set(schema.Cars.ImageURLs, *patch.ImageURLs)
	}
	if patch.Featured != nil {
		set(schema.Cars.Featured, *patch.Featured)
	}
	if patch.Status != nil {
		set(schema.Cars.Status, *patch.Status)
	}
	if patch.PurchasePrice != nil {
		set(schema.Cars.PurchasePrice, *patch.PurchasePrice)
	}
	if patch.SoldPrice != nil {
		set(schema.Cars.SoldPrice, *patch.SoldPrice)
	}
	if patch.SoldTo != nil {
		set(schema.Cars.SoldTo, *patch.SoldTo)
	}
	if patch.SoldDate != nil {
		set(schema.Cars.SoldDate, *patch.SoldDate)
	}
	if patch.VehicleType != nil {
		set(schema.Cars.VehicleType, *patch.VehicleType)
	}
	if patch.BodyType != nil {
		set(schema.Cars.BodyType, *patch.BodyType)
	}
	if patch.Transmission != nil {
		set(schema.Cars.Transmission, *patch.Transmission)
	}
	if patch.Traction != nil {
		set(schema.Cars.Traction, *patch.Traction)
	}
	if patch.Condition != nil {
		set(schema.Cars.Condition, *patch.Condition)
	}
	if patch.ColorExterior != nil {
		set(schema.Cars.ColorExterior, *patch.ColorExterior)
	}
	if patch.ColorInterior != nil {
		set(schema.Cars.ColorInterior, *patch.ColorInterior)
	}
	if patch.Doors != nil {
		set(schema.Cars.Doors, *patch.Doors)
	}
	if patch.Seats != nil {
		set(schema.Cars.Seats, *patch.Seats)
	}
	if patch.Equipment != nil {
		set(schema.Cars.Equipment, *patch.Equipment)
	}

	assignments = append(assignments, schema.Cars.UpdatedAt+" = NOW()")

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $1
		RETURNING %s
	`, schema.Cars.Table, strings.Join(assignments, ", "), schema.Cars.ID, carColumns())

	c, err := scanCar(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "update_car")
	}
	return c, nil
}

func (repository *PostgresRepository) DeleteCar(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Cars.Table, schema.Cars.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_car")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
