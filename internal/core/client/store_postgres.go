// Copyright (c) 2026 Garagem. All rights reserved.

package client

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

func clientColumns() string {
	return strings.Join(schema.Clients.Columns(), ", ")
}

func scanClient(row interface{ Scan(dest ...any) error }) (*Client, error) {
	c := &Client{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.NIF, &c.Address, &c.Notes,
		&c.Files, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (repository *PostgresRepository) ListClients(context context.Context, f Filter, limit, offset int) ([]*Client, int, error) {
	var conditions []string
	var args []any

	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", schema.Clients.Name, len(args)))
	}
	if f.Email != "" {
		args = append(args, "%"+f.Email+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", schema.Clients.Email, len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Clients.Table) + where

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_clients")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, clientColumns(), schema.Clients.Table) + where +
		fmt.Sprintf(` ORDER BY %s DESC LIMIT $%d OFFSET $%d`, schema.Clients.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_clients")
	}
	defer rows.Close()

	var clients []*Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_client")
		}
		clients = append(clients, c)
	}

	return clients, total, nil
}

func (repository *PostgresRepository) GetClient(context context.Context, id string) (*Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, clientColumns(), schema.Clients.Table, schema.Clients.ID)

	c, err := scanClient(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_client")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateClient(context context.Context, c *Client) error {
	if c.ID == "" {
		c.ID = uuidv7.New()
	}
	if c.Files == nil {
		c.Files = []FileAttachment{}
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Clients.Table, clientColumns(),
		schema.Clients.CreatedAt, schema.Clients.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Email, c.Phone, c.NIF, c.Address, c.Notes, c.Files,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return dberr.Wrap(err, "create_client")
}

func (repository *PostgresRepository) UpdateClient(context context.Context, id string, patch *Patch) (*Client, error) {
	var assignments []string
	args := []any{id}

	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set(schema.Clients.Name, *patch.Name)
	}
	if patch.Email != nil {
		set(schema.Clients.Email, *patch.Email)
	}
	if patch.Phone != nil {
		set(schema.Clients.Phone, *patch.Phone)
	}
	if patch.NIF != nil {
		set(schema.Clients.NIF, *patch.NIF)
	}
	if patch.Address != nil {
		set(schema.Clients.Address, *patch.Address)
	}
	if patch.Notes != nil {
		set(schema.Clients.Notes, *patch.Notes)
	}
	if patch.Files != nil {
		set(schema.Clients.Files, *patch.Files)
	}

	assignments = append(assignments, schema.Clients.UpdatedAt+" = NOW()")

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $1
		RETURNING %s
	`, schema.Clients.Table, strings.Join(assignments, ", "), schema.Clients.ID, clientColumns())

	c, err := scanClient(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "update_client")
	}
	return c, nil
}

func (repository *PostgresRepository) DeleteClient(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Clients.Table, schema.Clients.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_client")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
