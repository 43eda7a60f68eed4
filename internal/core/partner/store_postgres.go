// Copyright (c) 2026 Garagem. All rights reserved.

package partner

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

func partnerColumns() string {
	return strings.Join(schema.Partners.Columns(), ", ")
}

func scanPartner(row interface{ Scan(dest ...any) error }) (*Partner, error) {
	p := &Partner{}
	err := row.Scan(
		&p.ID, &p.Name, &p.LogoURL, &p.Website, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (repository *PostgresRepository) ListPartners(context context.Context) ([]*Partner, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		partnerColumns(), schema.Partners.Table, schema.Partners.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_partners")
	}
	defer rows.Close()

	var partners []*Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_partner")
		}
		partners = append(partners, p)
	}

	return partners, nil
}

func (repository *PostgresRepository) GetPartner(context context.Context, id string) (*Partner, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		partnerColumns(), schema.Partners.Table, schema.Partners.ID,
	)

	p, err := scanPartner(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_partner")
	}
	return p, nil
}

func (repository *PostgresRepository) CreatePartner(context context.Context, p *Partner) error {
	if p.ID == "" {
		p.ID = uuidv7.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Partners.Table, partnerColumns(),
		schema.Partners.CreatedAt, schema.Partners.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Name, p.LogoURL, p.Website, p.Description,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, "create_partner")
}

func (repository *PostgresRepository) UpdatePartner(context context.Context, id string, patch *Patch) (*Partner, error) {
	var assignments []string
	args := []any{id}

	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set(schema.Partners.Name, *patch.Name)
	}
	if patch.LogoURL != nil {
		set(schema.Partners.LogoURL, *patch.LogoURL)
	}
	if patch.Website != nil {
		set(schema.Partners.Website, *patch.Website)
	}
	if patch.Description != nil {
		set(schema.Partners.Description, *patch.Description)
	}

	assignments = append(assignments, schema.Partners.UpdatedAt+" = NOW()")

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $1
		RETURNING %s
	`, schema.Partners.Table, strings.Join(assignments, ", "), schema.Partners.ID, partnerColumns())

	p, err := scanPartner(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "update_partner")
	}
	return p, nil
}

func (repository *PostgresRepository) DeletePartner(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Partners.Table, schema.Partners.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_partner")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
