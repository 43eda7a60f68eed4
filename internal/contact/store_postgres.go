// Copyright (c) 2026 Garagem. All rights reserved.

package contact

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

func (repository *PostgresRepository) ListInquiries(context context.Context, limit, offset int) ([]*Inquiry, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Contacts.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_inquiries")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		strings.Join(schema.Contacts.Columns(), ", "),
		schema.Contacts.Table, schema.Contacts.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_inquiries")
	}
	defer rows.Close()

	var inquiries []*Inquiry
	for rows.Next() {
		inquiry := &Inquiry{}
		if err := rows.Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Message, &inquiry.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_inquiry")
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, total, nil
}

func (repository *PostgresRepository) CreateInquiry(context context.Context, inquiry *Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuidv7.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s
	`,
		schema.Contacts.Table, strings.Join(schema.Contacts.Columns(), ", "),
		schema.Contacts.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Message,
	).Scan(&inquiry.CreatedAt)

	return dberr.Wrap(err, "create_inquiry")
}
