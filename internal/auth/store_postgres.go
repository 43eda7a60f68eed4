// Copyright (c) 2026 Garagem. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pvieira/garagem/internal/platform/apperr"
	"github.com/pvieira/garagem/internal/platform/database/schema"
	"github.com/pvieira/garagem/internal/platform/dberr"
	"github.com/pvieira/garagem/internal/platform/sec"
)

// PostgresRepository is the canonical [Repository] backed by pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a user repository on the shared pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, apperr.Internal(errors.New("auth: empty user id"))
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Users.ID, schema.Users.Name, schema.Users.Email, schema.Users.Role,
		schema.Users.CreatedAt, schema.Users.UpdatedAt, schema.Users.LastSignedIn,
		schema.Users.Table, schema.Users.ID,
	)

	user := &User{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role,
		&user.CreatedAt, &user.UpdatedAt, &user.LastSignedIn,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user")
	}

	return user, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, user *User) error {
	if user.ID == "" {
		return apperr.Internal(errors.New("auth: empty user id"))
	}

	role := user.Role
	if role == "" {
		role = sec.RoleUser
	}

	lastSignedIn := user.LastSignedIn
	if lastSignedIn.IsZero() {
		lastSignedIn = time.Now()
	}

	// The conflict branch deliberately omits the role column: a routine
	// re-login refreshes the profile but can never downgrade admin.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = CASE WHEN EXCLUDED.%s <> '' THEN EXCLUDED.%s ELSE %s.%s END,
			%s = CASE WHEN EXCLUDED.%s <> '' THEN EXCLUDED.%s ELSE %s.%s END,
			%s = NOW(),
			%s = EXCLUDED.%s
		RETURNING %s, %s, %s, %s, %s
	`,
		schema.Users.Table, schema.Users.ID, schema.Users.Name, schema.Users.Email,
		schema.Users.Role, schema.Users.CreatedAt, schema.Users.UpdatedAt, schema.Users.LastSignedIn,
		schema.Users.ID,
		schema.Users.Name, schema.Users.Name, schema.Users.Name, schema.Users.Table, schema.Users.Name,
		schema.Users.Email, schema.Users.Email, schema.Users.Email, schema.Users.Table, schema.Users.Email,
		schema.Users.UpdatedAt,
		schema.Users.LastSignedIn, schema.Users.LastSignedIn,
		schema.Users.Name, schema.Users.Email, schema.Users.Role, schema.Users.CreatedAt, schema.Users.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, role, lastSignedIn).Scan(
		&user.Name, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_user")
	}

	user.LastSignedIn = lastSignedIn
	return nil
}

func (repository *PostgresRepository) RefreshSession(ctx context.Context, id string, lastSignedIn time.Time) error {
	if id == "" {
		return apperr.Internal(errors.New("auth: empty user id"))
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.Users.Table, schema.Users.LastSignedIn, schema.Users.UpdatedAt, schema.Users.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id, lastSignedIn)
	if err != nil {
		return dberr.Wrap(err, "refresh_session")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UpdateRole(ctx context.Context, id string, role sec.Role) error {
	if id == "" {
		return apperr.Internal(errors.New("auth: empty user id"))
	}
	if !role.IsValid() {
		return apperr.ValidationError("Invalid role", apperr.FieldError{Field: FieldRole, Message: "unknown role"})
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.Users.Table, schema.Users.Role, schema.Users.UpdatedAt, schema.Users.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id, role)
	if err != nil {
		return dberr.Wrap(err, "update_role")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		schema.Users.ID, schema.Users.Name, schema.Users.Email, schema.Users.Role,
		schema.Users.CreatedAt, schema.Users.UpdatedAt, schema.Users.LastSignedIn,
		schema.Users.Table, schema.Users.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Role,
			&user.CreatedAt, &user.UpdatedAt, &user.LastSignedIn,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	return users, nil
}
