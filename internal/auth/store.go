// Copyright (c) 2026 Garagem. All rights reserved.

package auth

import (
	"context"
	"time"

	"github.com/pvieira/garagem/internal/platform/sec"
)

// Repository defines the data access contract for user accounts.
//
// # Tagged operations
//
// Instead of a single duck-typed merge-upsert, the contract names each write
// explicitly so it is unambiguous which fields a given call may touch:
// [Repository.Create] provisions (and may refresh profile fields),
// [Repository.RefreshSession] touches only the session timestamps, and
// [Repository.UpdateRole] is the sole operation allowed to change a role.
// This makes the "a session refresh can never downgrade a role" invariant
// structural rather than conventional.
//
// # Implementations
//
// The canonical implementation for Garagem is PostgreSQL (store_postgres.go).
// Tests use an in-memory fake.
type Repository interface {
	// FindByID returns the account with the given provider subject id.
	//
	// Returns [dberr.ErrNotFound] if the account does not exist.
	// A never-created identifier is not an error condition for callers
	// that treat absence as "none".
	FindByID(ctx context.Context, id string) (*User, error)

	// Create provisions the account at first login.
	//
	// If the record already exists the call degrades to a profile refresh:
	// non-empty name/email overwrite the stored values, the timestamps are
	// touched, and the stored role is left untouched no matter what the
	// passed record carries. A missing role on a fresh record defaults to
	// [sec.RoleUser]. The passed record is populated with the stored state.
	//
	// Fails with a data-access error if user.ID is empty.
	Create(ctx context.Context, user *User) error

	// RefreshSession records an authenticated call: sets lastsignedin to
	// the supplied instant and touches updatedat. It cannot modify any
	// other column.
	//
	// Returns [dberr.ErrNotFound] if the account does not exist; fails
	// with a data-access error if id is empty.
	RefreshSession(ctx context.Context, id string, lastSignedIn time.Time) error

	// UpdateRole is the explicit administrative role change. Nothing else
	// in the platform writes the role column of an existing record.
	UpdateRole(ctx context.Context, id string, role sec.Role) error

	// List returns all accounts ordered by creation time, newest first.
	// Used by operational tooling (cmd/seedadmin).
	List(ctx context.Context) ([]*User, error)
}
