// Copyright (c) 2026 Garagem. All rights reserved.

// Package schema centralizes table and column names used by the PostgreSQL
// repositories. Queries reference these structs instead of string literals so
// a rename is a single-line change.
package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table        string
	ID           string
	Name         string
	Email        string
	Role         string
	CreatedAt    string
	UpdatedAt    string
	LastSignedIn string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:        "users",
	ID:           "id",
	Name:         "name",
	Email:        "email",
	Role:         "role",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
	LastSignedIn: "lastsignedin",
}

// Columns returns all standard column names
func (t UsersTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Role, t.CreatedAt, t.UpdatedAt, t.LastSignedIn,
	}
}
