// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package auth implements the user identity and session management layer.

It defines the core domain entity (User) and the logic for exchanging a
provider credential for a session cookie, resolving that cookie back into a
user record on every request, and the role lifecycle.

# Architecture

This layer is the "truth" of the system for identity. Credential verification
itself is delegated to the external identity provider; this package only ever
handles verified subjects and its own signed session tokens.
*/
package auth

import (
	"time"

	"github.com/pvieira/garagem/internal/platform/sec"
)

// # Domain Entities

// User represents an account known to the platform.
//
// The ID is the identity provider's stable subject identifier; records are
// provisioned at first login and updated on every subsequent authentication.
// Records are never deleted by the platform itself.
type User struct {
	ID           string    `json:"uid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// IsAdmin reports whether the user may access the admin console surface.
func (u *User) IsAdmin() bool {
	return u.Role.AtLeast(sec.RoleAdmin)
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldIDToken = "idToken"
	FieldUID     = "uid"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldRole    = "role"
	FieldUser    = "user"
	FieldSuccess = "success"
)
