// Copyright (c) 2026 Garagem. All rights reserved.

package auth

import (
	"context"

	"github.com/pvieira/garagem/internal/platform/ctxkey"
)

// NewContext returns a new context carrying the resolved user record.
//
// The session middleware attaches the record here once per request, after
// re-reading it from the store, so role checks downstream always see the
// current role rather than whatever was true when the token was minted.
func NewContext(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// FromContext retrieves the resolved [*User] from the context.
//
// Returns nil for anonymous requests.
func FromContext(ctx context.Context) *User {
	user, ok := ctx.Value(ctxkey.KeyUser).(*User)
	if !ok {
		return nil
	}
	return user
}
