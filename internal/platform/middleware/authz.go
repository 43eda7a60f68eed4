// Copyright (c) 2026 Garagem. All rights reserved.

// Package middleware: session resolution and role gates.
//
// # Architecture
//
// Every API call is classified as public, authenticated-user, or
// authenticated-admin. [Session] resolves the cookie leniently so public
// routes keep working for anonymous visitors; [RequireUser] and
// [RequireAdmin] are the terminal gates that reject calls before any
// handler logic executes.
package middleware

import (
	"context"
	"net/http"

	"github.com/pvieira/garagem/internal/auth"
	"github.com/pvieira/garagem/internal/platform/apperr"
	"github.com/pvieira/garagem/internal/platform/constants"
	"github.com/pvieira/garagem/internal/platform/respond"
	"github.com/pvieira/garagem/internal/platform/sec"
)

// SessionResolver turns a session cookie value into a freshly loaded user
// record.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the `auth`
// service implementation, allowing us to inject fakes during unit testing.
type SessionResolver interface {
	ResolveSession(ctx context.Context, cookieValue string) (*auth.User, error)
}

// Session resolves the session cookie on every request.
//
// # Flow
//  1. Read the fixed-name session cookie.
//  2. If absent, the request proceeds as anonymous. An absent cookie means
//     "not logged in", never an error.
//  3. If present, resolve it via [SessionResolver]: verify the token and
//     re-read the user record from the store so the role is always current.
//  4. On success, inject the [*auth.User] into the request context.
//  5. On failure, the request still proceeds as anonymous; the terminal
//     rejection (401/403) is the job of [RequireUser]/[RequireAdmin].
func Session(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Session Resolution ─────────────────────────────────────────
			user, err := resolver.ResolveSession(request.Context(), cookie.Value)
			if err != nil {
				// Invalid or expired sessions degrade to anonymous here;
				// gated routes reject them with UNAUTHORIZED downstream.
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := auth.NewContext(request.Context(), user)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireUser blocks requests without a resolved, authenticated session.
//
// The UNAUTHORIZED code in the rejection envelope is the signal client code
// pattern-matches on to redirect to the login surface.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user := auth.FromContext(request.Context())
		if user == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAdmin blocks requests whose resolved user lacks the admin role.
//
// # Usage
//
// Must be registered in the router AFTER [Session]. It automatically implies
// [RequireUser] so you don't need to mount both.
//
// # Flow
//  1. Check if an [*auth.User] exists in context (implies AuthN).
//  2. Check the role against [sec.RoleAdmin].
//  3. If insufficient, abort with HTTP 403 Forbidden. The FORBIDDEN code is
//     rendered in place by clients; it never triggers a login redirect.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user := auth.FromContext(request.Context())

		// ── 1. Authentication Check ───────────────────────────────────────
		if user == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}

		// ── 2. Authorization Check ────────────────────────────────────────
		if !user.Role.AtLeast(sec.RoleAdmin) {
			respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}
