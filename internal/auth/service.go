// Copyright (c) 2026 Garagem. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pvieira/garagem/internal/identity"
	"github.com/pvieira/garagem/internal/platform/apperr"
	"github.com/pvieira/garagem/internal/platform/constants"
	"github.com/pvieira/garagem/internal/platform/dberr"
	"github.com/pvieira/garagem/internal/platform/sec"
)

// SessionCodec defines the contract for minting and verifying session tokens.
//
// # Why an interface?
//
// The concrete [sec.Codec] is injected in main; tests substitute a stub so
// service behavior can be exercised without real signing keys.
type SessionCodec interface {
	// Issue mints a signed session token for the subject.
	Issue(subject, name string, validity time.Duration) (string, error)

	// Verify checks a session token and returns its claims.
	Verify(tokenString string) (*sec.SessionClaims, error)
}

// Service orchestrates the two authentication entry points: exchanging a
// provider credential for a session token (login) and resolving a session
// cookie back into a user record (every gated request).
//
// # Review Process
//
// This service is critical for security. Any change to the login or session
// resolution flow must be reviewed before merge.
type Service struct {
	users    Repository
	verifier identity.Verifier
	codec    SessionCodec
	logger   *slog.Logger
}

// NewService constructs an authentication [Service] with its dependencies.
func NewService(users Repository, verifier identity.Verifier, codec SessionCodec, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		verifier: verifier,
		codec:    codec,
		logger:   logger,
	}
}

// LoginResult carries the outcome of a successful credential exchange.
type LoginResult struct {
	// Token is the session token the HTTP layer sets as a cookie.
	Token string
	// User is the provisioned (or refreshed) account record.
	User *User
}

// Login verifies a provider ID token and exchanges it for a session token.
//
// # Flow
//  1. Verify the credential against the identity provider. Any failure maps
//     to UNAUTHORIZED; the reason is logged, never leaked.
//  2. Provision the user record (create at first login; refresh the profile
//     on re-login — the stored role always survives).
//  3. Mint the session token. No other persistence happens here; the
//     per-request path keeps lastSignedIn current from then on.
func (service *Service) Login(ctx context.Context, idToken string) (*LoginResult, error) {
	// ── 1. Credential Verification ────────────────────────────────────────

	verified, err := service.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		service.logger.Warn("login_credential_rejected", slog.String("reason", err.Error()))
		return nil, apperr.Unauthorized("Login failed")
	}

	// ── 2. Account Provisioning ───────────────────────────────────────────

	user := &User{
		ID:    verified.Subject,
		Name:  verified.DisplayName(),
		Email: verified.Email,
	}
	if err := service.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth_service_provision_failed: %w", err)
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.codec.Issue(user.ID, user.Name, constants.SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))

	return &LoginResult{Token: token, User: user}, nil
}

// ResolveSession turns a session cookie value into a freshly loaded user
// record.
//
// # Flow
//  1. Empty cookie → UNAUTHORIZED.
//  2. Verify the token (signature, algorithm, expiry, required claims).
//  3. Load the user record by subject. A verified token for a deleted user
//     is NOT auto-provisioned: only explicit login provisions accounts.
//  4. Record the authenticated call (lastSignedIn), leaving the role alone.
//
// The role in the returned record is read from the store on every call, so
// an external promotion takes effect without re-login.
func (service *Service) ResolveSession(ctx context.Context, cookieValue string) (*User, error) {
	// ── 1. Cookie Presence ────────────────────────────────────────────────

	if cookieValue == "" {
		return nil, apperr.Unauthorized("Missing session cookie")
	}

	// ── 2. Token Verification ─────────────────────────────────────────────

	claims, err := service.codec.Verify(cookieValue)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	// ── 3. Account Lookup ─────────────────────────────────────────────────

	user, err := service.users.FindByID(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.Unauthorized("Unknown session subject")
		}
		return nil, err
	}

	// ── 4. Session Touch ──────────────────────────────────────────────────

	// Deliberate write-amplification: every authenticated call persists the
	// lastSignedIn instant. Last-write-wins at the store is acceptable.
	signedInAt := time.Now()
	if err := service.users.RefreshSession(ctx, user.ID, signedInAt); err != nil {
		// The record can vanish between lookup and touch; a session for a
		// deleted user is unauthorized, not a missing resource.
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.Unauthorized("Unknown session subject")
		}
		return nil, err
	}

	user.LastSignedIn = signedInAt
	return user, nil
}

// PromoteToAdmin is the explicit administrative role change used by
// operational tooling. It provisions the record first when absent so a
// dealership can be bootstrapped before its owner's first login.
func (service *Service) PromoteToAdmin(ctx context.Context, uid string) error {
	if err := service.users.Create(ctx, &User{ID: uid}); err != nil {
		return err
	}
	if err := service.users.UpdateRole(ctx, uid, sec.RoleAdmin); err != nil {
		return err
	}

	service.logger.Warn("user_promoted_to_admin", slog.String("user_id", uid))
	return nil
}
