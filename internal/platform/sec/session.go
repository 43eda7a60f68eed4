// Copyright (c) 2026 Garagem. All rights reserved.

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (token signing and
// verification) from the domain logic. It acts as an Infrastructure service
// injected into the Application layer via small interfaces.
//
// # Limitation
//
// Session tokens have no refresh, rotation, or revocation mechanism. A minted
// token is valid until its expiry passes. This is accepted behavior: the
// validity window is the only control, and the browser re-authenticates by
// logging in again.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the payload embedded inside a session token.
//
// The claims carry just enough identity to locate the user record; the
// authoritative role is always read fresh from the store on every request,
// never from the token.
type SessionClaims struct {
	jwt.RegisteredClaims

	// UID is the identity provider's subject identifier.
	UID string `json:"uid"`
	// App is the tenant/application identifier. Absent values normalize to "".
	App string `json:"app"`
	// Name is the display name captured at login time.
	Name string `json:"name"`
}

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, wrong algorithm, past expiry, or missing required claims.
var ErrInvalidToken = errors.New("sec: invalid session token")

// Codec issues and verifies HS256-signed session tokens.
//
// The signing secret is process-wide, loaded once at startup and never
// rotated while the process runs.
type Codec struct {
	secret []byte
	appID  string
	now    func() time.Time
}

// NewCodec creates a session token codec.
//
// # Parameters
//   - secret: the symmetric HS256 signing key. Must be non-empty.
//   - appID: the tenant identifier stamped into every issued token.
func NewCodec(secret, appID string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("sec: session secret must not be empty")
	}
	return &Codec{
		secret: []byte(secret),
		appID:  appID,
		now:    time.Now,
	}, nil
}

// Issue mints a signed session token for the given subject.
//
// # Parameters
//   - subject: the identity provider's subject id. Required.
//   - name: the display name embedded in the token.
//   - validity: how long the token stays valid. Zero means the caller wants
//     the default window; negative values produce an already-expired token
//     (useful in tests).
func (c *Codec) Issue(subject, name string, validity time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("sec: subject is required")
	}
	if validity == 0 {
		validity = DefaultSessionValidity
	}

	issuedAt := c.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(validity)),
		},
		UID:  subject,
		App:  c.appID,
		Name: name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// DefaultSessionValidity is the validity window applied when the issuer does
// not override it: one year.
const DefaultSessionValidity = 365 * 24 * time.Hour

// Verify checks the signature and validity of a session token string.
//
// # Failure Modes
//
// Returns [ErrInvalidToken] (wrapped) when the signature does not match, the
// signing algorithm isn't HS256, the expiry has passed, or the required uid
// or name claims are missing or empty. It never panics past this boundary.
func (c *Codec) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Tokens written by older SDKs omit the registered subject; the uid
	// custom claim is the canonical field.
	if claims.UID == "" || claims.Name == "" {
		return nil, fmt.Errorf("%w: missing required claims", ErrInvalidToken)
	}

	// App is optional-empty-string-tolerant: nothing to normalize beyond the
	// zero value the decoder already produced.
	return claims, nil
}
