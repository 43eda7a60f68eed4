// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package identity verifies ID tokens minted by the external identity provider.

Credential verification (passwords, OAuth, MFA) is fully delegated to the
provider: the platform only ever sees short-lived ID tokens, verifies them,
and exchanges them for its own session cookie. The provider is consumed
through the narrow [Verifier] interface so tests can substitute a fake.
*/
package identity

import (
	"context"
	"errors"
)

// Identity is the verified result of a provider ID token.
type Identity struct {
	// Subject is the provider's stable user identifier.
	Subject string
	// Name is the display name, when the provider supplies one.
	Name string
	// Email is the account email, when the provider supplies one.
	Email string
}

// DisplayName returns the best human-readable label for the identity:
// the name when present, otherwise the email.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}

// ErrInvalidCredential is returned when an ID token fails verification for
// any reason: bad signature, wrong audience, expiry, malformed payload.
var ErrInvalidCredential = errors.New("identity: invalid credential")

// Verifier validates a provider-issued ID token.
type Verifier interface {
	// VerifyIDToken checks the token's signature and claims against the
	// provider's published keys. Returns [ErrInvalidCredential] (wrapped)
	// on any verification failure.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
