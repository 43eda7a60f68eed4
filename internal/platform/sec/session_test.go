// Copyright (c) 2026 Garagem. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvieira/garagem/internal/platform/sec"
)

/*
TestCodec_RoundTrip verifies that a minted token carries its claims back
through verification.
*/
func TestCodec_RoundTrip(t *testing.T) {
	codec, err := sec.NewCodec("test-secret", "garagem-api")
	require.NoError(t, err)

	token, err := codec.Issue("uid-123", "Paulo", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "uid-123", claims.UID)
	assert.Equal(t, "garagem-api", claims.App)
	assert.Equal(t, "Paulo", claims.Name)
}

/*
TestCodec_DistinctIssues verifies that two tokens minted for the same subject
differ byte-for-byte when their validity windows differ: the timestamp claims
make each issuance unique, so an old token can never be mistaken for a fresh
one.
*/
func TestCodec_DistinctIssues(t *testing.T) {
	codec, err := sec.NewCodec("test-secret", "garagem-api")
	require.NoError(t, err)

	first, err := codec.Issue("uid-123", "Paulo", time.Hour)
	require.NoError(t, err)
	second, err := codec.Issue("uid-123", "Paulo", 2*time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both remain independently verifiable with identical identity claims.
	firstClaims, err := codec.Verify(first)
	require.NoError(t, err)
	secondClaims, err := codec.Verify(second)
	require.NoError(t, err)
	assert.Equal(t, firstClaims.UID, secondClaims.UID)
}

/*
TestCodec_EmptySecret verifies that the codec refuses to start without a key.
*/
func TestCodec_EmptySecret(t *testing.T) {
	_, err := sec.NewCodec("", "garagem-api")
	assert.Error(t, err)
}

/*
TestCodec_EmptySubject verifies that tokens cannot be minted anonymously.
*/
func TestCodec_EmptySubject(t *testing.T) {
	codec, err := sec.NewCodec("test-secret", "garagem-api")
	require.NoError(t, err)

	_, err = codec.Issue("", "Paulo", time.Hour)
	assert.Error(t, err)
}

/*
TestCodec_ExpiredToken verifies that a negative validity mints a token that
fails verification.
*/
func TestCodec_ExpiredToken(t *testing.T) {
	codec, err := sec.NewCodec("test-secret", "garagem-api")
	require.NoError(t, err)

	token, err := codec.Issue("uid-123", "Paulo", -time.Hour)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestCodec_WrongSecret verifies that a token signed under another key is
rejected.
*/
func TestCodec_WrongSecret(t *testing.T) {
	issuer, err := sec.NewCodec("secret-a", "garagem-api")
	require.NoError(t, err)
	verifier, err := sec.NewCodec("secret-b", "garagem-api")
	require.NoError(t, err)

	token, err := issuer.Issue("uid-123", "Paulo", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestCodec_AlgorithmTampering verifies that unsigned tokens are rejected even
when their payload is well formed.
*/
func TestCodec_AlgorithmTampering(t *testing.T) {
	codec, err := sec.NewCodec("test-secret", "garagem-api")
	require.NoError(t, err)

	claims := &sec.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid-123",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UID:  "uid-123",
		App:  "garagem-api",
		Name: "Paulo",
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(tokenString)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestCodec_MissingClaims verifies that tokens without uid or name are rejected
despite a valid signature.
*/
func TestCodec_MissingClaims(t *testing.T) {
	secret := []byte("test-secret")
	codec, err := sec.NewCodec(string(secret), "garagem-api")
	require.NoError(t, err)

	claims := &sec.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		// UID and Name deliberately empty.
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = codec.Verify(tokenString)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestCodec_EmptyAppTolerated verifies that a token without an app claim still
verifies; the claim normalizes to the empty string.
*/
func TestCodec_EmptyAppTolerated(t *testing.T) {
	codec, err := sec.NewCodec("test-secret", "")
	require.NoError(t, err)

	token, err := codec.Issue("uid-123", "Paulo", time.Hour)
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Empty(t, claims.App)
}
