// Copyright (c) 2026 Garagem. All rights reserved.

package auth_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pvieira/garagem/internal/auth"
	"github.com/pvieira/garagem/internal/platform/constants"
)

/* TestNewSessionCookie_PlainHTTP verifies the development posture: over plain
HTTP the cookie is HttpOnly and SameSite=Lax but not Secure. */
func TestNewSessionCookie_PlainHTTP(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "http://localhost:8080/api/auth/login", nil)

	cookie := auth.NewSessionCookie(request, "session-token", 3600)

	assert.Equal(t, constants.SessionCookieName, cookie.Name)
	assert.Equal(t, "session-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

/* TestNewSessionCookie_DirectTLS verifies that a TLS connection upgrades the
cookie to Secure with SameSite=None for the cross-site storefront. */
func TestNewSessionCookie_DirectTLS(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "https://api.garagem.pt/api/auth/login", nil)
	request.TLS = &tls.ConnectionState{}

	cookie := auth.NewSessionCookie(request, "session-token", 3600)

	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

/* TestNewSessionCookie_BehindProxy verifies that X-Forwarded-Proto from a
TLS-terminating proxy is honored, case-insensitively. */
func TestNewSessionCookie_BehindProxy(t *testing.T) {
	tests := []struct {
		name   string
		proto  string
		secure bool
	}{
		{name: "https lowercase", proto: "https", secure: true},
		{name: "https mixed case", proto: "HTTPS", secure: true},
		{name: "plain http", proto: "http", secure: false},
		{name: "header absent", proto: "", secure: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "http://internal:8080/api/auth/login", nil)
			if tt.proto != "" {
				request.Header.Set("X-Forwarded-Proto", tt.proto)
			}

			cookie := auth.NewSessionCookie(request, "session-token", 3600)
			assert.Equal(t, tt.secure, cookie.Secure)
		})
	}
}

/* TestClearSessionCookie verifies that the logout cookie is the expired twin
of the login cookie: same name and path, empty value, negative max age. */
func TestClearSessionCookie(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "http://localhost:8080/api/auth/logout", nil)

	cookie := auth.ClearSessionCookie(request)

	assert.Equal(t, constants.SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}
