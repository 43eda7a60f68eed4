// Copyright (c) 2026 Garagem. All rights reserved.

package auth

import (
	"net/http"
	"strings"

	"github.com/pvieira/garagem/internal/platform/constants"
)

// requestIsSecure reports whether the request arrived over TLS, directly or
// via a terminating proxy.
func requestIsSecure(request *http.Request) bool {
	if request.TLS != nil {
		return true
	}
	return strings.EqualFold(request.Header.Get("X-Forwarded-Proto"), "https")
}

// NewSessionCookie builds the session cookie for a freshly minted token.
//
// Cross-site storefront deployments need SameSite=None, which browsers only
// accept together with Secure; plain-HTTP development falls back to Lax.
func NewSessionCookie(request *http.Request, token string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if requestIsSecure(request) {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}

// ClearSessionCookie builds the expired twin of [NewSessionCookie] so the
// browser drops the session immediately.
func ClearSessionCookie(request *http.Request) *http.Cookie {
	cookie := NewSessionCookie(request, "", -1)
	return cookie
}
