// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: session cookie name and token validity.

Using this package ensures magic strings and magic numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "garagem-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Uploads arrive as base64 JSON bodies, so this is more generous than usual.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Session

const (
	// SessionCookieName is the fixed name of the session cookie. An absent
	// cookie means "not logged in", never an error.
	SessionCookieName = "garagem_session"

	// SessionTokenTTL is the validity window of a minted session token.
	// There is no refresh or revocation mechanism: a token stays valid
	// until this window elapses, after which the browser re-logs-in.
	SessionTokenTTL = 365 * 24 * time.Hour
)

// # Uploads

const (
	// MaxUploadBodyBytes caps the JSON body of the base64 upload endpoint.
	MaxUploadBodyBytes = 50 << 20 // 50 MiB

	// UploadURLPrefix is the public path prefix under which stored objects
	// are retrievable.
	UploadURLPrefix = "/uploads/"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldSuccess = "success"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixDashboard = "dashboard:stats:"

	// DashboardCacheTTL bounds how stale the admin dashboard may be.
	DashboardCacheTTL = 60 * time.Second
)
