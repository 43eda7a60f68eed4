// Copyright (c) 2026 Garagem. All rights reserved.

package identity

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// securetokenCertsURL publishes the X.509 certificates Google rotates for
// signing Firebase Auth ID tokens, keyed by `kid`.
const securetokenCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// defaultCertTTL is the cache window used when the certificate response
// carries no usable max-age directive.
const defaultCertTTL = 1 * time.Hour

// idTokenClaims is the subset of the provider ID token payload we consume.
type idTokenClaims struct {
	jwt.RegisteredClaims

	Name  string `json:"name"`
	Email string `json:"email"`
}

// GoogleVerifier validates Firebase Auth (Google securetoken) ID tokens.
//
// Tokens are RS256 JWTs signed with rotating keys. The verifier fetches the
// published certificates over HTTPS, caches them until the response's
// max-age elapses, and refreshes eagerly when it meets an unknown key id.
//
// # Concurrency
//
// Safe for concurrent use; the certificate cache is mutex-guarded and the
// verification itself is local CPU work.
type GoogleVerifier struct {
	projectID  string
	httpClient *http.Client
	certsURL   string

	mu          sync.Mutex
	keys        map[string]*rsa.PublicKey
	keysExpires time.Time
}

var _ Verifier = (*GoogleVerifier)(nil)

// NewGoogleVerifier creates a verifier bound to one provider project.
//
// The project ID doubles as the expected token audience and the suffix of
// the expected issuer.
func NewGoogleVerifier(projectID string) (*GoogleVerifier, error) {
	if projectID == "" {
		return nil, fmt.Errorf("identity: project id is required")
	}
	return &GoogleVerifier{
		projectID:  projectID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		certsURL:   securetokenCertsURL,
	}, nil
}

// VerifyIDToken implements [Verifier].
func (v *GoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidCredential)
	}

	claims := &idTokenClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("identity: unexpected signing method: %v", token.Header["alg"])
		}

		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("identity: token has no key id")
		}

		return v.publicKey(ctx, kid)
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidCredential)
	}

	return &Identity{
		Subject: claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
	}, nil
}

// publicKey returns the RSA key for kid, refreshing the cache when the
// cached set is stale or does not contain the key.
func (v *GoogleVerifier) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if key, ok := v.keys[kid]; ok && time.Now().Before(v.keysExpires) {
		return key, nil
	}

	if err := v.refreshKeysLocked(ctx); err != nil {
		return nil, err
	}

	key, ok := v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("identity: unknown signing key %q", kid)
	}
	return key, nil
}

// refreshKeysLocked fetches and parses the current certificate set.
// Callers must hold v.mu.
func (v *GoogleVerifier) refreshKeysLocked(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return fmt.Errorf("identity: build certs request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: fetch certs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity: certs endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("identity: read certs response: %w", err)
	}

	var certs map[string]string
	if err := json.Unmarshal(body, &certs); err != nil {
		return fmt.Errorf("identity: decode certs response: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, certPEM := range certs {
		key, err := parseRSAPublicKeyFromCert(certPEM)
		if err != nil {
			return fmt.Errorf("identity: parse cert %q: %w", kid, err)
		}
		keys[kid] = key
	}

	v.keys = keys
	v.keysExpires = time.Now().Add(certCacheTTL(resp.Header.Get("Cache-Control")))
	return nil
}

// parseRSAPublicKeyFromCert extracts the RSA public key from a PEM-encoded
// X.509 certificate.
func parseRSAPublicKeyFromCert(certPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(certPEM))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, err
	}

	key, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("certificate does not carry an RSA key")
	}
	return key, nil
}

// certCacheTTL derives a cache window from a Cache-Control header,
// falling back to [defaultCertTTL].
func certCacheTTL(cacheControl string) time.Duration {
	for _, directive := range strings.Split(cacheControl, ",") {
		directive = strings.TrimSpace(directive)
		if value, ok := strings.CutPrefix(directive, "max-age="); ok {
			if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
				return time.Duration(seconds) * time.Second
			}
		}
	}
	return defaultCertTTL
}
