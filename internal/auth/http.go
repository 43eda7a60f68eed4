// Copyright (c) 2026 Garagem. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pvieira/garagem/internal/platform/constants"
	requestutil "github.com/pvieira/garagem/internal/platform/request"
	"github.com/pvieira/garagem/internal/platform/respond"
	"github.com/pvieira/garagem/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the authentication HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with the authentication routes.
//
// # Endpoints
//   - POST /login  : Exchanges a provider ID token for a session cookie.
//   - POST /logout : Clears the session cookie.
//   - GET  /me     : Returns the current user, or null when anonymous.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/me", handler.me)

	return router
}

// # Request Payloads

type loginRequest struct {
	IDToken string `json:"idToken"`
}

/*
Login exchanges a provider credential for a session cookie.

POST /api/auth/login

Description: Verifies the ID token against the identity provider, provisions
or refreshes the local user record, and sets the session cookie.

Request:
  - Body: loginRequest (IDToken)

Response:
  - 200: Success flag and the signed-in user profile
  - 400: ErrInvalidJSON: Missing or malformed ID token
  - 401: ErrUnauthorized: Provider rejected the credential
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldIDToken, input.IDToken)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), input.IDToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, NewSessionCookie(request, result.Token, int(constants.SessionTokenTTL.Seconds())))

	respond.OK(writer, map[string]any{
		FieldSuccess: true,
		FieldUser:    result.User,
	})
}

/*
Logout terminates the current session on the client.

POST /api/auth/logout

Description: Expires the session cookie. Tokens are stateless and are not
revoked server-side; the token simply stops being presented.

Response:
  - 200: Success flag
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, ClearSessionCookie(request))

	respond.OK(writer, map[string]any{
		FieldSuccess: true,
	})
}

/*
Me returns the authenticated user attached to the request, if any.

GET /api/auth/me

Description: Resolves the session injected by the middleware chain. Anonymous
callers receive a null user rather than an error, so storefront clients can
probe their state without triggering a login redirect.

Response:
  - 200: The current user profile, or null when anonymous
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	user := FromContext(request.Context())
	if user == nil {
		respond.OK(writer, map[string]any{FieldUser: nil})
		return
	}

	respond.OK(writer, map[string]any{FieldUser: user})
}
