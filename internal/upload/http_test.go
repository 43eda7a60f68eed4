// Copyright (c) 2026 Garagem. All rights reserved.

package upload_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvieira/garagem/internal/auth"
	"github.com/pvieira/garagem/internal/platform/constants"
	"github.com/pvieira/garagem/internal/platform/sec"
	"github.com/pvieira/garagem/internal/upload"
)

// newAdminRequest builds an upload POST carrying an admin session, the way
// the middleware chain hands it to the route.
func newAdminRequest(body string) *http.Request {
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	ctx := auth.NewContext(request.Context(), &auth.User{ID: "uid-admin", Name: "Rui", Role: sec.RoleAdmin})
	return request.WithContext(ctx)
}

func uploadRouter(t *testing.T, api *fakeAPI) chi.Router {
	t.Helper()

	handler := upload.NewHandler(newService(t, api))
	router := chi.NewRouter()
	handler.RegisterUploadRoute(router)
	return router
}

/* TestStoreUpload_HTTP verifies the admin endpoint end to end: a JSON body
with key and base64 payload answers with the stored key and public URL. */
func TestStoreUpload_HTTP(t *testing.T) {
	api := newFakeAPI()
	router := uploadRouter(t, api)

	body := fmt.Sprintf(`{"key":"cars/clio/front.jpg","dataBase64":%q,"contentType":"image/jpeg"}`,
		base64.StdEncoding.EncodeToString([]byte("front view")))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newAdminRequest(body))

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			Success bool   `json:"success"`
			Key     string `json:"key"`
			URL     string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Success)
	assert.Equal(t, "cars/clio/front.jpg", envelope.Data.Key)
	assert.Equal(t, "https://api.garagem.pt/uploads/cars/clio/front.jpg", envelope.Data.URL)
}

/* TestStoreUpload_RejectsOversizedBody verifies the request-body cap: a JSON
payload past the limit is cut off mid-read and rejected as invalid input
rather than decoded whole. */
func TestStoreUpload_RejectsOversizedBody(t *testing.T) {
	api := newFakeAPI()
	router := uploadRouter(t, api)

	// A single field large enough to blow past the cap on its own.
	oversized := fmt.Sprintf(`{"key":"cars/huge.bin","dataBase64":"%s"}`,
		strings.Repeat("A", constants.MaxUploadBodyBytes+1))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newAdminRequest(oversized))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, api.objects)
}
