package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/lib/jwt"
	"entrepreneur-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Hour)
	token, err := maker.GenerateToken(7, "jane@example.com", models.RoleEntrepreneur)
	require.NoError(t, err)

	var got Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entrepreneur/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(maker)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, models.RoleEntrepreneur, got.Role)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entrepreneur/dashboard", nil)
	rec := httptest.NewRecorder()

	AuthMiddleware(maker)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, api.ErrCodeUnauthorized, resp.Error.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entrepreneur/dashboard", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	AuthMiddleware(maker)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, api.ErrCodeInvalidToken, resp.Error.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := jwt.NewMaker("test-secret", -time.Minute)
	token, err := expired.GenerateToken(7, "jane@example.com", models.RoleEntrepreneur)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entrepreneur/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(jwt.NewMaker("test-secret", time.Hour))(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, api.ErrCodeInvalidToken, resp.Error.Code)
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reports", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), Identity{UserID: 1, Role: models.RoleAdmin}))
	rec := httptest.NewRecorder()

	AdminOnly(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAdminOnly_RejectsEntrepreneur(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reports", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), Identity{UserID: 7, Role: models.RoleEntrepreneur}))
	rec := httptest.NewRecorder()

	AdminOnly(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, api.ErrCodeAccessDenied, resp.Error.Code)
}

func TestAdminOnly_RejectsMissingIdentity(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reports", nil)
	rec := httptest.NewRecorder()

	AdminOnly(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}
