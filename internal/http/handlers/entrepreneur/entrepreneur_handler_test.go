package entrepreneur

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/http/handlers"
	"entrepreneur-tracker/internal/http/handlers/mocks"
	mw "entrepreneur-tracker/internal/http/middleware"
	"entrepreneur-tracker/internal/models"
	repo "entrepreneur-tracker/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestList_Success(t *testing.T) {
	search := "jane"
	hub := "Soweto"

	svc := mocks.NewEntrepreneurService(t)
	svc.On("List", mock.Anything, repo.EntrepreneurFilter{Search: &search, Hub: &hub}).
		Return([]api.EntrepreneurSchema{
			{ID: 7, Name: "Jane", Surname: "Doe", Email: "jane@example.com", Status: models.StatusActive, BusinessCount: 2},
		}, nil)

	h := NewEntrepreneurHandler(handlers.NewLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/entrepreneurs?search=jane&hub=Soweto", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.EntrepreneursResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Entrepreneurs, 1)
	assert.Equal(t, 2, resp.Entrepreneurs[0].BusinessCount)
}

func TestList_NoFilters(t *testing.T) {
	svc := mocks.NewEntrepreneurService(t)
	svc.On("List", mock.Anything, repo.EntrepreneurFilter{}).Return([]api.EntrepreneurSchema{}, nil)

	h := NewEntrepreneurHandler(handlers.NewLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/entrepreneurs", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestList_InternalError(t *testing.T) {
	svc := mocks.NewEntrepreneurService(t)
	svc.On("List", mock.Anything, repo.EntrepreneurFilter{}).Return(nil, assert.AnError)

	h := NewEntrepreneurHandler(handlers.NewLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/entrepreneurs", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := handlers.DecodeErrorResponse(t, rec.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

func userRequest(method, userParam, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/api/admin/entrepreneurs/"+userParam, bytes.NewBufferString(body))
	} else {
		req = httptest.NewRequest(method, "/api/admin/entrepreneurs/"+userParam, nil)
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userID", userParam)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdate_Success(t *testing.T) {
	hub := "Tembisa"

	svc := mocks.NewEntrepreneurService(t)
	svc.On("Update", mock.Anything, int64(7), repo.EntrepreneurUpdate{Hub: &hub}).
		Return(&api.EntrepreneurProfile{ID: 7, Name: "Jane", Surname: "Doe", Email: "jane@example.com", Hub: &hub, Status: models.StatusActive}, nil)

	h := NewEntrepreneurHandler(handlers.NewLogger(), svc)

	rec := httptest.NewRecorder()
	h.Update(rec, userRequest(http.MethodPut, "7", `{"hub":"Tembisa"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.UpdatedEntrepreneurResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.User.Hub)
	assert.Equal(t, "Tembisa", *resp.User.Hub)
}

func TestUpdate_BadParam(t *testing.T) {
	h := NewEntrepreneurHandler(handlers.NewLogger(), mocks.NewEntrepreneurService(t))

	rec := httptest.NewRecorder()
	h.Update(rec, userRequest(http.MethodPut, "abc", `{"hub":"Tembisa"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := handlers.DecodeErrorResponse(t, rec.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	h := NewEntrepreneurHandler(handlers.NewLogger(), mocks.NewEntrepreneurService(t))

	rec := httptest.NewRecorder()
	h.Update(rec, userRequest(http.MethodPut, "7", `{"status":"suspended"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := handlers.DecodeErrorResponse(t, rec.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := mocks.NewEntrepreneurService(t)
	svc.On("Update", mock.Anything, int64(404), repo.EntrepreneurUpdate{}).Return(nil, repo.ErrNotFound)

	h := NewEntrepreneurHandler(handlers.NewLogger(), svc)

	rec := httptest.NewRecorder()
	h.Update(rec, userRequest(http.MethodPut, "404", `{}`))

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := handlers.DecodeErrorResponse(t, rec.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestDeactivate_Success(t *testing.T) {
	svc := mocks.NewEntrepreneurService(t)
	svc.On("Deactivate", mock.Anything, int64(7)).Return(nil)

	h := NewEntrepreneurHandler(handlers.NewLogger(), svc)

	rec := httptest.NewRecorder()
	h.Deactivate(rec, userRequest(http.MethodDelete, "7", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "entrepreneur deactivated", resp["message"])
}

func TestDeactivate_NotFound(t *testing.T) {
	svc := mocks.NewEntrepreneurService(t)
	svc.On("Deactivate", mock.Anything, int64(404)).Return(repo.ErrNotFound)

	h := NewEntrepreneurHandler(handlers.NewLogger(), svc)

	rec := httptest.NewRecorder()
	h.Deactivate(rec, userRequest(http.MethodDelete, "404", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := handlers.DecodeErrorResponse(t, rec.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestDashboard_Success(t *testing.T) {
	svc := mocks.NewEntrepreneurService(t)
	svc.On("Dashboard", mock.Anything, int64(7)).Return(&api.DashboardResponse{
		User:       api.UserSchema{ID: 7, Name: "Jane", Role: models.RoleEntrepreneur},
		Businesses: []api.BusinessSchema{{ID: 3, UserID: 7, Name: "Sew & Co"}},
		Payments:   []api.DashboardPayment{},
	}, nil)

	h := NewEntrepreneurHandler(handlers.NewLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/entrepreneur/dashboard", nil)
	req = req.WithContext(mw.ContextWithIdentity(req.Context(), mw.Identity{UserID: 7, Role: models.RoleEntrepreneur}))
	rec := httptest.NewRecorder()

	h.Dashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.DashboardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.User.ID)
	require.Len(t, resp.Businesses, 1)
	assert.Nil(t, resp.Bootcamp)
}

func TestDashboard_UserNotFound(t *testing.T) {
	svc := mocks.NewEntrepreneurService(t)
	svc.On("Dashboard", mock.Anything, int64(7)).Return(nil, repo.ErrNotFound)

	h := NewEntrepreneurHandler(handlers.NewLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/entrepreneur/dashboard", nil)
	req = req.WithContext(mw.ContextWithIdentity(req.Context(), mw.Identity{UserID: 7}))
	rec := httptest.NewRecorder()

	h.Dashboard(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := handlers.DecodeErrorResponse(t, rec.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}
