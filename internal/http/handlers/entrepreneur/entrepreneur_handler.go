package entrepreneur

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"entrepreneur-tracker/internal/http/api"
	mw "entrepreneur-tracker/internal/http/middleware"
	"entrepreneur-tracker/internal/lib/sl"
	repo "entrepreneur-tracker/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=entrepreneurService --structname=EntrepreneurService --output=../mocks --outpkg=mocks
type entrepreneurService interface {
	List(ctx context.Context, f repo.EntrepreneurFilter) ([]api.EntrepreneurSchema, error)
	Update(ctx context.Context, userID int64, u repo.EntrepreneurUpdate) (*api.EntrepreneurProfile, error)
	Deactivate(ctx context.Context, userID int64) error
	Dashboard(ctx context.Context, callerID int64) (*api.DashboardResponse, error)
}

type EntrepreneurHandler struct {
	log     *slog.Logger
	service entrepreneurService
}

func NewEntrepreneurHandler(log *slog.Logger, s entrepreneurService) *EntrepreneurHandler {
	return &EntrepreneurHandler{
		log:     log,
		service: s,
	}
}

type UpdateRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Email   *string `json:"email"  validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Hub     *string `json:"hub"`
	Status  *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// List is the admin directory: optional substring search over
// name/surname/email plus exact hub and status filters.
func (h *EntrepreneurHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entrepreneur.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var filter repo.EntrepreneurFilter
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}
	if v := r.URL.Query().Get("hub"); v != "" {
		filter.Hub = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	resp, err := h.service.List(ctx, filter)
	if err != nil {
		log.Error("failed to list entrepreneurs", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.EntrepreneursResponse{Entrepreneurs: resp})
}

func (h *EntrepreneurHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entrepreneur.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "userId must be an integer"))
		return
	}

	var input UpdateRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Update(ctx, userID, repo.EntrepreneurUpdate{
		Name:    input.Name,
		Surname: input.Surname,
		Email:   input.Email,
		Phone:   input.Phone,
		Hub:     input.Hub,
		Status:  input.Status,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("entrepreneur not found", slog.Int64("user_id", userID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("failed to update entrepreneur", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("entrepreneur updated", slog.Int64("user_id", userID))
	render.JSON(w, r, api.UpdatedEntrepreneurResponse{User: *resp})
}

// Deactivate is the admin "delete": the account row stays, its credential is
// invalidated.
func (h *EntrepreneurHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entrepreneur.Deactivate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "userId must be an integer"))
		return
	}

	if err := h.service.Deactivate(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("entrepreneur not found", slog.Int64("user_id", userID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("failed to deactivate entrepreneur", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("entrepreneur deactivated", slog.Int64("user_id", userID))
	render.JSON(w, r, map[string]string{"message": "entrepreneur deactivated"})
}

// Dashboard always answers for the verified caller, never for an id from
// the request.
func (h *EntrepreneurHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entrepreneur.Dashboard"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()
	identity, _ := mw.IdentityFromContext(ctx)

	resp, err := h.service.Dashboard(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", slog.Int64("user_id", identity.UserID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("failed to build dashboard", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
