package bootcamp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/lib/sl"
	repo "entrepreneur-tracker/internal/repository"
	"entrepreneur-tracker/internal/service/bootcamp"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=bootcampService --structname=BootcampService --output=../mocks --outpkg=mocks
type bootcampService interface {
	Assign(ctx context.Context, in bootcamp.AssignInput) (*api.AssignmentSchema, bool, error)
	Cohorts(ctx context.Context, f repo.CohortFilter) ([]api.CohortRowSchema, error)
}

type BootcampHandler struct {
	log     *slog.Logger
	service bootcampService
}

func NewBootcampHandler(log *slog.Logger, s bootcampService) *BootcampHandler {
	return &BootcampHandler{
		log:     log,
		service: s,
	}
}

type AssignRequest struct {
	UserID         int64   `json:"userId"         validate:"required"`
	Cohort         string  `json:"cohort"         validate:"required"`
	CohortYear     *int    `json:"cohortYear"`
	Attendance     *int    `json:"attendance"     validate:"omitempty,min=0"`
	TotalSessions  *int    `json:"totalSessions"  validate:"omitempty,min=0"`
	BootcampStatus *string `json:"bootcampStatus"`
}

func (h *BootcampHandler) Assign(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bootcamp.Assign"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input AssignRequest

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

	resp, created, err := h.service.Assign(ctx, bootcamp.AssignInput{
		UserID:         input.UserID,
		Cohort:         input.Cohort,
		CohortYear:     input.CohortYear,
		Attendance:     input.Attendance,
		TotalSessions:  input.TotalSessions,
		BootcampStatus: input.BootcampStatus,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", slog.Int64("user_id", input.UserID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("failed to assign bootcamp", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	if created {
		log.Info("bootcamp assigned", slog.Int64("user_id", input.UserID))
		render.Status(r, http.StatusCreated)
	} else {
		log.Info("bootcamp assignment updated", slog.Int64("user_id", input.UserID))
	}
	render.JSON(w, r, api.AssignmentResponse{Assignment: *resp})
}

func (h *BootcampHandler) Cohorts(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bootcamp.Cohorts"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var filter repo.CohortFilter
	if v := r.URL.Query().Get("cohortYear"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "cohortYear must be an integer"))
			return
		}
		filter.CohortYear = &year
	}
	if v := r.URL.Query().Get("hub"); v != "" {
		filter.Hub = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	resp, err := h.service.Cohorts(ctx, filter)
	if err != nil {
		log.Error("failed to list cohorts", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.CohortsResponse{Assignments: resp})
}
