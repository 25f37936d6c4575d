package business

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
	"entrepreneur-tracker/internal/service"
	"entrepreneur-tracker/internal/service/business"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=businessService --structname=BusinessService --output=../mocks --outpkg=mocks
type businessService interface {
	Create(ctx context.Context, callerID int64, in business.CreateInput) (*api.BusinessSchema, error)
	ListForUser(ctx context.Context, callerID int64, callerRole string, targetUserID int64) ([]api.BusinessSchema, error)
	ListAll(ctx context.Context) ([]api.AdminBusinessRow, error)
}

type BusinessHandler struct {
	log     *slog.Logger
	service businessService
}

func NewBusinessHandler(log *slog.Logger, s businessService) *BusinessHandler {
	return &BusinessHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	Name               string  `json:"name"               validate:"required"`
	Type               *string `json:"type"`
	RegistrationNumber string  `json:"registrationNumber" validate:"required"`
	Location           *string `json:"location"`
	Industry           *string `json:"industry"`
	YearsOperating     *int    `json:"yearsOperating"`
	Description        *string `json:"description"`
	TurnoverRange      *string `json:"turnover_range"`
	LogoURL            *string `json:"logoUrl"`
}

func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.business.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()
	identity, _ := mw.IdentityFromContext(ctx)

	var input CreateRequest

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

	resp, err := h.service.Create(ctx, identity.UserID, business.CreateInput{
		Name:               input.Name,
		Type:               input.Type,
		RegistrationNumber: input.RegistrationNumber,
		Location:           input.Location,
		Industry:           input.Industry,
		YearsOperating:     input.YearsOperating,
		Description:        input.Description,
		TurnoverRange:      input.TurnoverRange,
		LogoURL:            input.LogoURL,
	})
	if err != nil {
		if errors.Is(err, repo.ErrBusinessExists) {
			log.Info("business conflict", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeBusinessExists, err.Error()))
			return
		}
		log.Error("failed to create business", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("business created", slog.Int64("business_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.BusinessResponse{Business: *resp})
}

func (h *BusinessHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.business.ListByUser"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()
	identity, _ := mw.IdentityFromContext(ctx)

	targetUserID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "userId must be an integer"))
		return
	}

	resp, err := h.service.ListForUser(ctx, identity.UserID, identity.Role, targetUserID)
	if err != nil {
		if errors.Is(err, service.ErrAccessDenied) {
			log.Info("businesses view denied", slog.Int64("target_user_id", targetUserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeAccessDenied, err.Error()))
			return
		}
		log.Error("failed to list businesses", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.BusinessesResponse{Businesses: resp})
}

func (h *BusinessHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.business.ListAll"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.ListAll(ctx)
	if err != nil {
		log.Error("failed to list businesses", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.AdminBusinessesResponse{Businesses: resp})
}
