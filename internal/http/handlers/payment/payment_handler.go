package payment

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
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=paymentService --structname=PaymentService --output=../mocks --outpkg=mocks
type paymentService interface {
	CreateForOwner(ctx context.Context, callerID, businessID int64, month, year int) (*api.PaymentSchema, error)
	CreateByAdmin(ctx context.Context, businessID int64, month, year int, status, notes *string) (*api.PaymentSchema, error)
	Update(ctx context.Context, paymentID int64, status string, notes *string) (*api.PaymentSchema, error)
	ListAll(ctx context.Context) ([]api.AdminPaymentRow, error)
}

type PaymentHandler struct {
	log     *slog.Logger
	service paymentService
}

func NewPaymentHandler(log *slog.Logger, s paymentService) *PaymentHandler {
	return &PaymentHandler{
		log:     log,
		service: s,
	}
}

type CreateOwnRequest struct {
	BusinessID int64 `json:"businessId" validate:"required"`
	Month      int   `json:"month"      validate:"required,min=1,max=12"`
	Year       int   `json:"year"       validate:"required"`
}

type AdminCreateRequest struct {
	BusinessID int64   `json:"businessId" validate:"required"`
	Month      int     `json:"month"      validate:"required,min=1,max=12"`
	Year       int     `json:"year"       validate:"required"`
	Status     *string `json:"status"     validate:"omitempty,oneof=paid unpaid pending overdue"`
	Notes      *string `json:"notes"`
}

type UpdateRequest struct {
	Status string  `json:"status" validate:"required,oneof=paid unpaid pending"`
	Notes  *string `json:"notes"`
}

// CreateOwn records a payment for one of the caller's own businesses.
func (h *PaymentHandler) CreateOwn(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.CreateOwn"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()
	identity, _ := mw.IdentityFromContext(ctx)

	var input CreateOwnRequest

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

	resp, err := h.service.CreateForOwner(ctx, identity.UserID, input.BusinessID, input.Month, input.Year)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			log.Info("business not found", slog.Int64("business_id", input.BusinessID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		case errors.Is(err, service.ErrAccessDenied):
			log.Info("payment creation denied", slog.Int64("business_id", input.BusinessID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeAccessDenied, "access denied to this business"))
		case errors.Is(err, repo.ErrPaymentExists):
			log.Info("payment conflict", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodePaymentExists, err.Error()))
		default:
			log.Error("failed to create payment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("payment created", slog.Int64("payment_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.PaymentResponse{Payment: *resp})
}

// Create is the admin-side creation: any business, optional explicit status.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input AdminCreateRequest

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

	resp, err := h.service.CreateByAdmin(ctx, input.BusinessID, input.Month, input.Year, input.Status, input.Notes)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			log.Info("business not found", slog.Int64("business_id", input.BusinessID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		case errors.Is(err, repo.ErrPaymentExists):
			log.Info("payment conflict", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodePaymentExists, err.Error()))
		default:
			log.Error("failed to create payment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("payment created", slog.Int64("payment_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.PaymentResponse{Payment: *resp})
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	paymentID, err := strconv.ParseInt(chi.URLParam(r, "paymentID"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "paymentId must be an integer"))
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

	resp, err := h.service.Update(ctx, paymentID, input.Status, input.Notes)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("payment not found", slog.Int64("payment_id", paymentID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("failed to update payment", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("payment updated", slog.Int64("payment_id", resp.ID))
	render.JSON(w, r, api.PaymentResponse{Payment: *resp})
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.ListAll(ctx)
	if err != nil {
		log.Error("failed to list payments", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.AdminPaymentsResponse{Payments: resp})
}
