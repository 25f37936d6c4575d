package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/lib/sl"
	repo "entrepreneur-tracker/internal/repository"
	"entrepreneur-tracker/internal/service"
	"entrepreneur-tracker/internal/service/auth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=authService --structname=AuthService --output=../mocks --outpkg=mocks
type authService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
}

type AuthHandler struct {
	log     *slog.Logger
	service authService
}

func NewAuthHandler(log *slog.Logger, s authService) *AuthHandler {
	return &AuthHandler{
		log:     log,
		service: s,
	}
}

type RegisterRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Surname  string  `json:"surname"  validate:"required"`
	IDNumber string  `json:"idNumber" validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" validate:"required"`
	Hub      *string `json:"hub"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input RegisterRequest

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

	resp, err := h.service.Register(ctx, auth.RegisterInput{
		Name:     input.Name,
		Surname:  input.Surname,
		IDNumber: input.IDNumber,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
		Hub:      input.Hub,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUserExists) {
			log.Info("registration conflict", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeUserExists, err.Error()))
			return
		}
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("user registered", slog.Int64("user_id", resp.User.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input LoginRequest

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

	resp, err := h.service.Login(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Info("login rejected")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, api.Error(api.ErrCodeInvalidCreds, err.Error()))
			return
		}
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("user logged in", slog.Int64("user_id", resp.User.ID))
	render.JSON(w, r, resp)
}
