package auth

import (
	"context"
	"errors"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/lib/jwt"
	"entrepreneur-tracker/internal/lib/password"
	"entrepreneur-tracker/internal/models"
	repo "entrepreneur-tracker/internal/repository"
	"entrepreneur-tracker/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrIDNumber(ctx context.Context, email, idNumber string) (bool, error)
}

type AuthService struct {
	trm    service.TransactionManager
	users  UserProvider
	tokens jwt.Maker
}

func NewAuthService(trm service.TransactionManager, users UserProvider, tokens jwt.Maker) *AuthService {
	return &AuthService{
		trm:    trm,
		users:  users,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Name     string
	Surname  string
	IDNumber string
	Email    string
	Phone    *string
	Password string
	Hub      *string
}

// Register creates an entrepreneur account and issues its first token. The
// role is fixed server-side; nobody registers as admin.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*api.AuthResponse, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Surname:      in.Surname,
		IDNumber:     in.IDNumber,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Hub:          in.Hub,
		Role:         models.RoleEntrepreneur,
		Status:       models.StatusActive,
	}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		exists, err := s.users.ExistsByEmailOrIDNumber(ctx, in.Email, in.IDNumber)
		if err != nil {
			return err
		}
		if exists {
			return repo.ErrUserExists
		}

		userID, err := s.users.Create(ctx, user)
		if err != nil {
			return err
		}
		user.ID = userID

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &api.AuthResponse{
		Token: token,
		User:  publicUser(user),
	}, nil
}

// Login answers with the same error for an unknown email and a wrong
// password. A deactivated account carries a sentinel hash that never
// compares, so it falls into the same branch.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*api.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, service.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &api.AuthResponse{
		Token: token,
		User:  publicUser(user),
	}, nil
}

func publicUser(u *models.User) api.UserSchema {
	return api.UserSchema{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Phone:   u.Phone,
		Hub:     u.Hub,
		Role:    u.Role,
	}
}
