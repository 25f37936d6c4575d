package business

import (
	"context"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/models"
	"entrepreneur-tracker/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=BusinessProvider
type BusinessProvider interface {
	Create(ctx context.Context, b *models.Business) (*models.Business, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Business, error)
	ListAllWithOwner(ctx context.Context) ([]*models.BusinessWithOwner, error)
}

type BusinessService struct {
	businesses BusinessProvider
}

func NewBusinessService(businesses BusinessProvider) *BusinessService {
	return &BusinessService{
		businesses: businesses,
	}
}

type CreateInput struct {
	Name               string
	Type               *string
	RegistrationNumber string
	Location           *string
	Industry           *string
	YearsOperating     *int
	Description        *string
	TurnoverRange      *string
	LogoURL            *string
}

// Create registers a business owned by the caller. Ownership is never taken
// from the request body.
func (s *BusinessService) Create(ctx context.Context, callerID int64, in CreateInput) (*api.BusinessSchema, error) {
	created, err := s.businesses.Create(ctx, &models.Business{
		UserID:             callerID,
		Name:               in.Name,
		Type:               in.Type,
		RegistrationNumber: in.RegistrationNumber,
		Location:           in.Location,
		Industry:           in.Industry,
		YearsOperating:     in.YearsOperating,
		Description:        in.Description,
		TurnoverRange:      in.TurnoverRange,
		LogoURL:            in.LogoURL,
	})
	if err != nil {
		return nil, err
	}

	schema := Schema(created)
	return &schema, nil
}

// ListForUser enforces the view rule: a caller sees their own businesses, an
// admin sees anyone's.
func (s *BusinessService) ListForUser(ctx context.Context, callerID int64, callerRole string, targetUserID int64) ([]api.BusinessSchema, error) {
	if callerID != targetUserID && callerRole != models.RoleAdmin {
		return nil, service.ErrAccessDenied
	}

	businesses, err := s.businesses.ListByUser(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.BusinessSchema, 0, len(businesses))
	for _, b := range businesses {
		resp = append(resp, Schema(b))
	}
	return resp, nil
}

func (s *BusinessService) ListAll(ctx context.Context) ([]api.AdminBusinessRow, error) {
	businesses, err := s.businesses.ListAllWithOwner(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]api.AdminBusinessRow, 0, len(businesses))
	for _, b := range businesses {
		resp = append(resp, api.AdminBusinessRow{
			ID:                 b.ID,
			Name:               b.Name,
			RegistrationNumber: b.RegistrationNumber,
			OwnerName:          b.OwnerName,
			OwnerSurname:       b.OwnerSurname,
			OwnerEmail:         b.OwnerEmail,
		})
	}
	return resp, nil
}

// Schema converts a stored business into its response shape.
func Schema(b *models.Business) api.BusinessSchema {
	return api.BusinessSchema{
		ID:                 b.ID,
		UserID:             b.UserID,
		Name:               b.Name,
		Type:               b.Type,
		RegistrationNumber: b.RegistrationNumber,
		Location:           b.Location,
		Industry:           b.Industry,
		YearsOperating:     b.YearsOperating,
		Description:        b.Description,
		TurnoverRange:      b.TurnoverRange,
		LogoURL:            b.LogoURL,
		CreatedAt:          b.CreatedAt,
	}
}
