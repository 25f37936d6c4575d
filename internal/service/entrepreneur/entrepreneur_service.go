package entrepreneur

import (
	"context"
	"errors"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/models"
	repo "entrepreneur-tracker/internal/repository"
	"entrepreneur-tracker/internal/service"
	"entrepreneur-tracker/internal/service/business"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	ListEntrepreneurs(ctx context.Context, f repo.EntrepreneurFilter) ([]*models.EntrepreneurRow, error)
	UpdateEntrepreneur(ctx context.Context, userID int64, u repo.EntrepreneurUpdate) (*models.User, error)
	Deactivate(ctx context.Context, userID int64) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=BusinessLister
type BusinessLister interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Business, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentLister
type PaymentLister interface {
	ListByOwner(ctx context.Context, userID int64) ([]*models.PaymentWithBusiness, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AssignmentGetter
type AssignmentGetter interface {
	GetByUserID(ctx context.Context, userID int64) (*models.BootcampAssignment, error)
}

type EntrepreneurService struct {
	trm         service.TransactionManager
	users       UserProvider
	businesses  BusinessLister
	payments    PaymentLister
	assignments AssignmentGetter
}

func NewEntrepreneurService(
	trm service.TransactionManager,
	users UserProvider,
	businesses BusinessLister,
	payments PaymentLister,
	assignments AssignmentGetter,
) *EntrepreneurService {
	return &EntrepreneurService{
		trm:         trm,
		users:       users,
		businesses:  businesses,
		payments:    payments,
		assignments: assignments,
	}
}

func (s *EntrepreneurService) List(ctx context.Context, f repo.EntrepreneurFilter) ([]api.EntrepreneurSchema, error) {
	rows, err := s.users.ListEntrepreneurs(ctx, f)
	if err != nil {
		return nil, err
	}

	resp := make([]api.EntrepreneurSchema, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, api.EntrepreneurSchema{
			ID:            r.ID,
			Name:          r.Name,
			Surname:       r.Surname,
			IDNumber:      r.IDNumber,
			Email:         r.Email,
			Phone:         r.Phone,
			Hub:           r.Hub,
			Status:        r.Status,
			CreatedAt:     r.CreatedAt,
			BusinessCount: r.BusinessCount,
		})
	}
	return resp, nil
}

// Update applies an admin's partial edit. Email and ID-number uniqueness is
// not re-checked here; the column constraints still reject hard collisions.
func (s *EntrepreneurService) Update(ctx context.Context, userID int64, u repo.EntrepreneurUpdate) (*api.EntrepreneurProfile, error) {
	updated, err := s.users.UpdateEntrepreneur(ctx, userID, u)
	if err != nil {
		return nil, err
	}

	return &api.EntrepreneurProfile{
		ID:      updated.ID,
		Name:    updated.Name,
		Surname: updated.Surname,
		Email:   updated.Email,
		Phone:   updated.Phone,
		Hub:     updated.Hub,
		Status:  updated.Status,
	}, nil
}

func (s *EntrepreneurService) Deactivate(ctx context.Context, userID int64) error {
	return s.users.Deactivate(ctx, userID)
}

// Dashboard assembles the caller's own view: profile, businesses, payments
// across those businesses, and the bootcamp assignment when one exists.
func (s *EntrepreneurService) Dashboard(ctx context.Context, callerID int64) (*api.DashboardResponse, error) {
	resp := &api.DashboardResponse{
		Businesses: []api.BusinessSchema{},
		Payments:   []api.DashboardPayment{},
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, callerID)
		if err != nil {
			return err
		}
		resp.User = api.UserSchema{
			ID:      user.ID,
			Name:    user.Name,
			Surname: user.Surname,
			Email:   user.Email,
			Phone:   user.Phone,
			Hub:     user.Hub,
			Role:    user.Role,
		}

		businesses, err := s.businesses.ListByUser(ctx, callerID)
		if err != nil {
			return err
		}
		for _, b := range businesses {
			resp.Businesses = append(resp.Businesses, business.Schema(b))
		}

		payments, err := s.payments.ListByOwner(ctx, callerID)
		if err != nil {
			return err
		}
		for _, p := range payments {
			resp.Payments = append(resp.Payments, api.DashboardPayment{
				PaymentSchema: api.PaymentSchema{
					ID:         p.ID,
					BusinessID: p.BusinessID,
					Month:      p.Month,
					Year:       p.Year,
					Status:     p.Status,
					Notes:      p.Notes,
					CreatedAt:  p.CreatedAt,
				},
				BusinessName: p.BusinessName,
			})
		}

		assignment, err := s.assignments.GetByUserID(ctx, callerID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil
			}
			return err
		}
		resp.Bootcamp = &api.AssignmentSchema{
			ID:             assignment.ID,
			UserID:         assignment.UserID,
			Cohort:         assignment.Cohort,
			CohortYear:     assignment.CohortYear,
			Attendance:     assignment.Attendance,
			TotalSessions:  assignment.TotalSessions,
			BootcampStatus: assignment.BootcampStatus,
			AssignedDate:   assignment.AssignedDate,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
