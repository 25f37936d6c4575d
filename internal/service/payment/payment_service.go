package payment

import (
	"context"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/models"
	repo "entrepreneur-tracker/internal/repository"
	"entrepreneur-tracker/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentProvider
type PaymentProvider interface {
	Create(ctx context.Context, p *models.Payment) (*models.Payment, error)
	Exists(ctx context.Context, businessID int64, month, year int) (bool, error)
	Update(ctx context.Context, paymentID int64, status string, notes *string) (*models.Payment, error)
	ListAllWithBusiness(ctx context.Context) ([]*models.PaymentWithBusiness, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=BusinessGetter
type BusinessGetter interface {
	GetByID(ctx context.Context, businessID int64) (*models.Business, error)
}

type PaymentService struct {
	trm        service.TransactionManager
	payments   PaymentProvider
	businesses BusinessGetter
}

func NewPaymentService(trm service.TransactionManager, payments PaymentProvider, businesses BusinessGetter) *PaymentService {
	return &PaymentService{
		trm:        trm,
		payments:   payments,
		businesses: businesses,
	}
}

const entrepreneurNote = "Created by entrepreneur"

// CreateForOwner records a payment for a business the caller owns. The
// record starts as pending; only an admin moves it from there.
func (s *PaymentService) CreateForOwner(ctx context.Context, callerID, businessID int64, month, year int) (*api.PaymentSchema, error) {
	var created *models.Payment

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		b, err := s.businesses.GetByID(ctx, businessID)
		if err != nil {
			return err
		}
		if b.UserID != callerID {
			return service.ErrAccessDenied
		}

		exists, err := s.payments.Exists(ctx, businessID, month, year)
		if err != nil {
			return err
		}
		if exists {
			return repo.ErrPaymentExists
		}

		notes := entrepreneurNote
		created, err = s.payments.Create(ctx, &models.Payment{
			BusinessID: businessID,
			Month:      month,
			Year:       year,
			Status:     models.PaymentPending,
			Notes:      &notes,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	schema := Schema(created)
	return &schema, nil
}

// CreateByAdmin records a payment for any business; status defaults to
// unpaid when the admin leaves it out.
func (s *PaymentService) CreateByAdmin(ctx context.Context, businessID int64, month, year int, status, notes *string) (*api.PaymentSchema, error) {
	var created *models.Payment

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.businesses.GetByID(ctx, businessID); err != nil {
			return err
		}

		exists, err := s.payments.Exists(ctx, businessID, month, year)
		if err != nil {
			return err
		}
		if exists {
			return repo.ErrPaymentExists
		}

		paymentStatus := models.PaymentUnpaid
		if status != nil {
			paymentStatus = *status
		}

		created, err = s.payments.Create(ctx, &models.Payment{
			BusinessID: businessID,
			Month:      month,
			Year:       year,
			Status:     paymentStatus,
			Notes:      notes,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	schema := Schema(created)
	return &schema, nil
}

// Update sets the status (already validated against the settable subset) and
// keeps stored notes when none are supplied.
func (s *PaymentService) Update(ctx context.Context, paymentID int64, status string, notes *string) (*api.PaymentSchema, error) {
	updated, err := s.payments.Update(ctx, paymentID, status, notes)
	if err != nil {
		return nil, err
	}

	schema := Schema(updated)
	return &schema, nil
}

func (s *PaymentService) ListAll(ctx context.Context) ([]api.AdminPaymentRow, error) {
	payments, err := s.payments.ListAllWithBusiness(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]api.AdminPaymentRow, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, api.AdminPaymentRow{
			PaymentSchema: api.PaymentSchema{
				ID:         p.ID,
				BusinessID: p.BusinessID,
				Month:      p.Month,
				Year:       p.Year,
				Status:     p.Status,
				Notes:      p.Notes,
				CreatedAt:  p.CreatedAt,
			},
			BusinessName:       p.BusinessName,
			RegistrationNumber: p.RegistrationNumber,
			OwnerName:          p.OwnerName,
			OwnerSurname:       p.OwnerSurname,
			OwnerEmail:         p.OwnerEmail,
		})
	}
	return resp, nil
}

// Schema converts a stored payment into its response shape.
func Schema(p *models.Payment) api.PaymentSchema {
	return api.PaymentSchema{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		Month:      p.Month,
		Year:       p.Year,
		Status:     p.Status,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
	}
}
