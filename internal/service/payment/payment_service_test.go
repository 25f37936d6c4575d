package payment

import (
	"context"
	"testing"

	"entrepreneur-tracker/internal/models"
	repo "entrepreneur-tracker/internal/repository"
	"entrepreneur-tracker/internal/service"
	"entrepreneur-tracker/internal/service/mocks"
	paymentmocks "entrepreneur-tracker/internal/service/payment/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateForOwner_Success(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	businesses := paymentmocks.NewBusinessGetter(t)
	businesses.On("GetByID", ctx, int64(3)).Return(&models.Business{ID: 3, UserID: 7}, nil)

	payments := paymentmocks.NewPaymentProvider(t)
	payments.On("Exists", ctx, int64(3), 6, 2025).Return(false, nil)
	payments.On("Create", ctx, mock.MatchedBy(func(p *models.Payment) bool {
		return p.BusinessID == 3 && p.Month == 6 && p.Year == 2025 &&
			p.Status == models.PaymentPending && p.Notes != nil && *p.Notes == entrepreneurNote
	})).Return(&models.Payment{ID: 11, BusinessID: 3, Month: 6, Year: 2025, Status: models.PaymentPending}, nil)

	s := NewPaymentService(trm, payments, businesses)

	resp, err := s.CreateForOwner(ctx, 7, 3, 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, models.PaymentPending, resp.Status)
}

func TestCreateForOwner_NotOwner(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	businesses := paymentmocks.NewBusinessGetter(t)
	businesses.On("GetByID", ctx, int64(3)).Return(&models.Business{ID: 3, UserID: 99}, nil)

	s := NewPaymentService(trm, paymentmocks.NewPaymentProvider(t), businesses)

	resp, err := s.CreateForOwner(ctx, 7, 3, 6, 2025)
	assert.ErrorIs(t, err, service.ErrAccessDenied)
	assert.Nil(t, resp)
}

func TestCreateForOwner_BusinessNotFound(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	businesses := paymentmocks.NewBusinessGetter(t)
	businesses.On("GetByID", ctx, int64(3)).Return(nil, repo.ErrNotFound)

	s := NewPaymentService(trm, paymentmocks.NewPaymentProvider(t), businesses)

	resp, err := s.CreateForOwner(ctx, 7, 3, 6, 2025)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.Nil(t, resp)
}

func TestCreateForOwner_Duplicate(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	businesses := paymentmocks.NewBusinessGetter(t)
	businesses.On("GetByID", ctx, int64(3)).Return(&models.Business{ID: 3, UserID: 7}, nil)

	payments := paymentmocks.NewPaymentProvider(t)
	payments.On("Exists", ctx, int64(3), 6, 2025).Return(true, nil)

	s := NewPaymentService(trm, payments, businesses)

	resp, err := s.CreateForOwner(ctx, 7, 3, 6, 2025)
	assert.ErrorIs(t, err, repo.ErrPaymentExists)
	assert.Nil(t, resp)
}

func TestCreateByAdmin_DefaultStatus(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	businesses := paymentmocks.NewBusinessGetter(t)
	businesses.On("GetByID", ctx, int64(5)).Return(&models.Business{ID: 5, UserID: 2}, nil)

	payments := paymentmocks.NewPaymentProvider(t)
	payments.On("Exists", ctx, int64(5), 1, 2026).Return(false, nil)
	payments.On("Create", ctx, mock.MatchedBy(func(p *models.Payment) bool {
		return p.Status == models.PaymentUnpaid && p.Notes == nil
	})).Return(&models.Payment{ID: 12, BusinessID: 5, Month: 1, Year: 2026, Status: models.PaymentUnpaid}, nil)

	s := NewPaymentService(trm, payments, businesses)

	resp, err := s.CreateByAdmin(ctx, 5, 1, 2026, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentUnpaid, resp.Status)
}

func TestCreateByAdmin_ExplicitStatus(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	businesses := paymentmocks.NewBusinessGetter(t)
	businesses.On("GetByID", ctx, int64(5)).Return(&models.Business{ID: 5, UserID: 2}, nil)

	status := models.PaymentPaid
	notes := "settled at the hub office"

	payments := paymentmocks.NewPaymentProvider(t)
	payments.On("Exists", ctx, int64(5), 2, 2026).Return(false, nil)
	payments.On("Create", ctx, mock.MatchedBy(func(p *models.Payment) bool {
		return p.Status == models.PaymentPaid && p.Notes != nil && *p.Notes == notes
	})).Return(&models.Payment{ID: 13, BusinessID: 5, Month: 2, Year: 2026, Status: models.PaymentPaid, Notes: &notes}, nil)

	s := NewPaymentService(trm, payments, businesses)

	resp, err := s.CreateByAdmin(ctx, 5, 2, 2026, &status, &notes)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, resp.Status)
}

func TestUpdate_Success(t *testing.T) {
	ctx := context.Background()

	payments := paymentmocks.NewPaymentProvider(t)
	payments.On("Update", ctx, int64(11), models.PaymentPaid, (*string)(nil)).
		Return(&models.Payment{ID: 11, BusinessID: 3, Month: 6, Year: 2025, Status: models.PaymentPaid}, nil)

	s := NewPaymentService(new(mocks.MockManager), payments, paymentmocks.NewBusinessGetter(t))

	resp, err := s.Update(ctx, 11, models.PaymentPaid, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, resp.Status)
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()

	payments := paymentmocks.NewPaymentProvider(t)
	payments.On("Update", ctx, int64(404), models.PaymentPaid, (*string)(nil)).Return(nil, repo.ErrNotFound)

	s := NewPaymentService(new(mocks.MockManager), payments, paymentmocks.NewBusinessGetter(t))

	resp, err := s.Update(ctx, 404, models.PaymentPaid, nil)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.Nil(t, resp)
}

func TestListAll_JoinsBusinessAndOwner(t *testing.T) {
	ctx := context.Background()

	reg := "REG-001"
	name := "Thandi"

	payments := paymentmocks.NewPaymentProvider(t)
	payments.On("ListAllWithBusiness", ctx).Return([]*models.PaymentWithBusiness{
		{
			ID:                 1,
			BusinessID:         3,
			Month:              6,
			Year:               2025,
			Status:             models.PaymentPaid,
			BusinessName:       "Sew & Co",
			RegistrationNumber: &reg,
			OwnerName:          &name,
		},
	}, nil)

	s := NewPaymentService(new(mocks.MockManager), payments, paymentmocks.NewBusinessGetter(t))

	rows, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sew & Co", rows[0].BusinessName)
	assert.Equal(t, &reg, rows[0].RegistrationNumber)
}
