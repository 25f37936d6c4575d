package report

import (
	"context"
	"errors"
	"testing"

	"entrepreneur-tracker/internal/models"
	"entrepreneur-tracker/internal/service/mocks"
	reportmocks "entrepreneur-tracker/internal/service/report/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGet_AssemblesAllMetrics(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	reports := reportmocks.NewReportProvider(t)
	reports.On("CountEntrepreneurs", ctx).Return(25, nil)
	reports.On("CountBusinesses", ctx).Return(30, nil)
	reports.On("PaymentTotals", ctx).Return(&models.PaymentTotals{
		Total: 100, Paid: 60, Unpaid: 25, Pending: 10, Overdue: 5,
	}, nil)
	reports.On("CountRecentEntrepreneurs", ctx).Return(4, nil)
	reports.On("CountBootcampAssignments", ctx).Return(12, nil)
	reports.On("HubPerformance", ctx).Return([]*models.HubPerformance{
		{Hub: "Soweto", TotalEntrepreneurs: 15, TotalBusinesses: 18, ActiveEntrepreneurs: 14, TotalPayments: 70, PaidPayments: 45},
		{Hub: "Tembisa", TotalEntrepreneurs: 10, TotalBusinesses: 12, ActiveEntrepreneurs: 9, TotalPayments: 30, PaidPayments: 15},
	}, nil)

	s := NewReportService(trm, reports)

	resp, err := s.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, 25, resp.TotalEntrepreneurs)
	assert.Equal(t, 30, resp.TotalBusinesses)
	assert.Equal(t, 100, resp.TotalPayments)
	assert.Equal(t, 60, resp.PaidPayments)
	assert.Equal(t, 25, resp.UnpaidPayments)
	assert.Equal(t, 10, resp.PendingPayments)
	assert.Equal(t, 5, resp.OverduePayments)
	assert.Equal(t, 4, resp.RecentRegistrations)
	assert.Equal(t, 12, resp.BootcampAssignments)

	require.Len(t, resp.HubPerformance, 2)
	assert.Equal(t, "Soweto", resp.HubPerformance[0].Hub)
	assert.Equal(t, 45, resp.HubPerformance[0].PaidPayments)
}

func TestGet_NoHubs(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	reports := reportmocks.NewReportProvider(t)
	reports.On("CountEntrepreneurs", ctx).Return(0, nil)
	reports.On("CountBusinesses", ctx).Return(0, nil)
	reports.On("PaymentTotals", ctx).Return(&models.PaymentTotals{}, nil)
	reports.On("CountRecentEntrepreneurs", ctx).Return(0, nil)
	reports.On("CountBootcampAssignments", ctx).Return(0, nil)
	reports.On("HubPerformance", ctx).Return([]*models.HubPerformance{}, nil)

	s := NewReportService(trm, reports)

	resp, err := s.Get(ctx)
	require.NoError(t, err)
	assert.NotNil(t, resp.HubPerformance)
	assert.Empty(t, resp.HubPerformance)
}

func TestGet_QueryError(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	queryErr := errors.New("connection reset")

	reports := reportmocks.NewReportProvider(t)
	reports.On("CountEntrepreneurs", ctx).Return(0, queryErr)

	s := NewReportService(trm, reports)

	resp, err := s.Get(ctx)
	assert.ErrorIs(t, err, queryErr)
	assert.Nil(t, resp)
}
