package entrepreneur

import (
	"context"
	"testing"

	"entrepreneur-tracker/internal/models"
	repo "entrepreneur-tracker/internal/repository"
	entrepreneurmocks "entrepreneur-tracker/internal/service/entrepreneur/mocks"
	"entrepreneur-tracker/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestList_PassesFilterThrough(t *testing.T) {
	ctx := context.Background()

	search := "jane"
	hub := "Soweto"

	users := entrepreneurmocks.NewUserProvider(t)
	users.On("ListEntrepreneurs", ctx, repo.EntrepreneurFilter{Search: &search, Hub: &hub}).
		Return([]*models.EntrepreneurRow{
			{ID: 7, Name: "Jane", Surname: "Doe", Email: "jane@example.com", Status: models.StatusActive, BusinessCount: 2},
		}, nil)

	s := NewEntrepreneurService(
		new(mocks.MockManager),
		users,
		entrepreneurmocks.NewBusinessLister(t),
		entrepreneurmocks.NewPaymentLister(t),
		entrepreneurmocks.NewAssignmentGetter(t),
	)

	rows, err := s.List(ctx, repo.EntrepreneurFilter{Search: &search, Hub: &hub})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].BusinessCount)
}

func TestUpdate_ReturnsProfile(t *testing.T) {
	ctx := context.Background()

	hub := "Tembisa"

	users := entrepreneurmocks.NewUserProvider(t)
	users.On("UpdateEntrepreneur", ctx, int64(7), repo.EntrepreneurUpdate{Hub: &hub}).
		Return(&models.User{ID: 7, Name: "Jane", Surname: "Doe", Email: "jane@example.com", Hub: &hub, Status: models.StatusActive}, nil)

	s := NewEntrepreneurService(
		new(mocks.MockManager),
		users,
		entrepreneurmocks.NewBusinessLister(t),
		entrepreneurmocks.NewPaymentLister(t),
		entrepreneurmocks.NewAssignmentGetter(t),
	)

	profile, err := s.Update(ctx, 7, repo.EntrepreneurUpdate{Hub: &hub})
	require.NoError(t, err)
	assert.Equal(t, &hub, profile.Hub)
	assert.Equal(t, models.StatusActive, profile.Status)
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()

	users := entrepreneurmocks.NewUserProvider(t)
	users.On("UpdateEntrepreneur", ctx, int64(404), repo.EntrepreneurUpdate{}).Return(nil, repo.ErrNotFound)

	s := NewEntrepreneurService(
		new(mocks.MockManager),
		users,
		entrepreneurmocks.NewBusinessLister(t),
		entrepreneurmocks.NewPaymentLister(t),
		entrepreneurmocks.NewAssignmentGetter(t),
	)

	profile, err := s.Update(ctx, 404, repo.EntrepreneurUpdate{})
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.Nil(t, profile)
}

func TestDashboard_WithAssignment(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	users := entrepreneurmocks.NewUserProvider(t)
	users.On("GetByID", ctx, int64(7)).Return(&models.User{
		ID: 7, Name: "Jane", Surname: "Doe", Email: "jane@example.com", Role: models.RoleEntrepreneur,
	}, nil)

	businesses := entrepreneurmocks.NewBusinessLister(t)
	businesses.On("ListByUser", ctx, int64(7)).Return([]*models.Business{
		{ID: 3, UserID: 7, Name: "Sew & Co"},
	}, nil)

	payments := entrepreneurmocks.NewPaymentLister(t)
	payments.On("ListByOwner", ctx, int64(7)).Return([]*models.PaymentWithBusiness{
		{ID: 11, BusinessID: 3, Month: 6, Year: 2025, Status: models.PaymentPaid, BusinessName: "Sew & Co"},
	}, nil)

	assignments := entrepreneurmocks.NewAssignmentGetter(t)
	assignments.On("GetByUserID", ctx, int64(7)).Return(&models.BootcampAssignment{
		ID: 1, UserID: 7, Cohort: "Cohort 2024 B", CohortYear: 2024, BootcampStatus: models.BootcampActive,
	}, nil)

	s := NewEntrepreneurService(trm, users, businesses, payments, assignments)

	resp, err := s.Dashboard(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Jane", resp.User.Name)
	require.Len(t, resp.Businesses, 1)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "Sew & Co", resp.Payments[0].BusinessName)
	require.NotNil(t, resp.Bootcamp)
	assert.Equal(t, "Cohort 2024 B", resp.Bootcamp.Cohort)
}

func TestDashboard_NoAssignment(t *testing.T) {
	ctx := context.Background()

	trm := new(mocks.MockManager)
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)

	users := entrepreneurmocks.NewUserProvider(t)
	users.On("GetByID", ctx, int64(7)).Return(&models.User{ID: 7, Role: models.RoleEntrepreneur}, nil)

	businesses := entrepreneurmocks.NewBusinessLister(t)
	businesses.On("ListByUser", ctx, int64(7)).Return([]*models.Business{}, nil)

	payments := entrepreneurmocks.NewPaymentLister(t)
	payments.On("ListByOwner", ctx, int64(7)).Return([]*models.PaymentWithBusiness{}, nil)

	assignments := entrepreneurmocks.NewAssignmentGetter(t)
	assignments.On("GetByUserID", ctx, int64(7)).Return(nil, repo.ErrNotFound)

	s := NewEntrepreneurService(trm, users, businesses, payments, assignments)

	resp, err := s.Dashboard(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, resp.Bootcamp)
	assert.Empty(t, resp.Businesses)
	assert.Empty(t, resp.Payments)
}

func TestDeactivate_Delegates(t *testing.T) {
	ctx := context.Background()

	users := entrepreneurmocks.NewUserProvider(t)
	users.On("Deactivate", ctx, int64(7)).Return(nil)

	s := NewEntrepreneurService(
		new(mocks.MockManager),
		users,
		entrepreneurmocks.NewBusinessLister(t),
		entrepreneurmocks.NewPaymentLister(t),
		entrepreneurmocks.NewAssignmentGetter(t),
	)

	assert.NoError(t, s.Deactivate(ctx, 7))
}
