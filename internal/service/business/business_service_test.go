package business

import (
	"context"
	"testing"

	"entrepreneur-tracker/internal/models"
	repo "entrepreneur-tracker/internal/repository"
	"entrepreneur-tracker/internal/service"
	"entrepreneur-tracker/internal/service/business/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreate_OwnershipFromCaller(t *testing.T) {
	ctx := context.Background()

	businesses := mocks.NewBusinessProvider(t)
	businesses.On("Create", ctx, mock.MatchedBy(func(b *models.Business) bool {
		return b.UserID == 7 && b.Name == "Sew & Co" && b.RegistrationNumber == "REG-001"
	})).Return(&models.Business{ID: 3, UserID: 7, Name: "Sew & Co", RegistrationNumber: "REG-001"}, nil)

	s := NewBusinessService(businesses)

	resp, err := s.Create(ctx, 7, CreateInput{Name: "Sew & Co", RegistrationNumber: "REG-001"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
}

func TestCreate_DuplicateRegistration(t *testing.T) {
	ctx := context.Background()

	businesses := mocks.NewBusinessProvider(t)
	businesses.On("Create", ctx, mock.AnythingOfType("*models.Business")).Return(nil, repo.ErrBusinessExists)

	s := NewBusinessService(businesses)

	resp, err := s.Create(ctx, 7, CreateInput{Name: "Sew & Co", RegistrationNumber: "REG-001"})
	assert.ErrorIs(t, err, repo.ErrBusinessExists)
	assert.Nil(t, resp)
}

func TestListForUser_OwnBusinesses(t *testing.T) {
	ctx := context.Background()

	businesses := mocks.NewBusinessProvider(t)
	businesses.On("ListByUser", ctx, int64(7)).Return([]*models.Business{
		{ID: 3, UserID: 7, Name: "Sew & Co"},
	}, nil)

	s := NewBusinessService(businesses)

	resp, err := s.ListForUser(ctx, 7, models.RoleEntrepreneur, 7)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Sew & Co", resp[0].Name)
}

func TestListForUser_AdminViewsAnyone(t *testing.T) {
	ctx := context.Background()

	businesses := mocks.NewBusinessProvider(t)
	businesses.On("ListByUser", ctx, int64(7)).Return([]*models.Business{}, nil)

	s := NewBusinessService(businesses)

	resp, err := s.ListForUser(ctx, 1, models.RoleAdmin, 7)
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestListForUser_DeniedForOtherEntrepreneur(t *testing.T) {
	ctx := context.Background()

	s := NewBusinessService(mocks.NewBusinessProvider(t))

	resp, err := s.ListForUser(ctx, 7, models.RoleEntrepreneur, 8)
	assert.ErrorIs(t, err, service.ErrAccessDenied)
	assert.Nil(t, resp)
}

func TestListAll_IncludesOwner(t *testing.T) {
	ctx := context.Background()

	businesses := mocks.NewBusinessProvider(t)
	businesses.On("ListAllWithOwner", ctx).Return([]*models.BusinessWithOwner{
		{ID: 3, Name: "Sew & Co", RegistrationNumber: "REG-001", OwnerName: "Jane", OwnerSurname: "Doe", OwnerEmail: "jane@example.com"},
	}, nil)

	s := NewBusinessService(businesses)

	rows, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane", rows[0].OwnerName)
	assert.Equal(t, "jane@example.com", rows[0].OwnerEmail)
}
