package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
	"anupalan/internal/service"
	"anupalan/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	tenantID := uuid.New()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.TenantID == tenantID && u.Role == domain.RoleHR && u.PasswordHash != "plaintext-pass"
	})).Return(nil)

	user, err := svc.Create(context.Background(), tenantID, service.CreateUserInput{
		Email:    "hr@acme.example",
		Password: "plaintext-pass",
		FullName: "HR Person",
		Role:     domain.RoleHR,
	})

	assert.NoError(t, err)
	assert.Equal(t, "hr@acme.example", user.Email)
	assert.True(t, user.IsActive)
	repo.AssertExpectations(t)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	user, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "x@acme.example",
		Password: "plaintext-pass",
		FullName: "X",
		Role:     domain.UserRole("superuser"),
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicateEmail)

	user, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "taken@acme.example",
		Password: "plaintext-pass",
		FullName: "Taken",
		Role:     domain.RoleEmployee,
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserService_Update_InvalidRoleRejected(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	tenantID, userID := uuid.New(), uuid.New()
	repo.On("GetByID", mock.Anything, tenantID, userID).Return(&domain.User{
		ID: userID, TenantID: tenantID, Role: domain.RoleEmployee, IsActive: true,
	}, nil)

	badRole := domain.UserRole("root")
	user, err := svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{Role: &badRole})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	tenantID, userID := uuid.New(), uuid.New()
	repo.On("GetByID", mock.Anything, tenantID, userID).Return(&domain.User{
		ID: userID, TenantID: tenantID, FullName: "Old", Role: domain.RoleEmployee, IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	newName := "New"
	user, err := svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{FullName: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "New", user.FullName)
	assert.Equal(t, domain.RoleEmployee, user.Role)
}
